package httpx

import (
	"net/http"
	"strconv"

	"github.com/rakapradana/go-bookshop/internal/catalog"
)

const (
	defaultPage  = 1
	defaultLimit = 10
)

func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		return def
	}
	return i
}

func queryDir(r *http.Request, key string) string {
	if r.URL.Query().Get(key) == "desc" {
		return "desc"
	}
	return "asc"
}

func listParams(r *http.Request) catalog.ListParams {
	return catalog.ListParams{
		Page:       queryInt(r, "page", defaultPage),
		Limit:      queryInt(r, "limit", defaultLimit),
		Search:     r.URL.Query().Get("search"),
		OrderTitle: queryDir(r, "orderByTitle"),
		OrderYear:  queryDir(r, "orderByPublishDate"),
		OrderName:  queryDir(r, "orderByName"),
	}
}
