package httpx

import (
	"encoding/json"
	"net/http"
)

// Every response uses the same envelope; meta only appears on paginated
// listings.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Meta    *Meta  `json:"meta,omitempty"`
}

type Meta struct {
	Page     int  `json:"page"`
	Limit    int  `json:"limit"`
	PrevPage *int `json:"prev_page"`
	NextPage *int `json:"next_page"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func OK(w http.ResponseWriter, code int, message string, data any) {
	writeJSON(w, code, Envelope{Success: true, Message: message, Data: data})
}

func OKPaged(w http.ResponseWriter, code int, message string, data any, meta Meta) {
	writeJSON(w, code, Envelope{Success: true, Message: message, Data: data, Meta: &meta})
}

func Fail(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, Envelope{Success: false, Message: message})
}

// PageMeta computes prev/next from the total row count; both are null at
// the edges.
func PageMeta(page, limit, total int) Meta {
	m := Meta{Page: page, Limit: limit}
	if page > 1 {
		prev := page - 1
		m.PrevPage = &prev
	}
	if page*limit < total {
		next := page + 1
		m.NextPage = &next
	}
	return m
}
