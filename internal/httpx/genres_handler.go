package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakapradana/go-bookshop/internal/catalog"
	"github.com/rakapradana/go-bookshop/internal/logx"
)

type GenresHandler struct {
	Catalog *catalog.Repo
	Secret  string
}

type genreReq struct {
	Name string `json:"name"`
}

type genrePayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Listing and detail stay public; mutations need a token.
func (h *GenresHandler) Register(r *chi.Mux) {
	r.Route("/genre", func(r chi.Router) {
		r.Get("/", h.list)
		r.Get("/{id}", h.get)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(h.Secret))
			r.Post("/", h.create)
			r.Patch("/{id}", h.update)
			r.Delete("/{id}", h.remove)
		})
	})
}

func (h *GenresHandler) create(w http.ResponseWriter, r *http.Request) {
	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		Fail(w, http.StatusBadRequest, "Genre name is required")
		return
	}

	g, err := h.Catalog.CreateGenre(r.Context(), req.Name)
	if errors.Is(err, catalog.ErrDuplicateGenre) {
		Fail(w, http.StatusBadRequest, "Genre already exists")
		return
	}
	if err != nil {
		logx.L.Errorf("create genre: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusCreated, "Genre created successfully", map[string]any{
		"id":         g.ID,
		"name":       g.Name,
		"created_at": g.CreatedAt,
	})
}

func (h *GenresHandler) list(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	genres, total, err := h.Catalog.ListGenres(r.Context(), p)
	if err != nil {
		logx.L.Errorf("list genres: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	data := make([]genrePayload, 0, len(genres))
	for _, g := range genres {
		data = append(data, genrePayload{ID: g.ID, Name: g.Name})
	}
	OKPaged(w, http.StatusOK, "Get all genre successfully", data, PageMeta(p.Page, p.Limit, total))
}

func (h *GenresHandler) get(w http.ResponseWriter, r *http.Request) {
	g, err := h.Catalog.GetGenre(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrGenreNotFound) {
		Fail(w, http.StatusNotFound, "Genre not found")
		return
	}
	if err != nil {
		logx.L.Errorf("get genre: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Get genre detail successfully", genrePayload{ID: g.ID, Name: g.Name})
}

func (h *GenresHandler) update(w http.ResponseWriter, r *http.Request) {
	var req genreReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Name == "" {
		Fail(w, http.StatusBadRequest, "Genre name is required")
		return
	}

	g, err := h.Catalog.RenameGenre(r.Context(), chi.URLParam(r, "id"), req.Name)
	switch {
	case errors.Is(err, catalog.ErrGenreNotFound):
		Fail(w, http.StatusNotFound, "Genre not found")
		return
	case errors.Is(err, catalog.ErrDuplicateGenre):
		Fail(w, http.StatusBadRequest, "Genre name already exists")
		return
	case err != nil:
		logx.L.Errorf("rename genre: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Genre updated successfully", map[string]any{
		"id":         g.ID,
		"name":       g.Name,
		"updated_at": g.UpdatedAt,
	})
}

func (h *GenresHandler) remove(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.DeleteGenre(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrGenreNotFound) {
		Fail(w, http.StatusNotFound, "Genre not found")
		return
	}
	if err != nil {
		logx.L.Errorf("delete genre: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Genre removed successfully", nil)
}
