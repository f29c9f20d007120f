package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rakapradana/go-bookshop/internal/catalog"
	"github.com/rakapradana/go-bookshop/internal/logx"
)

type BooksHandler struct {
	Catalog *catalog.Repo
	Secret  string
}

type createBookReq struct {
	Title           string  `json:"title"`
	Writer          string  `json:"writer"`
	Publisher       string  `json:"publisher"`
	PublicationYear int     `json:"publication_year"`
	Description     *string `json:"description"`
	Price           int     `json:"price"`
	StockQuantity   int     `json:"stock_quantity"`
	GenreID         string  `json:"genre_id"`
}

type patchBookReq struct {
	Description   *string `json:"description"`
	Price         *int    `json:"price"`
	StockQuantity *int    `json:"stock_quantity"`
}

type bookPayload struct {
	ID              string  `json:"id"`
	Title           string  `json:"title"`
	Writer          string  `json:"writer"`
	Publisher       string  `json:"publisher"`
	Description     *string `json:"description"`
	PublicationYear int     `json:"publication_year"`
	Price           int     `json:"price"`
	StockQuantity   int     `json:"stock_quantity"`
	Genre           string  `json:"genre"`
}

func toBookPayload(b catalog.Book) bookPayload {
	return bookPayload{
		ID:              b.ID,
		Title:           b.Title,
		Writer:          b.Writer,
		Publisher:       b.Publisher,
		Description:     b.Description,
		PublicationYear: b.PublicationYear,
		Price:           b.Price,
		StockQuantity:   b.StockQuantity,
		Genre:           b.GenreName,
	}
}

func (h *BooksHandler) Register(r *chi.Mux) {
	r.Route("/books", func(r chi.Router) {
		r.Use(RequireAuth(h.Secret))
		r.Post("/", h.create)
		r.Get("/", h.list)
		r.Get("/genre/{id}", h.listByGenre)
		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.remove)
	})
}

func (h *BooksHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Title == "" || req.Writer == "" || req.Publisher == "" ||
		req.PublicationYear == 0 || req.Price == 0 || req.StockQuantity == 0 || req.GenreID == "" {
		Fail(w, http.StatusBadRequest, "All fields are required except description")
		return
	}

	b, err := h.Catalog.CreateBook(r.Context(), catalog.NewBook{
		Title:           req.Title,
		Writer:          req.Writer,
		Publisher:       req.Publisher,
		Description:     req.Description,
		PublicationYear: req.PublicationYear,
		Price:           req.Price,
		StockQuantity:   req.StockQuantity,
		GenreID:         req.GenreID,
	})
	switch {
	case errors.Is(err, catalog.ErrDuplicateTitle):
		Fail(w, http.StatusBadRequest, "Book title already exists")
		return
	case errors.Is(err, catalog.ErrGenreNotFound):
		Fail(w, http.StatusBadRequest, "Genre not found")
		return
	case err != nil:
		logx.L.Errorf("create book: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusCreated, "Book added successfully", map[string]any{
		"id":         b.ID,
		"title":      b.Title,
		"created_at": b.CreatedAt,
	})
}

func (h *BooksHandler) list(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	books, total, err := h.Catalog.ListBooks(r.Context(), p)
	if err != nil {
		logx.L.Errorf("list books: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	data := make([]bookPayload, 0, len(books))
	for _, b := range books {
		data = append(data, toBookPayload(b))
	}
	OKPaged(w, http.StatusOK, "Get all book successfully", data, PageMeta(p.Page, p.Limit, total))
}

func (h *BooksHandler) listByGenre(w http.ResponseWriter, r *http.Request) {
	p := listParams(r)
	books, total, err := h.Catalog.ListBooksByGenre(r.Context(), chi.URLParam(r, "id"), p)
	if errors.Is(err, catalog.ErrGenreNotFound) {
		Fail(w, http.StatusNotFound, "Genre not found")
		return
	}
	if err != nil {
		logx.L.Errorf("list books by genre: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	data := make([]bookPayload, 0, len(books))
	for _, b := range books {
		data = append(data, toBookPayload(b))
	}
	OKPaged(w, http.StatusOK, "Get all book by genre successfully", data, PageMeta(p.Page, p.Limit, total))
}

func (h *BooksHandler) get(w http.ResponseWriter, r *http.Request) {
	b, err := h.Catalog.GetBook(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrBookNotFound) {
		Fail(w, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		logx.L.Errorf("get book: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Get book detail successfully", toBookPayload(b))
}

func (h *BooksHandler) update(w http.ResponseWriter, r *http.Request) {
	var req patchBookReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}

	b, err := h.Catalog.UpdateBook(r.Context(), chi.URLParam(r, "id"), catalog.BookPatch{
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	})
	if errors.Is(err, catalog.ErrBookNotFound) {
		Fail(w, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		logx.L.Errorf("update book: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Book updated successfully", map[string]any{
		"id":         b.ID,
		"title":      b.Title,
		"updated_at": b.UpdatedAt,
	})
}

func (h *BooksHandler) remove(w http.ResponseWriter, r *http.Request) {
	err := h.Catalog.DeleteBook(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, catalog.ErrBookNotFound) {
		Fail(w, http.StatusNotFound, "Book not found")
		return
	}
	if err != nil {
		logx.L.Errorf("delete book: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Book removed successfully", nil)
}
