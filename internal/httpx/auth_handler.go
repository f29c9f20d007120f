package httpx

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rakapradana/go-bookshop/internal/auth"
	"github.com/rakapradana/go-bookshop/internal/logx"
	"github.com/rakapradana/go-bookshop/internal/users"
)

type AuthHandler struct {
	Users  *users.Repo
	Secret string
	TTL    time.Duration
}

type registerReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(r *chi.Mux) {
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.With(RequireAuth(h.Secret)).Get("/me", h.me)
	})
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logx.L.Errorf("hash password: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	u, err := h.Users.Create(r.Context(), req.Username, req.Email, hash)
	if errors.Is(err, users.ErrEmailTaken) {
		Fail(w, http.StatusBadRequest, "User already exists")
		return
	}
	if err != nil {
		logx.L.Errorf("create user: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusCreated, "User registered successfully", map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"created_at": u.CreatedAt,
	})
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Fail(w, http.StatusBadRequest, "invalid json")
		return
	}
	if req.Email == "" || req.Password == "" {
		Fail(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	u, err := h.Users.GetByEmail(r.Context(), req.Email)
	if errors.Is(err, users.ErrNotFound) {
		Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if err != nil {
		logx.L.Errorf("get user: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if !auth.ComparePassword(req.Password, u.PasswordHash) {
		Fail(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.SignToken(h.Secret, u.ID, h.TTL)
	if err != nil {
		logx.L.Errorf("sign token: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Login successfully", map[string]any{"access_token": token})
}

func (h *AuthHandler) me(w http.ResponseWriter, r *http.Request) {
	u, err := h.Users.GetByID(r.Context(), UserID(r.Context()))
	if errors.Is(err, users.ErrNotFound) {
		Fail(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		logx.L.Errorf("get user: %v", err)
		Fail(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	OK(w, http.StatusOK, "Get me successfully", map[string]any{
		"id":       u.ID,
		"username": u.Username,
		"email":    u.Email,
	})
}
