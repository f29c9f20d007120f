package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/rakapradana/go-bookshop/internal/auth"
)

type ctxKey int

const userIDKey ctxKey = 0

// RequireAuth verifies the Bearer token and stores the caller's user id in
// the request context. Every failure reads the same to the client.
func RequireAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				Fail(w, http.StatusUnauthorized, "Access token required")
				return
			}
			userID, err := auth.VerifyToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				Fail(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated caller's id, or "" outside RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
