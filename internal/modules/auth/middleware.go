package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/autandojam/inventory-backend/internal/api"
	"github.com/autandojam/inventory-backend/internal/modules/user"
)

type contextKey string

const userContextKey contextKey = "authenticated-user"

// Middleware resolves bearer tokens into user snapshots for protected routes.
type Middleware struct {
	service Service
	users   user.Service
}

func NewMiddleware(service Service, users user.Service) *Middleware {
	return &Middleware{service: service, users: users}
}

// RequireAuth validates the Authorization header, loads the acting user once and
// stores the snapshot in the request context.
func (m *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			api.Fail(w, http.StatusBadRequest, "Missing or malformed Authorization header")
			return
		}

		claims, err := m.service.Validate(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "Invalid or expired token")
			return
		}

		u, err := m.users.FindByUsername(r.Context(), claims.Username)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "User not found")
			return
		}
		if !u.IsActive {
			api.Fail(w, http.StatusBadRequest, "User account is inactive")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

// WithUser returns a context carrying u as the authenticated user.
func WithUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, userContextKey, u)
}

// UserFromContext returns the user placed in the context by RequireAuth.
func UserFromContext(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(userContextKey).(*user.User)
	return u, ok
}
