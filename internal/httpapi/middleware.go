package httpapi

import (
	"context"
	"net/http"
	"strings"

	userdomain "github.com/unimarket-dev/unimarket/internal/user/domain"
	"github.com/unimarket-dev/unimarket/pkg/auth"
)

type contextKey string

const userKey contextKey = "current_user"

// Auth resolves bearer tokens to user records. A token whose subject no
// longer exists in the credential store is rejected the same way as an
// invalid one.
type Auth struct {
	users userdomain.UserRepository
}

// NewAuth creates the authorization gate backed by the user repository
func NewAuth(users userdomain.UserRepository) *Auth {
	return &Auth{users: users}
}

// AuthMiddleware validates the bearer token and loads the account into
// the request context
func (a *Auth) AuthMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			RespondError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			RespondError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := auth.ValidateToken(parts[1])
		if err != nil {
			RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		user, err := a.users.FindByUsername(claims.Subject)
		if err != nil {
			RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// AdminMiddleware layers an admin role check on top of AuthMiddleware
func (a *Auth) AdminMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return a.AuthMiddleware(func(w http.ResponseWriter, r *http.Request) {
		user, ok := CurrentUser(r)
		if !ok || !user.IsAdmin() {
			RespondError(w, http.StatusForbidden, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the account resolved by AuthMiddleware.
func CurrentUser(r *http.Request) (*userdomain.User, bool) {
	user, ok := r.Context().Value(userKey).(*userdomain.User)
	return user, ok
}
