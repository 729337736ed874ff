package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/omartarek/e-commerce-api/application/user"
	"github.com/omartarek/e-commerce-api/constant"
	"github.com/omartarek/e-commerce-api/utils/errors"
)

// AuthMiddleware returns a middleware that validates JWT bearer tokens
// using UserApp and embeds the caller's user id into the request context.
// Public endpoints pass through untouched.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimPrefix(auth, "Bearer ")

			userID, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicPath defines which endpoints are public (no auth required)
func isPublicPath(path string) bool {
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if path == "/user/sign-up" || path == "/user/sign-in" || path == "/user/authorization" || path == "/products" {
		return true
	}

	return false
}
