package transport

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/foodhive/application/user"
	"github.com/muhammadheryan/foodhive/constant"
	utilsContext "github.com/muhammadheryan/foodhive/utils/context"
	"github.com/muhammadheryan/foodhive/utils/errors"
)

// AuthMiddleware verifies the bearer token with UserApp and stores the
// caller identity in the request context. Public requests pass through.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicRequest(r) {
				next.ServeHTTP(w, r)
				return
			}

			auth := r.Header.Get("Authorization")
			if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}
			token := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))

			identity, err := userApp.ValidateToken(r.Context(), token)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := utilsContext.WithIdentity(r.Context(), identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isPublicRequest reports whether the request may be served without a token.
// Catalog reads are public, every write and every per-user read is not.
func isPublicRequest(r *http.Request) bool {
	path := r.URL.Path
	if strings.HasPrefix(path, "/swagger/") {
		return true
	}
	if r.Method != http.MethodGet {
		return false
	}
	switch {
	case path == "/foods", path == "/categories", path == "/top-six-food":
		return true
	case strings.HasPrefix(path, "/foods/") && !strings.Contains(strings.TrimPrefix(path, "/foods/"), "/"):
		return true
	}
	return false
}
