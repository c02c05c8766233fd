package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hadirhq/hadir-backend-go/internal/handler/http/response"
)

// RequireRole allows the request through only when the token's role claim is
// one of the given roles.
func RequireRole(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, "invalid token")
				return
			}

			role, ok := claims["role"].(string)
			if !ok {
				response.Forbidden(w, "role claim is missing")
				return
			}
			if _, ok := allowed[role]; !ok {
				response.Forbidden(w, "insufficient privileges")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
