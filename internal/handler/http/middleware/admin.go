package middleware

import (
	"net/http"

	"github.com/chulcheck/attendance-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminRequired rejects requests that do not carry a valid admin session
// token issued by the admin-auth endpoint.
func AdminRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				response.Unauthorized(w, "Admin session required")
				return
			}

			role, ok := claims["role"].(string)
			if !ok || role != "admin" {
				response.Unauthorized(w, "Admin session required")
				return
			}

			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "session" {
				response.Unauthorized(w, "Admin session required")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
