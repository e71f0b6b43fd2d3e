package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if id, _ := jwt.TokenID(claims); id == "" || jwtService.IsTokenRevoked(id) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			if _, err := jwt.UserFromClaims(claims); err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
