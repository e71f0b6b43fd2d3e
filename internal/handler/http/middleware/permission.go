package middleware

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// RequirePermission checks the permission against the live feature flags,
// so toggling a feature takes effect without new tokens.
func RequirePermission(settingsService settings.SettingsService, permission user.Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			u, err := jwt.UserFromClaims(claims)
			if err != nil {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s'", permission))
				return
			}

			cfg, err := settingsService.Load(r.Context())
			if err != nil {
				response.HandleError(w, err)
				return
			}

			if !user.HasPermission(u.Role, permission, cfg.Features) {
				response.Forbidden(w, fmt.Sprintf("Insufficient permissions: required '%s', but user role is '%s'", permission, u.Role))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
