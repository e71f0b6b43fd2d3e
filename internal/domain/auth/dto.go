package auth

import (
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

const (
	LoginModeUnit  = "unit"
	LoginModeAdmin = "admin"
)

type LoginRequest struct {
	Mode     string `json:"mode"`
	Username string `json:"username"`
	UnitCode string `json:"unit_code"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	r.Mode = strings.ToLower(strings.TrimSpace(r.Mode))
	if r.Mode == "" {
		r.Mode = LoginModeUnit
	}

	switch r.Mode {
	case LoginModeUnit:
		r.UnitCode = strings.ToUpper(strings.TrimSpace(r.UnitCode))
		if r.UnitCode == "" {
			errs = append(errs, validator.ValidationError{
				Field:   "unit_code",
				Message: "Please select a Unit",
			})
		}
	case LoginModeAdmin:
		r.Username = strings.TrimSpace(r.Username)
		if validator.IsEmpty(r.Username) {
			errs = append(errs, validator.ValidationError{
				Field:   "username",
				Message: "username is required",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "mode",
			Message: "mode must be 'unit' or 'admin'",
		})
	}

	if r.Password == "" {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresIn int64     `json:"access_token_expires_in"`
	User                 user.User `json:"user"`
}
