package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidUnitPassword):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Token has been revoked")

	// User domain errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrInvalidRole):
		Unauthorized(w, "Invalid role")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrDuplicateKey):
		Conflict(w, err.Error())
	case errors.Is(err, employee.ErrUnitScope):
		Forbidden(w, "Employee belongs to another unit")

	// Settings domain errors
	case errors.Is(err, settings.ErrUnknownList):
		NotFound(w, "List not found")
	case errors.Is(err, settings.ErrUnknownFeature):
		NotFound(w, "Feature not found")
	case errors.Is(err, settings.ErrFieldNotFound):
		NotFound(w, "Field not found")
	case errors.Is(err, settings.ErrListItemExists),
		errors.Is(err, settings.ErrFieldExists):
		Conflict(w, err.Error())
	case errors.Is(err, settings.ErrFieldLocked),
		errors.Is(err, settings.ErrSystemField):
		BadRequest(w, err.Error(), nil)

	// Import domain errors
	case errors.Is(err, importer.ErrMissingAPIKey):
		ServiceUnavailable(w, "AI import is not configured")
	case errors.Is(err, importer.ErrExternalService):
		BadGateway(w, "Failed to process text. Ensure API Key is set and text is readable.")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
