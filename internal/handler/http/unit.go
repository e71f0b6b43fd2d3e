package http

import (
	"net/http"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
)

// ListUnits returns the known depot codes for the login picker.
func ListUnits(w http.ResponseWriter, r *http.Request) {
	units := settings.UnitCodes()
	response.SuccessWithMeta(w, units, &response.Meta{TotalItems: len(units)})
}
