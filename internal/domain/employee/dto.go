package employee

import (
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type BulkAddResult struct {
	Added  int      `json:"added"`
	Errors []string `json:"errors"`
}

type BulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (r *BulkDeleteRequest) Validate() error {
	if len(r.IDs) == 0 {
		return validator.New("ids", "at least one id is required")
	}
	return nil
}

type TransferRequest struct {
	IDs      []string `json:"ids"`
	UnitCode string   `json:"unit_code"`
}

func (r *TransferRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "ids",
			Message: "at least one id is required",
		})
	}

	r.UnitCode = strings.ToUpper(strings.TrimSpace(r.UnitCode))
	if validator.IsEmpty(r.UnitCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "unit_code",
			Message: "unit_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TransferResponse struct {
	Transferred int    `json:"transferred"`
	UnitCode    string `json:"unit_code"`
}

// EmployeeFilter narrows a listing. Empty or "ALL" values do not filter.
type EmployeeFilter struct {
	UnitCode string
	Search   string
	Type     string
}

type Stats struct {
	Total     int `json:"total"`
	Permanent int `json:"permanent"`
	Badali    int `json:"badali"`
}
