package importer

import (
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type ParseTextRequest struct {
	Text     string `json:"text"`
	UnitCode string `json:"unit_code"`
}

func (r *ParseTextRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Text) {
		errs = append(errs, validator.ValidationError{Field: "text", Message: ErrEmptyInput.Error()})
	}

	r.UnitCode = strings.ToUpper(strings.TrimSpace(r.UnitCode))

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ConfirmRequest struct {
	Candidates []employee.Employee `json:"candidates"`
}

func (r *ConfirmRequest) Validate() error {
	if len(r.Candidates) == 0 {
		return validator.New("candidates", "at least one candidate is required")
	}
	return nil
}

type PreviewResponse struct {
	UnitCode   string              `json:"unit_code"`
	Count      int                 `json:"count"`
	Candidates []employee.Employee `json:"candidates"`
	Warnings   []ParseWarning      `json:"warnings,omitempty"`
}
