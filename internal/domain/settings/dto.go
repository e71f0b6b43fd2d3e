package settings

import (
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type AddListItemRequest struct {
	Item string `json:"item"`
}

func (r *AddListItemRequest) Validate() error {
	r.Item = strings.TrimSpace(r.Item)
	if r.Item == "" {
		return validator.New("item", "item is required")
	}
	return nil
}

type SetMappingRequest struct {
	Designation string `json:"designation"`
	Category    string `json:"category"`
}

func (r *SetMappingRequest) Validate() error {
	r.Designation = strings.TrimSpace(r.Designation)
	r.Category = strings.TrimSpace(r.Category)
	if r.Designation == "" {
		return validator.New("designation", "designation is required")
	}
	return nil
}

type AddFieldRequest struct {
	Label string    `json:"label"`
	Type  InputType `json:"type"`
}

func (r *AddFieldRequest) Validate() error {
	var errs validator.ValidationErrors
	r.Label = strings.TrimSpace(r.Label)
	if r.Label == "" {
		errs = append(errs, validator.ValidationError{Field: "label", Message: "label is required"})
	}
	if r.Type == "" {
		r.Type = InputText
	}
	if !r.Type.Valid() {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unsupported input type"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
