package form

import (
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

// checkFunc validates a non-empty value and returns a message on failure.
type checkFunc func(cfg settings.SystemSettings, field settings.FieldConfig, value string) string

var strategies = map[settings.InputType]checkFunc{
	settings.InputText: func(settings.SystemSettings, settings.FieldConfig, string) string {
		return ""
	},
	settings.InputNumber: func(_ settings.SystemSettings, _ settings.FieldConfig, value string) string {
		if !validator.IsNumber(value) {
			return "must be a number"
		}
		return ""
	},
	settings.InputEmail: func(_ settings.SystemSettings, _ settings.FieldConfig, value string) string {
		if !validator.IsValidEmail(value) {
			return "invalid email format"
		}
		return ""
	},
	settings.InputPhone: func(_ settings.SystemSettings, _ settings.FieldConfig, value string) string {
		if !validator.IsValidPhoneNumber(value) {
			return "invalid phone number"
		}
		return ""
	},
	settings.InputDate: func(_ settings.SystemSettings, _ settings.FieldConfig, value string) string {
		if _, ok := validator.IsValidDate(value); !ok {
			return "must be a date in YYYY-MM-DD format"
		}
		return ""
	},
	settings.InputSelect: func(cfg settings.SystemSettings, field settings.FieldConfig, value string) string {
		options := cfg.Options(field)
		if len(options) > 0 && !validator.IsInSlice(value, options) {
			return "must be one of the configured options"
		}
		return ""
	},
}

func check(cfg settings.SystemSettings, field settings.FieldConfig, value string) string {
	fn, ok := strategies[field.Type]
	if !ok {
		return ""
	}
	return fn(cfg, field, value)
}
