package settings

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
)

// storedSettings mirrors settings.SystemSettings with every key optional so
// absent keys can be told apart from empty ones.
type storedSettings struct {
	Designations       *[]string          `json:"designations"`
	EmployeeTypes      *[]string          `json:"employeeTypes"`
	Statuses           *[]string          `json:"statuses"`
	StaffCategories    *[]string          `json:"staffCategories"`
	DesignationMapping *map[string]string `json:"designationMapping"`
	FieldConfigs       *[]json.RawMessage `json:"fieldConfigs"`
	Features           json.RawMessage    `json:"features"`
}

// Merge decodes a stored settings blob over the compiled defaults. Stored
// values win where present; anything missing is backfilled from the default.
func Merge(data []byte) (settings.SystemSettings, error) {
	merged := settings.Defaults()

	var stored storedSettings
	if err := json.Unmarshal(data, &stored); err != nil {
		return settings.SystemSettings{}, fmt.Errorf("%w: %v", settings.ErrMalformedSetting, err)
	}

	if stored.Designations != nil {
		merged.Designations = *stored.Designations
	}
	if stored.EmployeeTypes != nil {
		merged.EmployeeTypes = *stored.EmployeeTypes
	}
	if stored.Statuses != nil {
		merged.Statuses = *stored.Statuses
	}
	if stored.StaffCategories != nil {
		merged.StaffCategories = *stored.StaffCategories
	}
	if stored.DesignationMapping != nil && *stored.DesignationMapping != nil {
		merged.DesignationMapping = *stored.DesignationMapping
	}

	if len(stored.Features) > 0 && string(stored.Features) != "null" {
		features := settings.DefaultFeatures()
		if err := json.Unmarshal(stored.Features, &features); err != nil {
			return settings.SystemSettings{}, fmt.Errorf("%w: features: %v", settings.ErrMalformedSetting, err)
		}
		merged.Features = features
	}

	if stored.FieldConfigs != nil {
		fields, err := mergeFields(*stored.FieldConfigs)
		if err != nil {
			return settings.SystemSettings{}, err
		}
		merged.FieldConfigs = fields
	}

	return merged, nil
}

// mergeFields decodes each stored field over its default definition and
// appends default system fields the stored list lacks.
func mergeFields(raws []json.RawMessage) ([]settings.FieldConfig, error) {
	fields := make([]settings.FieldConfig, 0, len(raws))
	seen := make(map[string]bool, len(raws))

	for i, raw := range raws {
		var entry struct {
			Key string `json:"key"`
		}
		if err := json.Unmarshal(raw, &entry); err != nil {
			return nil, fmt.Errorf("%w: fieldConfigs[%d]: %v", settings.ErrMalformedSetting, i, err)
		}
		if entry.Key == "" || seen[entry.Key] {
			slog.Warn("Dropping stored field config", "index", i, "key", entry.Key)
			continue
		}

		field, ok := settings.DefaultField(entry.Key)
		if !ok {
			field = settings.FieldConfig{}
		}
		if err := json.Unmarshal(raw, &field); err != nil {
			return nil, fmt.Errorf("%w: fieldConfigs[%d]: %v", settings.ErrMalformedSetting, i, err)
		}
		if field.IsSystem && field.IsLocked {
			field.Enabled = true
		}

		seen[field.Key] = true
		fields = append(fields, field)
	}

	for _, def := range settings.Defaults().FieldConfigs {
		if def.IsSystem && !seen[def.Key] {
			fields = append(fields, def)
		}
	}

	return fields, nil
}
