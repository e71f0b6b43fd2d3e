package form

import (
	"context"
	"sort"
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

// Binder holds the flat key/value working copy of one employee form.
type Binder struct {
	cfg     settings.SystemSettings
	initial *employee.Employee
	loaded  map[string]string
	values  map[string]string
}

// New starts an edit of initial, or a create in defaultUnit when initial is nil.
func New(cfg settings.SystemSettings, initial *employee.Employee, defaultUnit string) *Binder {
	b := &Binder{cfg: cfg, values: make(map[string]string)}

	if initial != nil {
		rec := initial.Clone()
		b.initial = &rec
		for _, key := range employee.CoreKeys {
			b.values[key] = rec.Value(key)
		}
		for key, value := range rec.CustomFields {
			b.values[key] = value
		}
		b.loaded = b.Values()
		return b
	}

	designation := cfg.DefaultDesignation()
	category, ok := cfg.CategoryFor(designation)
	if !ok {
		category = cfg.DefaultStaffCategory()
	}

	b.values["unitCode"] = defaultUnit
	b.values["status"] = cfg.DefaultStatus()
	b.values["type"] = cfg.DefaultEmployeeType()
	b.values["designation"] = designation
	b.values[employee.StaffCategoryKey] = category
	return b
}

// IsNew reports whether the binder creates a record.
func (b *Binder) IsNew() bool {
	return b.initial == nil
}

func (b *Binder) Get(key string) string {
	return b.values[key]
}

// Values returns a copy of the working map.
func (b *Binder) Values() map[string]string {
	out := make(map[string]string, len(b.values))
	for k, v := range b.values {
		out[k] = v
	}
	return out
}

// Set stores a value. Changing the designation to a mapped one also sets the
// staff category; setting the same designation again does not.
func (b *Binder) Set(key, value string) {
	value = strings.TrimSpace(value)

	if key == "designation" && value != b.values["designation"] {
		if category, ok := b.cfg.CategoryFor(value); ok {
			b.values[employee.StaffCategoryKey] = category
		}
	}
	b.values[key] = value
}

// Apply sets submitted values, designation first so an explicit staff
// category in the same submission wins over the cascade.
func (b *Binder) Apply(values map[string]string) {
	if designation, ok := values["designation"]; ok {
		b.Set("designation", designation)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "designation" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.Set(k, values[k])
	}
}

// Validate checks required fields and input types of enabled fields. On
// edit, values unchanged from the stored record skip the type checks, so
// records written by imports stay editable.
func (b *Binder) Validate() error {
	var errs validator.ValidationErrors
	var missing []string

	for _, f := range b.cfg.EnabledFields() {
		value := b.values[f.Key]
		if value == "" {
			if f.Required {
				missing = append(missing, f.Label)
			}
			continue
		}
		if stored, ok := b.loaded[f.Key]; ok && stored == value {
			continue
		}
		if msg := check(b.cfg, f, value); msg != "" {
			errs = append(errs, validator.ValidationError{Field: f.Key, Message: msg})
		}
	}

	if unit := b.values["unitCode"]; unit != "" && !settings.IsKnownUnit(unit) {
		errs = append(errs, validator.ValidationError{Field: "unitCode", Message: employee.ErrUnknownUnit.Error()})
	}

	if len(missing) > 0 {
		errs = append(validator.ValidationErrors{{
			Field:   "fields",
			Message: "Missing required fields: " + strings.Join(missing, ", "),
		}}, errs...)
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Record splits the working map into core attributes and custom fields.
func (b *Binder) Record() employee.Employee {
	var rec employee.Employee
	for key, value := range b.values {
		if !employee.IsCoreKey(key) && value == "" {
			continue
		}
		rec.SetValue(key, value)
	}

	if b.initial != nil {
		rec.ID = b.initial.ID
	}

	if rec.JoinedDate == "" {
		if f, ok := b.cfg.Field("joinedDate"); ok && f.Enabled {
			rec.JoinedDate = validator.Today()
		}
	}
	return rec
}

// Submit validates and upserts the record.
func (b *Binder) Submit(ctx context.Context, store employee.EmployeeService) (employee.Employee, error) {
	if err := b.Validate(); err != nil {
		return employee.Employee{}, err
	}

	rec := b.Record()
	if err := store.Upsert(ctx, rec, b.IsNew()); err != nil {
		return employee.Employee{}, err
	}
	return rec, nil
}
