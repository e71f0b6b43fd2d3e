package settings

type InputType string

const (
	InputText   InputType = "text"
	InputNumber InputType = "number"
	InputEmail  InputType = "email"
	InputPhone  InputType = "tel"
	InputDate   InputType = "date"
	InputSelect InputType = "select"
)

// Valid reports whether t is one of the supported input types.
func (t InputType) Valid() bool {
	switch t {
	case InputText, InputNumber, InputEmail, InputPhone, InputDate, InputSelect:
		return true
	}
	return false
}

// ListKey names one of the global enumerated lists.
type ListKey string

const (
	ListDesignations    ListKey = "designations"
	ListEmployeeTypes   ListKey = "employeeTypes"
	ListStatuses        ListKey = "statuses"
	ListStaffCategories ListKey = "staffCategories"
)

type FieldConfig struct {
	Key      string    `json:"key"`
	Label    string    `json:"label"`
	Type     InputType `json:"type"`
	Required bool      `json:"required"`
	Enabled  bool      `json:"enabled"`
	IsSystem bool      `json:"isSystem"`
	IsLocked bool      `json:"isLocked"`
	Options  []string  `json:"options,omitempty"`
	ListKey  ListKey   `json:"listKey,omitempty"`
}

type FeatureConfig struct {
	AllowTransfer bool `json:"allowTransfer"`
	AllowDelete   bool `json:"allowDelete"`
	AllowExport   bool `json:"allowExport"`
	AllowUnitEdit bool `json:"allowUnitEdit"`
}

type SystemSettings struct {
	Designations       []string          `json:"designations"`
	EmployeeTypes      []string          `json:"employeeTypes"`
	Statuses           []string          `json:"statuses"`
	StaffCategories    []string          `json:"staffCategories"`
	DesignationMapping map[string]string `json:"designationMapping"`
	FieldConfigs       []FieldConfig     `json:"fieldConfigs"`
	Features           FeatureConfig     `json:"features"`
}

// List returns the named list, or nil and false for an unknown key.
func (s SystemSettings) List(key ListKey) ([]string, bool) {
	switch key {
	case ListDesignations:
		return s.Designations, true
	case ListEmployeeTypes:
		return s.EmployeeTypes, true
	case ListStatuses:
		return s.Statuses, true
	case ListStaffCategories:
		return s.StaffCategories, true
	}
	return nil, false
}

// SetList replaces the named list. It reports false for an unknown key.
func (s *SystemSettings) SetList(key ListKey, values []string) bool {
	switch key {
	case ListDesignations:
		s.Designations = values
	case ListEmployeeTypes:
		s.EmployeeTypes = values
	case ListStatuses:
		s.Statuses = values
	case ListStaffCategories:
		s.StaffCategories = values
	default:
		return false
	}
	return true
}

// Field returns the field definition with the given key.
func (s SystemSettings) Field(key string) (FieldConfig, bool) {
	for _, f := range s.FieldConfigs {
		if f.Key == key {
			return f, true
		}
	}
	return FieldConfig{}, false
}

// EnabledFields returns enabled field definitions in schema order.
func (s SystemSettings) EnabledFields() []FieldConfig {
	fields := make([]FieldConfig, 0, len(s.FieldConfigs))
	for _, f := range s.FieldConfigs {
		if f.Enabled {
			fields = append(fields, f)
		}
	}
	return fields
}

// Options returns the allowed values of a select field: its own options, or
// the global list it references.
func (s SystemSettings) Options(f FieldConfig) []string {
	if len(f.Options) > 0 {
		return f.Options
	}
	if f.ListKey != "" {
		list, _ := s.List(f.ListKey)
		return list
	}
	return nil
}

// CategoryFor returns the staff category mapped to a designation.
func (s SystemSettings) CategoryFor(designation string) (string, bool) {
	category, ok := s.DesignationMapping[designation]
	if !ok || category == "" {
		return "", false
	}
	return category, true
}

func first(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[0]
}

func (s SystemSettings) DefaultDesignation() string   { return first(s.Designations) }
func (s SystemSettings) DefaultEmployeeType() string  { return first(s.EmployeeTypes) }
func (s SystemSettings) DefaultStatus() string        { return first(s.Statuses) }
func (s SystemSettings) DefaultStaffCategory() string { return first(s.StaffCategories) }

// Clone returns a deep copy.
func (s SystemSettings) Clone() SystemSettings {
	out := s
	out.Designations = cloneStrings(s.Designations)
	out.EmployeeTypes = cloneStrings(s.EmployeeTypes)
	out.Statuses = cloneStrings(s.Statuses)
	out.StaffCategories = cloneStrings(s.StaffCategories)
	if s.DesignationMapping != nil {
		out.DesignationMapping = make(map[string]string, len(s.DesignationMapping))
		for k, v := range s.DesignationMapping {
			out.DesignationMapping[k] = v
		}
	}
	if s.FieldConfigs != nil {
		out.FieldConfigs = make([]FieldConfig, len(s.FieldConfigs))
		for i, f := range s.FieldConfigs {
			f.Options = cloneStrings(f.Options)
			out.FieldConfigs[i] = f
		}
	}
	return out
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
