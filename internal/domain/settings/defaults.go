package settings

// ==========================================
// DEFAULT LISTS
// ==========================================

var defaultDesignations = []string{
	"Conductor", "Driver", "Inspector", "Mechanic", "Station Master", "Clerk", "Guard",
	"Draftsman", "AE(Civil)", "AO", "ATO", "AWM", "DE", "DTO", "LO", "ED", "FA & CAO",
	"Stores Officer", "Welfare Officer", "Works Manager", "HVS", "VS", "ADE", "Blacksmith",
	"Chargeman", "Coach Builder", "Electrician", "Garage Mazdoor", "Glass Cutter", "Painter",
	"Pump Operator", "Tinker", "Tyre Inspector", "Tyre Retreader", "Upholsterer", "Welder",
	"Assistant", "Binder", "FC Supdt", "Peon", "Steno", "Supdt", "Sweeper", "Sweeper Cum SCA",
	"Ticket Issuer", "Typist", "Security", "ASK", "Store Assistant", "Store Issuer", "Store Keeper",
}

var defaultEmployeeTypes = []string{"Permanent", "Badali"}

var defaultStatuses = []string{"Working", "On Leave", "Suspended", "Retired", "Transferred"}

var defaultStaffCategories = []string{
	"Civil", "Conductor", "Driver", "Higher Division", "Line Staff", "Mechanical",
	"Ministerial", "Security All", "Store",
}

var defaultDesignationMapping = map[string]string{
	"Draftsman":       "Civil",
	"Conductor":       "Conductor",
	"Driver":          "Driver",
	"AE(Civil)":       "Higher Division",
	"AO":              "Higher Division",
	"ATO":             "Higher Division",
	"AWM":             "Higher Division",
	"DE":              "Higher Division",
	"DTO":             "Higher Division",
	"LO":              "Higher Division",
	"ED":              "Higher Division",
	"FA & CAO":        "Higher Division",
	"Stores Officer":  "Higher Division",
	"Welfare Officer": "Higher Division",
	"Works Manager":   "Higher Division",
	"HVS":             "Line Staff",
	"Inspector":       "Line Staff",
	"Station Master":  "Line Staff",
	"SM":              "Line Staff",
	"VS":              "Line Staff",
	"ADE":             "Mechanical",
	"Blacksmith":      "Mechanical",
	"Chargeman":       "Mechanical",
	"Coach Builder":   "Mechanical",
	"Electrician":     "Mechanical",
	"Garage Mazdoor":  "Mechanical",
	"Glass Cutter":    "Mechanical",
	"Mechanic":        "Mechanical",
	"Painter":         "Mechanical",
	"Pump Operator":   "Mechanical",
	"Tinker":          "Mechanical",
	"Tyre Inspector":  "Mechanical",
	"Tyre Retreader":  "Mechanical",
	"Upholsterer":     "Mechanical",
	"Welder":          "Mechanical",
	"Assistant":       "Ministerial",
	"Binder":          "Ministerial",
	"Clerk":           "Ministerial",
	"FC Supdt":        "Ministerial",
	"Peon":            "Ministerial",
	"Steno":           "Ministerial",
	"Supdt":           "Ministerial",
	"Sweeper":         "Ministerial",
	"Sweeper Cum SCA": "Ministerial",
	"Ticket Issuer":   "Ministerial",
	"Typist":          "Ministerial",
	"Security":        "Security All",
	"ASK":             "Store",
	"Store Assistant": "Store",
	"Store Issuer":    "Store",
	"Store Keeper":    "Store",
}

// ==========================================
// DEFAULT FIELDS AND FEATURES
// ==========================================

var defaultFields = []FieldConfig{
	{Key: "id", Label: "PEN (ID)", Type: InputText, Required: true, Enabled: true, IsSystem: true, IsLocked: true},
	{Key: "name", Label: "Full Name", Type: InputText, Required: true, Enabled: true, IsSystem: true, IsLocked: true},
	{Key: "unitCode", Label: "Unit Code", Type: InputText, Required: true, Enabled: true, IsSystem: true, IsLocked: true},
	{Key: "status", Label: "Status", Type: InputSelect, Required: true, Enabled: true, IsSystem: true, ListKey: ListStatuses},
	{Key: "designation", Label: "Designation", Type: InputSelect, Required: true, Enabled: true, IsSystem: true, ListKey: ListDesignations},
	{Key: "staffCategory", Label: "Staff Category", Type: InputSelect, Required: true, Enabled: true, IsSystem: true, ListKey: ListStaffCategories},
	{Key: "type", Label: "Employment Type", Type: InputSelect, Required: true, Enabled: true, IsSystem: true, ListKey: ListEmployeeTypes},
	{Key: "phone", Label: "Phone Number", Type: InputPhone, Enabled: true, IsSystem: true},
	{Key: "email", Label: "Email Address", Type: InputEmail, Enabled: true, IsSystem: true},
	{Key: "joinedDate", Label: "Joined Date", Type: InputDate, Enabled: true, IsSystem: true},
}

var defaultFeatures = FeatureConfig{
	AllowTransfer: true,
	AllowDelete:   true,
	AllowExport:   true,
	AllowUnitEdit: true,
}

// Defaults returns a fresh copy of the compiled-in settings.
func Defaults() SystemSettings {
	return SystemSettings{
		Designations:       defaultDesignations,
		EmployeeTypes:      defaultEmployeeTypes,
		Statuses:           defaultStatuses,
		StaffCategories:    defaultStaffCategories,
		DesignationMapping: defaultDesignationMapping,
		FieldConfigs:       defaultFields,
		Features:           defaultFeatures,
	}.Clone()
}

// DefaultFeatures returns the compiled-in feature flags.
func DefaultFeatures() FeatureConfig {
	return defaultFeatures
}

// DefaultField returns the compiled-in definition for a key.
func DefaultField(key string) (FieldConfig, bool) {
	for _, f := range defaultFields {
		if f.Key == key {
			f.Options = cloneStrings(f.Options)
			return f, true
		}
	}
	return FieldConfig{}, false
}
