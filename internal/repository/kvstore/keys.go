package kvstore

// Storage keys carry a schema version. A breaking change bumps the key and
// relies on the settings default-merge for everything else.
const (
	EmployeesKey = "ksrtc_employees_v1"
	SettingsKey  = "ksrtc_settings_v3"
)
