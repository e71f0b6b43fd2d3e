package employee

type Employee struct {
	ID           string            `json:"id"` // PEN
	Name         string            `json:"name"`
	Designation  string            `json:"designation"`
	Type         string            `json:"type"` // employment type
	Status       string            `json:"status"`
	UnitCode     string            `json:"unitCode"`
	Phone        string            `json:"phone"`
	Email        string            `json:"email,omitempty"`
	JoinedDate   string            `json:"joinedDate"`
	CustomFields map[string]string `json:"customFields,omitempty"`
}

const (
	EmploymentTypePermanent = "Permanent"
	EmploymentTypeBadali    = "Badali"
)

const StatusTransferred = "Transferred"

// StaffCategoryKey is the extension field holding the staff category.
const StaffCategoryKey = "staffCategory"

// CoreKeys are the field keys stored on Employee itself; every other schema
// key lives in CustomFields.
var CoreKeys = []string{"id", "name", "unitCode", "status", "type", "designation", "phone", "email", "joinedDate"}

func IsCoreKey(key string) bool {
	for _, k := range CoreKeys {
		if k == key {
			return true
		}
	}
	return false
}

// Value returns the value stored under a schema key.
func (e Employee) Value(key string) string {
	switch key {
	case "id":
		return e.ID
	case "name":
		return e.Name
	case "unitCode":
		return e.UnitCode
	case "status":
		return e.Status
	case "type":
		return e.Type
	case "designation":
		return e.Designation
	case "phone":
		return e.Phone
	case "email":
		return e.Email
	case "joinedDate":
		return e.JoinedDate
	}
	return e.CustomFields[key]
}

// SetValue stores a value under a schema key.
func (e *Employee) SetValue(key, value string) {
	switch key {
	case "id":
		e.ID = value
	case "name":
		e.Name = value
	case "unitCode":
		e.UnitCode = value
	case "status":
		e.Status = value
	case "type":
		e.Type = value
	case "designation":
		e.Designation = value
	case "phone":
		e.Phone = value
	case "email":
		e.Email = value
	case "joinedDate":
		e.JoinedDate = value
	default:
		if e.CustomFields == nil {
			e.CustomFields = make(map[string]string)
		}
		e.CustomFields[key] = value
	}
}

// StaffCategory returns the staff category extension value.
func (e Employee) StaffCategory() string {
	return e.CustomFields[StaffCategoryKey]
}

// Clone returns a copy that shares no mutable state with e.
func (e Employee) Clone() Employee {
	out := e
	if e.CustomFields != nil {
		out.CustomFields = make(map[string]string, len(e.CustomFields))
		for k, v := range e.CustomFields {
			out.CustomFields[k] = v
		}
	}
	return out
}
