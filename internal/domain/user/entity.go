package user

import "github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"

type Role string

const (
	RoleAdmin    Role = "ADMIN"     // Headquarters - every unit
	RoleUnitHead Role = "UNIT_HEAD" // One unit, gated by feature flags
)

// User is the authenticated principal carried in the access token.
type User struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
	UnitCode string `json:"unit_code"`
}

// IsAdmin checks if user is an administrator
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Scope returns the unit a listing is restricted to. Admins may pick any
// unit; unit heads are always pinned to their own.
func (u User) Scope(requested string) string {
	if !u.IsAdmin() {
		return u.UnitCode
	}
	if requested == "" {
		return settings.AllUnits
	}
	return requested
}

// CanAccessUnit checks whether records of unitCode are visible to the user.
func (u User) CanAccessUnit(unitCode string) bool {
	return u.IsAdmin() || u.UnitCode == unitCode
}
