package user

import "github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"

type Permission string

const (
	PermissionEmployeeView     Permission = "employee.view"
	PermissionEmployeeEdit     Permission = "employee.edit"
	PermissionEmployeeTransfer Permission = "employee.transfer"
	PermissionEmployeeDelete   Permission = "employee.delete"
	PermissionEmployeeExport   Permission = "employee.export"
	PermissionEmployeeImport   Permission = "employee.import"
	PermissionSettingsManage   Permission = "settings.manage"
)

// HasPermission checks if a role may perform an action under the current
// feature flags. Admins have every permission.
func HasPermission(role Role, permission Permission, features settings.FeatureConfig) bool {
	switch role {
	case RoleAdmin:
		return true
	case RoleUnitHead:
	default:
		return false
	}

	switch permission {
	case PermissionEmployeeView:
		return true
	case PermissionEmployeeEdit, PermissionEmployeeImport:
		return features.AllowUnitEdit
	case PermissionEmployeeTransfer:
		return features.AllowTransfer
	case PermissionEmployeeDelete:
		return features.AllowUnitEdit && features.AllowDelete
	case PermissionEmployeeExport:
		return features.AllowExport
	}
	return false
}
