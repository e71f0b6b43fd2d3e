package user

import (
	"testing"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
)

func TestHasPermission_AdminAlwaysAllowed(t *testing.T) {
	none := settings.FeatureConfig{}
	for _, p := range []Permission{
		PermissionEmployeeView, PermissionEmployeeEdit, PermissionEmployeeTransfer,
		PermissionEmployeeDelete, PermissionEmployeeExport, PermissionEmployeeImport,
		PermissionSettingsManage,
	} {
		assert.True(t, HasPermission(RoleAdmin, p, none), p)
	}
}

func TestHasPermission_UnitHeadFollowsFeatures(t *testing.T) {
	all := settings.DefaultFeatures()
	assert.True(t, HasPermission(RoleUnitHead, PermissionEmployeeEdit, all))
	assert.True(t, HasPermission(RoleUnitHead, PermissionEmployeeDelete, all))
	assert.False(t, HasPermission(RoleUnitHead, PermissionSettingsManage, all))

	noEdit := all
	noEdit.AllowUnitEdit = false
	assert.False(t, HasPermission(RoleUnitHead, PermissionEmployeeEdit, noEdit))
	assert.False(t, HasPermission(RoleUnitHead, PermissionEmployeeImport, noEdit))
	assert.False(t, HasPermission(RoleUnitHead, PermissionEmployeeDelete, noEdit))
	assert.True(t, HasPermission(RoleUnitHead, PermissionEmployeeTransfer, noEdit))

	noDelete := all
	noDelete.AllowDelete = false
	assert.False(t, HasPermission(RoleUnitHead, PermissionEmployeeDelete, noDelete))

	noExport := all
	noExport.AllowExport = false
	assert.False(t, HasPermission(RoleUnitHead, PermissionEmployeeExport, noExport))
	assert.True(t, HasPermission(RoleUnitHead, PermissionEmployeeView, noExport))

	assert.False(t, HasPermission(Role("GUEST"), PermissionEmployeeView, all))
}

func TestUserScope(t *testing.T) {
	admin := User{Role: RoleAdmin, UnitCode: settings.AllUnits}
	head := User{Role: RoleUnitHead, UnitCode: "TVM"}

	assert.Equal(t, settings.AllUnits, admin.Scope(""))
	assert.Equal(t, "EKM", admin.Scope("EKM"))
	assert.Equal(t, "TVM", head.Scope("EKM"))
	assert.True(t, head.CanAccessUnit("TVM"))
	assert.False(t, head.CanAccessUnit("EKM"))
	assert.True(t, admin.CanAccessUnit("EKM"))
}
