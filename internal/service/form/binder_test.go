package form

import (
	"context"
	"errors"
	"testing"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/repository/kvstore"
	employeeservice "github.com/cmlabs-hris/staffsync-backend-go/internal/service/employee"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErrors(t *testing.T, err error) validator.ValidationErrors {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation errors, got %v", err)
	return verrs
}

func TestNew_CreateDefaults(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")

	assert.True(t, b.IsNew())
	assert.Equal(t, "TVM", b.Get("unitCode"))
	assert.Equal(t, "Working", b.Get("status"))
	assert.Equal(t, "Permanent", b.Get("type"))
	assert.Equal(t, "Conductor", b.Get("designation"))
	assert.Equal(t, "Conductor", b.Get("staffCategory"))
}

func TestNew_CreateFallsBackToFirstCategory(t *testing.T) {
	cfg := settings.Defaults()
	cfg.Designations = []string{"Painter Helper"}

	b := New(cfg, nil, "TVM")
	assert.Equal(t, "Civil", b.Get("staffCategory"))
}

func TestNew_EditFlattensCustomFields(t *testing.T) {
	initial := &employee.Employee{
		ID: "500", Name: "Leela", UnitCode: "EKM", Designation: "Clerk",
		CustomFields: map[string]string{"staffCategory": "Ministerial", "blood_group": "O+"},
	}
	b := New(settings.Defaults(), initial, "TVM")

	assert.False(t, b.IsNew())
	assert.Equal(t, "EKM", b.Get("unitCode"))
	assert.Equal(t, "O+", b.Get("blood_group"))
	assert.Equal(t, "Ministerial", b.Get("staffCategory"))

	b.Set("blood_group", "B+")
	assert.Equal(t, "O+", initial.CustomFields["blood_group"])
}

func TestSet_CascadeOnlyOnDesignationChange(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")

	b.Set("designation", "Mechanic")
	assert.Equal(t, "Mechanical", b.Get("staffCategory"))

	b.Set("staffCategory", "Store")
	b.Set("designation", "Mechanic")
	assert.Equal(t, "Store", b.Get("staffCategory"))

	b.Set("designation", "Guard")
	assert.Equal(t, "Store", b.Get("staffCategory"))

	b.Set("designation", "Driver")
	assert.Equal(t, "Driver", b.Get("staffCategory"))
}

func TestApply_ExplicitCategoryWins(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")

	b.Apply(map[string]string{"designation": "Mechanic", "staffCategory": "Store"})
	assert.Equal(t, "Mechanic", b.Get("designation"))
	assert.Equal(t, "Store", b.Get("staffCategory"))
}

func TestValidate_ReportsAllMissingTogether(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")

	verrs := validationErrors(t, b.Validate())
	require.Len(t, verrs, 1)
	assert.Equal(t, "fields", verrs[0].Field)
	assert.Equal(t, "Missing required fields: PEN (ID), Full Name", verrs[0].Message)
}

func TestValidate_DisabledFieldsAreIgnored(t *testing.T) {
	cfg := settings.Defaults()
	for i := range cfg.FieldConfigs {
		if cfg.FieldConfigs[i].Key == "phone" {
			cfg.FieldConfigs[i].Enabled = false
		}
	}

	b := New(cfg, nil, "TVM")
	b.Apply(map[string]string{"id": "1", "name": "A", "phone": "not a phone"})
	assert.NoError(t, b.Validate())
}

func TestValidate_InputTypes(t *testing.T) {
	cfg := settings.Defaults()
	cfg.FieldConfigs = append(cfg.FieldConfigs,
		settings.FieldConfig{Key: "salary", Label: "Salary", Type: settings.InputNumber, Enabled: true},
		settings.FieldConfig{Key: "shift", Label: "Shift", Type: settings.InputSelect, Enabled: true, Options: []string{"Day", "Night"}},
	)

	b := New(cfg, nil, "TVM")
	b.Apply(map[string]string{
		"id":         "1",
		"name":       "A",
		"phone":      "12345",
		"email":      "nope",
		"joinedDate": "15/03/2026",
		"status":     "Vanished",
		"salary":     "lots",
		"shift":      "Evening",
		"unitCode":   "XYZ",
	})

	fields := validationErrors(t, b.Validate()).ToMap()
	for _, key := range []string{"phone", "email", "joinedDate", "status", "salary", "shift", "unitCode"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "fields")

	b.Apply(map[string]string{
		"phone":      "+91 98470 12345",
		"email":      "a@example.com",
		"joinedDate": "2026-03-15",
		"status":     "Retired",
		"salary":     "1200.50",
		"shift":      "Night",
		"unitCode":   "EKM",
	})
	assert.NoError(t, b.Validate())
}

func TestRecord_SplitsCoreAndCustom(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")
	b.Apply(map[string]string{"id": "42", "name": "Hari", "blood_group": "A+", "empty_extra": ""})

	rec := b.Record()
	assert.Equal(t, "42", rec.ID)
	assert.Equal(t, "Hari", rec.Name)
	assert.Equal(t, "TVM", rec.UnitCode)
	assert.Equal(t, validator.Today(), rec.JoinedDate)
	assert.Equal(t, map[string]string{"staffCategory": "Conductor", "blood_group": "A+"}, rec.CustomFields)
}

func TestRecord_NoJoinedDateWhenDisabled(t *testing.T) {
	cfg := settings.Defaults()
	for i := range cfg.FieldConfigs {
		if cfg.FieldConfigs[i].Key == "joinedDate" {
			cfg.FieldConfigs[i].Enabled = false
		}
	}

	rec := New(cfg, nil, "TVM").Record()
	assert.Empty(t, rec.JoinedDate)
}

func TestRecord_EditPinsID(t *testing.T) {
	b := New(settings.Defaults(), &employee.Employee{ID: "77", Name: "Old"}, "TVM")
	b.Set("id", "78")

	assert.Equal(t, "77", b.Record().ID)
}

func TestSubmit(t *testing.T) {
	ctx := context.Background()
	store := employeeservice.NewEmployeeService(kvstore.NewEmployeeRepository(database.NewMemoryKV()))

	create := New(settings.Defaults(), nil, "TVM")
	create.Apply(map[string]string{"id": "900", "name": "Priya", "designation": "Driver"})
	saved, err := create.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "Driver", saved.StaffCategory())

	dup := New(settings.Defaults(), nil, "TVM")
	dup.Apply(map[string]string{"id": "900", "name": "Other"})
	_, err = dup.Submit(ctx, store)
	assert.ErrorIs(t, err, employee.ErrDuplicateKey)

	edit := New(settings.Defaults(), &saved, "TVM")
	edit.Set("name", "Priya S")
	_, err = edit.Submit(ctx, store)
	require.NoError(t, err)

	got, err := store.Get(ctx, "900")
	require.NoError(t, err)
	assert.Equal(t, "Priya S", got.Name)

	all, err := store.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = New(settings.Defaults(), nil, "TVM").Submit(ctx, store)
	validationErrors(t, err)
}

func TestValidate_EditChecksOnlyChangedValues(t *testing.T) {
	initial := &employee.Employee{
		ID: "10234", Name: "John", UnitCode: "TVM", Designation: "Driver",
		Type: "Permanent", Status: "Working", Phone: "0471-2323456",
		CustomFields: map[string]string{"staffCategory": "Transport"},
	}

	b := New(settings.Defaults(), initial, "")
	b.Apply(map[string]string{"name": "John Doe"})
	assert.NoError(t, b.Validate())

	b.Apply(map[string]string{"phone": "12345", "staffCategory": "Astronauts"})
	fields := validationErrors(t, b.Validate()).ToMap()
	assert.Contains(t, fields, "phone")
	assert.Contains(t, fields, "staffCategory")

	b.Apply(map[string]string{"phone": "0471-2323456", "staffCategory": "Transport"})
	assert.NoError(t, b.Validate())
}

func TestValidate_CreateChecksEveryValue(t *testing.T) {
	b := New(settings.Defaults(), nil, "TVM")
	b.Apply(map[string]string{"id": "1", "name": "A", "phone": "0471-2323456"})

	fields := validationErrors(t, b.Validate()).ToMap()
	assert.Contains(t, fields, "phone")
}
