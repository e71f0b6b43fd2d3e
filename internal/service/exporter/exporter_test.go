package exporter

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/repository/kvstore"
	employeeservice "github.com/cmlabs-hris/staffsync-backend-go/internal/service/employee"
	settingsservice "github.com/cmlabs-hris/staffsync-backend-go/internal/service/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileName(t *testing.T) {
	day := time.Date(2026, 1, 9, 23, 0, 0, 0, time.UTC)
	assert.Equal(t, "KSRTC_TVM_Staff_2026-01-09.csv", FileName("TVM", day))
	assert.Equal(t, "KSRTC_ALL_Staff_2026-01-09.csv", FileName("ALL", day))
}

func TestWrite_EnabledFieldsOnly(t *testing.T) {
	cfg := settings.Defaults()
	cfg.FieldConfigs = []settings.FieldConfig{
		{Key: "id", Label: "PEN (ID)", Enabled: true},
		{Key: "name", Label: "Full Name", Enabled: true},
		{Key: "phone", Label: "Phone Number", Enabled: false},
		{Key: "email", Label: "Email Address", Enabled: true},
		{Key: "staffCategory", Label: "Staff Category", Enabled: true},
	}

	records := []employee.Employee{
		{ID: "101", Name: `Rajan "Raju" K`, Phone: "9847012345", CustomFields: map[string]string{"staffCategory": "Driver"}},
		{ID: "102", Name: "Suma, P"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg, records))

	want := "PEN (ID),Full Name,Email Address,Staff Category\n" +
		`"101","Rajan ""Raju"" K",,"Driver"` + "\n" +
		`"102","Suma, P",,` + "\n"
	assert.Equal(t, want, buf.String())
}

func TestWrite_NoRecords(t *testing.T) {
	cfg := settings.Defaults()

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, cfg, nil))
	assert.Equal(t, "PEN (ID),Full Name,Unit Code,Status,Designation,Staff Category,Employment Type,Phone Number,Email Address,Joined Date\n", buf.String())
}

func TestExportService_FiltersByUnit(t *testing.T) {
	ctx := context.Background()
	kv := database.NewMemoryKV()
	employeeRepo := kvstore.NewEmployeeRepository(kv)
	require.NoError(t, employeeRepo.SaveAll(ctx, []employee.Employee{
		{ID: "1", Name: "A", UnitCode: "TVM"},
		{ID: "2", Name: "B", UnitCode: "EKM"},
	}))

	svc := NewExportService(
		settingsservice.NewSettingsService(kvstore.NewSettingsRepository(kv)),
		employeeservice.NewEmployeeService(employeeRepo),
	)

	var buf bytes.Buffer
	n, err := svc.Export(ctx, &buf, employee.EmployeeFilter{UnitCode: "TVM"})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Contains(t, buf.String(), `"1","A","TVM"`)
	assert.NotContains(t, buf.String(), `"EKM"`)
}
