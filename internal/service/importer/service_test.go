package importer

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/repository/kvstore"
	employeeservice "github.com/cmlabs-hris/staffsync-backend-go/internal/service/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/form"
	settingsservice "github.com/cmlabs-hris/staffsync-backend-go/internal/service/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	result []importer.ParsedEmployee
	err    error
	calls  int
}

func (f *fakeParser) ParseEmployees(ctx context.Context, text string) ([]importer.ParsedEmployee, error) {
	f.calls++
	return f.result, f.err
}

var fixedNow = time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T, parser importer.TextParser) (*ImportServiceImpl, employee.EmployeeService) {
	t.Helper()
	kv := database.NewMemoryKV()
	settingsSvc := settingsservice.NewSettingsService(kvstore.NewSettingsRepository(kv))
	employeeSvc := employeeservice.NewEmployeeService(kvstore.NewEmployeeRepository(kv))

	svc := NewImportService(settingsSvc, employeeSvc, parser).(*ImportServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	return svc, employeeSvc
}

func requireValidation(t *testing.T, err error, message string) {
	t.Helper()
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs), "expected validation error, got %v", err)
	assert.Equal(t, message, verrs[0].Message)
}

func TestParseCSV_SkipsBlankNames(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	got, err := svc.ParseCSV(context.Background(), []byte("Name,Designation\nJohn Doe,Driver\n,Conductor"), "TVM")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].Name)
	assert.Equal(t, "Driver", got[0].Designation)
	assert.Equal(t, "Driver", got[0].StaffCategory())
	assert.Equal(t, "TVM", got[0].UnitCode)
	assert.Equal(t, "Permanent", got[0].Type)
	assert.Equal(t, "Working", got[0].Status)
	assert.Equal(t, "2026-03-15", got[0].JoinedDate)
	assert.Equal(t, fmt.Sprintf("CSV-%d-1", fixedNow.UnixMilli()), got[0].ID)
}

func TestParseCSV_QuotedDelimiter(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := "PEN,Name,Designation\n\"10234\",\"Doe, John\",\"Driver\"\n\"10235\",\"Menon \"\"Kutty\"\"\",Conductor"
	got, err := svc.ParseCSV(context.Background(), []byte(data), "TVM")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "10234", got[0].ID)
	assert.Equal(t, "Doe, John", got[0].Name)
	assert.Equal(t, `Menon "Kutty"`, got[1].Name)
}

func TestParseCSV_TemplateColumns(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := importer.TemplateHeader + "\n" +
		"20001,Asha,EKM,Mechanic,Badali,On Leave,9847000001,asha@example.com\n" +
		"20002,Binu,NOPE,Astronaut,Contract,Dancing,,\n"
	got, err := svc.ParseCSV(context.Background(), []byte(data), "tvm")
	require.NoError(t, err)
	require.Len(t, got, 2)

	asha := got[0]
	assert.Equal(t, "20001", asha.ID)
	assert.Equal(t, "EKM", asha.UnitCode)
	assert.Equal(t, "Mechanic", asha.Designation)
	assert.Equal(t, "Mechanical", asha.StaffCategory())
	assert.Equal(t, "Badali", asha.Type)
	assert.Equal(t, "On Leave", asha.Status)
	assert.Equal(t, "9847000001", asha.Phone)
	assert.Equal(t, "asha@example.com", asha.Email)

	binu := got[1]
	assert.Equal(t, "TVM", binu.UnitCode)
	assert.Equal(t, "Conductor", binu.Designation)
	assert.Equal(t, "Conductor", binu.StaffCategory())
	assert.Equal(t, "Permanent", binu.Type)
	assert.Equal(t, "Working", binu.Status)
}

func TestParseCSV_ExplicitCategoryWins(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	got, err := svc.ParseCSV(context.Background(), []byte("Staff Name,Role,Staff Category\nRavi,Driver,Line Staff"), "TVM")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Ravi", got[0].Name)
	assert.Equal(t, "Line Staff", got[0].StaffCategory())
}

func TestParseCSV_StripsBOM(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name,Designation\nJohn,Driver")...)
	got, err := svc.ParseCSV(context.Background(), data, "TVM")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John", got[0].Name)
}

func TestParseCSV_Errors(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})
	ctx := context.Background()

	_, err := svc.ParseCSV(ctx, []byte("Name,Designation\n"), "TVM")
	requireValidation(t, err, importer.ErrEmptyInput.Error())

	_, err = svc.ParseCSV(ctx, []byte(""), "TVM")
	requireValidation(t, err, importer.ErrEmptyInput.Error())

	_, err = svc.ParseCSV(ctx, []byte("Designation,Phone\nDriver,9847012345"), "TVM")
	requireValidation(t, err, importer.ErrMissingColumn.Error())

	_, err = svc.ParseCSV(ctx, []byte("Name,Designation\n,Driver\nsolo"), "TVM")
	requireValidation(t, err, importer.ErrNoRows.Error())

	_, err = svc.ParseCSV(ctx, []byte("Name,Designation\nJohn,Driver"), "ALL")
	requireValidation(t, err, employee.ErrUnknownUnit.Error())
}

func TestParseText_AppliesDefaults(t *testing.T) {
	parser := &fakeParser{result: []importer.ParsedEmployee{
		{Name: "Rajan", Designation: "Driver", Type: "Permanent", PEN: "30001", Phone: "9847012345"},
		{Name: "Suma", Designation: "Pilot", Type: "Badali"},
		{Name: "Anil"},
	}}
	svc, _ := newTestService(t, parser)

	got, err := svc.ParseText(context.Background(), "Rajan driver 30001, Suma pilot badali, Anil", "TVM")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "30001", got[0].ID)
	assert.Equal(t, "Driver", got[0].StaffCategory())
	assert.Equal(t, "9847012345", got[0].Phone)

	assert.Equal(t, fmt.Sprintf("TMP-%d-1", fixedNow.UnixMilli()), got[1].ID)
	assert.Equal(t, "Conductor", got[1].Designation)
	assert.Equal(t, "Conductor", got[1].StaffCategory())
	assert.Equal(t, "Badali", got[1].Type)

	assert.Equal(t, "Permanent", got[2].Type)
	for _, c := range got {
		assert.Equal(t, "TVM", c.UnitCode)
		assert.Equal(t, "Working", c.Status)
		assert.Equal(t, "2026-03-15", c.JoinedDate)
	}
}

func TestParseText_Errors(t *testing.T) {
	ctx := context.Background()

	parser := &fakeParser{}
	svc, _ := newTestService(t, parser)
	_, err := svc.ParseText(ctx, "   ", "TVM")
	requireValidation(t, err, importer.ErrEmptyInput.Error())
	assert.Zero(t, parser.calls)

	_, err = svc.ParseText(ctx, "some staff", "TVM")
	requireValidation(t, err, importer.ErrNoRows.Error())

	svc, _ = newTestService(t, &fakeParser{err: importer.ErrMissingAPIKey})
	_, err = svc.ParseText(ctx, "some staff", "TVM")
	assert.ErrorIs(t, err, importer.ErrMissingAPIKey)

	svc, _ = newTestService(t, &fakeParser{err: errors.New("quota exceeded")})
	_, err = svc.ParseText(ctx, "some staff", "TVM")
	assert.ErrorIs(t, err, importer.ErrExternalService)
}

func TestValidateUpload(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	assert.NoError(t, svc.ValidateUpload("staff.csv", "application/octet-stream", 100))
	assert.NoError(t, svc.ValidateUpload("upload", "text/csv; charset=utf-8", 100))
	assert.NoError(t, svc.ValidateUpload("STAFF.CSV", "", importer.MaxUploadSize))

	requireValidation(t, svc.ValidateUpload("staff.xlsx", "application/vnd.ms-excel", 100), importer.ErrInvalidFileType.Error())
	requireValidation(t, svc.ValidateUpload("staff.csv", "text/csv", importer.MaxUploadSize+1), importer.ErrFileTooLarge.Error())
}

func TestTemplate(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	assert.Equal(t,
		"PEN,Name,Unit,Designation,EmploymentType,Status,Phone,Email\n10555,John Doe,TVM,Driver,Permanent,Working,9847012345,john@example.com",
		string(svc.Template()))

	got, err := svc.ParseCSV(context.Background(), svc.Template(), "EKM")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "10555", got[0].ID)
	assert.Equal(t, "TVM", got[0].UnitCode)
}

func TestConfirm_CommitsThroughBulkAdd(t *testing.T) {
	ctx := context.Background()
	svc, employees := newTestService(t, &fakeParser{})

	candidates, err := svc.ParseCSV(ctx, []byte("PEN,Name\n1,A\n2,B\n1,C"), "TVM")
	require.NoError(t, err)

	result, err := svc.Confirm(ctx, candidates)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Added)
	assert.Len(t, result.Errors, 1)

	all, err := employees.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Confirm(ctx, nil)
	var verrs validator.ValidationErrors
	assert.True(t, errors.As(err, &verrs))
}

func TestParseCSV_UnterminatedQuoteDropsOnlyItsRow(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := "Name,Designation\n\"John,Driver\nJane,Conductor\nBob,Driver"
	result, err := svc.ParseCSVWithWarnings(context.Background(), []byte(data), "TVM")
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)
	assert.Equal(t, "Jane", result.Candidates[0].Name)
	assert.Equal(t, "Bob", result.Candidates[1].Name)
	assert.Equal(t, fmt.Sprintf("CSV-%d-2", fixedNow.UnixMilli()), result.Candidates[0].ID)

	require.Len(t, result.Warnings, 1)
	assert.Equal(t, 1, result.Warnings[0].Row)
	assert.Equal(t, "unterminated quoted field", result.Warnings[0].Message)
}

func TestParseCSV_QuotedFieldAcrossLines(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := "Name,Designation\r\n\"Anil\r\nKumar\",Driver\r\nJane,Conductor\r\n"
	got, err := svc.ParseCSV(context.Background(), []byte(data), "TVM")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Anil\nKumar", got[0].Name)
	assert.Equal(t, "Jane", got[1].Name)
}

func TestParseCSV_ReportsSkippedRows(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	data := "Name,Designation\nJohn,Driver\n,Conductor\nsolo\nJane,Clerk"
	result, err := svc.ParseCSVWithWarnings(context.Background(), []byte(data), "TVM")
	require.NoError(t, err)
	require.Len(t, result.Candidates, 2)

	assert.Equal(t, []importer.ParseWarning{
		{Row: 2, Message: "name is empty"},
		{Row: 3, Message: "row has fewer than two columns"},
	}, result.Warnings)
}

func TestParseCSV_CleanFileHasNoWarnings(t *testing.T) {
	svc, _ := newTestService(t, &fakeParser{})

	result, err := svc.ParseCSVWithWarnings(context.Background(), []byte("Name,Designation\nJohn,Driver"), "TVM")
	require.NoError(t, err)
	assert.NotNil(t, result.Warnings)
	assert.Empty(t, result.Warnings)
}

func TestConfirm_ImportedRecordStaysEditable(t *testing.T) {
	svc, store := newTestService(t, &fakeParser{})
	ctx := context.Background()

	candidates, err := svc.ParseCSV(ctx, []byte("PEN,Name,Designation,Category,Phone\n10234,John,Driver,Transport,0471-2323456"), "TVM")
	require.NoError(t, err)

	result, err := svc.Confirm(ctx, candidates)
	require.NoError(t, err)
	require.Equal(t, 1, result.Added)

	stored, err := store.Get(ctx, "10234")
	require.NoError(t, err)
	cfg, err := svc.settingsService.Load(ctx)
	require.NoError(t, err)

	b := form.New(cfg, &stored, "")
	b.Apply(map[string]string{"name": "John Doe"})
	saved, err := b.Submit(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, "John Doe", saved.Name)
	assert.Equal(t, "Transport", saved.StaffCategory())
	assert.Equal(t, "0471-2323456", saved.Phone)
}
