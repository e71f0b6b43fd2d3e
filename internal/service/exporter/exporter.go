package exporter

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
)

const ContentType = "text/csv; charset=utf-8"

// FileName returns the download name for a unit export on the given day.
func FileName(unitCode string, day time.Time) string {
	return fmt.Sprintf("KSRTC_%s_Staff_%s.csv", unitCode, day.Format("2006-01-02"))
}

func quote(v string) string {
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

func headerCell(label string) string {
	if strings.ContainsAny(label, ",\"\r\n") {
		return quote(label)
	}
	return label
}

// Write renders records as CSV restricted to the enabled fields. Every
// non-empty value is quoted; empty values are left blank.
func Write(w io.Writer, cfg settings.SystemSettings, records []employee.Employee) error {
	fields := cfg.EnabledFields()
	bw := bufio.NewWriter(w)

	cells := make([]string, len(fields))
	for i, f := range fields {
		cells[i] = headerCell(f.Label)
	}
	if _, err := bw.WriteString(strings.Join(cells, ",") + "\n"); err != nil {
		return err
	}

	for _, rec := range records {
		for i, f := range fields {
			cells[i] = ""
			if v := rec.Value(f.Key); v != "" {
				cells[i] = quote(v)
			}
		}
		if _, err := bw.WriteString(strings.Join(cells, ",") + "\n"); err != nil {
			return err
		}
	}

	return bw.Flush()
}

type ExportService struct {
	settingsService settings.SettingsService
	employeeService employee.EmployeeService
}

func NewExportService(settingsService settings.SettingsService, employeeService employee.EmployeeService) *ExportService {
	return &ExportService{
		settingsService: settingsService,
		employeeService: employeeService,
	}
}

// Export writes the records matching filter and returns how many were written.
func (s *ExportService) Export(ctx context.Context, w io.Writer, filter employee.EmployeeFilter) (int, error) {
	cfg, err := s.settingsService.Load(ctx)
	if err != nil {
		return 0, err
	}

	records, err := s.employeeService.Search(ctx, filter)
	if err != nil {
		return 0, err
	}

	if err := Write(w, cfg, records); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	return len(records), nil
}
