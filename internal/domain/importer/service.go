package importer

import (
	"context"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
)

// TextParser extracts employee records from unstructured text.
type TextParser interface {
	ParseEmployees(ctx context.Context, text string) ([]ParsedEmployee, error)
}

// ImportService turns free text or CSV uploads into employee candidates.
// Parsing never writes; Confirm commits through the employee store.
type ImportService interface {
	ParseText(ctx context.Context, text, targetUnit string) ([]employee.Employee, error)
	ParseCSV(ctx context.Context, data []byte, targetUnit string) ([]employee.Employee, error)
	// ParseCSVWithWarnings also reports every row it dropped
	ParseCSVWithWarnings(ctx context.Context, data []byte, targetUnit string) (CSVResult, error)
	ValidateUpload(filename, contentType string, size int64) error
	Template() []byte
	Confirm(ctx context.Context, candidates []employee.Employee) (employee.BulkAddResult, error)
}
