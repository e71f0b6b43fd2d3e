package importer

import "github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"

// ParsedEmployee is one record extracted from free text by the AI parser.
// Only Name and Type are guaranteed.
type ParsedEmployee struct {
	Name        string `json:"name"`
	Designation string `json:"designation,omitempty"`
	Type        string `json:"type"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	PEN         string `json:"pen,omitempty"`
}

// ParseWarning is a CSV row that was dropped, numbered from 1 after the header.
type ParseWarning struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// CSVResult holds the candidates of a CSV upload and the rows it dropped.
type CSVResult struct {
	Candidates []employee.Employee `json:"candidates"`
	Warnings   []ParseWarning      `json:"warnings"`
}

const (
	MaxUploadSize   = 2 << 20
	CSVContentType  = "text/csv"
	TemplateName    = "staff_import_template_v2.csv"
	TemplateHeader  = "PEN,Name,Unit,Designation,EmploymentType,Status,Phone,Email"
	TemplateExample = "10555,John Doe,TVM,Driver,Permanent,Working,9847012345,john@example.com"
)

// TemplateCSV is the downloadable import template: header plus one example row.
func TemplateCSV() []byte {
	return []byte(TemplateHeader + "\n" + TemplateExample)
}
