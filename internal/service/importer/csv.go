package importer

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// decode converts an upload to UTF-8. A BOM selects UTF-8 or UTF-16; input
// without a BOM that is not valid UTF-8 is read as Latin-1.
func decode(data []byte) ([]byte, error) {
	hasBOM := bytes.HasPrefix(data, bomUTF8) || bytes.HasPrefix(data, bomUTF16LE) || bytes.HasPrefix(data, bomUTF16BE)
	if !hasBOM && !utf8.Valid(data) {
		return charmap.ISO8859_1.NewDecoder().Bytes(data)
	}

	decoded, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	return decoded, err
}

// columns holds the index of each known column, -1 when absent.
type columns struct {
	id, name, unit, designation, empType, category, status, phone, email int
}

// findColumn returns the first header containing any of the keywords.
func findColumn(headers []string, keywords ...string) int {
	for i, h := range headers {
		for _, k := range keywords {
			if strings.Contains(h, k) {
				return i
			}
		}
	}
	return -1
}

func locateColumns(header []string) columns {
	headers := make([]string, len(header))
	for i, h := range header {
		headers[i] = strings.ToLower(strings.TrimSpace(h))
	}

	return columns{
		id:          findColumn(headers, "pen", "id", "identifier"),
		name:        findColumn(headers, "name", "staff", "employee"),
		unit:        findColumn(headers, "unit", "code", "depot"),
		designation: findColumn(headers, "designation", "role", "position"),
		empType:     findColumn(headers, "type", "employment"),
		category:    findColumn(headers, "category", "staffcategory"),
		status:      findColumn(headers, "status"),
		phone:       findColumn(headers, "phone", "mobile"),
		email:       findColumn(headers, "email"),
	}
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// csvRecord is one parsed row and its index among the non-blank lines, the
// header being 0.
type csvRecord struct {
	row   int
	cells []string
}

// parseRecord reads a single record, which may span lines inside quotes.
func parseRecord(chunk string) ([]string, error) {
	reader := csv.NewReader(strings.NewReader(chunk))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.Read()
}

// readRecords splits data on line boundaries and parses each line. A line
// with an open quote is joined with the following lines until the quote
// closes; a quote still open at the end of the data drops only the line it
// started on.
func readRecords(data []byte) ([]csvRecord, []importer.ParseWarning) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	lines := strings.Split(text, "\n")

	var records []csvRecord
	var warnings []importer.ParseWarning
	row := 0
	for i := 0; i < len(lines); {
		if strings.TrimSpace(lines[i]) == "" {
			i++
			continue
		}

		end := i
		chunk := lines[i]
		for strings.Count(chunk, `"`)%2 == 1 && end+1 < len(lines) {
			end++
			chunk += "\n" + lines[end]
		}

		if strings.Count(chunk, `"`)%2 == 1 {
			warnings = append(warnings, importer.ParseWarning{Row: row, Message: "unterminated quoted field"})
			row++
			i++
			continue
		}

		cells, err := parseRecord(chunk)
		if err != nil && !errors.Is(err, io.EOF) {
			warnings = append(warnings, importer.ParseWarning{Row: row, Message: fmt.Sprintf("parse error: %v", err)})
		} else if err == nil {
			records = append(records, csvRecord{row: row, cells: cells})
		}
		row++
		i = end + 1
	}
	return records, warnings
}

// ParseCSV implements importer.ImportService.
func (s *ImportServiceImpl) ParseCSV(ctx context.Context, data []byte, targetUnit string) ([]employee.Employee, error) {
	result, err := s.ParseCSVWithWarnings(ctx, data, targetUnit)
	if err != nil {
		return nil, err
	}
	return result.Candidates, nil
}

// ParseCSVWithWarnings implements importer.ImportService.
func (s *ImportServiceImpl) ParseCSVWithWarnings(ctx context.Context, data []byte, targetUnit string) (importer.CSVResult, error) {
	unitCode, err := targetUnitCode(targetUnit)
	if err != nil {
		return importer.CSVResult{}, err
	}

	decoded, err := decode(data)
	if err != nil {
		return importer.CSVResult{}, validator.New("file", fmt.Sprintf("cannot decode file: %v", err))
	}

	records, warnings := readRecords(decoded)
	if len(records) < 2 || records[0].row != 0 {
		return importer.CSVResult{}, validator.New("file", importer.ErrEmptyInput.Error())
	}

	cols := locateColumns(records[0].cells)
	if cols.name < 0 {
		return importer.CSVResult{}, validator.New("file", importer.ErrMissingColumn.Error())
	}

	cfg, err := s.settingsService.Load(ctx)
	if err != nil {
		return importer.CSVResult{}, err
	}

	stamp := s.now().UnixMilli()
	today := s.now().Format("2006-01-02")

	candidates := make([]employee.Employee, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := rec.cells
		if len(row) < 2 {
			warnings = append(warnings, importer.ParseWarning{Row: rec.row, Message: "row has fewer than two columns"})
			continue
		}

		name := cell(row, cols.name)
		if name == "" {
			warnings = append(warnings, importer.ParseWarning{Row: rec.row, Message: "name is empty"})
			continue
		}

		designation := resolveDesignation(cfg, cell(row, cols.designation))

		category := cell(row, cols.category)
		if category == "" {
			category, _ = cfg.CategoryFor(designation)
		}

		empType := cell(row, cols.empType)
		if !validator.IsInSlice(empType, cfg.EmployeeTypes) {
			empType = cfg.DefaultEmployeeType()
		}

		status := cell(row, cols.status)
		if !validator.IsInSlice(status, cfg.Statuses) {
			status = cfg.DefaultStatus()
		}

		assigned := unitCode
		if unit := strings.ToUpper(cell(row, cols.unit)); settings.IsKnownUnit(unit) {
			assigned = unit
		}

		id := cell(row, cols.id)
		if id == "" {
			id = fmt.Sprintf("CSV-%d-%d", stamp, rec.row)
		}

		candidates = append(candidates, employee.Employee{
			ID:           id,
			Name:         name,
			Designation:  designation,
			Type:         empType,
			Status:       status,
			UnitCode:     assigned,
			Phone:        cell(row, cols.phone),
			Email:        cell(row, cols.email),
			JoinedDate:   today,
			CustomFields: map[string]string{employee.StaffCategoryKey: category},
		})
	}

	if len(candidates) == 0 {
		return importer.CSVResult{}, validator.New("file", importer.ErrNoRows.Error())
	}

	sort.SliceStable(warnings, func(i, j int) bool { return warnings[i].Row < warnings[j].Row })
	if len(warnings) > 0 {
		slog.Warn("CSV rows skipped", "count", len(warnings))
	}
	if warnings == nil {
		warnings = []importer.ParseWarning{}
	}

	slog.Info("CSV import parsed", "unit", unitCode, "rows", len(records)-1, "candidates", len(candidates))
	return importer.CSVResult{Candidates: candidates, Warnings: warnings}, nil
}
