package importer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type ImportServiceImpl struct {
	settingsService settings.SettingsService
	employeeService employee.EmployeeService
	parser          importer.TextParser
	now             func() time.Time
}

func NewImportService(
	settingsService settings.SettingsService,
	employeeService employee.EmployeeService,
	parser importer.TextParser,
) importer.ImportService {
	return &ImportServiceImpl{
		settingsService: settingsService,
		employeeService: employeeService,
		parser:          parser,
		now:             time.Now,
	}
}

func targetUnitCode(unitCode string) (string, error) {
	unitCode = strings.ToUpper(strings.TrimSpace(unitCode))
	if !settings.IsKnownUnit(unitCode) {
		return "", validator.New("unit_code", employee.ErrUnknownUnit.Error())
	}
	return unitCode, nil
}

// resolveDesignation keeps a designation only if the schema lists it.
func resolveDesignation(cfg settings.SystemSettings, raw string) string {
	if validator.IsInSlice(raw, cfg.Designations) {
		return raw
	}
	return cfg.DefaultDesignation()
}

// ParseText implements importer.ImportService.
func (s *ImportServiceImpl) ParseText(ctx context.Context, text, targetUnit string) ([]employee.Employee, error) {
	if validator.IsEmpty(text) {
		return nil, validator.New("text", importer.ErrEmptyInput.Error())
	}

	unitCode, err := targetUnitCode(targetUnit)
	if err != nil {
		return nil, err
	}

	cfg, err := s.settingsService.Load(ctx)
	if err != nil {
		return nil, err
	}

	parsed, err := s.parser.ParseEmployees(ctx, text)
	if err != nil {
		if errors.Is(err, importer.ErrMissingAPIKey) {
			return nil, err
		}
		slog.Error("AI parse failed", "error", err)
		return nil, fmt.Errorf("%w: %v", importer.ErrExternalService, err)
	}
	if len(parsed) == 0 {
		return nil, validator.New("text", importer.ErrNoRows.Error())
	}

	stamp := s.now().UnixMilli()
	today := s.now().Format("2006-01-02")

	candidates := make([]employee.Employee, 0, len(parsed))
	for idx, p := range parsed {
		designation := resolveDesignation(cfg, p.Designation)

		category, ok := cfg.CategoryFor(designation)
		if !ok {
			category = cfg.DefaultStaffCategory()
		}

		id := strings.TrimSpace(p.PEN)
		if id == "" {
			id = fmt.Sprintf("TMP-%d-%d", stamp, idx)
		}

		empType := p.Type
		if empType == "" {
			empType = cfg.DefaultEmployeeType()
		}

		candidates = append(candidates, employee.Employee{
			ID:           id,
			Name:         p.Name,
			Designation:  designation,
			Type:         empType,
			Status:       cfg.DefaultStatus(),
			UnitCode:     unitCode,
			Phone:        p.Phone,
			Email:        p.Email,
			JoinedDate:   today,
			CustomFields: map[string]string{employee.StaffCategoryKey: category},
		})
	}

	slog.Info("Text import parsed", "unit", unitCode, "candidates", len(candidates))
	return candidates, nil
}

// ValidateUpload implements importer.ImportService.
func (s *ImportServiceImpl) ValidateUpload(filename, contentType string, size int64) error {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = ""
	}

	isCSV := mediaType == importer.CSVContentType || strings.EqualFold(filepath.Ext(filename), ".csv")
	if !isCSV {
		return validator.New("file", importer.ErrInvalidFileType.Error())
	}
	if size > importer.MaxUploadSize {
		return validator.New("file", importer.ErrFileTooLarge.Error())
	}
	return nil
}

// Template implements importer.ImportService.
func (s *ImportServiceImpl) Template() []byte {
	return importer.TemplateCSV()
}

// Confirm implements importer.ImportService.
func (s *ImportServiceImpl) Confirm(ctx context.Context, candidates []employee.Employee) (employee.BulkAddResult, error) {
	req := importer.ConfirmRequest{Candidates: candidates}
	if err := req.Validate(); err != nil {
		return employee.BulkAddResult{}, err
	}
	return s.employeeService.BulkAdd(ctx, req.Candidates)
}
