package employee

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	mu           sync.Mutex
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

func (s *EmployeeServiceImpl) load(ctx context.Context) ([]employee.Employee, error) {
	employees, err := s.employeeRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	return employees, nil
}

func (s *EmployeeServiceImpl) save(ctx context.Context, employees []employee.Employee) error {
	if err := s.employeeRepo.SaveAll(ctx, employees); err != nil {
		return fmt.Errorf("failed to save employees: %w", err)
	}
	return nil
}

func indexOf(employees []employee.Employee, id string) int {
	for i, e := range employees {
		if e.ID == id {
			return i
		}
	}
	return -1
}

// ListAll implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return s.load(ctx)
}

// ListByUnit implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByUnit(ctx context.Context, unitCode string) ([]employee.Employee, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if unitCode == settings.AllUnits {
		return employees, nil
	}

	filtered := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if e.UnitCode == unitCode {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.Employee, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if i := indexOf(employees, id); i >= 0 {
		return employees[i], nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

// Exists implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Exists(ctx context.Context, id string) (bool, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return indexOf(employees, id) >= 0, nil
}

// Upsert implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Upsert(ctx context.Context, emp employee.Employee, isNew bool) error {
	emp.ID = strings.TrimSpace(emp.ID)
	if emp.ID == "" {
		return validator.New("id", employee.ErrEmptyID.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(employees, emp.ID)
	switch {
	case isNew && i >= 0:
		return employee.ErrDuplicateKey
	case i >= 0:
		employees[i] = emp
	default:
		if !isNew {
			slog.Warn("Employee not found on edit, appending", "id", emp.ID)
		}
		employees = append(employees, emp)
	}

	if err := s.save(ctx, employees); err != nil {
		return err
	}
	slog.Info("Employee saved", "id", emp.ID, "unit", emp.UnitCode, "new", isNew)
	return nil
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.BulkDelete(ctx, []string{id})
}

// BulkDelete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkDelete(ctx context.Context, ids []string) error {
	remove := make(map[string]bool, len(ids))
	for _, id := range ids {
		remove[id] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return err
	}

	kept := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if !remove[e.ID] {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(employees) {
		return nil
	}

	if err := s.save(ctx, kept); err != nil {
		return err
	}
	slog.Info("Employees deleted", "count", len(employees)-len(kept))
	return nil
}

// BulkAdd implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkAdd(ctx context.Context, candidates []employee.Employee) (employee.BulkAddResult, error) {
	result := employee.BulkAddResult{Errors: []string{}}

	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return result, err
	}

	existing := make(map[string]bool, len(employees))
	for _, e := range employees {
		existing[e.ID] = true
	}

	staged := make([]employee.Employee, 0, len(candidates))
	inBatch := make(map[string]bool, len(candidates))
	for _, c := range candidates {
		c.ID = strings.TrimSpace(c.ID)
		switch {
		case c.ID == "":
			result.Errors = append(result.Errors, fmt.Sprintf("Skipped %s - PEN is missing.", c.Name))
		case existing[c.ID]:
			result.Errors = append(result.Errors, fmt.Sprintf("Skipped %s (PEN: %s) - ID already exists.", c.Name, c.ID))
		case inBatch[c.ID]:
			result.Errors = append(result.Errors, fmt.Sprintf("Skipped duplicate in batch: %s (PEN: %s)", c.Name, c.ID))
		default:
			inBatch[c.ID] = true
			staged = append(staged, c)
		}
	}

	if len(staged) == 0 {
		return result, nil
	}

	if err := s.save(ctx, append(employees, staged...)); err != nil {
		return employee.BulkAddResult{Errors: []string{}}, err
	}
	result.Added = len(staged)
	slog.Info("Employees imported", "added", result.Added, "skipped", len(result.Errors))
	return result, nil
}

// BulkUpdate implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkUpdate(ctx context.Context, updates []employee.Employee) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.bulkUpdate(ctx, updates)
	return err
}

// bulkUpdate replaces matching records and reports how many matched. The
// caller holds s.mu.
func (s *EmployeeServiceImpl) bulkUpdate(ctx context.Context, updates []employee.Employee) (int, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return 0, err
	}

	byID := make(map[string]employee.Employee, len(updates))
	for _, u := range updates {
		byID[u.ID] = u
	}

	matched := 0
	for i, e := range employees {
		if u, ok := byID[e.ID]; ok {
			employees[i] = u
			matched++
		}
	}
	if matched == 0 {
		return 0, nil
	}

	if err := s.save(ctx, employees); err != nil {
		return 0, err
	}
	return matched, nil
}

// Transfer implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Transfer(ctx context.Context, req employee.TransferRequest) (employee.TransferResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.TransferResponse{}, err
	}
	if !settings.IsKnownUnit(req.UnitCode) {
		return employee.TransferResponse{}, validator.New("unit_code", employee.ErrUnknownUnit.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	employees, err := s.load(ctx)
	if err != nil {
		return employee.TransferResponse{}, err
	}

	wanted := make(map[string]bool, len(req.IDs))
	for _, id := range req.IDs {
		wanted[id] = true
	}

	var updates []employee.Employee
	for _, e := range employees {
		if wanted[e.ID] {
			e.UnitCode = req.UnitCode
			e.Status = employee.StatusTransferred
			updates = append(updates, e)
		}
	}

	transferred, err := s.bulkUpdate(ctx, updates)
	if err != nil {
		return employee.TransferResponse{}, err
	}
	slog.Info("Employees transferred", "count", transferred, "unit", req.UnitCode)

	return employee.TransferResponse{Transferred: transferred, UnitCode: req.UnitCode}, nil
}

func bypass(value string) bool {
	return value == "" || value == settings.AllUnits
}

// Search implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Search(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, error) {
	employees, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(filter.Search))
	result := make([]employee.Employee, 0, len(employees))
	for _, e := range employees {
		if !bypass(filter.UnitCode) && e.UnitCode != filter.UnitCode {
			continue
		}
		if !bypass(filter.Type) && e.Type != filter.Type {
			continue
		}
		if term != "" && !matches(e, term) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

func matches(e employee.Employee, term string) bool {
	for _, v := range []string{e.Name, e.ID, e.Designation, e.Status} {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

// Stats implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Stats(ctx context.Context, unitCode string) (employee.Stats, error) {
	employees, err := s.ListByUnit(ctx, unitCode)
	if err != nil {
		return employee.Stats{}, err
	}

	stats := employee.Stats{Total: len(employees)}
	for _, e := range employees {
		switch e.Type {
		case employee.EmploymentTypePermanent:
			stats.Permanent++
		case employee.EmploymentTypeBadali:
			stats.Badali++
		}
	}
	return stats, nil
}
