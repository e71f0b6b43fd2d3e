package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/exporter"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/service/form"
)

type EmployeeHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	Stats(w http.ResponseWriter, r *http.Request)
	FormDefaults(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	BulkDelete(w http.ResponseWriter, r *http.Request)
	Transfer(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService employee.EmployeeService
	settingsService settings.SettingsService
	exportService   *exporter.ExportService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, settingsService settings.SettingsService, exportService *exporter.ExportService) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService: employeeService,
		settingsService: settingsService,
		exportService:   exportService,
	}
}

// FormField is a field config with its select options resolved.
type FormField struct {
	settings.FieldConfig
	Options []string `json:"options,omitempty"`
}

type FormResponse struct {
	Fields []FormField       `json:"fields"`
	Values map[string]string `json:"values"`
}

func formResponse(cfg settings.SystemSettings, b *form.Binder) FormResponse {
	enabled := cfg.EnabledFields()
	fields := make([]FormField, 0, len(enabled))
	for _, f := range enabled {
		fields = append(fields, FormField{FieldConfig: f, Options: cfg.Options(f)})
	}
	return FormResponse{Fields: fields, Values: b.Values()}
}

func requestedUnit(r *http.Request) string {
	return strings.ToUpper(strings.TrimSpace(r.URL.Query().Get("unit")))
}

// scopedIDs drops ids the user may not touch.
func (h *employeeHandlerImpl) scopedIDs(r *http.Request, u user.User, ids []string) ([]string, error) {
	if u.IsAdmin() {
		return ids, nil
	}

	visible, err := h.employeeService.ListByUnit(r.Context(), u.UnitCode)
	if err != nil {
		return nil, err
	}
	own := make(map[string]struct{}, len(visible))
	for _, e := range visible {
		own[e.ID] = struct{}{}
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := own[id]; ok {
			out = append(out, id)
		}
	}
	return out, nil
}

// ListEmployees implements EmployeeHandler
func (h *employeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	filter := employee.EmployeeFilter{
		UnitCode: u.Scope(requestedUnit(r)),
		Search:   query.Get("q"),
		Type:     query.Get("type"),
	}

	results, err := h.employeeService.Search(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, results, &response.Meta{TotalItems: len(results), UnitCode: filter.UnitCode})
}

// Stats implements EmployeeHandler
func (h *employeeHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.employeeService.Stats(r.Context(), u.Scope(requestedUnit(r)))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// FormDefaults implements EmployeeHandler
func (h *employeeHandlerImpl) FormDefaults(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := h.settingsService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unit := u.Scope(requestedUnit(r))
	if unit == settings.AllUnits {
		unit = ""
	}
	response.Success(w, formResponse(cfg, form.New(cfg, nil, unit)))
}

// Export implements EmployeeHandler
func (h *employeeHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	query := r.URL.Query()
	filter := employee.EmployeeFilter{
		UnitCode: u.Scope(requestedUnit(r)),
		Search:   query.Get("q"),
		Type:     query.Get("type"),
	}

	var buf bytes.Buffer
	count, err := h.exportService.Export(r.Context(), &buf, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employees exported", "unit_code", filter.UnitCode, "count", count)
	response.File(w, exporter.ContentType, exporter.FileName(filter.UnitCode, time.Now()), buf.Bytes())
}

func (h *employeeHandlerImpl) getScoped(r *http.Request, u user.User, id string) (employee.Employee, error) {
	emp, err := h.employeeService.Get(r.Context(), id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !u.CanAccessUnit(emp.UnitCode) {
		return employee.Employee{}, employee.ErrUnitScope
	}
	return emp, nil
}

// GetEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := pathParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Employee ID is required", nil)
		return
	}

	emp, err := h.getScoped(r, u, id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// CreateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	unit := u.Scope("")
	if unit == settings.AllUnits {
		unit = ""
	}
	b := form.New(cfg, nil, unit)
	b.Apply(values)
	if !u.IsAdmin() {
		b.Set("unitCode", u.UnitCode)
	}

	emp, err := b.Submit(r.Context(), h.employeeService)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "id", emp.ID, "unit_code", emp.UnitCode)
	response.Created(w, "Employee created successfully", emp)
}

// UpdateEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	existing, err := h.getScoped(r, u, pathParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var values map[string]string
	if err := json.NewDecoder(r.Body).Decode(&values); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	cfg, err := h.settingsService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	b := form.New(cfg, &existing, "")
	b.Apply(values)
	if !u.IsAdmin() {
		b.Set("unitCode", u.UnitCode)
	}

	emp, err := b.Submit(r.Context(), h.employeeService)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err, "id", existing.ID)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", emp)
}

// DeleteEmployee implements EmployeeHandler
func (h *employeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id := pathParam(r, "id")
	if _, err := h.getScoped(r, u, id); err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// BulkDelete implements EmployeeHandler
func (h *employeeHandlerImpl) BulkDelete(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.BulkDeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("BulkDelete decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ids, err := h.scopedIDs(r, u, req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.BulkDelete(r.Context(), ids); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employees deleted", "requested", len(req.IDs), "deleted", len(ids))
	response.SuccessWithMessage(w, "Employees deleted successfully", map[string]int{"deleted": len(ids)})
}

// Transfer implements EmployeeHandler
func (h *employeeHandlerImpl) Transfer(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Transfer decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	ids, err := h.scopedIDs(r, u, req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if len(ids) == 0 {
		response.SuccessWithMessage(w, "No employees transferred", employee.TransferResponse{UnitCode: req.UnitCode})
		return
	}
	req.IDs = ids

	resp, err := h.employeeService.Transfer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employees transferred successfully", resp)
}
