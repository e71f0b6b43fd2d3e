package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/employee"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/importer"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/user"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/validator"
)

type ImportHandler interface {
	ParseText(w http.ResponseWriter, r *http.Request)
	ParseCSV(w http.ResponseWriter, r *http.Request)
	Confirm(w http.ResponseWriter, r *http.Request)
	Template(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService importer.ImportService
}

func NewImportHandler(importService importer.ImportService) ImportHandler {
	return &importHandlerImpl{
		importService: importService,
	}
}

// importUnit is the unit imported rows are assigned to. Unit heads always
// import into their own unit.
func importUnit(u user.User, requested string) string {
	if !u.IsAdmin() {
		return u.UnitCode
	}
	return strings.ToUpper(strings.TrimSpace(requested))
}

func preview(unit string, candidates []employee.Employee) importer.PreviewResponse {
	return importer.PreviewResponse{UnitCode: unit, Count: len(candidates), Candidates: candidates}
}

// ParseText implements ImportHandler
func (h *importHandlerImpl) ParseText(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req importer.ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ParseText decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	unit := importUnit(u, req.UnitCode)
	candidates, err := h.importService.ParseText(r.Context(), req.Text, unit)
	if err != nil {
		slog.Error("ParseText service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, preview(unit, candidates))
}

// ParseCSV implements ImportHandler
func (h *importHandlerImpl) ParseCSV(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, importer.MaxUploadSize+(1<<20))
	if err := r.ParseMultipartForm(importer.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.HandleError(w, validator.New("file", importer.ErrFileTooLarge.Error()))
			return
		}
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	if err := h.importService.ValidateUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), fileHeader.Size); err != nil {
		response.HandleError(w, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, importer.MaxUploadSize))
	if err != nil {
		slog.Error("Failed to read upload", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}

	unit := importUnit(u, r.FormValue("unit_code"))
	result, err := h.importService.ParseCSVWithWarnings(r.Context(), data, unit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("CSV parsed", "file", fileHeader.Filename, "rows", len(result.Candidates), "skipped", len(result.Warnings))
	resp := preview(unit, result.Candidates)
	resp.Warnings = result.Warnings
	response.Success(w, resp)
}

// Confirm implements ImportHandler
func (h *importHandlerImpl) Confirm(w http.ResponseWriter, r *http.Request) {
	u, err := currentUser(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req importer.ConfirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Confirm decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	if !u.IsAdmin() {
		for i := range req.Candidates {
			req.Candidates[i].UnitCode = u.UnitCode
		}
	}

	result, err := h.importService.Confirm(r.Context(), req.Candidates)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Import completed", result)
}

// Template implements ImportHandler
func (h *importHandlerImpl) Template(w http.ResponseWriter, r *http.Request) {
	response.File(w, "text/csv; charset=utf-8", importer.TemplateName, h.importService.Template())
}
