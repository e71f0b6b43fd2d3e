package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type SettingsHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Replace(w http.ResponseWriter, r *http.Request)
	AddListItem(w http.ResponseWriter, r *http.Request)
	DeleteListItem(w http.ResponseWriter, r *http.Request)
	SetMapping(w http.ResponseWriter, r *http.Request)
	AddField(w http.ResponseWriter, r *http.Request)
	ToggleField(w http.ResponseWriter, r *http.Request)
	DeleteField(w http.ResponseWriter, r *http.Request)
	ToggleFeature(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	settingsService settings.SettingsService
}

func NewSettingsHandler(settingsService settings.SettingsService) SettingsHandler {
	return &settingsHandlerImpl{
		settingsService: settingsService,
	}
}

// pathParam returns the unescaped route parameter, so list items with
// spaces or slashes survive the round trip.
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

// Get implements SettingsHandler
func (h *settingsHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

// Replace implements SettingsHandler
func (h *settingsHandlerImpl) Replace(w http.ResponseWriter, r *http.Request) {
	var cfg settings.SystemSettings
	if err := json.NewDecoder(r.Body).Decode(&cfg); err != nil {
		slog.Error("Replace settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingsService.Save(r.Context(), cfg); err != nil {
		response.HandleError(w, err)
		return
	}

	// Read back so the caller sees the merged result.
	saved, err := h.settingsService.Load(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Settings replaced")
	response.SuccessWithMessage(w, "Settings saved", saved)
}

// AddListItem implements SettingsHandler
func (h *settingsHandlerImpl) AddListItem(w http.ResponseWriter, r *http.Request) {
	var req settings.AddListItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddListItem decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := h.settingsService.AddListItem(r.Context(), settings.ListKey(pathParam(r, "list")), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Item added", cfg)
}

// DeleteListItem implements SettingsHandler
func (h *settingsHandlerImpl) DeleteListItem(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.DeleteListItem(r.Context(), settings.ListKey(pathParam(r, "list")), pathParam(r, "item"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Item deleted", cfg)
}

// SetMapping implements SettingsHandler
func (h *settingsHandlerImpl) SetMapping(w http.ResponseWriter, r *http.Request) {
	var req settings.SetMappingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SetMapping decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := h.settingsService.SetMapping(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Mapping saved", cfg)
}

// AddField implements SettingsHandler
func (h *settingsHandlerImpl) AddField(w http.ResponseWriter, r *http.Request) {
	var req settings.AddFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddField decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	cfg, err := h.settingsService.AddField(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Field added", cfg)
}

// ToggleField implements SettingsHandler
func (h *settingsHandlerImpl) ToggleField(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.ToggleField(r.Context(), pathParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}

// DeleteField implements SettingsHandler
func (h *settingsHandlerImpl) DeleteField(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.DeleteField(r.Context(), pathParam(r, "key"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Field deleted", cfg)
}

// ToggleFeature implements SettingsHandler
func (h *settingsHandlerImpl) ToggleFeature(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.settingsService.ToggleFeature(r.Context(), pathParam(r, "feature"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cfg)
}
