package settings

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"sync"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
)

type SettingsServiceImpl struct {
	repo settings.SettingsRepository
	mu   sync.Mutex
}

func NewSettingsService(repo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{repo: repo}
}

// Load implements settings.SettingsService.
func (s *SettingsServiceImpl) Load(ctx context.Context) (settings.SystemSettings, error) {
	data, found, err := s.repo.Load(ctx)
	if err != nil {
		return settings.SystemSettings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	if !found {
		return settings.Defaults(), nil
	}
	return Merge(data)
}

// Save implements settings.SettingsService.
func (s *SettingsServiceImpl) Save(ctx context.Context, updated settings.SystemSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, updated); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	slog.Info("Settings replaced")
	return nil
}

// update runs a load-modify-save cycle under the service lock.
func (s *SettingsServiceImpl) update(ctx context.Context, fn func(*settings.SystemSettings) error) (settings.SystemSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Load(ctx)
	if err != nil {
		return settings.SystemSettings{}, err
	}

	if err := fn(&current); err != nil {
		return settings.SystemSettings{}, err
	}

	if err := s.repo.Save(ctx, current); err != nil {
		return settings.SystemSettings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return current, nil
}

// AddListItem implements settings.SettingsService.
func (s *SettingsServiceImpl) AddListItem(ctx context.Context, list settings.ListKey, req settings.AddListItemRequest) (settings.SystemSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.SystemSettings{}, err
	}

	return s.update(ctx, func(current *settings.SystemSettings) error {
		items, ok := current.List(list)
		if !ok {
			return settings.ErrUnknownList
		}
		for _, item := range items {
			if item == req.Item {
				return settings.ErrListItemExists
			}
		}

		current.SetList(list, append(append([]string(nil), items...), req.Item))
		slog.Info("List item added", "list", list, "item", req.Item)
		return nil
	})
}

// DeleteListItem implements settings.SettingsService.
func (s *SettingsServiceImpl) DeleteListItem(ctx context.Context, list settings.ListKey, item string) (settings.SystemSettings, error) {
	return s.update(ctx, func(current *settings.SystemSettings) error {
		items, ok := current.List(list)
		if !ok {
			return settings.ErrUnknownList
		}

		kept := make([]string, 0, len(items))
		for _, existing := range items {
			if existing != item {
				kept = append(kept, existing)
			}
		}
		current.SetList(list, kept)
		slog.Info("List item deleted", "list", list, "item", item)
		return nil
	})
}

// SetMapping implements settings.SettingsService.
func (s *SettingsServiceImpl) SetMapping(ctx context.Context, req settings.SetMappingRequest) (settings.SystemSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.SystemSettings{}, err
	}

	return s.update(ctx, func(current *settings.SystemSettings) error {
		if current.DesignationMapping == nil {
			current.DesignationMapping = make(map[string]string)
		}
		if req.Category == "" {
			delete(current.DesignationMapping, req.Designation)
		} else {
			current.DesignationMapping[req.Designation] = req.Category
		}
		return nil
	})
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// FieldKey derives a schema key from a label: lowercase, whitespace runs as "_".
func FieldKey(label string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(label), "_")
}

// AddField implements settings.SettingsService.
func (s *SettingsServiceImpl) AddField(ctx context.Context, req settings.AddFieldRequest) (settings.SystemSettings, error) {
	if err := req.Validate(); err != nil {
		return settings.SystemSettings{}, err
	}

	key := FieldKey(req.Label)
	return s.update(ctx, func(current *settings.SystemSettings) error {
		if _, exists := current.Field(key); exists {
			return settings.ErrFieldExists
		}

		current.FieldConfigs = append(current.FieldConfigs, settings.FieldConfig{
			Key:     key,
			Label:   req.Label,
			Type:    req.Type,
			Enabled: true,
		})
		slog.Info("Custom field added", "key", key, "type", req.Type)
		return nil
	})
}

// ToggleField implements settings.SettingsService.
func (s *SettingsServiceImpl) ToggleField(ctx context.Context, key string) (settings.SystemSettings, error) {
	return s.update(ctx, func(current *settings.SystemSettings) error {
		for i, f := range current.FieldConfigs {
			if f.Key != key {
				continue
			}
			if f.IsLocked {
				return settings.ErrFieldLocked
			}
			current.FieldConfigs[i].Enabled = !f.Enabled
			return nil
		}
		return settings.ErrFieldNotFound
	})
}

// DeleteField implements settings.SettingsService.
func (s *SettingsServiceImpl) DeleteField(ctx context.Context, key string) (settings.SystemSettings, error) {
	return s.update(ctx, func(current *settings.SystemSettings) error {
		field, ok := current.Field(key)
		if !ok {
			return settings.ErrFieldNotFound
		}
		if field.IsSystem {
			return settings.ErrSystemField
		}

		kept := make([]settings.FieldConfig, 0, len(current.FieldConfigs)-1)
		for _, f := range current.FieldConfigs {
			if f.Key != key {
				kept = append(kept, f)
			}
		}
		current.FieldConfigs = kept
		slog.Info("Custom field deleted", "key", key)
		return nil
	})
}

// ToggleFeature implements settings.SettingsService.
func (s *SettingsServiceImpl) ToggleFeature(ctx context.Context, feature string) (settings.SystemSettings, error) {
	return s.update(ctx, func(current *settings.SystemSettings) error {
		f := &current.Features
		switch feature {
		case "allowTransfer":
			f.AllowTransfer = !f.AllowTransfer
		case "allowDelete":
			f.AllowDelete = !f.AllowDelete
		case "allowExport":
			f.AllowExport = !f.AllowExport
		case "allowUnitEdit":
			f.AllowUnitEdit = !f.AllowUnitEdit
		default:
			return settings.ErrUnknownFeature
		}
		slog.Info("Feature toggled", "feature", feature)
		return nil
	})
}
