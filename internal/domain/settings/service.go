package settings

import "context"

// SettingsService owns the configurable schema and feature flags.
type SettingsService interface {
	// Load returns stored settings merged over the compiled defaults.
	Load(ctx context.Context) (SystemSettings, error)

	// Save overwrites the stored settings in one write, without validation.
	Save(ctx context.Context, settings SystemSettings) error

	AddListItem(ctx context.Context, list ListKey, req AddListItemRequest) (SystemSettings, error)
	DeleteListItem(ctx context.Context, list ListKey, item string) (SystemSettings, error)
	SetMapping(ctx context.Context, req SetMappingRequest) (SystemSettings, error)
	AddField(ctx context.Context, req AddFieldRequest) (SystemSettings, error)
	ToggleField(ctx context.Context, key string) (SystemSettings, error)
	DeleteField(ctx context.Context, key string) (SystemSettings, error)
	ToggleFeature(ctx context.Context, feature string) (SystemSettings, error)
}
