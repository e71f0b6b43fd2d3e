package settings

import "context"

type SettingsRepository interface {
	// Load returns the stored blob and whether one exists.
	Load(ctx context.Context) ([]byte, bool, error)
	Save(ctx context.Context, settings SystemSettings) error
}
