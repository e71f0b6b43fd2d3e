package kvstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/cmlabs-hris/staffsync-backend-go/internal/domain/settings"
	"github.com/cmlabs-hris/staffsync-backend-go/internal/pkg/database"
)

type settingsRepositoryImpl struct {
	kv database.KV
}

func NewSettingsRepository(kv database.KV) settings.SettingsRepository {
	return &settingsRepositoryImpl{kv: kv}
}

// Load implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Load(ctx context.Context) ([]byte, bool, error) {
	return r.kv.Get(ctx, SettingsKey)
}

// Save implements settings.SettingsRepository.
func (r *settingsRepositoryImpl) Save(ctx context.Context, s settings.SystemSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return r.kv.Put(ctx, SettingsKey, data)
}
