package repository

import (
	"context"

	"github.com/ahmadfaris/kasirku-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the store settings singleton
type SettingsRepository interface {
	// Get returns the settings row, or nil when none exists yet
	Get(ctx context.Context) (*entity.StoreSettings, error)
	Create(ctx context.Context, settings *entity.StoreSettings) error
	Update(ctx context.Context, settings *entity.StoreSettings) error
}
