package ports

import (
	"context"
	"encoding/json"

	"github.com/dreamladder/backoffice/internal/core/domain"
)

// SettingRepository defines persistence operations for site settings.
type SettingRepository interface {
	All(ctx context.Context) ([]domain.Setting, error)
	// Upsert inserts the key or replaces its value.
	Upsert(ctx context.Context, key string, value json.RawMessage) error
}

// SettingsService defines the site-content use cases.
type SettingsService interface {
	// All returns the full key -> value map, with the documented defaults
	// filled in for keys that have never been saved.
	All(ctx context.Context) (map[string]json.RawMessage, error)
	// Update upserts every key in the given map.
	Update(ctx context.Context, values map[string]json.RawMessage) error
}
