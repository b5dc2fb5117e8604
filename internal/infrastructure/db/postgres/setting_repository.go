package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dreamladder/backoffice/internal/core/domain"
	"github.com/dreamladder/backoffice/internal/core/ports"
)

var _ ports.SettingRepository = (*SettingRepository)(nil)

// SettingRepository implements ports.SettingRepository on GORM.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

func (r *SettingRepository) All(ctx context.Context) ([]domain.Setting, error) {
	var rows []settingRow
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	settings := make([]domain.Setting, 0, len(rows))
	for _, row := range rows {
		settings = append(settings, domain.Setting{
			ID:        row.ID,
			Key:       row.Key,
			Value:     json.RawMessage(row.Value),
			UpdatedAt: row.UpdatedAt,
		})
	}
	return settings, nil
}

func (r *SettingRepository) Upsert(ctx context.Context, key string, value json.RawMessage) error {
	row := settingRow{
		ID:    uuid.NewString(),
		Key:   key,
		Value: datatypes.JSON(value),
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("upsert setting %q: %w", key, err)
	}
	return nil
}
