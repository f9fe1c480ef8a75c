package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"paletto-cards.backend/internal/domain/entities"
	domainerrors "paletto-cards.backend/internal/domain/errors"
	"paletto-cards.backend/internal/infrastructure/models"
)

// SettingRepository implements the admin settings store
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the setting for key or ErrNotFound
func (r *SettingRepository) Get(ctx context.Context, key string) (*entities.AdminSetting, error) {
	var m models.AdminSetting
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("setting_key = ?", key).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.AdminSetting{
		Key:       m.SettingKey,
		Value:     m.SettingValue,
		UpdatedAt: null.TimeFromPtr(m.UpdatedAt),
	}, nil
}

// Upsert inserts or overwrites the setting for key
func (r *SettingRepository) Upsert(ctx context.Context, key, value string) error {
	now := time.Now()
	m := models.AdminSetting{
		SettingKey:   key,
		SettingValue: value,
		UpdatedAt:    &now,
	}
	return GetDB(ctx, r.db).WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(&m).Error
}
