package settingsrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormSettingsRepository is the merchant settings key/value table.
type GormSettingsRepository struct {
	db *gorm.DB
}

func NewGormSettingsRepository(db *gorm.DB) *GormSettingsRepository {
	return &GormSettingsRepository{db: db}
}

func (r *GormSettingsRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var dto SettingDTO
	if err := r.db.WithContext(ctx).First(&dto, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return dto.Value, true, nil
}

// Put upserts every pair in one statement.
func (r *GormSettingsRepository) Put(ctx context.Context, values map[string]string) error {
	if len(values) == 0 {
		return nil
	}

	dtos := make([]SettingDTO, 0, len(values))
	for k, v := range values {
		dtos = append(dtos, SettingDTO{Key: k, Value: v})
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&dtos).Error
}
