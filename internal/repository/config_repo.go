package repository

import (
	"context"
	"errors"

	"fieldbook/internal/domain"

	"gorm.io/gorm"
)

type ConfigRepository struct {
	db *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{db: db}
}

// Get loads the singleton config row, creating it with defaults on first
// use. A concurrent first-use race falls back to re-reading the winner's row.
func (r *ConfigRepository) Get(ctx context.Context) (*domain.Config, error) {
	var cfg domain.Config
	err := r.db.WithContext(ctx).First(&cfg, "id = ?", domain.ConfigID).Error
	if err == nil {
		return &cfg, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	cfg = defaultConfig()
	if err := r.db.WithContext(ctx).Create(&cfg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			var existing domain.Config
			if err2 := r.db.WithContext(ctx).First(&existing, "id = ?", domain.ConfigID).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &cfg, nil
}

func (r *ConfigRepository) Update(ctx context.Context, cfg *domain.Config) error {
	cfg.ID = domain.ConfigID
	return r.db.WithContext(ctx).Save(cfg).Error
}

func defaultConfig() domain.Config {
	cfg := domain.Config{
		ID:          domain.ConfigID,
		SlotMinutes: 45,
		MaxPerDay:   1,
		MaxPerWeek:  3,
		MaxActive:   1,
		Gallery:     "[]",
	}
	_ = cfg.SetRanges([]domain.OpenRange{{Name: "day", Start: "09:00", End: "20:00"}})
	return cfg
}
