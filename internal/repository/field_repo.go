package repository

import (
	"context"

	"fieldbook/internal/domain"

	"gorm.io/gorm"
)

type FieldRepository struct {
	db *gorm.DB
}

func NewFieldRepository(db *gorm.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

func (r *FieldRepository) List(ctx context.Context) ([]domain.Field, error) {
	var fields []domain.Field
	if err := r.db.WithContext(ctx).Order("position, id").Find(&fields).Error; err != nil {
		return nil, err
	}
	return fields, nil
}

func (r *FieldRepository) Create(ctx context.Context, f *domain.Field) error {
	return r.db.WithContext(ctx).Create(f).Error
}

func (r *FieldRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Field{}, "id = ?", id).Error
}

func (r *FieldRepository) Exists(ctx context.Context, id string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Field{}).Where("id = ?", id).Count(&cnt).Error
	return cnt > 0, err
}
