package repository

import (
	"context"

	"fieldbook/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ClosureRepository struct {
	db *gorm.DB
}

func NewClosureRepository(db *gorm.DB) *ClosureRepository {
	return &ClosureRepository{db: db}
}

func (r *ClosureRepository) ListClosedDays(ctx context.Context) ([]domain.ClosedDay, error) {
	var days []domain.ClosedDay
	err := r.db.WithContext(ctx).Order("date").Find(&days).Error
	return days, err
}

func (r *ClosureRepository) IsClosedDay(ctx context.Context, date string) (bool, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.ClosedDay{}).
		Where("date = ?", date).
		Count(&cnt).Error
	return cnt > 0, err
}

// CreateClosedDays upserts the given days; re-closing an already closed
// day is a no-op rather than an error.
func (r *ClosureRepository) CreateClosedDays(ctx context.Context, days []domain.ClosedDay) error {
	if len(days) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&days).Error
}

func (r *ClosureRepository) DeleteClosedDay(ctx context.Context, date string) error {
	return r.db.WithContext(ctx).Delete(&domain.ClosedDay{}, "date = ?", date).Error
}

func (r *ClosureRepository) ListClosedSlots(ctx context.Context) ([]domain.ClosedSlot, error) {
	var slots []domain.ClosedSlot
	err := r.db.WithContext(ctx).Order("start_date, start_time").Find(&slots).Error
	return slots, err
}

// WindowsCovering returns the closure windows whose date range contains
// date. ISO dates compare correctly as strings.
func (r *ClosureRepository) WindowsCovering(ctx context.Context, date string) ([]domain.ClosedSlot, error) {
	var slots []domain.ClosedSlot
	err := r.db.WithContext(ctx).
		Where("start_date <= ? AND end_date >= ?", date, date).
		Find(&slots).Error
	return slots, err
}

func (r *ClosureRepository) CreateClosedSlot(ctx context.Context, cs *domain.ClosedSlot) error {
	return r.db.WithContext(ctx).Create(cs).Error
}

func (r *ClosureRepository) DeleteClosedSlot(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.ClosedSlot{}, "id = ?", id).Error
}
