package repository

import (
	"context"

	"fieldbook/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// Create inserts the reservation and, when debitUsername is non-empty,
// debits that user one credit in the same transaction. The insert relies on
// the primary key as the create-if-absent primitive: a concurrent booking
// of the same slot surfaces a duplicate-key error and the debit rolls back
// with it, so a half-committed booking cannot exist.
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation, debitUsername string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(res).Error; err != nil {
			return err
		}
		if debitUsername == "" {
			return nil
		}
		return tx.Model(&domain.User{}).
			Where("username = ?", debitUsername).
			Update("credits", gorm.Expr("credits - ?", 1)).Error
	})
}

func (r *ReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *ReservationRepository) ListByDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("field_id, time").
		Find(&out).Error
	return out, err
}

func (r *ReservationRepository) CountByUserOnDate(ctx context.Context, username, date string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("username = ? AND date = ?", username, date).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReservationRepository) CountByUserBetween(ctx context.Context, username, start, end string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("username = ? AND date >= ? AND date <= ?", username, start, end).
		Count(&cnt).Error
	return cnt, err
}

// CountByUserAfter counts reservations strictly after the given date.
// Today's own bookings do not count against the active-bookings cap.
func (r *ReservationRepository) CountByUserAfter(ctx context.Context, username, date string) (int64, error) {
	var cnt int64
	err := r.db.WithContext(ctx).Model(&domain.Reservation{}).
		Where("username = ? AND date > ?", username, date).
		Count(&cnt).Error
	return cnt, err
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&domain.Reservation{}, "id = ?", id).Error
}

// ListThrough returns every reservation dated up to and including date;
// the reaper filters the expired ones in memory.
func (r *ReservationRepository) ListThrough(ctx context.Context, date string) ([]domain.Reservation, error) {
	var out []domain.Reservation
	err := r.db.WithContext(ctx).Where("date <= ?", date).Find(&out).Error
	return out, err
}

// DeleteByIDs removes reservations in one batched statement.
func (r *ReservationRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Delete(&domain.Reservation{}, "id IN ?", ids).Error
}
