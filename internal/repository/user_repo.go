package repository

import (
	"context"

	"fieldbook/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	if err := r.db.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := r.db.WithContext(ctx).Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// AdjustCredits applies a signed delta as a SQL-side increment so
// concurrent adjustments and booking debits never lose updates. The
// balance floors at zero; the CASE keeps it portable across backends.
func (r *UserRepository) AdjustCredits(ctx context.Context, username string, delta int) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).
		Update("credits", gorm.Expr(
			"CASE WHEN credits + ? < 0 THEN 0 ELSE credits + ? END", delta, delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddCreditsToAll grants delta credits to every user.
func (r *UserRepository) AddCreditsToAll(ctx context.Context, delta int) error {
	return r.db.WithContext(ctx).Model(&domain.User{}).
		Where("1 = 1").
		Update("credits", gorm.Expr("credits + ?", delta)).Error
}

func (r *UserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).
		Update("password_hash", passwordHash)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) SetDisabled(ctx context.Context, username string, disabled bool) error {
	tx := r.db.WithContext(ctx).Model(&domain.User{}).
		Where("username = ?", username).
		Update("disabled", disabled)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Rename re-keys a user and carries their reservations along in the same
// transaction so no booking is ever orphaned.
func (r *UserRepository) Rename(ctx context.Context, oldName, newName string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.User{}).
			Where("username = ?", oldName).
			Update("username", newName)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return tx.Model(&domain.Reservation{}).
			Where("username = ?", oldName).
			Update("username", newName).Error
	})
}
