package admin

import (
	"context"

	"fieldbook/internal/domain"
)

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	List(ctx context.Context) ([]domain.User, error)
	AdjustCredits(ctx context.Context, username string, delta int) error
	AddCreditsToAll(ctx context.Context, delta int) error
	UpdatePassword(ctx context.Context, username, passwordHash string) error
	SetDisabled(ctx context.Context, username string, disabled bool) error
	Rename(ctx context.Context, oldName, newName string) error
}

type ConfigRepository interface {
	Get(ctx context.Context) (*domain.Config, error)
	Update(ctx context.Context, cfg *domain.Config) error
}

type FieldRepository interface {
	List(ctx context.Context) ([]domain.Field, error)
	Create(ctx context.Context, f *domain.Field) error
	Delete(ctx context.Context, id string) error
}
