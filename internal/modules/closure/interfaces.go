package closure

import (
	"context"

	"fieldbook/internal/domain"
)

type Repository interface {
	ListClosedDays(ctx context.Context) ([]domain.ClosedDay, error)
	IsClosedDay(ctx context.Context, date string) (bool, error)
	CreateClosedDays(ctx context.Context, days []domain.ClosedDay) error
	DeleteClosedDay(ctx context.Context, date string) error

	ListClosedSlots(ctx context.Context) ([]domain.ClosedSlot, error)
	WindowsCovering(ctx context.Context, date string) ([]domain.ClosedSlot, error)
	CreateClosedSlot(ctx context.Context, cs *domain.ClosedSlot) error
	DeleteClosedSlot(ctx context.Context, id string) error
}
