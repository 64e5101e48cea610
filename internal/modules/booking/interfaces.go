package booking

import (
	"context"

	"fieldbook/internal/domain"
)

type ReservationRepository interface {
	// Create must be a single atomic commit: the insert (conditional on the
	// slot key being absent) and the optional one-credit debit both happen
	// or neither does.
	Create(ctx context.Context, res *domain.Reservation, debitUsername string) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListByDate(ctx context.Context, date string) ([]domain.Reservation, error)
	CountByUserOnDate(ctx context.Context, username, date string) (int64, error)
	CountByUserBetween(ctx context.Context, username, start, end string) (int64, error)
	CountByUserAfter(ctx context.Context, username, date string) (int64, error)
	Delete(ctx context.Context, id string) error
	ListThrough(ctx context.Context, date string) ([]domain.Reservation, error)
	DeleteByIDs(ctx context.Context, ids []string) error
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type ConfigProvider interface {
	Get(ctx context.Context) (*domain.Config, error)
}

type ClosureChecker interface {
	IsClosedDay(ctx context.Context, date string) (bool, error)
	Match(ctx context.Context, fieldID, date, timeStr string) (string, bool, error)
}

// EventPublisher fans reservation changes out to connected clients.
// Implementations must never fail a booking; delivery is best-effort.
type EventPublisher interface {
	ReservationCreated(res *domain.Reservation)
	ReservationCancelled(res *domain.Reservation)
}
