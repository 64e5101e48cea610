package booking

import (
	"context"

	"fieldbook/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Create(ctx context.Context, res *domain.Reservation, debitUsername string) error {
	args := m.Called(ctx, res, debitUsername)
	return args.Error(0)
}

func (m *MockReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) ListByDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) CountByUserOnDate(ctx context.Context, username, date string) (int64, error) {
	args := m.Called(ctx, username, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CountByUserBetween(ctx context.Context, username, start, end string) (int64, error) {
	args := m.Called(ctx, username, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) CountByUserAfter(ctx context.Context, username, date string) (int64, error) {
	args := m.Called(ctx, username, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReservationRepository) ListThrough(ctx context.Context, date string) ([]domain.Reservation, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Reservation), args.Error(1)
}

func (m *MockReservationRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockConfigProvider struct {
	mock.Mock
}

func (m *MockConfigProvider) Get(ctx context.Context) (*domain.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Config), args.Error(1)
}

type MockClosureChecker struct {
	mock.Mock
}

func (m *MockClosureChecker) IsClosedDay(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockClosureChecker) Match(ctx context.Context, fieldID, date, timeStr string) (string, bool, error) {
	args := m.Called(ctx, fieldID, date, timeStr)
	return args.String(0), args.Bool(1), args.Error(2)
}

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) ReservationCreated(res *domain.Reservation) {
	m.Called(res)
}

func (m *MockEventPublisher) ReservationCancelled(res *domain.Reservation) {
	m.Called(res)
}
