package closure

import (
	"context"
	"testing"

	"fieldbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) ListClosedDays(ctx context.Context) ([]domain.ClosedDay, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosedDay), args.Error(1)
}

func (m *MockRepository) IsClosedDay(ctx context.Context, date string) (bool, error) {
	args := m.Called(ctx, date)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) CreateClosedDays(ctx context.Context, days []domain.ClosedDay) error {
	args := m.Called(ctx, days)
	return args.Error(0)
}

func (m *MockRepository) DeleteClosedDay(ctx context.Context, date string) error {
	args := m.Called(ctx, date)
	return args.Error(0)
}

func (m *MockRepository) ListClosedSlots(ctx context.Context) ([]domain.ClosedSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosedSlot), args.Error(1)
}

func (m *MockRepository) WindowsCovering(ctx context.Context, date string) ([]domain.ClosedSlot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClosedSlot), args.Error(1)
}

func (m *MockRepository) CreateClosedSlot(ctx context.Context, cs *domain.ClosedSlot) error {
	args := m.Called(ctx, cs)
	return args.Error(0)
}

func (m *MockRepository) DeleteClosedSlot(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestMatchHalfOpenBoundary(t *testing.T) {
	repo := new(MockRepository)
	windows := []domain.ClosedSlot{{
		FieldID:   "campo1",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "maintenance",
	}}
	repo.On("WindowsCovering", mock.Anything, "2025-06-02").Return(windows, nil)

	service := NewService(repo)

	// Start boundary is inclusive.
	reason, closed, err := service.Match(context.Background(), "campo1", "2025-06-02", "10:00")
	require.NoError(t, err)
	assert.True(t, closed)
	assert.Equal(t, "maintenance", reason)

	// Inside the window.
	_, closed, err = service.Match(context.Background(), "campo1", "2025-06-02", "11:00")
	require.NoError(t, err)
	assert.True(t, closed)

	// End boundary is exclusive: a slot starting exactly at 12:00 is open.
	_, closed, err = service.Match(context.Background(), "campo1", "2025-06-02", "12:00")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestMatchWildcardAndOtherField(t *testing.T) {
	repo := new(MockRepository)
	windows := []domain.ClosedSlot{
		{FieldID: domain.AllFields, StartDate: "2025-06-02", EndDate: "2025-06-04", StartTime: "08:00", EndTime: "09:00"},
		{FieldID: "campo2", StartDate: "2025-06-02", EndDate: "2025-06-02", StartTime: "15:00", EndTime: "16:00"},
	}
	repo.On("WindowsCovering", mock.Anything, "2025-06-02").Return(windows, nil)

	service := NewService(repo)

	// Wildcard closes every field.
	_, closed, err := service.Match(context.Background(), "campo1", "2025-06-02", "08:30")
	require.NoError(t, err)
	assert.True(t, closed)

	// A window for campo2 does not touch campo1.
	_, closed, err = service.Match(context.Background(), "campo1", "2025-06-02", "15:00")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestMatchNoWindows(t *testing.T) {
	repo := new(MockRepository)
	repo.On("WindowsCovering", mock.Anything, "2025-06-02").Return([]domain.ClosedSlot{}, nil)

	service := NewService(repo)

	_, closed, err := service.Match(context.Background(), "campo1", "2025-06-02", "10:00")
	require.NoError(t, err)
	assert.False(t, closed)
}

func TestCreateClosedSlotRejectsInvalidWindows(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	base := CreateClosedSlotRequest{
		FieldID:   "campo1",
		StartDate: "2025-06-02",
		EndDate:   "2025-06-03",
		StartTime: "10:00",
		EndTime:   "12:00",
	}

	// Inverted date range.
	req := base
	req.StartDate, req.EndDate = "2025-06-05", "2025-06-02"
	_, err := service.CreateClosedSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// Zero-length time range.
	req = base
	req.StartTime, req.EndTime = "10:00", "10:00"
	_, err = service.CreateClosedSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// Inverted time range.
	req = base
	req.StartTime, req.EndTime = "12:00", "10:00"
	_, err = service.CreateClosedSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidWindow)

	// Garbage date.
	req = base
	req.StartDate = "not-a-date"
	_, err = service.CreateClosedSlot(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidDate)

	repo.AssertNotCalled(t, "CreateClosedSlot", mock.Anything, mock.Anything)
}

func TestCreateClosedSlotStoresValidWindow(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateClosedSlot", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo)

	cs, err := service.CreateClosedSlot(context.Background(), CreateClosedSlotRequest{
		FieldID:   domain.AllFields,
		StartDate: "2025-06-02",
		EndDate:   "2025-06-02",
		StartTime: "10:00",
		EndTime:   "12:00",
		Reason:    "tournament",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AllFields, cs.FieldID)
	repo.AssertExpectations(t)
}

func TestCreateClosedRangeExpandsDays(t *testing.T) {
	repo := new(MockRepository)
	repo.On("CreateClosedDays", mock.Anything, mock.MatchedBy(func(days []domain.ClosedDay) bool {
		return len(days) == 3 &&
			days[0].Date == "2025-06-02" &&
			days[1].Date == "2025-06-03" &&
			days[2].Date == "2025-06-04"
	})).Return(nil)

	service := NewService(repo)

	n, err := service.CreateClosedRange(context.Background(), "2025-06-02", "2025-06-04", "holidays")
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	repo.AssertExpectations(t)
}

func TestCreateClosedRangeRejectsInvertedRange(t *testing.T) {
	repo := new(MockRepository)
	service := NewService(repo)

	_, err := service.CreateClosedRange(context.Background(), "2025-06-04", "2025-06-02", "")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
