package admin

import (
	"context"
	"testing"

	"fieldbook/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

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

func (m *MockUserRepository) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserRepository) AdjustCredits(ctx context.Context, username string, delta int) error {
	args := m.Called(ctx, username, delta)
	return args.Error(0)
}

func (m *MockUserRepository) AddCreditsToAll(ctx context.Context, delta int) error {
	args := m.Called(ctx, delta)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, username, passwordHash string) error {
	args := m.Called(ctx, username, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) SetDisabled(ctx context.Context, username string, disabled bool) error {
	args := m.Called(ctx, username, disabled)
	return args.Error(0)
}

func (m *MockUserRepository) Rename(ctx context.Context, oldName, newName string) error {
	args := m.Called(ctx, oldName, newName)
	return args.Error(0)
}

type MockConfigRepository struct {
	mock.Mock
}

func (m *MockConfigRepository) Get(ctx context.Context) (*domain.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Config), args.Error(1)
}

func (m *MockConfigRepository) Update(ctx context.Context, cfg *domain.Config) error {
	args := m.Called(ctx, cfg)
	return args.Error(0)
}

type MockFieldRepository struct {
	mock.Mock
}

func (m *MockFieldRepository) List(ctx context.Context) ([]domain.Field, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Field), args.Error(1)
}

func (m *MockFieldRepository) Create(ctx context.Context, f *domain.Field) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFieldRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func baseConfig(t *testing.T) *domain.Config {
	t.Helper()
	cfg := &domain.Config{
		ID:          domain.ConfigID,
		SlotMinutes: 45,
		MaxPerDay:   1,
		MaxPerWeek:  3,
		MaxActive:   1,
		Gallery:     "[]",
	}
	require.NoError(t, cfg.SetRanges([]domain.OpenRange{{Name: "day", Start: "09:00", End: "20:00"}}))
	return cfg
}

func TestAdjustCreditsDelegatesDelta(t *testing.T) {
	users := new(MockUserRepository)
	users.On("AdjustCredits", mock.Anything, "mario", -2).Return(nil)
	users.On("GetByUsername", mock.Anything, "mario").Return(&domain.User{Username: "mario", Credits: 3}, nil)

	service := NewService(users, new(MockConfigRepository), new(MockFieldRepository))

	user, err := service.AdjustCredits(context.Background(), "mario", -2)
	require.NoError(t, err)
	assert.Equal(t, 3, user.Credits)
	users.AssertExpectations(t)
}

func TestAdjustCreditsRejectsZeroDelta(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockConfigRepository), new(MockFieldRepository))

	_, err := service.AdjustCredits(context.Background(), "mario", 0)
	assert.ErrorIs(t, err, ErrValidation)
	users.AssertNotCalled(t, "AdjustCredits", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdjustCreditsUnknownUser(t *testing.T) {
	users := new(MockUserRepository)
	users.On("AdjustCredits", mock.Anything, "ghost", 1).Return(gorm.ErrRecordNotFound)

	service := NewService(users, new(MockConfigRepository), new(MockFieldRepository))

	_, err := service.AdjustCredits(context.Background(), "ghost", 1)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddCreditsToAllRejectsNonPositive(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockConfigRepository), new(MockFieldRepository))

	assert.ErrorIs(t, service.AddCreditsToAll(context.Background(), 0), ErrValidation)
	assert.ErrorIs(t, service.AddCreditsToAll(context.Background(), -1), ErrValidation)
}

func TestUpdateConfigPersistsValidValues(t *testing.T) {
	configs := new(MockConfigRepository)
	configs.On("Get", mock.Anything).Return(baseConfig(t), nil)
	configs.On("Update", mock.Anything, mock.MatchedBy(func(cfg *domain.Config) bool {
		return cfg.SlotMinutes == 60 && cfg.MaxPerDay == 2
	})).Return(nil)

	service := NewService(new(MockUserRepository), configs, new(MockFieldRepository))

	cfg, err := service.UpdateConfig(context.Background(), UpdateConfigRequest{
		SlotMinutes: 60,
		OpenRanges:  []domain.OpenRange{{Name: "day", Start: "08:00", End: "22:00"}},
		MaxPerDay:   2,
		MaxPerWeek:  5,
		MaxActive:   2,
	})
	require.NoError(t, err)

	ranges, err := cfg.Ranges()
	require.NoError(t, err)
	assert.Equal(t, "08:00", ranges[0].Start)
	configs.AssertExpectations(t)
}

func TestUpdateConfigRejectsInvertedRange(t *testing.T) {
	configs := new(MockConfigRepository)
	service := NewService(new(MockUserRepository), configs, new(MockFieldRepository))

	_, err := service.UpdateConfig(context.Background(), UpdateConfigRequest{
		SlotMinutes: 60,
		OpenRanges:  []domain.OpenRange{{Name: "bad", Start: "20:00", End: "09:00"}},
		MaxPerDay:   1,
		MaxPerWeek:  1,
		MaxActive:   1,
	})
	assert.ErrorIs(t, err, ErrValidation)
	configs.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestPublicConfigIncludesFields(t *testing.T) {
	configs := new(MockConfigRepository)
	configs.On("Get", mock.Anything).Return(baseConfig(t), nil)

	fields := new(MockFieldRepository)
	fields.On("List", mock.Anything).Return([]domain.Field{
		{ID: "campo1", Name: "Campo 1", Position: 0},
		{ID: "campo2", Name: "Campo 2", Position: 1},
	}, nil)

	service := NewService(new(MockUserRepository), configs, fields)

	pc, err := service.PublicConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 45, pc.SlotMinutes)
	assert.Len(t, pc.Fields, 2)
	assert.Equal(t, "campo1", pc.Fields[0].ID)
}

func TestRenameUserRejectsNoop(t *testing.T) {
	users := new(MockUserRepository)
	service := NewService(users, new(MockConfigRepository), new(MockFieldRepository))

	assert.ErrorIs(t, service.RenameUser(context.Background(), "mario", "mario"), ErrValidation)
}
