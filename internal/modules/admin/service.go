package admin

import (
	"context"
	"encoding/json"
	"errors"

	"fieldbook/internal/domain"
	"fieldbook/internal/slot"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type Service struct {
	users   UserRepository
	configs ConfigRepository
	fields  FieldRepository
}

func NewService(users UserRepository, configs ConfigRepository, fields FieldRepository) *Service {
	return &Service{users: users, configs: configs, fields: fields}
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// AdjustCredits applies a signed delta to one user's balance. The credit
// ledger has exactly two writers: the booking debit and this adjustment.
func (s *Service) AdjustCredits(ctx context.Context, username string, delta int) (*domain.User, error) {
	if delta == 0 {
		return nil, ErrValidation
	}
	if err := s.users.AdjustCredits(ctx, username, delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.users.GetByUsername(ctx, username)
}

func (s *Service) AddCreditsToAll(ctx context.Context, delta int) error {
	if delta <= 0 {
		return ErrValidation
	}
	return s.users.AddCreditsToAll(ctx, delta)
}

func (s *Service) SetPassword(ctx context.Context, username, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.users.UpdatePassword(ctx, username, string(hash)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) SetDisabled(ctx context.Context, username string, disabled bool) error {
	if err := s.users.SetDisabled(ctx, username, disabled); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) RenameUser(ctx context.Context, oldName, newName string) error {
	if oldName == newName {
		return ErrValidation
	}
	if err := s.users.Rename(ctx, oldName, newName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func (s *Service) GetConfig(ctx context.Context) (*domain.Config, error) {
	return s.configs.Get(ctx)
}

// PublicConfig assembles the unauthenticated configuration view.
func (s *Service) PublicConfig(ctx context.Context) (*PublicConfig, error) {
	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	ranges, err := cfg.Ranges()
	if err != nil {
		return nil, err
	}
	fields, err := s.fields.List(ctx)
	if err != nil {
		return nil, err
	}
	return &PublicConfig{
		SlotMinutes: cfg.SlotMinutes,
		OpenRanges:  ranges,
		MaxPerDay:   cfg.MaxPerDay,
		MaxPerWeek:  cfg.MaxPerWeek,
		MaxActive:   cfg.MaxActive,
		NotesText:   cfg.NotesText,
		Gallery:     cfg.GalleryImages(),
		Fields:      fields,
	}, nil
}

// UpdateConfig validates and persists the tunables. Each open range must
// be a real, non-inverted HH:MM window.
func (s *Service) UpdateConfig(ctx context.Context, req UpdateConfigRequest) (*domain.Config, error) {
	for _, r := range req.OpenRanges {
		start, err := slot.MinuteOfDay(r.Start)
		if err != nil {
			return nil, ErrValidation
		}
		end, err := slot.MinuteOfDay(r.End)
		if err != nil {
			return nil, ErrValidation
		}
		if start >= end {
			return nil, ErrValidation
		}
	}

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	cfg.SlotMinutes = req.SlotMinutes
	cfg.MaxPerDay = req.MaxPerDay
	cfg.MaxPerWeek = req.MaxPerWeek
	cfg.MaxActive = req.MaxActive
	cfg.NotesText = req.NotesText
	if err := cfg.SetRanges(req.OpenRanges); err != nil {
		return nil, err
	}
	if req.Gallery != nil {
		b, err := json.Marshal(req.Gallery)
		if err != nil {
			return nil, err
		}
		cfg.Gallery = string(b)
	}

	if err := s.configs.Update(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (s *Service) ListFields(ctx context.Context) ([]domain.Field, error) {
	return s.fields.List(ctx)
}

func (s *Service) CreateField(ctx context.Context, req CreateFieldRequest) (*domain.Field, error) {
	f := &domain.Field{ID: req.ID, Name: req.Name, Position: req.Position}
	if err := s.fields.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *Service) DeleteField(ctx context.Context, id string) error {
	return s.fields.Delete(ctx, id)
}
