package closure

import (
	"context"

	"fieldbook/internal/domain"
	"fieldbook/internal/slot"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListClosedDays(ctx context.Context) ([]domain.ClosedDay, error) {
	return s.repo.ListClosedDays(ctx)
}

func (s *Service) IsClosedDay(ctx context.Context, date string) (bool, error) {
	return s.repo.IsClosedDay(ctx, date)
}

func (s *Service) CreateClosedDay(ctx context.Context, date, reason string) error {
	if !slot.ValidDate(date) {
		return ErrInvalidDate
	}
	return s.repo.CreateClosedDays(ctx, []domain.ClosedDay{{Date: date, Reason: reason}})
}

// CreateClosedRange closes every day in [start, end] inclusive.
func (s *Service) CreateClosedRange(ctx context.Context, start, end, reason string) (int, error) {
	if !slot.ValidDate(start) || !slot.ValidDate(end) || start > end {
		return 0, ErrInvalidDate
	}

	days := make([]domain.ClosedDay, 0, 8)
	for d := start; d <= end; {
		days = append(days, domain.ClosedDay{Date: d, Reason: reason})
		next, err := slot.AddDays(d, 1)
		if err != nil {
			return 0, err
		}
		d = next
	}
	if err := s.repo.CreateClosedDays(ctx, days); err != nil {
		return 0, err
	}
	return len(days), nil
}

func (s *Service) DeleteClosedDay(ctx context.Context, date string) error {
	return s.repo.DeleteClosedDay(ctx, date)
}

func (s *Service) ListClosedSlots(ctx context.Context) ([]domain.ClosedSlot, error) {
	return s.repo.ListClosedSlots(ctx)
}

// CreateClosedSlot validates and stores a closure window. Inverted ranges
// are rejected outright, never silently corrected.
func (s *Service) CreateClosedSlot(ctx context.Context, req CreateClosedSlotRequest) (*domain.ClosedSlot, error) {
	if !slot.ValidDate(req.StartDate) || !slot.ValidDate(req.EndDate) {
		return nil, ErrInvalidDate
	}
	if req.StartDate > req.EndDate {
		return nil, ErrInvalidWindow
	}
	startMin, err := slot.MinuteOfDay(req.StartTime)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	endMin, err := slot.MinuteOfDay(req.EndTime)
	if err != nil {
		return nil, ErrInvalidWindow
	}
	if startMin >= endMin {
		return nil, ErrInvalidWindow
	}

	cs := &domain.ClosedSlot{
		FieldID:   req.FieldID,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	}
	if err := s.repo.CreateClosedSlot(ctx, cs); err != nil {
		return nil, err
	}
	return cs, nil
}

func (s *Service) DeleteClosedSlot(ctx context.Context, id string) error {
	return s.repo.DeleteClosedSlot(ctx, id)
}

// Match reports whether (fieldID, date, timeStr) falls inside any closure
// window and returns that window's reason. The date range is inclusive on
// both ends; the time range is half-open, so a window ending at 12:00 does
// not block a slot starting exactly at 12:00.
func (s *Service) Match(ctx context.Context, fieldID, date, timeStr string) (string, bool, error) {
	minute, err := slot.MinuteOfDay(timeStr)
	if err != nil {
		return "", false, err
	}

	windows, err := s.repo.WindowsCovering(ctx, date)
	if err != nil {
		return "", false, err
	}

	for _, w := range windows {
		if w.FieldID != domain.AllFields && w.FieldID != fieldID {
			continue
		}
		start, err := slot.MinuteOfDay(w.StartTime)
		if err != nil {
			continue
		}
		end, err := slot.MinuteOfDay(w.EndTime)
		if err != nil {
			continue
		}
		if minute >= start && minute < end {
			return w.Reason, true, nil
		}
	}
	return "", false, nil
}
