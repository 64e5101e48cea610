package booking

import (
	"context"
	"errors"
	"log"
	"strings"

	"fieldbook/internal/clock"
	"fieldbook/internal/domain"
	"fieldbook/internal/slot"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Service struct {
	reservations ReservationRepository
	users        UserRepository
	configs      ConfigProvider
	closures     ClosureChecker
	events       EventPublisher
	reaper       *Reaper
	clk          clock.Clock
}

func NewService(
	reservations ReservationRepository,
	users UserRepository,
	configs ConfigProvider,
	closures ClosureChecker,
	events EventPublisher,
	reaper *Reaper,
	clk clock.Clock,
) *Service {
	return &Service{
		reservations: reservations,
		users:        users,
		configs:      configs,
		closures:     closures,
		events:       events,
		reaper:       reaper,
		clk:          clk,
	}
}

// Create runs the full validation chain and commits the booking. Checks
// short-circuit in a fixed order so rejections are deterministic and the
// cheap ones run first: closed day, closure window, credits, daily cap,
// weekly cap, active cap, then the atomic insert+debit. Admins skip
// everything except the slot-uniqueness insert itself.
func (s *Service) Create(ctx context.Context, username string, isAdmin bool, req CreateReservationRequest) (*domain.Reservation, error) {
	if !slot.ValidDate(req.Date) || !slot.ValidTime(req.Time) || req.FieldID == "" {
		return nil, ErrValidation
	}

	// Opportunistic cleanup keeps elapsed slots from blocking rebooking.
	s.reap(ctx)

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if err := s.validate(ctx, username, cfg, req); err != nil {
			return nil, err
		}
	}

	res := &domain.Reservation{
		ID:       domain.SlotID(req.FieldID, req.Date, req.Time),
		FieldID:  req.FieldID,
		Date:     req.Date,
		Time:     req.Time,
		Username: username,
	}

	debit := username
	if isAdmin {
		debit = ""
	}
	if err := s.reservations.Create(ctx, res, debit); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlotTaken
		}
		return nil, err
	}

	if s.events != nil {
		s.events.ReservationCreated(res)
	}
	return res, nil
}

// reap runs the expiry sweep best-effort: a failed sweep must never fail
// the request that triggered it, but it is worth a log line.
func (s *Service) reap(ctx context.Context) {
	if err := s.reaper.Run(ctx); err != nil {
		log.Printf("reaper_run_failed error=%q", err.Error())
	}
}

func (s *Service) validate(ctx context.Context, username string, cfg *domain.Config, req CreateReservationRequest) error {
	closedDay, err := s.closures.IsClosedDay(ctx, req.Date)
	if err != nil {
		return err
	}
	if closedDay {
		return ErrDayClosed
	}

	_, closed, err := s.closures.Match(ctx, req.FieldID, req.Date, req.Time)
	if err != nil {
		return err
	}
	if closed {
		return ErrFieldClosed
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.Credits <= 0 {
		return ErrNoCredits
	}

	daily, err := s.reservations.CountByUserOnDate(ctx, username, req.Date)
	if err != nil {
		return err
	}
	if daily >= int64(cfg.MaxPerDay) {
		return ErrMaxPerDay
	}

	monday, sunday, err := slot.WeekBounds(req.Date)
	if err != nil {
		return err
	}
	weekly, err := s.reservations.CountByUserBetween(ctx, username, monday, sunday)
	if err != nil {
		return err
	}
	if weekly >= int64(cfg.MaxPerWeek) {
		return ErrMaxPerWeek
	}

	// Only future bookings count as active; today's own slots do not.
	today := slot.Date(s.clk.Now())
	active, err := s.reservations.CountByUserAfter(ctx, username, today)
	if err != nil {
		return err
	}
	if active >= int64(cfg.MaxActive) {
		return ErrActiveLimit
	}

	return nil
}

// Cancel deletes a reservation. Deleting one that no longer exists is a
// success, so retries and double-clicks are harmless. Cancelling never
// refunds the debited credit; admins fix balances by hand when needed.
func (s *Service) Cancel(ctx context.Context, username string, isAdmin bool, id string) error {
	res, err := s.reservations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}

	if !isAdmin && res.Username != username {
		return ErrNotAllowed
	}

	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	if s.events != nil {
		s.events.ReservationCancelled(res)
	}
	return nil
}

// ListForDate triggers the reaper first so callers never see slots that
// have already elapsed.
func (s *Service) ListForDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	if !slot.ValidDate(date) {
		return nil, ErrValidation
	}
	s.reap(ctx)
	return s.reservations.ListByDate(ctx, date)
}

// Availability cross-references the generated slot sequence with the
// ledger and the closure registry for one field and date.
func (s *Service) Availability(ctx context.Context, fieldID, date string) ([]SlotStatus, error) {
	if !slot.ValidDate(date) || fieldID == "" {
		return nil, ErrValidation
	}
	s.reap(ctx)

	cfg, err := s.configs.Get(ctx)
	if err != nil {
		return nil, err
	}
	ranges, err := cfg.Ranges()
	if err != nil {
		return nil, err
	}

	taken := map[string]string{}
	reservations, err := s.reservations.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	for _, r := range reservations {
		if r.FieldID == fieldID {
			taken[r.Time] = r.Username
		}
	}

	dayClosed, err := s.closures.IsClosedDay(ctx, date)
	if err != nil {
		return nil, err
	}

	times := slot.Times(ranges, cfg.SlotMinutes)
	out := make([]SlotStatus, 0, len(times))
	for _, t := range times {
		st := SlotStatus{Time: t, FieldID: fieldID, SlotDate: date}
		if by, ok := taken[t]; ok {
			st.Taken = true
			st.TakenBy = by
		}
		if dayClosed {
			st.Closed = true
			st.Reason = "day closed"
		} else {
			reason, closed, err := s.closures.Match(ctx, fieldID, date, t)
			if err != nil {
				return nil, err
			}
			if closed {
				st.Closed = true
				st.Reason = reason
			}
		}
		out = append(out, st)
	}
	return out, nil
}

// isUniqueViolation recognises the store's create-if-absent conflict for
// both backends: pg error 23505 or gorm's translated duplicate-key error.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
