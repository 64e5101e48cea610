package booking

import (
	"context"
	"sync"
	"time"

	"fieldbook/internal/clock"
	"fieldbook/internal/slot"
)

// DefaultReaperCooldown matches the one-minute cleanup cadence the booking
// paths were designed around.
const DefaultReaperCooldown = 60 * time.Second

// Reaper purges reservations whose slot has fully elapsed. It runs
// opportunistically at the start of ledger reads and writes instead of on
// its own timer; a mutex-guarded cooldown keeps a request burst from
// hammering the store. Deletion is idempotent and purely corrective, so in
// a multi-instance deployment each instance reaping on its own cooldown is
// harmless.
type Reaper struct {
	mu       sync.Mutex
	lastRun  time.Time
	cooldown time.Duration

	reservations ReservationRepository
	configs      ConfigProvider
	clk          clock.Clock
}

func NewReaper(reservations ReservationRepository, configs ConfigProvider, clk clock.Clock, cooldown time.Duration) *Reaper {
	if cooldown <= 0 {
		cooldown = DefaultReaperCooldown
	}
	return &Reaper{
		cooldown:     cooldown,
		reservations: reservations,
		configs:      configs,
		clk:          clk,
	}
}

// Run deletes every expired reservation in one batched statement. Within
// the cooldown window it is a no-op, including for overlapping concurrent
// calls: the first caller claims the window before touching the store.
func (r *Reaper) Run(ctx context.Context) error {
	now := r.clk.Now()

	r.mu.Lock()
	if !r.lastRun.IsZero() && now.Sub(r.lastRun) < r.cooldown {
		r.mu.Unlock()
		return nil
	}
	r.lastRun = now
	r.mu.Unlock()

	cfg, err := r.configs.Get(ctx)
	if err != nil {
		return err
	}

	today := slot.Date(now)
	nowMinute := slot.NowMinute(now)

	candidates, err := r.reservations.ListThrough(ctx, today)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(candidates))
	for _, res := range candidates {
		if res.Date < today {
			ids = append(ids, res.ID)
			continue
		}
		start, err := slot.MinuteOfDay(res.Time)
		if err != nil {
			continue
		}
		if start+cfg.SlotMinutes <= nowMinute {
			ids = append(ids, res.ID)
		}
	}

	if len(ids) == 0 {
		return nil
	}
	return r.reservations.DeleteByIDs(ctx, ids)
}
