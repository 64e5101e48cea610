package clock

import (
	"sync"
	"time"
)

// Clock supplies the current instant. Booking decisions ("today", slot
// expiry, closure evaluation) all go through it so tests can pin time.
type Clock interface {
	Now() time.Time
}

// System is the production clock, pinned to a fixed location so "today"
// does not drift with the host timezone.
type System struct {
	loc *time.Location
}

func NewSystem(tz string) (*System, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}
	return &System{loc: loc}, nil
}

func (s *System) Now() time.Time { return time.Now().In(s.loc) }

// Fake is a controllable clock for tests.
type Fake struct {
	mu      sync.Mutex
	current time.Time
}

func NewFake(start time.Time) *Fake {
	return &Fake{current: start}
}

func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	f.current = t
	f.mu.Unlock()
}

// Advance moves the clock forward and returns the updated time.
func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	f.current = f.current.Add(d)
	updated := f.current
	f.mu.Unlock()
	return updated
}
