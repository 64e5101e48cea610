// Package slot holds the pure date/time arithmetic shared by the booking
// validator, the closure matcher and the availability listing.
package slot

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"fieldbook/internal/domain"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	if !dateRe.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// ValidTime reports whether s is a valid HH:MM wall-clock time.
func ValidTime(s string) bool {
	_, err := MinuteOfDay(s)
	return err == nil
}

// MinuteOfDay converts "HH:MM" to minutes since midnight. Both fields
// must be exactly two digits; anything else is rejected.
func MinuteOfDay(s string) (int, error) {
	if !timeRe.MatchString(s) {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	if h > 23 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return h*60 + m, nil
}

// FormatMinute renders minutes since midnight as "HH:MM".
func FormatMinute(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Date renders t as a calendar date in its own location.
func Date(t time.Time) string { return t.Format(DateLayout) }

// NowMinute returns the minute-of-day of t.
func NowMinute(t time.Time) int { return t.Hour()*60 + t.Minute() }

// WeekBounds returns the Monday and Sunday of the week containing date,
// both inclusive. The week boundary is fixed Monday-start regardless of
// locale; quota behavior depends on it.
func WeekBounds(date string) (string, string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", "", err
	}
	offset := (int(d.Weekday()) + 6) % 7 // Monday = 0
	monday := d.AddDate(0, 0, -offset)
	sunday := monday.AddDate(0, 0, 6)
	return monday.Format(DateLayout), sunday.Format(DateLayout), nil
}

// AddDays returns date shifted by n calendar days.
func AddDays(date string, n int) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", err
	}
	return d.AddDate(0, 0, n).Format(DateLayout), nil
}

// Times generates the ordered slot-start times for a day: for each open
// range, start at the range start and step by slotMinutes, stopping before
// a slot would end past the range end. Ranges are concatenated in the
// configured order; overlapping ranges are the admin's problem.
func Times(ranges []domain.OpenRange, slotMinutes int) []string {
	if slotMinutes <= 0 {
		return nil
	}
	out := make([]string, 0, 16)
	for _, r := range ranges {
		start, err := MinuteOfDay(r.Start)
		if err != nil {
			continue
		}
		end, err := MinuteOfDay(r.End)
		if err != nil {
			continue
		}
		for m := start; m+slotMinutes <= end; m += slotMinutes {
			out = append(out, FormatMinute(m))
		}
	}
	return out
}
