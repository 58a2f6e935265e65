// Package biztime provides utilities for business timezone calculations.
// Storage and transport use UTC; the business timezone only decides where a calendar
// day starts and ends (date-range filters, "today" for history rows).
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

// DefaultTimezone is the default business timezone.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

var (
	mu          sync.RWMutex
	bizLocation *time.Location
)

// Init sets the business timezone. An empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", tz, err)
	}
	mu.Lock()
	bizLocation = loc
	mu.Unlock()
	return nil
}

// Location returns the business timezone, initializing the default on first use.
func Location() *time.Location {
	mu.RLock()
	loc := bizLocation
	mu.RUnlock()
	if loc != nil {
		return loc
	}
	if err := Init(""); err != nil {
		panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
	}
	return Location()
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// Today returns the current business calendar date at UTC midnight, the representation
// used for date-only columns.
func Today() time.Time {
	return DateOf(NowUTC())
}

// DateOf returns the business calendar date of t at UTC midnight.
func DateOf(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
}

// StartOfDayUTC returns the start of the business day containing t, in UTC.
func StartOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses YYYY-MM-DD as a business calendar date at UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// DayRangeUTC converts an inclusive calendar date range into a half-open UTC instant range
// [from, to). Nil bounds produce zero times.
func DayRangeUTC(start, end *time.Time) (from, to time.Time) {
	if start != nil {
		from = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, Location()).UTC()
	}
	if end != nil {
		to = time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, Location()).UTC()
	}
	return from, to
}

// FormatWithOffset renders t shifted by a fixed number of hours from UTC.
func FormatWithOffset(t time.Time, offsetHours int, layout string) string {
	return t.UTC().Add(time.Duration(offsetHours) * time.Hour).Format(layout)
}
