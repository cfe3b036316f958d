// Package biztime keeps every stored timestamp in UTC while letting date-only
// input (expected stage dates, contract windows) be read in the business
// timezone configured for the deployment.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

// DefaultTimezone is used when no business timezone is configured.
const DefaultTimezone = "UTC"

const dateLayout = "2006-01-02"

var (
	bizLocation *time.Location
	locMu       sync.RWMutex
)

// Init sets the business timezone. An empty name selects DefaultTimezone.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("failed to load business timezone %q: %w", tz, err)
	}
	locMu.Lock()
	bizLocation = loc
	locMu.Unlock()
	return nil
}

// Location returns the business timezone, UTC until Init succeeds.
func Location() *time.Location {
	locMu.RLock()
	defer locMu.RUnlock()
	if bizLocation == nil {
		return time.UTC
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate accepts either a calendar date (YYYY-MM-DD, read as business
// timezone midnight) or an RFC3339 timestamp, and returns UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateLayout, s, Location()); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC3339", s)
	}
	return t.UTC(), nil
}

// EndOfDayUTC returns the last instant of t's business day, in UTC.
func EndOfDayUTC(t time.Time) time.Time {
	b := t.In(Location())
	return time.Date(b.Year(), b.Month(), b.Day(), 23, 59, 59, 999999999, Location()).UTC()
}

// FormatDate renders t as a business timezone calendar date.
func FormatDate(t time.Time) string {
	return t.In(Location()).Format(dateLayout)
}

// FormatMetadataTime formats a UTC time for storage in event metadata.
func FormatMetadataTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
