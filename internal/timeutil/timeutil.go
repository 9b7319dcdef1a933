// Package timeutil converts between absolute UTC instants and a location's
// local wall-clock time. Conversion always goes through the zone database,
// never manual offset arithmetic, so daylight-saving transitions are handled
// correctly.
package timeutil

import (
	"fmt"
	"time"
)

const layout = "2006-01-02 15:04"

// FormatLocal renders a UTC instant as local wall-clock time in the given
// zone, truncated to minute precision.
func FormatLocal(utc time.Time, loc *time.Location) string {
	return utc.In(loc).Format(layout)
}

// LoadZone resolves an IANA zone identifier.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// ValidZone reports whether name is a resolvable IANA zone identifier.
// Group timezones are validated with this at creation time; conversion
// assumes a valid identifier.
func ValidZone(name string) bool {
	if name == "" {
		return false
	}
	_, err := time.LoadLocation(name)
	return err == nil
}

// ParseUTC parses a "YYYY-MM-DD HH:MM" wall-clock string as a UTC instant.
func ParseUTC(s string) (time.Time, error) {
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse time %q (expected YYYY-MM-DD HH:MM): %w", s, err)
	}
	return t.UTC(), nil
}
