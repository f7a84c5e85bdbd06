package models

import (
	"fmt"
	"time"

	// zone database for images without /usr/share/zoneinfo
	_ "time/tzdata"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// DateLayout is the calendar date format used by search criteria
const DateLayout = "2006-01-02"

// LoadLocation resolves a timezone name. An empty name is UTC; an unknown
// one returns UTC together with the error so callers can report it.
func LoadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC, fmt.Errorf("unknown timezone %q: %w", name, err)
	}
	return loc, nil
}
