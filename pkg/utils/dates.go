package utils

import (
	"strings"
	"time"
)

// Accepted calendar-date layouts, tried in order. Supplier payloads are not
// consistent about carrying a time component.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"02.01.2006",
}

// ParseDate parses a calendar date in any accepted layout, truncated to the
// day in UTC. Returns the zero time when the value is empty or unparseable.
func ParseDate(value string) time.Time {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
		}
	}
	return time.Time{}
}

// ClockFraction parses an HH:MM clock value and returns it as a fraction of
// the day in [0,1). The second result is false when the value is missing or
// malformed.
func ClockFraction(value string) (float64, bool) {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0, false
	}
	t, err := time.Parse("15:04", v)
	if err != nil {
		return 0, false
	}
	seconds := t.Hour()*3600 + t.Minute()*60
	return float64(seconds) / 86400.0, true
}
