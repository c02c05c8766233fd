package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// Layouts accepted by ParseUTC for timestamps that arrive without a zone
// designator. The dashboard and older mobile clients send the space-separated
// form; newer clients send the T-separated form.
var nakedLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseUTC parses a timestamp string into a UTC instant. A string carrying an
// explicit zone (Z or a numeric offset) is honored and converted to UTC. A
// string without one is interpreted as UTC, never as the process-local zone:
// deployments run in mixed timezones and local inference drifts silently.
func ParseUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}

	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}

	for _, layout := range nakedLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// DayBoundary returns a boundary instant of the UTC calendar day containing t:
// 23:59:59.000 UTC when endOfDay is true, 00:00:00.000 UTC otherwise.
// Pure: identical input always yields identical output.
func DayBoundary(t time.Time, endOfDay bool) time.Time {
	u := t.UTC()
	if endOfDay {
		return time.Date(u.Year(), u.Month(), u.Day(), 23, 59, 59, 0, time.UTC)
	}
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// EndOfDayUTC returns 23:59:59 UTC of the calendar day containing t.
func EndOfDayUTC(t time.Time) time.Time {
	return DayBoundary(t, true)
}

// StartOfDayUTC returns midnight UTC of the calendar day containing t.
func StartOfDayUTC(t time.Time) time.Time {
	return DayBoundary(t, false)
}
