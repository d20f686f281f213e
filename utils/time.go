package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ParseDate accepts the flexible date formats clients send ("2025-06-01",
// "01/06/2025", "June 1 2025", unix seconds) and resolves them in the
// given location. A nil location means local time.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	if ts, err := strconv.ParseInt(value, 10, 64); err == nil && ts > 1e9 {
		return time.Unix(ts, 0).In(loc), nil
	}

	return dateparse.ParseIn(value, loc)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayKey formats t as the canonical calendar-day key.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDurationMinutes turns a user-supplied duration string into
// minutes. Bare numbers are taken as minutes; otherwise Go duration
// syntax applies ("1h30m", "45m"). Empty input means no duration was
// recorded and yields nil.
func ParseDurationMinutes(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	if v, err := strconv.ParseFloat(value, 64); err == nil {
		if v < 0 {
			return nil, fmt.Errorf("negative duration: %s", value)
		}
		return &v, nil
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return nil, fmt.Errorf("unrecognized duration: %s", value)
	}
	if d < 0 {
		return nil, fmt.Errorf("negative duration: %s", value)
	}

	m := d.Minutes()
	return &m, nil
}
