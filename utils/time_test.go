package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	loc := time.UTC

	parsed, err := ParseDate("2025-06-01", loc)
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), parsed)

	parsed, err = ParseDate("June 1, 2025", loc)
	assert.NoError(t, err)
	assert.Equal(t, "2025-06-01", DayKey(parsed))

	_, err = ParseDate("", loc)
	assert.Error(t, err)

	_, err = ParseDate("not a date", loc)
	assert.Error(t, err)
}

func TestParseDateUnixSeconds(t *testing.T) {
	ts := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	parsed, err := ParseDate("1748772000", time.UTC)
	assert.NoError(t, err)
	assert.Equal(t, ts.Unix(), parsed.Unix())
}

func TestStartOfDay(t *testing.T) {
	zone := time.FixedZone("ACDT", 10*3600+1800)
	at := time.Date(2025, 6, 1, 17, 45, 12, 0, zone)

	start := StartOfDay(at)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, zone), start)
}

func TestParseDurationMinutes(t *testing.T) {
	m, err := ParseDurationMinutes("90")
	assert.NoError(t, err)
	assert.Equal(t, 90.0, *m)

	m, err = ParseDurationMinutes("1h30m")
	assert.NoError(t, err)
	assert.Equal(t, 90.0, *m)

	m, err = ParseDurationMinutes("45m")
	assert.NoError(t, err)
	assert.Equal(t, 45.0, *m)

	m, err = ParseDurationMinutes("")
	assert.NoError(t, err)
	assert.Nil(t, m)

	_, err = ParseDurationMinutes("-10")
	assert.Error(t, err)

	_, err = ParseDurationMinutes("soon")
	assert.Error(t, err)
}
