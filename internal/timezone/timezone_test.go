package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation_FallsBackToDefault(t *testing.T) {
	assert.Equal(t, "America/Bogota", Location("").String())
	assert.Equal(t, "America/Bogota", Location("Not/AZone").String())
	assert.Equal(t, "Europe/Madrid", Location("Europe/Madrid").String())
}

func TestToday_UsesTenantCalendar(t *testing.T) {
	// 02:00 UTC on June 10 is still June 9 in Bogota (UTC-5).
	now := time.Date(2025, 6, 10, 2, 0, 0, 0, time.UTC)

	today := Today(now, "America/Bogota")
	assert.Equal(t, 9, today.Day())
	assert.Equal(t, 0, today.Hour())

	today = Today(now, "Europe/Madrid")
	assert.Equal(t, 10, today.Day())
}

func TestWeekdayName(t *testing.T) {
	d, err := ParseDate("2025-06-10", "America/Bogota")
	require.NoError(t, err)
	assert.Equal(t, "martes", WeekdayName(d))

	d, err = ParseDate("2025-06-15", "Asia/Tokyo")
	require.NoError(t, err)
	assert.Equal(t, "domingo", WeekdayName(d))
}

func TestParseDate_Invalid(t *testing.T) {
	_, err := ParseDate("10/06/2025", "")
	assert.Error(t, err)
}

func TestWeekdayNames_ReturnsCopy(t *testing.T) {
	names := WeekdayNames()
	names[0] = "x"
	assert.Equal(t, "domingo", WeekdayNames()[0])
}
