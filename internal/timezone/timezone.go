package timezone

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

var defaultTimezone = "America/Bogota"

var weekdayNames = [...]string{"domingo", "lunes", "martes", "miercoles", "jueves", "viernes", "sabado"}

// SetDefault changes the zone used for tenants without a valid timezone.
func SetDefault(tz string) {
	if IsValid(tz) {
		defaultTimezone = tz
	}
}

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(defaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// Today truncates now to midnight of the tenant-local calendar day.
func Today(now time.Time, tz string) time.Time {
	local := now.In(Location(tz))
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, local.Location())
}

// ParseDate parses "YYYY-MM-DD" as midnight in the tenant zone.
func ParseDate(s string, tz string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, strings.TrimSpace(s), Location(tz))
}

// WeekdayName returns the Spanish weekday key for a calendar date. Only the
// year/month/day fields are used.
func WeekdayName(date time.Time) string {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return weekdayNames[d.Weekday()]
}

// WeekdayNames lists the keys of a weekly schedule, Sunday first.
func WeekdayNames() []string {
	out := make([]string, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}
