// Package timeofday converts slot times between the 24-hour storage format
// ("14:00") and the 12-hour display format ("2:00 PM").
package timeofday

import (
	"fmt"
	"strconv"
	"strings"
)

const Layout = "15:04"

// Normalize returns s as a 24-hour "HH:MM" string. It accepts "H:MM",
// "HH:MM", "HH:MM:SS" and 12-hour "H:MM AM" in any letter case.
func Normalize(s string) (string, error) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if raw == "" {
		return "", fmt.Errorf("empty time")
	}

	period := ""
	switch {
	case strings.HasSuffix(raw, "AM"):
		period = "AM"
	case strings.HasSuffix(raw, "PM"):
		period = "PM"
	}
	if period != "" {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, period))
	}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return "", fmt.Errorf("invalid time %q", s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || len(parts[0]) > 2 || !digits(parts[0]) {
		return "", fmt.Errorf("invalid hour in %q", s)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 || !digits(parts[1]) || minutes < 0 || minutes > 59 {
		return "", fmt.Errorf("invalid minutes in %q", s)
	}
	if len(parts) == 3 {
		if sec, err := strconv.Atoi(parts[2]); err != nil || !digits(parts[2]) || sec < 0 || sec > 59 {
			return "", fmt.Errorf("invalid seconds in %q", s)
		}
	}

	if period != "" {
		if hours < 1 || hours > 12 {
			return "", fmt.Errorf("invalid 12-hour time %q", s)
		}
		if period == "PM" && hours != 12 {
			hours += 12
		}
		if period == "AM" && hours == 12 {
			hours = 0
		}
	}
	if hours < 0 || hours > 23 {
		return "", fmt.Errorf("invalid hour in %q", s)
	}

	return fmt.Sprintf("%02d:%02d", hours, minutes), nil
}

// NormalizeAll normalizes every entry, failing on the first invalid one.
func NormalizeAll(in []string) ([]string, error) {
	out := make([]string, 0, len(in))
	for _, s := range in {
		n, err := Normalize(s)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// digits reports whether s is non-empty and made only of ASCII digits.
// strconv.Atoi alone would accept a leading sign.
func digits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// To12h formats a time for display, e.g. "09:00" -> "9:00 AM".
func To12h(s string) (string, error) {
	n, err := Normalize(s)
	if err != nil {
		return "", err
	}

	hours, _ := strconv.Atoi(n[:2])
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}
	display := hours % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, n[3:], period), nil
}

// From12h parses a display time back to "HH:MM".
func From12h(s string) (string, error) {
	return Normalize(s)
}
