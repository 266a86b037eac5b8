package appointment

import "time"

// BookingHorizonMonths is how far ahead a client may book.
const BookingHorizonMonths = 1

// WithinBookingWindow reports whether date lies in [today, today + 1 month].
// Both values must be calendar dates in the tenant's location.
func WithinBookingWindow(date, today time.Time) bool {
	d := truncateDay(date)
	start := truncateDay(today)
	end := start.AddDate(0, BookingHorizonMonths, 0)
	return !d.Before(start) && !d.After(end)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
