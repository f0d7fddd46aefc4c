package kakeibo

import "time"

// Date is a journal date in one of the input forms the API accepts:
// a pre-formatted string, a calendar date, or a date-and-time value.
// All forms normalize to the canonical YYYY-MM-DD wire format.
type Date struct {
	str    string
	t      time.Time
	isTime bool
}

// DateString wraps an already-formatted date string. The string is forwarded
// as-is without validation; the server is the authority on its format.
func DateString(s string) Date {
	return Date{str: s}
}

// DateOf takes the calendar date of t. Any time-of-day component is discarded.
func DateOf(t time.Time) Date {
	return Date{t: t, isTime: true}
}

// DateYMD builds a calendar date from its components.
func DateYMD(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), isTime: true}
}

// String returns the canonical YYYY-MM-DD representation.
func (d Date) String() string {
	if d.isTime {
		return d.t.Format("2006-01-02")
	}
	return d.str
}

// IsZero reports whether d is the zero value (no date supplied).
func (d Date) IsZero() bool {
	return !d.isTime && d.str == ""
}
