package utils

import (
	"fmt"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// ParseDate accepts the wire formats the booking form and admin panel send:
// a plain date or a full RFC 3339 timestamp. The result is truncated to the
// calendar day in UTC.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", s)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// FormatDateTR renders a date the way the admin panel shows it, e.g.
// "02.01.2006".
func FormatDateTR(t time.Time) string {
	return t.Format("02.01.2006")
}
