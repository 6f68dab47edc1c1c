package domain

import (
	"fmt"
	"time"
)

// DateLayout is the on-disk and CLI date format.
const DateLayout = "2006-01-02"

// Date is a calendar day with no time-of-day component, stored as
// midnight UTC.
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar day in t's location.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// DaysUntil returns whole calendar days from now's day to d. Negative
// values mean d has passed.
func (d Date) DaysUntil(now time.Time) int {
	today := NewDate(now)
	return int(d.Sub(today.Time).Hours() / 24)
}

// DaysSince is the inverse of DaysUntil.
func (d Date) DaysSince(now time.Time) int {
	return -d.DaysUntil(now)
}
