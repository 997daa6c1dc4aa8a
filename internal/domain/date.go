package domain

import (
	"fmt"
	"time"
)

// Date is a calendar day with no time of day and no zone. The zero value
// means "absent".
type Date struct {
	t time.Time // midnight UTC
}

// NewDate returns the given calendar day. Out-of-range values are normalized
// the way time.Date normalizes them.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays moves the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0 or +1. An absent date sorts before any present one.
func (d Date) Compare(o Date) int {
	return d.t.Compare(o.t)
}

// At returns the instant of the given wall-clock time on this day in loc.
func (d Date) At(c Clock, loc *time.Location) time.Time {
	y, m, day := d.t.Date()
	return time.Date(y, m, day, c.Hour(), c.Minute(), 0, 0, loc)
}

// String returns YYYY-MM-DD, or "" for the zero Date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateLayout)
}

// Display formats the date as "Jan 2, 2006".
func (d Date) Display() string {
	if d.IsZero() {
		return "N/A"
	}
	return d.t.Format("Jan 2, 2006")
}

// Clock is a wall-clock time of day at minute resolution. The zero value
// means "absent"; 00:00 is a valid, present clock.
type Clock struct {
	minutes int
	set     bool
}

func clockAt(minutes int) Clock {
	return Clock{minutes: minutes, set: true}
}

// NewClock builds a Clock from an hour (0..23) and minute (0..59).
func NewClock(hour, minute int) (Clock, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return clockAt(hour*60 + minute), nil
}

// ClockOf returns the minute of the day of t in t's own location.
func ClockOf(t time.Time) Clock {
	return clockAt(t.Hour()*60 + t.Minute())
}

func (c Clock) IsZero() bool { return !c.set }
func (c Clock) Hour() int    { return c.minutes / 60 }
func (c Clock) Minute() int  { return c.minutes % 60 }

// Minutes returns minutes since midnight.
func (c Clock) Minutes() int { return c.minutes }

// String returns HH:MM, or "" when absent.
func (c Clock) String() string {
	if !c.set {
		return ""
	}
	return FormatMinutes(c.minutes)
}

// Display renders the clock in 12-hour form, e.g. "8:05 AM".
func (c Clock) Display() string {
	if !c.set {
		return "N/A"
	}
	ampm := "AM"
	if c.Hour() >= 12 {
		ampm = "PM"
	}
	h := c.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), ampm)
}
