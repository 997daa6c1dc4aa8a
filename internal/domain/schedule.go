package domain

import (
	"fmt"
	"sort"
	"time"
)

// EndDate returns the last active day (inclusive) of m's window. ok is false
// when the window has no upper bound.
func EndDate(m Medication) (end Date, ok bool) {
	if m.StartDate.IsZero() || m.DurationDays <= 0 {
		return Date{}, false
	}
	return m.StartDate.AddDays(m.DurationDays - 1), true
}

// IsActiveOn reports whether day falls inside m's active window
// [StartDate, StartDate+DurationDays-1]. Without a start date there is no
// lower bound and the duration is ignored.
func IsActiveOn(m Medication, day Date) bool {
	if !m.StartDate.IsZero() && day.Before(m.StartDate) {
		return false
	}
	if end, ok := EndDate(m); ok && day.After(end) {
		return false
	}
	return true
}

// SelectDue returns the medications that are active on day, scheduled for
// exactly the minute at, and not yet notified on day. Input order is kept.
// This is a point-in-time query meant to run once per minute.
func SelectDue(ms []Medication, day Date, at Clock) []Medication {
	due := make([]Medication, 0)
	for _, m := range ms {
		if m.Time.IsZero() || m.Time != at {
			continue
		}
		if m.LastNotified.Equal(day) {
			continue
		}
		if !IsActiveOn(m, day) {
			continue
		}
		due = append(due, m)
	}
	return due
}

// IsOverdue reports whether today's dose time has passed without being
// acknowledged. now is read in its own location. The comparison is strict:
// at exactly the scheduled instant the dose is not yet overdue.
func IsOverdue(m Medication, now time.Time) bool {
	if m.Time.IsZero() {
		return false
	}
	today := DateOf(now)
	if !IsActiveOn(m, today) {
		return false
	}
	scheduled := today.At(m.Time, now.Location())
	return now.After(scheduled) && !m.LastNotified.Equal(today)
}

// DoseState is the per-day state of a single medication.
type DoseState string

const (
	DoseInactive     DoseState = "inactive"
	DosePending      DoseState = "pending"
	DoseDue          DoseState = "due"
	DoseOverdue      DoseState = "overdue"
	DoseAcknowledged DoseState = "acknowledged"
)

// DoseStateAt classifies m at now. Within the scheduled minute the state is
// DoseDue even though IsOverdue may already be true after its first instant.
func DoseStateAt(m Medication, now time.Time) DoseState {
	today := DateOf(now)
	switch {
	case m.Time.IsZero() || !IsActiveOn(m, today):
		return DoseInactive
	case m.LastNotified.Equal(today):
		return DoseAcknowledged
	case ClockOf(now) == m.Time:
		return DoseDue
	case IsOverdue(m, now):
		return DoseOverdue
	default:
		return DosePending
	}
}

// Status is the lifecycle of a medication course relative to a day.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// StatusOn returns whether m's course has not started, is running, or has
// finished on day.
func StatusOn(m Medication, day Date) Status {
	if !m.StartDate.IsZero() && day.Before(m.StartDate) {
		return StatusUpcoming
	}
	if end, ok := EndDate(m); ok && day.After(end) {
		return StatusCompleted
	}
	return StatusActive
}

// SortForDisplay orders ms by start date (absent first), then by scheduled
// time, then by name. The slice is sorted in place.
func SortForDisplay(ms []Medication) {
	sort.SliceStable(ms, func(i, j int) bool {
		a, b := ms[i], ms[j]
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c < 0
		}
		if a.Time.Minutes() != b.Time.Minutes() {
			return a.Time.Minutes() < b.Time.Minutes()
		}
		return a.Name < b.Name
	})
}

// DurationText renders the course length, e.g. "Ongoing" or "For 7 days".
func DurationText(m Medication) string {
	switch {
	case m.DurationDays <= 0:
		return "Ongoing"
	case m.DurationDays == 1:
		return "For 1 day"
	default:
		return fmt.Sprintf("For %d days", m.DurationDays)
	}
}
