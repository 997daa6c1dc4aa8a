package domain

import (
	"fmt"
	"strings"
	"time"
)

// Medication is one scheduled reminder. Evaluators treat it as an immutable
// snapshot and never modify it.
type Medication struct {
	ID                   string
	Name                 string
	Time                 Clock // scheduled wall-clock time, required
	StartDate            Date  // zero: active immediately
	DurationDays         int   // 0: unbounded
	LastNotified         Date  // zero: never notified
	FrequencyDescription string
	OriginalInput        string
	CreatedAt            time.Time
}

// Input is the unvalidated shape produced by manual entry, the HTTP API,
// chat commands and imports.
type Input struct {
	Name                 string
	Time                 string
	StartDate            string
	DurationDays         int
	FrequencyDescription string
	OriginalInput        string
}

// NewMedication validates in and converts it into a Medication without an ID.
func NewMedication(in Input) (Medication, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Medication{}, ErrEmptyName
	}
	clock, err := ParseClock(in.Time)
	if err != nil {
		return Medication{}, fmt.Errorf("time: %w", err)
	}
	start, err := ParseOptionalDate(in.StartDate)
	if err != nil {
		return Medication{}, fmt.Errorf("start date: %w", err)
	}
	if in.DurationDays < 0 {
		return Medication{}, fmt.Errorf("%w: %d", ErrNegativeDuration, in.DurationDays)
	}
	return Medication{
		Name:                 name,
		Time:                 clock,
		StartDate:            start,
		DurationDays:         in.DurationDays,
		FrequencyDescription: strings.TrimSpace(in.FrequencyDescription),
		OriginalInput:        strings.TrimSpace(in.OriginalInput),
	}, nil
}

// Validate checks the invariants of an already typed record.
func (m Medication) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return ErrEmptyName
	}
	if m.Time.IsZero() {
		return fmt.Errorf("time: %w: missing", ErrInvalidTime)
	}
	if m.DurationDays < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeDuration, m.DurationDays)
	}
	return nil
}

// DurationIgnored reports a positive duration that has no start date to
// anchor it. Such a record is treated as active indefinitely.
func (m Medication) DurationIgnored() bool {
	return m.StartDate.IsZero() && m.DurationDays > 0
}
