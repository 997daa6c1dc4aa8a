package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	ErrEmptyName        = errors.New("empty medication name")
	ErrInvalidTime      = errors.New("invalid time, expected HH:MM (24h)")
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrNegativeDuration = errors.New("duration days must not be negative")
)

var (
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

const dateLayout = "2006-01-02"

// IsValidationError reports whether err was caused by rejected user input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrEmptyName) ||
		errors.Is(err, ErrInvalidTime) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrNegativeDuration)
}

// ParseClock parses a strict 24-hour "HH:MM" time of day.
func ParseClock(s string) (Clock, error) {
	s = strings.TrimSpace(s)
	if !clockRe.MatchString(s) {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, _ := strconv.Atoi(s[:2])
	m, _ := strconv.Atoi(s[3:])
	return clockAt(h*60 + m), nil
}

// ParseDate parses a "YYYY-MM-DD" calendar date. Impossible days such as
// 2024-02-30 are rejected rather than normalized.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if !dateRe.MatchString(s) {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{t: t}, nil
}

// ParseOptionalDate is ParseDate that maps an empty string to the zero Date.
func ParseOptionalDate(s string) (Date, error) {
	if strings.TrimSpace(s) == "" {
		return Date{}, nil
	}
	return ParseDate(s)
}

// FormatMinutes returns HH:MM for minutes since midnight (00:00..23:59).
func FormatMinutes(mins int) string {
	if mins < 0 {
		mins = 0
	}
	h := mins / 60
	m := mins % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}
