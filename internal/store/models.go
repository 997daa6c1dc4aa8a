package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

// medicationRow mirrors a row of the medications table.
type medicationRow struct {
	id           string
	name         string
	clock        string
	startDate    sql.NullString
	durationDays sql.NullInt64
	lastNotified sql.NullString
	frequency    sql.NullString
	original     sql.NullString
	createdAt    int64
}

func (r *medicationRow) scanTargets() []any {
	return []any{
		&r.id, &r.name, &r.clock, &r.startDate, &r.durationDays,
		&r.lastNotified, &r.frequency, &r.original, &r.createdAt,
	}
}

// toDomain converts a row, rejecting rows whose stored values break the
// record invariants.
func (r *medicationRow) toDomain() (domain.Medication, error) {
	clock, err := domain.ParseClock(trimSeconds(r.clock))
	if err != nil {
		return domain.Medication{}, fmt.Errorf("medication %s: %w", r.id, err)
	}
	start, err := domain.ParseOptionalDate(r.startDate.String)
	if err != nil {
		return domain.Medication{}, fmt.Errorf("medication %s start_date: %w", r.id, err)
	}
	last, err := domain.ParseOptionalDate(r.lastNotified.String)
	if err != nil {
		return domain.Medication{}, fmt.Errorf("medication %s last_notified: %w", r.id, err)
	}
	return domain.Medication{
		ID:                   r.id,
		Name:                 r.name,
		Time:                 clock,
		StartDate:            start,
		DurationDays:         int(r.durationDays.Int64),
		LastNotified:         last,
		FrequencyDescription: r.frequency.String,
		OriginalInput:        r.original.String,
		CreatedAt:            time.Unix(r.createdAt, 0).UTC(),
	}, nil
}

// trimSeconds accepts "HH:MM:SS" values written by other tools.
func trimSeconds(s string) string {
	if len(s) == len("15:04:05") && s[5] == ':' {
		return s[:5]
	}
	return s
}

func toNullDate(d domain.Date) sql.NullString {
	if d.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: d.String(), Valid: true}
}

func toNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// toNullDuration stores an unbounded duration (0) as NULL.
func toNullDuration(days int) sql.NullInt64 {
	if days <= 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(days), Valid: true}
}
