package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	// Registers the "sqlite" driver (pure Go).
	_ "modernc.org/sqlite"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

const medicationColumns = `id, name, time, start_date, duration_days,
	last_notified, frequency_description, original_input, created_at`

// SQLiteRepo implements Repo using an embedded SQLite database.
type SQLiteRepo struct{ db *sql.DB }

var _ Repo = (*SQLiteRepo)(nil)

// OpenSQLite opens (or creates) the SQLite database at the given path,
// applies recommended PRAGMAs, runs SQL migrations, and returns a repository.
func OpenSQLite(ctx context.Context, path string) (*SQLiteRepo, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite is a single-writer engine.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := applyPragmas(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return &SQLiteRepo{db: db}, nil
}

// applyPragmas configures the SQLite connection for durability and concurrency.
func applyPragmas(ctx context.Context, db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the underlying database resources.
func (r *SQLiteRepo) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepo) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Create inserts m, assigning a new ID and CreatedAt when they are empty.
func (r *SQLiteRepo) Create(ctx context.Context, m *domain.Medication) error {
	if m == nil {
		return errors.New("nil medication")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO medications (`+medicationColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Name, m.Time.String(), toNullDate(m.StartDate), toNullDuration(m.DurationDays),
		toNullDate(m.LastNotified), toNullString(m.FrequencyDescription), toNullString(m.OriginalInput),
		m.CreatedAt.UTC().Unix(),
	)
	if err != nil {
		return fmt.Errorf("insert medication: %w", err)
	}
	return nil
}

// Update overwrites every mutable column of an existing medication.
func (r *SQLiteRepo) Update(ctx context.Context, m *domain.Medication) error {
	if m == nil {
		return errors.New("nil medication")
	}
	if err := m.Validate(); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET name = ?, time = ?, start_date = ?, duration_days = ?,
		    last_notified = ?, frequency_description = ?, original_input = ?
		WHERE id = ?`,
		m.Name, m.Time.String(), toNullDate(m.StartDate), toNullDuration(m.DurationDays),
		toNullDate(m.LastNotified), toNullString(m.FrequencyDescription), toNullString(m.OriginalInput),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("update medication: %w", err)
	}
	return expectOneRow(res)
}

// Get returns a medication by id or ErrNotFound.
func (r *SQLiteRepo) Get(ctx context.Context, id string) (*domain.Medication, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		WHERE id = ?`,
		id,
	)

	var mr medicationRow
	if err := row.Scan(mr.scanTargets()...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	m, err := mr.toDomain()
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// List returns a snapshot of all medications ordered by scheduled time.
func (r *SQLiteRepo) List(ctx context.Context) ([]domain.Medication, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+medicationColumns+`
		FROM medications
		ORDER BY time ASC, id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]domain.Medication, 0)
	for rows.Next() {
		var mr medicationRow
		if err := rows.Scan(mr.scanTargets()...); err != nil {
			return nil, err
		}
		m, err := mr.toDomain()
		if err != nil {
			return nil, err
		}
		res = append(res, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Delete removes a medication or returns ErrNotFound.
func (r *SQLiteRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM medications WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete medication: %w", err)
	}
	return expectOneRow(res)
}

// MarkNotified sets last_notified to day for a single medication.
func (r *SQLiteRepo) MarkNotified(ctx context.Context, id string, day domain.Date) error {
	if day.IsZero() {
		return fmt.Errorf("mark notified: %w: missing day", domain.ErrInvalidDate)
	}
	res, err := r.db.ExecContext(ctx, `
		UPDATE medications
		SET last_notified = ?
		WHERE id = ?`,
		day.String(), id,
	)
	if err != nil {
		return fmt.Errorf("mark notified: %w", err)
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
