package store

import (
	"context"
	"errors"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

var ErrNotFound = errors.New("medication not found")

// Repo defines storage operations for medication schedules.
type Repo interface {
	Create(ctx context.Context, m *domain.Medication) error
	Update(ctx context.Context, m *domain.Medication) error
	Get(ctx context.Context, id string) (*domain.Medication, error)
	List(ctx context.Context) ([]domain.Medication, error)
	Delete(ctx context.Context, id string) error
	MarkNotified(ctx context.Context, id string, day domain.Date) error
	Ping(ctx context.Context) error
	Close() error
}
