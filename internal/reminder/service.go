package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/domain"
)

//go:generate mockgen -source=service.go -destination=store_mock.go -package=reminder

// Store is the data access the service needs. store.SQLiteRepo satisfies it.
type Store interface {
	Create(ctx context.Context, med *domain.Medication) error
	Update(ctx context.Context, med *domain.Medication) error
	Get(ctx context.Context, id string) (*domain.Medication, error)
	List(ctx context.Context) ([]domain.Medication, error)
	Delete(ctx context.Context, id string) error
	MarkNotified(ctx context.Context, id string, day domain.Date) error
}

// Item is a medication together with its classification at one instant.
type Item struct {
	Medication domain.Medication
	State      domain.DoseState
	Status     domain.Status
	Overdue    bool
}

// Service runs the schedule evaluators against snapshots read from a Store.
type Service struct {
	store Store
	now   func() time.Time
	log   *zap.Logger
}

// NewService creates a Service. now must return instants in the single
// local zone the schedules are written in.
func NewService(store Store, now func() time.Time, log *zap.Logger) *Service {
	return &Service{store: store, now: now, log: log}
}

// Now returns the current instant in the service's local zone.
func (s *Service) Now() time.Time {
	return s.now()
}

// Due returns the medications that should fire at exactly (day, at).
func (s *Service) Due(ctx context.Context, day domain.Date, at domain.Clock) ([]domain.Medication, error) {
	ms, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	due := domain.SelectDue(ms, day, at)
	s.log.Debug("due set selected",
		zap.String("day", day.String()),
		zap.String("at", at.String()),
		zap.Int("total", len(ms)),
		zap.Int("due", len(due)),
	)
	return due, nil
}

// Acknowledge marks a medication as notified on day. day must be the
// evaluation day the notification was selected for.
func (s *Service) Acknowledge(ctx context.Context, id string, day domain.Date) error {
	if err := s.store.MarkNotified(ctx, id, day); err != nil {
		return fmt.Errorf("mark %s notified: %w", id, err)
	}
	return nil
}

// AcknowledgeToday is Acknowledge for the current local day.
func (s *Service) AcknowledgeToday(ctx context.Context, id string) (*domain.Medication, error) {
	if err := s.Acknowledge(ctx, id, domain.DateOf(s.now())); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, id)
}

// Overview classifies every medication at the current instant.
func (s *Service) Overview(ctx context.Context) ([]Item, error) {
	return s.OverviewAt(ctx, s.now())
}

// OverviewAt classifies every medication at now, sorted for display.
func (s *Service) OverviewAt(ctx context.Context, now time.Time) ([]Item, error) {
	ms, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list medications: %w", err)
	}
	domain.SortForDisplay(ms)

	items := make([]Item, 0, len(ms))
	for _, m := range ms {
		items = append(items, classify(m, now))
	}
	return items, nil
}

// Classify returns m's Item at the current instant.
func (s *Service) Classify(m domain.Medication) Item {
	return classify(m, s.now())
}

func classify(m domain.Medication, now time.Time) Item {
	return Item{
		Medication: m,
		State:      domain.DoseStateAt(m, now),
		Status:     domain.StatusOn(m, domain.DateOf(now)),
		Overdue:    domain.IsOverdue(m, now),
	}
}

// Get returns one medication.
func (s *Service) Get(ctx context.Context, id string) (*domain.Medication, error) {
	return s.store.Get(ctx, id)
}

// Add validates and stores a new medication. An absent start date defaults
// to today so that a duration is always anchored.
func (s *Service) Add(ctx context.Context, in domain.Input) (*domain.Medication, error) {
	m, err := domain.NewMedication(in)
	if err != nil {
		return nil, err
	}
	if m.StartDate.IsZero() {
		m.StartDate = domain.DateOf(s.now())
	}
	if err := s.store.Create(ctx, &m); err != nil {
		return nil, fmt.Errorf("create medication: %w", err)
	}
	s.log.Info("medication added",
		zap.String("id", m.ID),
		zap.String("name", m.Name),
		zap.String("time", m.Time.String()),
		zap.String("start", m.StartDate.String()),
		zap.Int("duration_days", m.DurationDays),
	)
	return &m, nil
}

// Update replaces the editable fields of an existing medication. The
// notification history and creation time are kept.
func (s *Service) Update(ctx context.Context, id string, in domain.Input) (*domain.Medication, error) {
	next, err := domain.NewMedication(in)
	if err != nil {
		return nil, err
	}
	cur, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if next.StartDate.IsZero() {
		next.StartDate = cur.StartDate
	}
	if next.StartDate.IsZero() {
		next.StartDate = domain.DateOf(s.now())
	}
	next.ID = cur.ID
	next.LastNotified = cur.LastNotified
	next.CreatedAt = cur.CreatedAt

	if err := s.store.Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("update medication: %w", err)
	}
	return &next, nil
}

// Delete removes a medication.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", id, err)
	}
	s.log.Info("medication deleted", zap.String("id", id))
	return nil
}
