package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/domain"
	"github.com/ykvlv/medication-reminder/internal/metrics"
)

//go:generate mockgen -source=scheduler.go -destination=scheduler_mock.go -package=scheduler

// DefaultSpec fires at every minute boundary.
const DefaultSpec = "* * * * *"

// Reminders is the subset of reminder.Service the scheduler drives.
type Reminders interface {
	Now() time.Time
	Due(ctx context.Context, day domain.Date, at domain.Clock) ([]domain.Medication, error)
	Acknowledge(ctx context.Context, id string, day domain.Date) error
}

// Notifier delivers one due reminder selected for day. telegram.Router
// implements it.
type Notifier interface {
	NotifyDue(ctx context.Context, med domain.Medication, day domain.Date) error
}

// Scheduler checks for due medications on a cron schedule and dispatches
// them.
type Scheduler struct {
	reminders Reminders
	notifier  Notifier
	log       *zap.Logger
	metrics   *metrics.Metrics
	cron      *cron.Cron
}

// New creates a Scheduler that evaluates on spec (standard 5-field cron) in
// loc.
func New(reminders Reminders, notifier Notifier, log *zap.Logger, m *metrics.Metrics, spec string, loc *time.Location) (*Scheduler, error) {
	if spec == "" {
		spec = DefaultSpec
	}
	cl := cronLogger{log: log}
	c := cron.New(
		cron.WithLocation(loc),
		cron.WithLogger(cl),
		cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
	)
	s := &Scheduler{
		reminders: reminders,
		notifier:  notifier,
		log:       log,
		metrics:   m,
		cron:      c,
	}
	if _, err := c.AddFunc(spec, func() { s.tick(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid check spec %q: %w", spec, err)
	}
	return s, nil
}

// Run starts the cron loop and blocks until ctx is canceled and any running
// check has finished.
func (s *Scheduler) Run(ctx context.Context) {
	s.cron.Start()
	s.log.Info("scheduler started")

	<-ctx.Done()
	s.log.Info("scheduler stopping")
	<-s.cron.Stop().Done()
}

// tick performs one check cycle: select the due set for the current minute,
// send each reminder, then record it as notified for the same day.
func (s *Scheduler) tick(ctx context.Context) {
	started := time.Now()
	now := s.reminders.Now()
	day, at := domain.DateOf(now), domain.ClockOf(now)

	due, err := s.reminders.Due(ctx, day, at)
	if err != nil {
		s.log.Error("Due failed", zap.Error(err), zap.String("day", day.String()), zap.String("at", at.String()))
		return
	}
	defer func() { s.metrics.ObserveCheck(started, len(due)) }()

	for _, m := range due {
		if err := s.notifier.NotifyDue(ctx, m, day); err != nil {
			s.metrics.NotificationFailed()
			s.log.Error("notify failed", zap.Error(err), zap.String("id", m.ID), zap.String("name", m.Name))
			continue
		}
		s.metrics.NotificationSent()

		if err := s.reminders.Acknowledge(ctx, m.ID, day); err != nil {
			// The reminder may fire again on the next matching tick.
			s.metrics.AckFailed()
			s.log.Error("Acknowledge failed", zap.Error(err), zap.String("id", m.ID))
			continue
		}
		s.metrics.AckStored()
		s.log.Info("reminder sent",
			zap.String("id", m.ID),
			zap.String("name", m.Name),
			zap.String("day", day.String()),
			zap.String("time", m.Time.String()),
		)
	}
}

// LogNotifier only logs due reminders. It is used when no chat transport is
// configured.
type LogNotifier struct {
	Log *zap.Logger
}

func (n LogNotifier) NotifyDue(_ context.Context, med domain.Medication, day domain.Date) error {
	n.Log.Info("medication due",
		zap.String("id", med.ID),
		zap.String("name", med.Name),
		zap.String("day", day.String()),
		zap.String("time", med.Time.String()),
	)
	return nil
}

// cronLogger adapts zap to cron.Logger.
type cronLogger struct {
	log *zap.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug("cron: "+msg, zap.Any("kv", keysAndValues))
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error("cron: "+msg, zap.Error(err), zap.Any("kv", keysAndValues))
}
