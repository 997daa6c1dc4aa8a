package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ykvlv/medication-reminder/internal/config"
	"github.com/ykvlv/medication-reminder/internal/httpapi"
	"github.com/ykvlv/medication-reminder/internal/metrics"
	"github.com/ykvlv/medication-reminder/internal/reminder"
	"github.com/ykvlv/medication-reminder/internal/scheduler"
	"github.com/ykvlv/medication-reminder/internal/store"
	"github.com/ykvlv/medication-reminder/internal/telegram"
)

// Core is the storage and reminder service shared by every command.
type Core struct {
	Repo     store.Repo
	Service  *reminder.Service
	Location *time.Location
}

// OpenCore opens the database and builds the reminder service in the
// configured zone.
func OpenCore(ctx context.Context, cfg config.Config, log *zap.Logger) (*Core, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	repo, err := store.OpenSQLite(ctx, cfg.DBPath)
	if err != nil {
		return nil, err
	}
	now := func() time.Time { return time.Now().In(loc) }
	return &Core{
		Repo:     repo,
		Service:  reminder.NewService(repo, now, log),
		Location: loc,
	}, nil
}

func (c *Core) Close() error {
	return c.Repo.Close()
}

// App runs the scheduler, the HTTP API and, when a token is set, the
// Telegram bot.
type App struct {
	cfg     config.Config
	log     *zap.Logger
	core    *Core
	bot     *tgbotapi.BotAPI
	router  *telegram.Router
	sched   *scheduler.Scheduler
	httpSrv *http.Server
}

func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	core, err := OpenCore(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	log.Info("sqlite ready", zap.String("path", cfg.DBPath))

	a := &App{cfg: cfg, log: log, core: core}
	if err := a.build(); err != nil {
		_ = core.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) build() error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.MustNew(reg)

	var notifier scheduler.Notifier = scheduler.LogNotifier{Log: a.log}
	if a.cfg.BotToken != "" {
		bot, err := tgbotapi.NewBotAPI(a.cfg.BotToken)
		if err != nil {
			return err
		}
		bot.Debug = false
		a.bot = bot
		a.router = telegram.NewRouter(bot, a.log, a.core.Service, a.cfg.ChatID)
		notifier = a.router
		a.log.Info("telegram bot authorized", zap.String("username", bot.Self.UserName))
	} else {
		a.log.Warn("BOT_TOKEN not set, due reminders will only be logged")
	}

	sched, err := scheduler.New(a.core.Service, notifier, a.log, m, a.cfg.CheckSpec, a.core.Location)
	if err != nil {
		return err
	}
	a.sched = sched

	a.httpSrv = &http.Server{
		Addr: a.cfg.HTTPAddr,
		Handler: httpapi.NewRouter(httpapi.Deps{
			Service:  a.core.Service,
			DB:       a.core.Repo,
			Metrics:  m,
			Gatherer: reg,
			Log:      a.log,
		}),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 5 * time.Second,
	}
	return nil
}

// Run blocks until SIGINT/SIGTERM or ctx cancellation, then shuts every
// component down and closes the database.
func (a *App) Run(ctx context.Context) error {
	a.log.Info("starting medication-reminder",
		zap.String("http", a.cfg.HTTPAddr),
		zap.String("tz", a.core.Location.String()),
		zap.String("check_spec", a.cfg.CheckSpec),
		zap.Bool("telegram", a.bot != nil),
	)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		a.sched.Run(ctx)
		return nil
	})

	if a.bot != nil {
		g.Go(func() error {
			a.pollUpdates(ctx)
			return nil
		})
	}

	g.Go(func() error {
		<-ctx.Done()
		a.log.Info("shutdown signal received")

		shCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.httpSrv.Shutdown(shCtx); err != nil {
			a.log.Warn("http server shutdown error", zap.Error(err))
		}
		return nil
	})

	err := g.Wait()
	if cerr := a.core.Close(); cerr != nil {
		a.log.Warn("sqlite close error", zap.Error(cerr))
	}
	return err
}

func (a *App) pollUpdates(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updCh := a.bot.GetUpdatesChan(u)
	defer a.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case upd := <-updCh:
			a.router.HandleUpdate(ctx, upd)
		}
	}
}
