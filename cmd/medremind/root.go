package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/app"
	"github.com/ykvlv/medication-reminder/internal/config"
	"github.com/ykvlv/medication-reminder/internal/logger"
)

const version = "0.1.0"

type rootOptions struct {
	dbPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "medremind",
		Short: "Daily medication reminders",
		Long: `medremind keeps a list of medications with a daily time, an optional
start date and an optional course length, and sends a reminder at the
scheduled minute of every day the course is active.

Configuration is read from the environment (BOT_TOKEN, CHAT_ID, DB_PATH,
DEFAULT_TZ, CHECK_SPEC, LOG_LEVEL, LOG_FORMAT, HTTP_ADDR).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.PersistentFlags().StringVar(&opts.dbPath, "db", "", "SQLite database path (overrides DB_PATH)")

	cmd.AddCommand(
		newServeCmd(opts),
		newDueCmd(opts),
		newListCmd(opts),
		newImportCmd(opts),
	)
	return cmd
}

// setup loads configuration and builds the logger.
func (o *rootOptions) setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, nil, fmt.Errorf("config error: %w", err)
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return cfg, nil, fmt.Errorf("logger init error: %w", err)
	}
	return cfg, log, nil
}

// withCore runs fn against an open database and closes it afterwards.
func (o *rootOptions) withCore(ctx context.Context, fn func(*app.Core, *zap.Logger) error) error {
	cfg, log, err := o.setup()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	core, err := app.OpenCore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer core.Close()
	return fn(core, log)
}
