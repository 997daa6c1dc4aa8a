package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/app"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reminder scheduler, HTTP API and Telegram bot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := opts.setup()
			if err != nil {
				return err
			}
			// Ensure logger flush; ignore sync error (common on some platforms).
			defer func() { _ = log.Sync() }()

			application, err := app.New(cmd.Context(), cfg, log)
			if err != nil {
				log.Error("app init failed", zap.Error(err))
				return err
			}
			return application.Run(cmd.Context())
		},
	}
}
