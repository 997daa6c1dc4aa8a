package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/app"
	"github.com/ykvlv/medication-reminder/internal/importer"
)

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Add medications from a YAML file",
		Long: `Add medications from a YAML file of the form:

  medications:
    - name: Vitamin D
      time: "08:30"
      start_date: 2025-05-01
      duration_days: 30

Every entry is validated before anything is stored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := importer.ParseFile(args[0])
			if err != nil {
				return err
			}
			return opts.withCore(cmd.Context(), func(core *app.Core, log *zap.Logger) error {
				ms, err := importer.Load(cmd.Context(), core.Service, inputs, log)
				for _, m := range ms {
					fmt.Fprintf(cmd.OutOrStdout(), "added %s %s at %s\n", m.ID, m.Name, m.Time)
				}
				return err
			})
		},
	}
}
