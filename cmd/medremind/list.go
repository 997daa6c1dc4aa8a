package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/app"
	"github.com/ykvlv/medication-reminder/internal/domain"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List medications with today's state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd.Context(), func(core *app.Core, _ *zap.Logger) error {
				items, err := core.Service.Overview(cmd.Context())
				if err != nil {
					return err
				}
				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTIME\tSTART\tCOURSE\tSTATUS\tSTATE")
				for _, it := range items {
					m := it.Medication
					fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
						m.ID, m.Name, m.Time.Display(), m.StartDate.Display(),
						domain.DurationText(m), it.Status, it.State)
				}
				return w.Flush()
			})
		},
	}
}
