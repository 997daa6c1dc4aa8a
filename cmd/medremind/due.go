package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ykvlv/medication-reminder/internal/app"
	"github.com/ykvlv/medication-reminder/internal/domain"
)

func newDueCmd(opts *rootOptions) *cobra.Command {
	var date, clock string
	cmd := &cobra.Command{
		Use:   "due",
		Short: "Show which medications would fire at a minute, without notifying",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return opts.withCore(cmd.Context(), func(core *app.Core, _ *zap.Logger) error {
				now := core.Service.Now()
				day, at := domain.DateOf(now), domain.ClockOf(now)
				var err error
				if date != "" {
					if day, err = domain.ParseDate(date); err != nil {
						return err
					}
				}
				if clock != "" {
					if at, err = domain.ParseClock(clock); err != nil {
						return err
					}
				}

				due, err := core.Service.Due(cmd.Context(), day, at)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(due) == 0 {
					fmt.Fprintf(out, "Nothing due at %s %s\n", day, at)
					return nil
				}
				w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ID\tNAME\tTIME")
				for _, m := range due {
					fmt.Fprintf(w, "%s\t%s\t%s\n", m.ID, m.Name, m.Time)
				}
				return w.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "evaluation day YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&clock, "time", "", "evaluation minute HH:MM (default now)")
	return cmd
}
