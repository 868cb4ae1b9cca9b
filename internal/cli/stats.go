package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"tasktide/internal/app"
)

// newStatsCommand creates the stats command showing today's activity.
func newStatsCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "stats",
		Short:   "Show today's completions and streak",
		GroupID: groupView,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.TodayStatsUseCase()
			out, err := uc.Execute(cmd.Context())
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "Today: %d/%d tasks completed\n", out.CompletedCount, out.TotalToday)
			switch out.Streak {
			case 0:
				_, _ = fmt.Fprintln(w, "Streak: none - complete a task to start one")
			case 1:
				_, _ = fmt.Fprintln(w, "Streak: 1 day")
			default:
				_, _ = fmt.Fprintf(w, "Streak: %d days\n", out.Streak)
			}
			return nil
		},
	}
}
