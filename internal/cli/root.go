// Package cli provides the command-line interface for tasktide.
package cli

import (
	"github.com/spf13/cobra"

	"tasktide/internal/app"
)

// Command group IDs.
const (
	groupTask = "task"
	groupView = "view"
)

// NewRootCommand creates the root command for tasktide.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "tasktide",
		Short: "Personal task tracker with daily streaks",
		Long: `tasktide is a personal task tracker. Tasks move through
todo -> doing -> done, and completing at least one task per day builds
a day-over-day streak.

All data lives in a local SQLite database under your data directory.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Commands:"},
		&cobra.Group{ID: groupView, Title: "View Commands:"},
	)

	root.AddCommand(
		newAddCommand(c),
		newListCommand(c),
		newStatusCommand(c),
		newPriorityCommand(c),
		newDeleteCommand(c),
		newStatsCommand(c),
		newBoardCommand(c),
	)

	return root
}
