package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tasktide/internal/app"
	"tasktide/internal/tui/board"
)

// launchBoardFunc is a function variable for launching the board TUI,
// allowing it to be mocked in tests.
var launchBoardFunc = launchBoard

// newBoardCommand creates the board command opening the interactive TUI.
func newBoardCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "board",
		Short:   "Open the interactive task board",
		GroupID: groupView,
		RunE: func(_ *cobra.Command, _ []string) error {
			// Surface store problems before taking over the terminal.
			if c.StoreInitializer != nil {
				if err := c.StoreInitializer.Initialize(); err != nil {
					return err
				}
			}
			return launchBoardFunc(c)
		},
	}
}

// launchBoard runs the board TUI until the user quits.
func launchBoard(c *app.Container) error {
	p := tea.NewProgram(board.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
