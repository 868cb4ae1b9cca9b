package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"tasktide/internal/app"
	"tasktide/internal/domain"
	"tasktide/internal/usecase"
)

// newAddCommand creates the add command for creating tasks.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Body     string
		Priority string
		From     string
		DryRun   bool
	}

	cmd := &cobra.Command{
		Use:     "add [title]",
		Short:   "Create a new task",
		GroupID: groupTask,
		Long: `Create a new task with status 'todo'.

Examples:
  # Create a task
  tasktide add "Write quarterly report"

  # Create a task with a description and priority
  tasktide add "Book flights" --body "Outbound on Friday" --priority high

  # Create tasks in bulk from a YAML file
  tasktide add --from tasks.yaml

  # Preview a bulk import without creating anything
  tasktide add --from tasks.yaml --dry-run

File format for --from:
  - title: Write report
    description: Quarterly numbers
    priority: high
  - title: Book flights`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.From != "" {
				return importTasksFromFile(cmd, c, opts.From, opts.DryRun)
			}
			if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
				return domain.ErrEmptyTitle
			}

			priority, err := domain.ParsePriority(opts.Priority)
			if err != nil {
				return err
			}

			uc := c.CreateTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.CreateTaskInput{
				Title:       args[0],
				Description: opts.Body,
				Priority:    priority,
			})
			if out != nil && out.Task != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Created task %s: %s\n", shortID(out.Task.ID), out.Task.Title)
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Body, "body", "", "Task description")
	cmd.Flags().StringVar(&opts.Priority, "priority", "", "Task priority: low, medium, high (default medium)")
	cmd.Flags().StringVar(&opts.From, "from", "", "Create tasks from a YAML file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "Preview tasks without creating (requires --from)")

	return cmd
}

// importTasksFromFile creates tasks in bulk from a YAML file.
func importTasksFromFile(cmd *cobra.Command, c *app.Container, filePath string, dryRun bool) error {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	uc := c.ImportTasksUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.ImportTasksInput{Content: content, DryRun: dryRun})
	if out != nil {
		w := cmd.OutOrStdout()
		if dryRun {
			_, _ = fmt.Fprintln(w, "Dry run - tasks that would be created:")
		}
		for _, task := range out.Tasks {
			if dryRun {
				_, _ = fmt.Fprintf(w, "  %s (%s)\n", task.Title, task.Priority.Display())
			} else {
				_, _ = fmt.Fprintf(w, "Created task %s: %s\n", shortID(task.ID), task.Title)
			}
		}
	}
	return err
}

// newListCommand creates the list command.
func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		JSON   bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks",
		GroupID: groupTask,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var status domain.Status
			if opts.Status != "" {
				parsed, err := domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
				status = parsed
			}

			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Status: status})
			if err != nil {
				return err
			}

			if opts.JSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out.Tasks)
			}

			return printTaskTable(cmd, out.Tasks)
		},
	}

	cmd.Flags().StringVar(&opts.Status, "status", "", "Filter by status: todo, doing, done")
	cmd.Flags().BoolVar(&opts.JSON, "json", false, "Output as JSON")

	return cmd
}

// printTaskTable renders tasks in a tab-aligned table.
func printTaskTable(cmd *cobra.Command, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tSTATUS\tPRIORITY\tCREATED\tTITLE")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			shortID(t.ID),
			t.Status.Display(),
			t.Priority.Display(),
			t.CreatedAt.Local().Format(time.DateOnly),
			t.Title,
		)
	}
	return w.Flush()
}

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "status <id> <todo|doing|done>",
		Short:   "Change a task's status",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := domain.ParseStatus(args[1])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(cmd, c, args[0])
			if err != nil {
				return err
			}

			uc := c.SetStatusUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetStatusInput{ID: id, Status: status})
			if out != nil && out.Task != nil {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s is now %s\n", shortID(out.Task.ID), out.Task.Status.Display())
			}
			return err
		},
	}
}

// newPriorityCommand creates the priority command.
func newPriorityCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "priority <id> <low|medium|high>",
		Short:   "Change a task's priority",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			priority, err := domain.ParsePriority(args[1])
			if err != nil {
				return err
			}
			id, err := resolveTaskID(cmd, c, args[0])
			if err != nil {
				return err
			}

			uc := c.SetPriorityUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.SetPriorityInput{ID: id, Priority: priority})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s priority set to %s\n", shortID(out.Task.ID), out.Task.Priority.Display())
			return nil
		},
	}
}

// newDeleteCommand creates the delete command.
func newDeleteCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a task",
		GroupID: groupTask,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := resolveTaskID(cmd, c, args[0])
			if err != nil {
				// Deleting an unknown ID is a no-op, not an error.
				if errors.Is(err, domain.ErrTaskNotFound) {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Task %s not found, nothing to delete\n", args[0])
					return nil
				}
				return err
			}

			uc := c.DeleteTaskUseCase()
			_, err = uc.Execute(cmd.Context(), usecase.DeleteTaskInput{ID: id})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task %s\n", shortID(id))
			return nil
		},
	}
}

// resolveTaskID resolves a full ID or a unique ID prefix to a stored
// task ID.
func resolveTaskID(cmd *cobra.Command, c *app.Container, arg string) (string, error) {
	out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
	if err != nil {
		return "", err
	}

	var matches []string
	for _, t := range out.Tasks {
		if t.ID == arg {
			return t.ID, nil
		}
		if strings.HasPrefix(t.ID, arg) {
			matches = append(matches, t.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", domain.ErrTaskNotFound
	default:
		return "", fmt.Errorf("id prefix %q matches %d tasks", arg, len(matches))
	}
}

// shortID returns the first 8 characters of an ID for display.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
