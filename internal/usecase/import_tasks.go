package usecase

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"tasktide/internal/domain"
)

// TaskDraft is one entry of an import file.
type TaskDraft struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
}

// ParseTaskDrafts parses a YAML import file containing a list of task
// drafts:
//
//	- title: Write report
//	  description: Quarterly numbers
//	  priority: high
//	- title: Book flights
func ParseTaskDrafts(content []byte) ([]TaskDraft, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, domain.ErrEmptyFile
	}
	var drafts []TaskDraft
	if err := yaml.Unmarshal(content, &drafts); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(drafts) == 0 {
		return nil, domain.ErrNoTasksInFile
	}
	return drafts, nil
}

// ImportTasksInput contains the raw import file content.
type ImportTasksInput struct {
	Content []byte
	DryRun  bool // Validate and report without creating
}

// ImportTasksOutput contains the created (or previewed) tasks.
type ImportTasksOutput struct {
	Tasks []*domain.Task
}

// ImportTasks is the use case for bulk task creation from a file. Every
// draft goes through the same CreateTask path, so validation, id
// generation, and stats recomputation behave exactly as single creates.
type ImportTasks struct {
	create *CreateTask
}

// NewImportTasks creates a new ImportTasks use case.
func NewImportTasks(create *CreateTask) *ImportTasks {
	return &ImportTasks{create: create}
}

// Execute parses the file and creates one task per draft. All drafts
// are validated before any task is created.
func (uc *ImportTasks) Execute(ctx context.Context, in ImportTasksInput) (*ImportTasksOutput, error) {
	drafts, err := ParseTaskDrafts(in.Content)
	if err != nil {
		return nil, err
	}

	inputs := make([]CreateTaskInput, 0, len(drafts))
	for i, d := range drafts {
		if strings.TrimSpace(d.Title) == "" {
			return nil, fmt.Errorf("draft %d: %w", i+1, domain.ErrEmptyTitle)
		}
		priority, err := domain.ParsePriority(d.Priority)
		if err != nil {
			return nil, fmt.Errorf("draft %d: %w", i+1, err)
		}
		inputs = append(inputs, CreateTaskInput{
			Title:       d.Title,
			Description: d.Description,
			Priority:    priority,
		})
	}

	if in.DryRun {
		tasks := make([]*domain.Task, 0, len(inputs))
		for _, ci := range inputs {
			tasks = append(tasks, &domain.Task{
				Title:       strings.TrimSpace(ci.Title),
				Description: ci.Description,
				Status:      domain.StatusTodo,
				Priority:    ci.Priority,
			})
		}
		return &ImportTasksOutput{Tasks: tasks}, nil
	}

	out := &ImportTasksOutput{}
	for i, ci := range inputs {
		res, err := uc.create.Execute(ctx, ci)
		if res != nil && res.Task != nil {
			out.Tasks = append(out.Tasks, res.Task)
		}
		if err != nil {
			return out, fmt.Errorf("draft %d: %w", i+1, err)
		}
	}
	return out, nil
}
