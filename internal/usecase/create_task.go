package usecase

import (
	"context"
	"fmt"
	"strings"

	"tasktide/internal/domain"
	"tasktide/internal/stats"
)

// CreateTaskInput contains the parameters for creating a new task.
type CreateTaskInput struct {
	Title       string          // Task title (required, trimmed)
	Description string          // Task description (optional)
	Priority    domain.Priority // Empty = medium
}

// CreateTaskOutput contains the result of creating a new task.
type CreateTaskOutput struct {
	Task  *domain.Task       // The created task
	Stats *domain.DailyStats // Today's aggregates after the write (nil if stats failed)
}

// CreateTask is the use case for creating a new task.
type CreateTask struct {
	tasks  domain.TaskRepository
	engine *stats.Engine
	cache  *TaskCache
	ids    domain.IDGenerator
	clock  domain.Clock
	logger domain.Logger
}

// NewCreateTask creates a new CreateTask use case.
func NewCreateTask(tasks domain.TaskRepository, engine *stats.Engine, cache *TaskCache, ids domain.IDGenerator, clock domain.Clock, logger domain.Logger) *CreateTask {
	return &CreateTask{tasks: tasks, engine: engine, cache: cache, ids: ids, clock: clock, logger: logger}
}

// Execute creates a new task with the given input. On a stats failure
// after the task write committed, the output still carries the created
// task together with the error.
func (uc *CreateTask) Execute(_ context.Context, in CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, domain.ErrEmptyTitle
	}

	priority := in.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	if !priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task := &domain.Task{
		ID:          uc.ids.NewID(),
		Title:       title,
		Description: in.Description,
		Status:      domain.StatusTodo,
		Priority:    priority,
		CreatedAt:   uc.clock.Now(),
	}

	if err := uc.tasks.AddTask(task); err != nil {
		return nil, fmt.Errorf("add task: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Upsert(task)
	}
	if uc.logger != nil {
		uc.logger.Info("task created", "id", task.ID, "title", task.Title)
	}

	out := &CreateTaskOutput{Task: task}
	rec, err := recomputeToday(uc.tasks, uc.engine, uc.clock)
	if err != nil {
		return out, err
	}
	out.Stats = rec
	return out, nil
}
