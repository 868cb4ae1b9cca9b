package usecase

import (
	"context"
	"fmt"

	"tasktide/internal/domain"
)

// SetPriorityInput contains the parameters for changing a task's priority.
type SetPriorityInput struct {
	ID       string
	Priority domain.Priority
}

// SetPriorityOutput contains the result of a priority change.
type SetPriorityOutput struct {
	Task *domain.Task
}

// SetPriority is the use case for changing a task's priority. Priority
// does not affect completion aggregates, so no recomputation runs.
type SetPriority struct {
	tasks  domain.TaskRepository
	cache  *TaskCache
	logger domain.Logger
}

// NewSetPriority creates a new SetPriority use case.
func NewSetPriority(tasks domain.TaskRepository, cache *TaskCache, logger domain.Logger) *SetPriority {
	return &SetPriority{tasks: tasks, cache: cache, logger: logger}
}

// Execute replaces the priority of a task.
func (uc *SetPriority) Execute(_ context.Context, in SetPriorityInput) (*SetPriorityOutput, error) {
	if !in.Priority.IsValid() {
		return nil, domain.ErrInvalidPriority
	}

	task, err := uc.tasks.GetTask(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	task.Priority = in.Priority
	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Upsert(task)
	}
	if uc.logger != nil {
		uc.logger.Info("task priority changed", "id", task.ID, "priority", string(task.Priority))
	}

	return &SetPriorityOutput{Task: task}, nil
}
