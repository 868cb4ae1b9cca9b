package usecase

import (
	"context"
	"fmt"

	"tasktide/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status domain.Status // Empty = all tasks
}

// ListTasksOutput contains the listed tasks.
type ListTasksOutput struct {
	Tasks []*domain.Task
}

// ListTasks is the use case for reading the task collection. An
// unfiltered read also refreshes the in-memory cache.
type ListTasks struct {
	tasks domain.TaskRepository
	cache *TaskCache
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskRepository, cache *TaskCache, clock domain.Clock) *ListTasks {
	return &ListTasks{tasks: tasks, cache: cache, clock: clock}
}

// Execute returns stored tasks, optionally filtered by status.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	if in.Status != "" {
		if !in.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		tasks, err := uc.tasks.ListTasksByStatus(in.Status)
		if err != nil {
			return nil, fmt.Errorf("list tasks by status: %w", err)
		}
		return &ListTasksOutput{Tasks: tasks}, nil
	}

	tasks, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	if uc.cache != nil {
		uc.cache.ReplaceAll(tasks, uc.clock.Now())
	}
	return &ListTasksOutput{Tasks: tasks}, nil
}
