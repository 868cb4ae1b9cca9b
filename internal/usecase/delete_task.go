package usecase

import (
	"context"
	"fmt"

	"tasktide/internal/domain"
	"tasktide/internal/stats"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	ID string
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Stats *domain.DailyStats // Today's aggregates after the delete (nil if stats failed)
}

// DeleteTask is the use case for removing a task. Deleting an unknown
// ID is a no-op, but stats still recompute because a deleted done task
// changes today's count.
type DeleteTask struct {
	tasks  domain.TaskRepository
	engine *stats.Engine
	cache  *TaskCache
	clock  domain.Clock
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskRepository, engine *stats.Engine, cache *TaskCache, clock domain.Clock, logger domain.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, engine: engine, cache: cache, clock: clock, logger: logger}
}

// Execute removes the task with the given ID.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	if err := uc.tasks.DeleteTask(in.ID); err != nil {
		return nil, fmt.Errorf("delete task: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Remove(in.ID)
	}
	if uc.logger != nil {
		uc.logger.Info("task deleted", "id", in.ID)
	}

	out := &DeleteTaskOutput{}
	rec, err := recomputeToday(uc.tasks, uc.engine, uc.clock)
	if err != nil {
		return out, err
	}
	out.Stats = rec
	return out, nil
}
