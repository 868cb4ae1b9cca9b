package usecase

import (
	"context"
	"fmt"

	"tasktide/internal/domain"
	"tasktide/internal/stats"
)

// SetStatusInput contains the parameters for changing a task's status.
type SetStatusInput struct {
	ID     string
	Status domain.Status
}

// SetStatusOutput contains the result of a status change.
type SetStatusOutput struct {
	Task  *domain.Task
	Stats *domain.DailyStats // Today's aggregates after the write (nil if stats failed)
}

// SetStatus is the use case for moving a task through the workflow.
type SetStatus struct {
	tasks  domain.TaskRepository
	engine *stats.Engine
	cache  *TaskCache
	clock  domain.Clock
	logger domain.Logger
}

// NewSetStatus creates a new SetStatus use case.
func NewSetStatus(tasks domain.TaskRepository, engine *stats.Engine, cache *TaskCache, clock domain.Clock, logger domain.Logger) *SetStatus {
	return &SetStatus{tasks: tasks, engine: engine, cache: cache, clock: clock, logger: logger}
}

// Execute changes the status of a task. StartTime is stamped on the
// first entry into doing and EndTime on the first entry into done;
// neither is ever re-stamped or cleared when the status later moves
// away, so transition history survives regressions.
func (uc *SetStatus) Execute(_ context.Context, in SetStatusInput) (*SetStatusOutput, error) {
	if !in.Status.IsValid() {
		return nil, domain.ErrInvalidStatus
	}

	task, err := uc.tasks.GetTask(in.ID)
	if err != nil {
		return nil, fmt.Errorf("get task: %w", err)
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	now := uc.clock.Now()
	if in.Status == domain.StatusDoing && task.StartTime == nil {
		task.StartTime = &now
	}
	if in.Status == domain.StatusDone && task.EndTime == nil {
		task.EndTime = &now
	}
	task.Status = in.Status

	if err := uc.tasks.SaveTask(task); err != nil {
		return nil, fmt.Errorf("save task: %w", err)
	}
	if uc.cache != nil {
		uc.cache.Upsert(task)
	}
	if uc.logger != nil {
		uc.logger.Info("task status changed", "id", task.ID, "status", string(task.Status))
	}

	out := &SetStatusOutput{Task: task}
	rec, err := recomputeToday(uc.tasks, uc.engine, uc.clock)
	if err != nil {
		return out, err
	}
	out.Stats = rec
	return out, nil
}
