// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"tasktide/internal/domain"
	"tasktide/internal/stats"
)

// recomputeToday reloads the full task set and rewrites today's
// aggregates. Called after every mutation that can change completion
// counts. A failure here never rolls back the task write that
// triggered it; callers report it alongside their own output.
func recomputeToday(tasks domain.TaskRepository, engine *stats.Engine, clock domain.Clock) (*domain.DailyStats, error) {
	all, err := tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks for stats: %w", err)
	}
	rec, err := engine.Recompute(all, clock.Now())
	if err != nil {
		return nil, fmt.Errorf("recompute daily stats: %w", err)
	}
	return rec, nil
}
