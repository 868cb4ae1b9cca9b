package usecase

import (
	"context"
	"fmt"

	"tasktide/internal/domain"
	"tasktide/internal/stats"
)

// TodayStatsOutput is the dashboard view of today's activity.
type TodayStatsOutput struct {
	CompletedCount int // Tasks created today and currently done
	TotalToday     int // Tasks created today in any status
	Streak         int // Consecutive active days ending today
}

// TodayStats is the use case for the dashboard read. It combines
// today's stored DailyStats record with a live count of today-created
// tasks; when no record exists yet it derives one without persisting.
type TodayStats struct {
	tasks     domain.TaskRepository
	statsRepo domain.StatsRepository
	engine    *stats.Engine
	clock     domain.Clock
}

// NewTodayStats creates a new TodayStats use case.
func NewTodayStats(tasks domain.TaskRepository, statsRepo domain.StatsRepository, engine *stats.Engine, clock domain.Clock) *TodayStats {
	return &TodayStats{tasks: tasks, statsRepo: statsRepo, engine: engine, clock: clock}
}

// Execute returns today's completion count, total, and streak.
func (uc *TodayStats) Execute(_ context.Context) (*TodayStatsOutput, error) {
	now := uc.clock.Now()

	all, err := uc.tasks.ListTasks()
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	total := 0
	for _, t := range all {
		if t.CreatedOn(now) {
			total++
		}
	}

	rec, err := uc.statsRepo.GetDailyStats(domain.DayKey(now))
	if err != nil {
		return nil, fmt.Errorf("get daily stats: %w", err)
	}
	if rec == nil {
		rec, err = uc.engine.Derive(all, now)
		if err != nil {
			return nil, err
		}
	}

	return &TodayStatsOutput{
		CompletedCount: rec.CompletedTasksCount,
		TotalToday:     total,
		Streak:         rec.Streak,
	}, nil
}
