// Package stats derives per-day completion aggregates and the running
// day-over-day streak from the current task set.
package stats

import (
	"fmt"
	"time"

	"tasktide/internal/domain"
)

// Engine computes daily completion counts and streaks. The streak is
// seeded incrementally from the single most recent prior record, so
// recomputation is O(1) in the number of historical days.
type Engine struct {
	stats  domain.StatsRepository
	logger domain.Logger
}

// NewEngine creates a new Engine.
func NewEngine(stats domain.StatsRepository, logger domain.Logger) *Engine {
	return &Engine{stats: stats, logger: logger}
}

// Derive computes today's DailyStats record without persisting it.
//
// The completed count is the number of tasks created on the given day
// that are currently done. The streak seed is the latest stored record;
// when that record is already today's (a recomputation within the same
// day), continuity is seeded from yesterday's record instead, so that
// re-running with the same task set replaces rather than accumulates.
func (e *Engine) Derive(tasks []*domain.Task, today time.Time) (*domain.DailyStats, error) {
	key := domain.DayKey(today)
	prevKey := domain.PrevDayKey(today)

	completed := 0
	for _, t := range tasks {
		if t.CreatedOn(today) && t.IsDone() {
			completed++
		}
	}

	seed, err := e.stats.LatestDailyStats()
	if err != nil {
		return nil, fmt.Errorf("load latest daily stats: %w", err)
	}
	if seed != nil && seed.Date == key {
		seed, err = e.stats.GetDailyStats(prevKey)
		if err != nil {
			return nil, fmt.Errorf("load daily stats for %s: %w", prevKey, err)
		}
	}

	streak := 0
	switch {
	case seed != nil && seed.Date == prevKey && seed.CompletedTasksCount > 0:
		streak = seed.Streak + 1
	case completed > 0:
		streak = 1
	}

	return &domain.DailyStats{
		Date:                key,
		CompletedTasksCount: completed,
		Streak:              streak,
	}, nil
}

// Recompute derives today's DailyStats and persists it, replacing any
// existing record for the day.
func (e *Engine) Recompute(tasks []*domain.Task, today time.Time) (*domain.DailyStats, error) {
	rec, err := e.Derive(tasks, today)
	if err != nil {
		return nil, err
	}
	if err := e.stats.PutDailyStats(rec); err != nil {
		return nil, fmt.Errorf("save daily stats for %s: %w", rec.Date, err)
	}
	if e.logger != nil {
		e.logger.Debug("daily stats recomputed",
			"date", rec.Date, "completed", rec.CompletedTasksCount, "streak", rec.Streak)
	}
	return rec, nil
}
