package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tasktide/internal/domain"
)

func TestTaskCache_ReplaceAll(t *testing.T) {
	cache := NewTaskCache()
	assert.True(t, cache.LastSynced().IsZero())

	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	cache.ReplaceAll([]*domain.Task{
		{ID: "b", Title: "second", CreatedAt: now.Add(time.Minute)},
		{ID: "a", Title: "first", CreatedAt: now},
	}, now)

	tasks := cache.Tasks()
	assert.Len(t, tasks, 2)
	assert.Equal(t, "a", tasks[0].ID)
	assert.Equal(t, "b", tasks[1].ID)
	assert.Equal(t, now, cache.LastSynced())
}

func TestTaskCache_UpsertAndRemove(t *testing.T) {
	cache := NewTaskCache()
	now := time.Now()

	cache.Upsert(&domain.Task{ID: "a", Title: "original", CreatedAt: now})
	cache.Upsert(&domain.Task{ID: "a", Title: "renamed", CreatedAt: now})
	tasks := cache.Tasks()
	assert.Len(t, tasks, 1)
	assert.Equal(t, "renamed", tasks[0].Title)

	cache.Remove("a")
	assert.Empty(t, cache.Tasks())

	// Removing an absent ID is harmless.
	cache.Remove("ghost")
}

func TestTaskCache_SnapshotIsIsolated(t *testing.T) {
	cache := NewTaskCache()
	cache.Upsert(&domain.Task{ID: "a", Title: "original", CreatedAt: time.Now()})

	snapshot := cache.Tasks()
	snapshot[0].Title = "mutated"

	assert.Equal(t, "original", cache.Tasks()[0].Title)
}
