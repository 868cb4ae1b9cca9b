package usecase

import (
	"sort"
	"sync"
	"time"

	"tasktide/internal/domain"
)

// TaskCache mirrors the stored task set in memory so presentation code
// can read synchronously while the store stays the source of truth.
// It is refreshed from the store on load and updated after each
// confirmed write.
type TaskCache struct {
	tasks      map[string]*domain.Task
	lastSynced time.Time
	mu         sync.RWMutex
}

// NewTaskCache creates an empty TaskCache.
func NewTaskCache() *TaskCache {
	return &TaskCache{tasks: make(map[string]*domain.Task)}
}

// ReplaceAll swaps the cached set for a fresh store read taken at the
// given time.
func (c *TaskCache) ReplaceAll(tasks []*domain.Task, at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tasks = make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		dup := *t
		c.tasks[t.ID] = &dup
	}
	c.lastSynced = at
}

// Upsert records a confirmed task write.
func (c *TaskCache) Upsert(task *domain.Task) {
	c.mu.Lock()
	defer c.mu.Unlock()
	dup := *task
	c.tasks[task.ID] = &dup
}

// Remove records a confirmed task delete.
func (c *TaskCache) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.tasks, id)
}

// Tasks returns a snapshot of the cached tasks sorted by creation time.
func (c *TaskCache) Tasks() []*domain.Task {
	c.mu.RLock()
	defer c.mu.RUnlock()
	tasks := make([]*domain.Task, 0, len(c.tasks))
	for _, t := range c.tasks {
		dup := *t
		tasks = append(tasks, &dup)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks
}

// LastSynced returns when the cache was last refreshed from the store.
// Zero means it never was.
func (c *TaskCache) LastSynced() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSynced
}
