// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"sort"
	"time"

	"tasktide/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockIDGenerator is a test double for domain.IDGenerator that produces
// a deterministic sequence of IDs.
type MockIDGenerator struct {
	Prefix string
	N      int
}

// NewID returns the next ID in the sequence.
func (m *MockIDGenerator) NewID() string {
	m.N++
	prefix := m.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, m.N)
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	Tasks   map[string]*domain.Task
	AddErr  error
	SaveErr error
	GetErr  error
	ListErr error
}

// NewMockTaskRepository creates a new MockTaskRepository with an
// initialized task map.
func NewMockTaskRepository() *MockTaskRepository {
	return &MockTaskRepository{Tasks: make(map[string]*domain.Task)}
}

// GetTask retrieves a task by ID.
func (m *MockTaskRepository) GetTask(id string) (*domain.Task, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	task, ok := m.Tasks[id]
	if !ok {
		return nil, nil
	}
	return task, nil
}

// ListTasks returns all tasks sorted by creation time for determinism.
func (m *MockTaskRepository) ListTasks() ([]*domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	tasks := make([]*domain.Task, 0, len(m.Tasks))
	for _, t := range m.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID < tasks[j].ID
	})
	return tasks, nil
}

// ListTasksByStatus returns tasks with the given status.
func (m *MockTaskRepository) ListTasksByStatus(status domain.Status) ([]*domain.Task, error) {
	all, err := m.ListTasks()
	if err != nil {
		return nil, err
	}
	var tasks []*domain.Task
	for _, t := range all {
		if t.Status == status {
			tasks = append(tasks, t)
		}
	}
	return tasks, nil
}

// AddTask inserts a task, failing on duplicate IDs.
func (m *MockTaskRepository) AddTask(task *domain.Task) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	if _, ok := m.Tasks[task.ID]; ok {
		return domain.ErrDuplicateTask
	}
	m.Tasks[task.ID] = task
	return nil
}

// SaveTask inserts or replaces a task.
func (m *MockTaskRepository) SaveTask(task *domain.Task) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks[task.ID] = task
	return nil
}

// DeleteTask removes a task by ID.
func (m *MockTaskRepository) DeleteTask(id string) error {
	delete(m.Tasks, id)
	return nil
}

// MockStatsRepository is a test double for domain.StatsRepository.
type MockStatsRepository struct {
	Stats     map[string]*domain.DailyStats
	PutErr    error
	GetErr    error
	LatestErr error
}

// NewMockStatsRepository creates a new MockStatsRepository with an
// initialized stats map.
func NewMockStatsRepository() *MockStatsRepository {
	return &MockStatsRepository{Stats: make(map[string]*domain.DailyStats)}
}

// GetDailyStats retrieves the record for a day key.
func (m *MockStatsRepository) GetDailyStats(date string) (*domain.DailyStats, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	stats, ok := m.Stats[date]
	if !ok {
		return nil, nil
	}
	return stats, nil
}

// PutDailyStats inserts or replaces the record for its day key.
func (m *MockStatsRepository) PutDailyStats(stats *domain.DailyStats) error {
	if m.PutErr != nil {
		return m.PutErr
	}
	m.Stats[stats.Date] = stats
	return nil
}

// LatestDailyStats returns the record with the greatest day key.
func (m *MockStatsRepository) LatestDailyStats() (*domain.DailyStats, error) {
	if m.LatestErr != nil {
		return nil, m.LatestErr
	}
	var latest *domain.DailyStats
	for _, s := range m.Stats {
		if latest == nil || s.Date > latest.Date {
			latest = s
		}
	}
	return latest, nil
}

// MockStoreInitializer is a test double for domain.StoreInitializer.
type MockStoreInitializer struct {
	Initialized bool
	InitErr     error
}

// Initialize records that initialization was requested.
func (m *MockStoreInitializer) Initialize() error {
	if m.InitErr != nil {
		return m.InitErr
	}
	m.Initialized = true
	return nil
}
