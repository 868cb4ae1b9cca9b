package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktide/internal/domain"
	"tasktide/internal/testutil"
)

func TestListTasks_All(t *testing.T) {
	now := time.Date(2024, 6, 10, 9, 0, 0, 0, time.Local)
	repo := testutil.NewMockTaskRepository()
	repo.Tasks["a"] = &domain.Task{ID: "a", Title: "first", Status: domain.StatusTodo, Priority: domain.PriorityMedium, CreatedAt: now}
	repo.Tasks["b"] = &domain.Task{ID: "b", Title: "second", Status: domain.StatusDone, Priority: domain.PriorityMedium, CreatedAt: now.Add(time.Minute)}
	cache := NewTaskCache()
	uc := NewListTasks(repo, cache, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{})
	require.NoError(t, err)
	assert.Len(t, out.Tasks, 2)

	// An unfiltered read refreshes the cache.
	assert.Len(t, cache.Tasks(), 2)
	assert.Equal(t, now, cache.LastSynced())
}

func TestListTasks_FilterByStatus(t *testing.T) {
	now := time.Now()
	repo := testutil.NewMockTaskRepository()
	repo.Tasks["a"] = &domain.Task{ID: "a", Title: "open", Status: domain.StatusTodo, Priority: domain.PriorityMedium, CreatedAt: now}
	repo.Tasks["b"] = &domain.Task{ID: "b", Title: "closed", Status: domain.StatusDone, Priority: domain.PriorityMedium, CreatedAt: now}
	uc := NewListTasks(repo, nil, &testutil.MockClock{NowTime: now})

	out, err := uc.Execute(context.Background(), ListTasksInput{Status: domain.StatusDone})
	require.NoError(t, err)
	require.Len(t, out.Tasks, 1)
	assert.Equal(t, "b", out.Tasks[0].ID)
}

func TestListTasks_InvalidStatus(t *testing.T) {
	uc := NewListTasks(testutil.NewMockTaskRepository(), nil, &testutil.MockClock{NowTime: time.Now()})

	_, err := uc.Execute(context.Background(), ListTasksInput{Status: "archived"})
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}
