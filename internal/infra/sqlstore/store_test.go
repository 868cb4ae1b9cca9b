package sqlstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktide/internal/domain"
)

// newTestStore creates a Store backed by a database file in a temp dir.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "tasktide.db"))
}

func newTask(id, title string, status domain.Status, created time.Time) *domain.Task {
	return &domain.Task{
		ID:        id,
		Title:     title,
		Status:    status,
		Priority:  domain.PriorityMedium,
		CreatedAt: created,
	}
}

func TestStore_AddAndGetTask_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	created := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	started := created.Add(time.Hour)
	finished := created.Add(2 * time.Hour)
	task := &domain.Task{
		ID:          "t1",
		Title:       "write report",
		Description: "quarterly numbers",
		Status:      domain.StatusDone,
		Priority:    domain.PriorityHigh,
		CreatedAt:   created,
		StartTime:   &started,
		EndTime:     &finished,
	}

	require.NoError(t, store.AddTask(task))

	got, err := store.GetTask("t1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.Description, got.Description)
	assert.Equal(t, task.Status, got.Status)
	assert.Equal(t, task.Priority, got.Priority)
	assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.StartTime)
	require.NotNil(t, got.EndTime)
	assert.True(t, started.Equal(*got.StartTime))
	assert.True(t, finished.Equal(*got.EndTime))
}

func TestStore_AddTask_Duplicate(t *testing.T) {
	store := newTestStore(t)
	task := newTask("t1", "first", domain.StatusTodo, time.Now())

	require.NoError(t, store.AddTask(task))
	err := store.AddTask(newTask("t1", "second", domain.StatusTodo, time.Now()))
	assert.ErrorIs(t, err, domain.ErrDuplicateTask)
}

func TestStore_GetTask_NotFound(t *testing.T) {
	store := newTestStore(t)

	got, err := store.GetTask("missing")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveTask_Upsert(t *testing.T) {
	store := newTestStore(t)
	created := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	task := newTask("t1", "original", domain.StatusTodo, created)

	// Save without a prior Add inserts.
	require.NoError(t, store.SaveTask(task))

	// Save again replaces in place.
	task.Title = "renamed"
	task.Status = domain.StatusDoing
	require.NoError(t, store.SaveTask(task))

	all, err := store.ListTasks()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "renamed", all[0].Title)
	assert.Equal(t, domain.StatusDoing, all[0].Status)
}

func TestStore_DeleteTask_MissingIsNoop(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddTask(newTask("t1", "keep", domain.StatusTodo, time.Now())))

	require.NoError(t, store.DeleteTask("nope"))

	all, err := store.ListTasks()
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_DeleteTask(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.AddTask(newTask("t1", "gone soon", domain.StatusTodo, time.Now())))

	require.NoError(t, store.DeleteTask("t1"))

	got, err := store.GetTask("t1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_ListTasksByStatus(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2024, 6, 10, 8, 0, 0, 0, time.UTC)
	require.NoError(t, store.AddTask(newTask("t1", "a", domain.StatusTodo, base)))
	require.NoError(t, store.AddTask(newTask("t2", "b", domain.StatusDone, base.Add(time.Minute))))
	require.NoError(t, store.AddTask(newTask("t3", "c", domain.StatusDone, base.Add(2*time.Minute))))

	done, err := store.ListTasksByStatus(domain.StatusDone)
	require.NoError(t, err)
	require.Len(t, done, 2)
	assert.Equal(t, "t2", done[0].ID)
	assert.Equal(t, "t3", done[1].ID)

	doing, err := store.ListTasksByStatus(domain.StatusDoing)
	require.NoError(t, err)
	assert.Empty(t, doing)
}

func TestStore_DailyStats_UpsertAndGet(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.PutDailyStats(&domain.DailyStats{Date: "2024-06-10", CompletedTasksCount: 1, Streak: 1}))
	// Replacing the same day must not create a second row.
	require.NoError(t, store.PutDailyStats(&domain.DailyStats{Date: "2024-06-10", CompletedTasksCount: 3, Streak: 1}))

	got, err := store.GetDailyStats("2024-06-10")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.CompletedTasksCount)

	missing, err := store.GetDailyStats("2024-06-11")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStore_LatestDailyStats(t *testing.T) {
	store := newTestStore(t)

	latest, err := store.LatestDailyStats()
	require.NoError(t, err)
	assert.Nil(t, latest)

	// Inserted out of order; the zero-padded key makes DESC chronological.
	require.NoError(t, store.PutDailyStats(&domain.DailyStats{Date: "2024-06-10", CompletedTasksCount: 1, Streak: 2}))
	require.NoError(t, store.PutDailyStats(&domain.DailyStats{Date: "2024-05-31", CompletedTasksCount: 4, Streak: 1}))
	require.NoError(t, store.PutDailyStats(&domain.DailyStats{Date: "2024-06-02", CompletedTasksCount: 2, Streak: 1}))

	latest, err = store.LatestDailyStats()
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "2024-06-10", latest.Date)
	assert.Equal(t, 2, latest.Streak)
}

func TestStore_MigrationIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasktide.db")

	first := New(path)
	require.NoError(t, first.Initialize())
	require.NoError(t, first.AddTask(newTask("t1", "survives reopen", domain.StatusTodo, time.Now())))

	// Re-opening the same file re-runs migration as a no-op and keeps data.
	second := New(path)
	require.NoError(t, second.Initialize())

	all, err := second.ListTasks()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "survives reopen", all[0].Title)

	db, err := second.conn()
	require.NoError(t, err)
	var info schemaInfo
	require.NoError(t, db.First(&info, "id = ?", 1).Error)
	assert.Equal(t, schemaVersion, info.Version)
}

func TestStore_InitializeFailure(t *testing.T) {
	// Pointing the store at a directory makes SQLite unable to open it.
	store := New(t.TempDir())

	err := store.Initialize()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
