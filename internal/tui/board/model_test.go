package board

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tasktide/internal/app"
	"tasktide/internal/domain"
	"tasktide/internal/testutil"
	"tasktide/internal/usecase"
)

func newTestModel(t *testing.T) (*Model, *testutil.MockTaskRepository) {
	t.Helper()
	tasks := testutil.NewMockTaskRepository()
	statsRepo := testutil.NewMockStatsRepository()
	clock := &testutil.MockClock{NowTime: time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)}
	c := app.NewWithDeps(app.Paths{}, tasks, statsRepo, clock, &testutil.MockIDGenerator{}, nil)
	return New(c), tasks
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func sampleTasks() []*domain.Task {
	return []*domain.Task{
		{ID: "t-1", Title: "write report", Status: domain.StatusTodo, Priority: domain.PriorityMedium},
		{ID: "t-2", Title: "review draft", Status: domain.StatusDoing, Priority: domain.PriorityHigh},
		{ID: "t-3", Title: "ship it", Status: domain.StatusDone, Priority: domain.PriorityLow},
	}
}

func TestModelTasksLoaded(t *testing.T) {
	m, _ := newTestModel(t)

	updated, _ := m.Update(MsgTasksLoaded{Tasks: sampleTasks()})
	model, ok := updated.(*Model)
	if !ok {
		t.Fatalf("expected *Model from Update")
	}

	if model.loading {
		t.Fatalf("expected loading to clear after tasks load")
	}
	if len(model.tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(model.tasks))
	}
}

func TestModelTasksLoadedClampsCursor(t *testing.T) {
	m, _ := newTestModel(t)
	m.tasks = sampleTasks()
	m.cursor = 2

	updated, _ := m.Update(MsgTasksLoaded{Tasks: sampleTasks()[:1]})
	model := updated.(*Model)
	if model.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", model.cursor)
	}
}

func TestModelCursorNavigation(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false
	m.tasks = sampleTasks()

	updated, _ := m.Update(keyRune('j'))
	model := updated.(*Model)
	if model.cursor != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", model.cursor)
	}

	updated, _ = model.Update(keyRune('k'))
	model = updated.(*Model)
	if model.cursor != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", model.cursor)
	}

	// Up at the top stays put
	updated, _ = model.Update(keyRune('k'))
	model = updated.(*Model)
	if model.cursor != 0 {
		t.Fatalf("expected cursor to stay 0 at top, got %d", model.cursor)
	}
}

func TestModelAddModeEntersAndCancels(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false

	updated, _ := m.Update(keyRune('a'))
	model := updated.(*Model)
	if model.mode != ModeAddTask {
		t.Fatalf("expected add mode, got %d", model.mode)
	}

	updated, _ = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	model = updated.(*Model)
	if model.mode != ModeNormal {
		t.Fatalf("expected normal mode after esc, got %d", model.mode)
	}
}

func TestModelAddModeEmptyTitleCancels(t *testing.T) {
	m, _ := newTestModel(t)
	m.mode = ModeAddTask

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model := updated.(*Model)
	if model.mode != ModeNormal {
		t.Fatalf("expected normal mode after empty submit, got %d", model.mode)
	}
	if cmd != nil {
		t.Fatalf("expected no command for empty title")
	}
}

func TestModelAddModeCreatesTask(t *testing.T) {
	m, tasks := newTestModel(t)
	m.mode = ModeAddTask
	m.addInput.SetValue("buy milk")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a create command")
	}

	msg := cmd()
	mut, ok := msg.(MsgTaskMutated)
	if !ok {
		t.Fatalf("expected MsgTaskMutated, got %T", msg)
	}
	if mut.Err != nil {
		t.Fatalf("unexpected error: %v", mut.Err)
	}
	if len(tasks.Tasks) != 1 {
		t.Fatalf("expected 1 stored task, got %d", len(tasks.Tasks))
	}
}

func TestModelDeleteConfirmFlow(t *testing.T) {
	m, tasks := newTestModel(t)
	m.loading = false
	m.tasks = sampleTasks()
	for _, task := range m.tasks {
		tasks.Tasks[task.ID] = task
	}
	m.cursor = 1

	updated, _ := m.Update(keyRune('d'))
	model := updated.(*Model)
	if model.mode != ModeConfirmDelete {
		t.Fatalf("expected confirm delete mode, got %d", model.mode)
	}
	if model.deleteIndex != 1 {
		t.Fatalf("expected delete index 1, got %d", model.deleteIndex)
	}

	// Cancel leaves everything in place
	updated, _ = model.Update(keyRune('n'))
	model = updated.(*Model)
	if model.mode != ModeNormal {
		t.Fatalf("expected normal mode after cancel, got %d", model.mode)
	}
	if len(tasks.Tasks) != 3 {
		t.Fatalf("expected 3 stored tasks after cancel, got %d", len(tasks.Tasks))
	}

	// Confirm deletes the selected task
	model.mode = ModeConfirmDelete
	_, cmd := model.Update(keyRune('y'))
	if cmd == nil {
		t.Fatalf("expected a delete command")
	}
	cmd()
	if _, ok := tasks.Tasks["t-2"]; ok {
		t.Fatalf("expected t-2 to be deleted")
	}
}

func TestModelStatusCycleCommand(t *testing.T) {
	m, tasks := newTestModel(t)
	m.loading = false
	m.tasks = sampleTasks()
	for _, task := range m.tasks {
		tasks.Tasks[task.ID] = task
	}

	_, cmd := m.Update(keyRune('s'))
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	msg := cmd()
	if mut := msg.(MsgTaskMutated); mut.Err != nil {
		t.Fatalf("unexpected error: %v", mut.Err)
	}
	if got := tasks.Tasks["t-1"].Status; got != domain.StatusDoing {
		t.Fatalf("expected t-1 to advance to doing, got %s", got)
	}
}

func TestModelMutationReturnsToNormalAndReloads(t *testing.T) {
	m, _ := newTestModel(t)
	m.mode = ModeAddTask

	updated, cmd := m.Update(MsgTaskMutated{})
	model := updated.(*Model)
	if model.mode != ModeNormal {
		t.Fatalf("expected normal mode after mutation, got %d", model.mode)
	}
	if cmd == nil {
		t.Fatalf("expected reload commands after mutation")
	}
}

func TestViewShowsStatsFooter(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false
	m.tasks = sampleTasks()
	m.stats = &usecase.TodayStatsOutput{CompletedCount: 1, TotalToday: 3, Streak: 4}

	view := m.View()
	if !strings.Contains(view, "Today: 1/3 completed") {
		t.Fatalf("expected completion summary in view:\n%s", view)
	}
	if !strings.Contains(view, "4 day streak") {
		t.Fatalf("expected streak in view:\n%s", view)
	}
}

func TestViewEmptyState(t *testing.T) {
	m, _ := newTestModel(t)
	m.loading = false

	view := m.View()
	if !strings.Contains(view, "No tasks") {
		t.Fatalf("expected empty state message in view:\n%s", view)
	}
}
