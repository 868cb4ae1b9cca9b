package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tasktide/internal/app"
	"tasktide/internal/domain"
	"tasktide/internal/usecase"
)

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeAddTask
	ModeConfirmDelete
)

// Model is the board TUI model.
// Fields are ordered to minimize memory padding.
type Model struct {
	// Dependencies
	container *app.Container

	// State
	tasks []*domain.Task
	stats *usecase.TodayStatsOutput
	err   error

	// Components
	keys     KeyMap
	styles   Styles
	addInput textinput.Model

	// Numeric state
	cursor      int
	width       int
	height      int
	deleteIndex int // Index of task being deleted
	mode        Mode

	// Boolean state
	loading bool
}

// New creates a new board TUI model.
func New(c *app.Container) *Model {
	ai := textinput.New()
	ai.Placeholder = "Enter task title..."
	ai.CharLimit = 200

	return &Model{
		container: c,
		tasks:     nil,
		cursor:    0,
		mode:      ModeNormal,
		keys:      DefaultKeyMap(),
		styles:    DefaultStyles(),
		addInput:  ai,
		loading:   true,
	}
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTasks(),
		m.loadStats(),
	)
}

// loadTasks loads the task list from the store.
func (m *Model) loadTasks() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.ListTasksUseCase().Execute(context.Background(), usecase.ListTasksInput{})
		if err != nil {
			return MsgTasksLoaded{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks}
	}
}

// loadStats loads today's aggregates.
func (m *Model) loadStats() tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.TodayStatsUseCase().Execute(context.Background())
		if err != nil {
			return MsgStatsLoaded{Err: err}
		}
		return MsgStatsLoaded{Stats: out}
	}
}

// createTask returns a command that creates a task with the given title.
func (m *Model) createTask(title string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.CreateTaskUseCase().Execute(context.Background(), usecase.CreateTaskInput{
			Title: title,
		})
		return MsgTaskMutated{Err: err}
	}
}

// cycleStatus returns a command that advances a task to its next status.
func (m *Model) cycleStatus(task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.SetStatusUseCase().Execute(context.Background(), usecase.SetStatusInput{
			ID:     task.ID,
			Status: task.Status.Next(),
		})
		return MsgTaskMutated{Err: err}
	}
}

// cyclePriority returns a command that advances a task to its next priority.
func (m *Model) cyclePriority(task *domain.Task) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.SetPriorityUseCase().Execute(context.Background(), usecase.SetPriorityInput{
			ID:       task.ID,
			Priority: task.Priority.Next(),
		})
		return MsgTaskMutated{Err: err}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.DeleteTaskInput{ID: id})
		return MsgTaskMutated{Err: err}
	}
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case MsgTasksLoaded:
		m.loading = false
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.err = nil
		m.tasks = msg.Tasks
		if m.cursor >= len(m.tasks) && m.cursor > 0 {
			m.cursor = len(m.tasks) - 1
		}
		return m, nil

	case MsgStatsLoaded:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.stats = msg.Stats
		return m, nil

	case MsgTaskMutated:
		if msg.Err != nil {
			m.err = msg.Err
		}
		m.mode = ModeNormal
		m.addInput.Reset()
		return m, tea.Batch(m.loadTasks(), m.loadStats())
	}

	return m, nil
}

// handleKey handles key events.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode { //nolint:exhaustive // ModeNormal handled in default
	case ModeAddTask:
		return m.handleAddMode(msg)
	case ModeConfirmDelete:
		return m.handleDeleteMode(msg)
	default:
		return m.handleNormalMode(msg)
	}
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.mode = ModeAddTask
		m.addInput.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Status):
		if len(m.tasks) > 0 && m.cursor < len(m.tasks) {
			return m, m.cycleStatus(m.tasks[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.Priority):
		if len(m.tasks) > 0 && m.cursor < len(m.tasks) {
			return m, m.cyclePriority(m.tasks[m.cursor])
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if len(m.tasks) > 0 && m.cursor < len(m.tasks) {
			m.mode = ModeConfirmDelete
			m.deleteIndex = m.cursor
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		m.loading = true
		return m, tea.Batch(m.loadTasks(), m.loadStats())
	}

	return m, nil
}

// handleAddMode handles keys in add task mode.
func (m *Model) handleAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		title := strings.TrimSpace(m.addInput.Value())
		if title == "" {
			m.mode = ModeNormal
			m.addInput.Reset()
			return m, nil
		}
		return m, m.createTask(title)

	case "esc":
		m.mode = ModeNormal
		m.addInput.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.addInput, cmd = m.addInput.Update(msg)
	return m, cmd
}

// handleDeleteMode handles keys in delete confirmation mode.
func (m *Model) handleDeleteMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y", "enter":
		if m.deleteIndex < len(m.tasks) {
			id := m.tasks[m.deleteIndex].ID
			return m, m.deleteTask(id)
		}
		m.mode = ModeNormal
		return m, nil

	case "n", "N", "esc", "q":
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// View renders the TUI.
func (m *Model) View() string {
	switch m.mode { //nolint:exhaustive // ModeNormal handled in default
	case ModeAddTask:
		return m.viewAddDialog()
	case ModeConfirmDelete:
		return m.viewDeleteDialog()
	default:
		return m.viewMain()
	}
}

// viewMain renders the main view with header, list, and footer.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("Tasks"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(m.styles.Error.Render("Error: "+m.err.Error()) + "\n\n")
	}

	b.WriteString(m.viewTaskList())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	b.WriteString("\n")
	b.WriteString(m.styles.Help.Render("a add · s status · p priority · d delete · r refresh · q quit"))

	return b.String()
}

// viewTaskList renders the task list.
func (m *Model) viewTaskList() string {
	if m.loading {
		return m.styles.Loading.Render("Loading tasks...")
	}

	if len(m.tasks) == 0 {
		if m.err != nil {
			return ""
		}
		return m.styles.Muted.Render("No tasks. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, task := range m.tasks {
		b.WriteString(m.renderTaskLine(task, i == m.cursor))
		b.WriteString("\n")
	}
	return b.String()
}

// renderTaskLine renders a single task row.
func (m *Model) renderTaskLine(task *domain.Task, selected bool) string {
	var cursor string
	if selected {
		cursor = m.styles.Selected.Render("▸")
	} else {
		cursor = m.styles.Normal.Render(" ")
	}

	status := m.styles.statusStyle(string(task.Status)).Render(fmt.Sprintf("%-5s", task.Status.Display()))
	priority := m.styles.Muted.Render(fmt.Sprintf("%-6s", task.Priority.Display()))

	return fmt.Sprintf("%s %s %s %s", cursor, status, priority, task.Title)
}

// viewFooter renders today's aggregates.
func (m *Model) viewFooter() string {
	if m.stats == nil {
		return ""
	}
	line := fmt.Sprintf("Today: %d/%d completed", m.stats.CompletedCount, m.stats.TotalToday)
	switch m.stats.Streak {
	case 0:
	case 1:
		line += " · 1 day streak"
	default:
		line += fmt.Sprintf(" · %d day streak", m.stats.Streak)
	}
	return m.styles.Footer.Render(line)
}

// viewAddDialog renders the add task dialog.
func (m *Model) viewAddDialog() string {
	content := m.styles.DialogTitle.Render("Add Task") + "\n" +
		m.addInput.View() + "\n\n" +
		m.styles.Muted.Render("enter confirm · esc cancel")
	return m.styles.Dialog.Render(content)
}

// viewDeleteDialog renders the delete confirmation dialog.
func (m *Model) viewDeleteDialog() string {
	title := ""
	if m.deleteIndex < len(m.tasks) {
		title = m.tasks[m.deleteIndex].Title
	}
	content := m.styles.DialogTitle.Render("Delete Task") + "\n" +
		fmt.Sprintf("Delete %q?", title) + "\n\n" +
		m.styles.Muted.Render("y confirm · n cancel")
	return m.styles.Dialog.Render(content)
}
