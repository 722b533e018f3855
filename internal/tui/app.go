// Package tui implements the terminal interface for Taskflow.
//
// The model follows the usual bubbletea split: app.go holds the state,
// commands.go the async commands and their completion messages, update.go
// the message loop and view.go the rendering. All cache mutations happen
// synchronously inside Update; network calls only ever run inside commands
// and report back through typed messages.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/taskflow-app/taskflow-tui/internal/api"
	"github.com/taskflow-app/taskflow-tui/internal/config"
	"github.com/taskflow-app/taskflow-tui/internal/store"
	"github.com/taskflow-app/taskflow-tui/internal/tui/styles"
)

// Pane represents which pane is currently focused.
type Pane int

const (
	PaneSidebar Pane = iota
	PaneMain
)

// Model is the bubbletea model for the application.
type Model struct {
	client *api.Client
	cfg    *config.Config

	// cache owns projects, the filtered task set and the active project.
	cache    *store.Store
	reloads  store.Coordinator
	debounce store.Debouncer

	// Filter state. Together with the active project this is the sole
	// input of the task query.
	completed api.CompletedFilter
	dueBefore string
	search    textinput.Model

	// Summary is fetched independently of the task set and degrades on
	// its own.
	summary            *api.Summary
	summaryUnavailable bool
	tasksUnavailable   bool

	pane          Pane
	projectCursor int
	taskCursor    int

	loading     bool
	initialized bool
	spinner     spinner.Model
	statusMsg   string
	statusIsErr bool
	fatalErr    error

	width  int
	height int

	searching     bool
	editingDue    bool
	dueInput      textinput.Model
	pendingDelete bool
	confirmDelete *api.Task

	form        *TaskForm
	projectForm *ProjectForm

	notified bool
}

// NewModel creates the application model.
func NewModel(client *api.Client, cfg *config.Config) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Highlight)

	search := textinput.New()
	search.Placeholder = "Search tasks"
	search.CharLimit = 120

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10

	return &Model{
		client:   client,
		cfg:      cfg,
		cache:    store.New(),
		search:   search,
		dueInput: due,
		spinner:  s,
		loading:  true,
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadProjects())
}

// currentFilter derives the canonical task query input from the UI state.
func (m *Model) currentFilter() api.TaskFilter {
	return api.TaskFilter{
		ProjectID: m.cache.ActiveProjectID,
		Completed: m.completed,
		DueBefore: m.dueBefore,
		Search:    m.search.Value(),
	}
}

// selectedTask returns the task under the cursor, or nil.
func (m *Model) selectedTask() *api.Task {
	if m.taskCursor < 0 || m.taskCursor >= len(m.cache.Tasks) {
		return nil
	}
	return &m.cache.Tasks[m.taskCursor]
}

// clampCursors keeps both cursors inside their lists after a reload.
func (m *Model) clampCursors() {
	if m.taskCursor >= len(m.cache.Tasks) {
		m.taskCursor = max(0, len(m.cache.Tasks)-1)
	}
	if m.projectCursor >= len(m.cache.Projects) {
		m.projectCursor = max(0, len(m.cache.Projects)-1)
	}
}

// setStatus replaces the status line with an informational message.
func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusIsErr = false
}

// setError replaces the status line with an error message.
func (m *Model) setError(err error) {
	m.statusMsg = errorMessage(err)
	m.statusIsErr = true
}

// errorMessage maps an error onto the text shown to the user. API errors
// carry the server's detail; anything else is a transport problem.
func errorMessage(err error) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message()
	}
	return "cannot reach the server"
}
