package tui

import (
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)

	case projectsLoadedMsg:
		m.fatalErr = nil
		m.cache.SetProjects(msg.projects)
		m.clampCursors()
		if !m.initialized {
			m.initialized = true
			return m, tea.Batch(m.reloadTasks(), m.fetchSummary())
		}
		return m, nil

	case projectsErrMsg:
		if !m.initialized {
			m.loading = false
			m.fatalErr = msg.err
			return m, nil
		}
		m.setError(msg.err)
		return m, nil

	case tasksLoadedMsg:
		// Discard silently unless this is the freshest completed reload.
		if !m.reloads.Accept(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.tasksUnavailable = false
		m.cache.ReplaceTasks(msg.tasks)
		m.clampCursors()

		cmds := []tea.Cmd{m.fetchSummary()}
		if !m.notified && m.cfg.UI.Notifications {
			m.notified = true
			if cmd := notifyDueTasks(m.cache.Tasks); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tasksErrMsg:
		if !m.reloads.Accept(msg.seq) {
			return m, nil
		}
		m.loading = false
		m.tasksUnavailable = true
		m.setError(msg.err)
		return m, nil

	case summaryLoadedMsg:
		m.summary = msg.summary
		m.summaryUnavailable = false
		return m, nil

	case summaryErrMsg:
		// Summary degrades on its own; projects and tasks are untouched.
		m.summaryUnavailable = true
		return m, nil

	case taskCreatedMsg:
		m.form = nil
		m.setStatus("Task created")
		m.loading = true
		return m, tea.Batch(m.loadProjects(), m.reloadTasks(), m.spinner.Tick)

	case taskUpdatedMsg:
		m.form = nil
		m.setStatus("Task updated")
		m.loading = true
		return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)

	case taskToggledMsg:
		m.cache.ApplyToggle(msg.id, *msg.task)
		return m, m.fetchSummary()

	case taskDeletedMsg:
		m.cache.RemoveTask(msg.id)
		m.clampCursors()
		m.setStatus("Task deleted")
		return m, m.fetchSummary()

	case projectCreatedMsg:
		m.projectForm = nil
		m.cache.AddProject(*msg.project)
		m.setStatus("Project created")
		m.loading = true
		return m, tea.Batch(m.loadProjects(), m.reloadTasks(), m.spinner.Tick)

	case mutationErrMsg:
		// The flow aborted before touching the cache; keep any open form
		// so the input survives.
		if m.form != nil {
			m.form.Err = msg.err
			return m, nil
		}
		if m.projectForm != nil {
			m.projectForm.Err = msg.err
			return m, nil
		}
		m.setError(msg.err)
		return m, nil

	case searchDebouncedMsg:
		if !m.debounce.Current(msg.token) {
			return m, nil
		}
		m.loading = true
		return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)

	case notifiedMsg:
		return m, nil
	}

	return m, nil
}

// handleKey routes key input depending on which surface is active.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.fatalErr != nil {
		return m.handleFatalKey(msg)
	}
	if m.form != nil {
		return m.handleFormKey(msg)
	}
	if m.projectForm != nil {
		return m.handleProjectFormKey(msg)
	}
	if m.confirmDelete != nil {
		return m.handleConfirmDeleteKey(msg)
	}
	if m.searching {
		return m.handleSearchKey(msg)
	}
	if m.editingDue {
		return m.handleDueKey(msg)
	}

	return m.handleNormalKey(msg)
}

func (m *Model) handleFatalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "R", "r":
		m.fatalErr = nil
		m.loading = true
		return m, tea.Batch(m.loadProjects(), m.spinner.Tick)
	}
	return m, nil
}

func (m *Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = nil
		return m, nil
	case "enter":
		return m, m.submitTaskForm()
	}
	return m, m.form.Update(msg)
}

// submitTaskForm validates locally, then sends the mutation. Validation
// failures never reach the network.
func (m *Model) submitTaskForm() tea.Cmd {
	if m.form.Mode == "edit" {
		req, err := m.form.UpdateRequest()
		if err != nil {
			m.form.Err = err
			return nil
		}
		m.form.Err = nil
		return m.updateTask(m.form.TaskID, req)
	}

	req, err := m.form.CreateRequest()
	if err != nil {
		m.form.Err = err
		return nil
	}
	m.form.Err = nil
	return m.createTask(req)
}

func (m *Model) handleProjectFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.projectForm = nil
		return m, nil
	case "enter":
		req, err := m.projectForm.Request()
		if err != nil {
			m.projectForm.Err = err
			return m, nil
		}
		m.projectForm.Err = nil
		return m, m.createProject(req)
	}
	return m, m.projectForm.Update(msg)
}

func (m *Model) handleConfirmDeleteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task := m.confirmDelete
	m.confirmDelete = nil
	if msg.String() == "y" {
		return m, m.deleteTask(task.ID)
	}
	m.setStatus("Delete cancelled")
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "enter":
		// Explicit submit skips the debounce window.
		m.searching = false
		m.search.Blur()
		m.loading = true
		return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.debounceSearch())
}

func (m *Model) handleDueKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editingDue = false
		m.dueInput.Blur()
		return m, nil
	case "enter":
		value := trimmed(m.dueInput.Value())
		if value != "" {
			if _, err := time.Parse("2006-01-02", value); err != nil {
				m.setError(errBadDueDate)
				return m, nil
			}
		}
		m.editingDue = false
		m.dueInput.Blur()
		m.dueBefore = value
		m.loading = true
		return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.dueInput, cmd = m.dueInput.Update(msg)
	return m, cmd
}

func (m *Model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// "dd" requires two presses; any other key clears the pending state.
	if key != "d" {
		m.pendingDelete = false
	}

	switch key {
	case "q":
		return m, tea.Quit

	case "tab":
		if m.pane == PaneSidebar {
			m.pane = PaneMain
		} else {
			m.pane = PaneSidebar
		}
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil

	case "k", "up":
		m.moveCursor(-1)
		return m, nil

	case "enter":
		if m.pane == PaneSidebar && m.projectCursor < len(m.cache.Projects) {
			m.cache.SetActiveProject(m.cache.Projects[m.projectCursor].ID)
			m.loading = true
			return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)
		}
		return m, nil

	case "x", " ":
		if task := m.selectedTask(); task != nil {
			return m, m.toggleTask(task.ID)
		}
		return m, nil

	case "d":
		if m.pendingDelete {
			m.pendingDelete = false
			if task := m.selectedTask(); task != nil {
				m.confirmDelete = task
			}
			return m, nil
		}
		m.pendingDelete = true
		return m, nil

	case "a":
		m.form = NewTaskForm(m.cache.Projects, m.cache.ActiveProjectID)
		return m, nil

	case "e":
		if task := m.selectedTask(); task != nil {
			m.form = NewEditTaskForm(*task, m.cache.Projects)
		}
		return m, nil

	case "p":
		m.projectForm = NewProjectForm()
		return m, nil

	case "/":
		m.searching = true
		m.search.Focus()
		return m, nil

	case "f":
		m.completed = (m.completed + 1) % 3
		m.loading = true
		return m, tea.Batch(m.reloadTasks(), m.spinner.Tick)

	case "b":
		m.editingDue = true
		m.dueInput.SetValue(m.dueBefore)
		m.dueInput.Focus()
		return m, nil

	case "y":
		if task := m.selectedTask(); task != nil {
			if err := clipboard.WriteAll(task.Title); err != nil {
				m.statusMsg = "clipboard unavailable"
				m.statusIsErr = true
			} else {
				m.setStatus("Yanked task title")
			}
		}
		return m, nil

	case "r":
		m.loading = true
		return m, tea.Batch(m.loadProjects(), m.reloadTasks(), m.spinner.Tick)
	}

	return m, nil
}

// moveCursor moves the cursor of the focused pane, clamped to its list.
func (m *Model) moveCursor(delta int) {
	if m.pane == PaneSidebar {
		m.projectCursor += delta
		if m.projectCursor < 0 {
			m.projectCursor = 0
		}
		if m.projectCursor >= len(m.cache.Projects) {
			m.projectCursor = max(0, len(m.cache.Projects)-1)
		}
		return
	}

	m.taskCursor += delta
	if m.taskCursor < 0 {
		m.taskCursor = 0
	}
	if m.taskCursor >= len(m.cache.Tasks) {
		m.taskCursor = max(0, len(m.cache.Tasks)-1)
	}
}
