package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/taskflow-app/taskflow-tui/internal/api"
)

// searchDebounceInterval is how long search input must stay idle before a
// reload fires.
const searchDebounceInterval = 300 * time.Millisecond

// Message types. One per completed async operation.
type (
	projectsLoadedMsg struct{ projects []api.Project }
	projectsErrMsg    struct{ err error }

	tasksLoadedMsg struct {
		seq   uint64
		tasks []api.Task
	}
	tasksErrMsg struct {
		seq uint64
		err error
	}

	summaryLoadedMsg struct{ summary *api.Summary }
	summaryErrMsg    struct{ err error }

	taskCreatedMsg struct{}
	taskUpdatedMsg struct{}
	taskToggledMsg struct {
		id   int
		task *api.Task
	}
	taskDeletedMsg    struct{ id int }
	projectCreatedMsg struct{ project *api.Project }

	// mutationErrMsg aborts a mutation flow; the cache is untouched.
	mutationErrMsg struct{ err error }

	searchDebouncedMsg struct{ token int }

	notifiedMsg struct{}
)

// loadProjects fetches the full project collection.
func (m *Model) loadProjects() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		projects, err := client.GetProjects()
		if err != nil {
			return projectsErrMsg{err}
		}
		return projectsLoadedMsg{projects}
	}
}

// reloadTasks issues a sequenced reload for the current filter. The filter
// is captured now; the sequence number decides later whether the result is
// still the freshest one.
func (m *Model) reloadTasks() tea.Cmd {
	client := m.client
	seq := m.reloads.Next()
	filter := m.currentFilter()
	return func() tea.Msg {
		tasks, err := client.GetTasks(filter)
		if err != nil {
			return tasksErrMsg{seq: seq, err: err}
		}
		return tasksLoadedMsg{seq: seq, tasks: tasks}
	}
}

// fetchSummary refreshes the store-wide counts.
func (m *Model) fetchSummary() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		summary, err := client.GetSummary()
		if err != nil {
			return summaryErrMsg{err}
		}
		return summaryLoadedMsg{summary}
	}
}

// debounceSearch arms the debounce timer for the latest keystroke.
func (m *Model) debounceSearch() tea.Cmd {
	token := m.debounce.Arm()
	return tea.Tick(searchDebounceInterval, func(time.Time) tea.Msg {
		return searchDebouncedMsg{token: token}
	})
}

func (m *Model) createTask(req api.CreateTaskRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.CreateTask(req); err != nil {
			return mutationErrMsg{err}
		}
		return taskCreatedMsg{}
	}
}

func (m *Model) updateTask(id int, req api.UpdateTaskRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if _, err := client.UpdateTask(id, req); err != nil {
			return mutationErrMsg{err}
		}
		return taskUpdatedMsg{}
	}
}

func (m *Model) toggleTask(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		task, err := client.ToggleTask(id)
		if err != nil {
			return mutationErrMsg{err}
		}
		return taskToggledMsg{id: id, task: task}
	}
}

func (m *Model) deleteTask(id int) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		if err := client.DeleteTask(id); err != nil {
			return mutationErrMsg{err}
		}
		return taskDeletedMsg{id: id}
	}
}

func (m *Model) createProject(req api.CreateProjectRequest) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		project, err := client.CreateProject(req)
		if err != nil {
			return mutationErrMsg{err}
		}
		return projectCreatedMsg{project}
	}
}

// notifyDueTasks fires a desktop notification for tasks that are due today
// or overdue. Failures are ignored; notifications are best effort.
func notifyDueTasks(tasks []api.Task) tea.Cmd {
	due := 0
	for i := range tasks {
		if tasks[i].IsOverdue() || tasks[i].IsDueToday() {
			due++
		}
	}
	if due == 0 {
		return nil
	}
	return func() tea.Msg {
		beeep.Notify("Taskflow", fmt.Sprintf("%d task(s) due today", due), "")
		return notifiedMsg{}
	}
}
