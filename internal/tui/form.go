package tui

import (
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflow-app/taskflow-tui/internal/api"
)

// Validation errors are raised before any network call and keep the form
// open with an inline message.
var (
	errTitleRequired       = errors.New("a title is required")
	errProjectNameRequired = errors.New("a project name is required")
	errBadDueDate          = errors.New("due date must be YYYY-MM-DD")
)

// FormField constants for focus management
const (
	FormFieldTitle = iota
	FormFieldDescription
	FormFieldDue
	FormFieldPriority
	FormFieldProject
)

const formFieldCount = 5

// projectOption is one entry of the form's project selector.
type projectOption struct {
	Label string
	ID    *int
}

// TaskForm represents the state of the task creation/editing form.
type TaskForm struct {
	Title       textinput.Model
	Description textinput.Model
	Due         textinput.Model
	Priority    int

	ProjectOptions []projectOption
	ProjectCursor  int

	FocusIndex int
	Err        error

	// Mode tracking
	Mode   string // "create" or "edit"
	TaskID int    // ID of task being edited
}

// NewTaskForm creates a create-mode form. The project selector defaults to
// the currently active project.
func NewTaskForm(projects []api.Project, activeProjectID int) *TaskForm {
	f := &TaskForm{
		Priority: 2,
		Mode:     "create",
	}

	f.Title = textinput.New()
	f.Title.Placeholder = "Task title"
	f.Title.CharLimit = 120
	f.Title.Focus()

	f.Description = textinput.New()
	f.Description.Placeholder = "Description (optional)"

	f.Due = textinput.New()
	f.Due.Placeholder = "YYYY-MM-DD (optional)"
	f.Due.CharLimit = 10

	f.ProjectOptions = append(f.ProjectOptions, projectOption{Label: "No project"})
	for i := range projects {
		p := projects[i]
		id := p.ID
		f.ProjectOptions = append(f.ProjectOptions, projectOption{Label: p.Name, ID: &id})
		if p.ID == activeProjectID {
			f.ProjectCursor = len(f.ProjectOptions) - 1
		}
	}

	return f
}

// NewEditTaskForm creates an edit-mode form pre-filled from a cached task.
func NewEditTaskForm(task api.Task, projects []api.Project) *TaskForm {
	activeID := 0
	if task.ProjectID != nil {
		activeID = *task.ProjectID
	}

	f := NewTaskForm(projects, activeID)
	f.Mode = "edit"
	f.TaskID = task.ID
	f.Priority = task.Priority

	f.Title.SetValue(task.Title)
	if task.Description != nil {
		f.Description.SetValue(*task.Description)
	}
	if task.DueDate != nil {
		f.Due.SetValue(*task.DueDate)
	}
	if task.ProjectID == nil {
		f.ProjectCursor = 0
	}

	return f
}

// Update routes key input to the focused field.
func (f *TaskForm) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "tab", "down":
		f.nextField()
		return nil
	case "shift+tab", "up":
		f.prevField()
		return nil
	}

	switch f.FocusIndex {
	case FormFieldPriority:
		switch keyMsg.String() {
		case "1", "2", "3", "4":
			f.Priority = int(keyMsg.String()[0] - '0')
		case "h", "left":
			if f.Priority > 1 {
				f.Priority--
			}
		case "l", "right":
			if f.Priority < 4 {
				f.Priority++
			}
		}
		return nil
	case FormFieldProject:
		switch keyMsg.String() {
		case "h", "left":
			if f.ProjectCursor > 0 {
				f.ProjectCursor--
			}
		case "l", "right":
			if f.ProjectCursor < len(f.ProjectOptions)-1 {
				f.ProjectCursor++
			}
		}
		return nil
	}

	var cmd tea.Cmd
	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title, cmd = f.Title.Update(msg)
	case FormFieldDescription:
		f.Description, cmd = f.Description.Update(msg)
	case FormFieldDue:
		f.Due, cmd = f.Due.Update(msg)
	}
	return cmd
}

func (f *TaskForm) nextField() {
	f.FocusIndex = (f.FocusIndex + 1) % formFieldCount
	f.refocus()
}

func (f *TaskForm) prevField() {
	f.FocusIndex = (f.FocusIndex + formFieldCount - 1) % formFieldCount
	f.refocus()
}

func (f *TaskForm) refocus() {
	f.Title.Blur()
	f.Description.Blur()
	f.Due.Blur()

	switch f.FocusIndex {
	case FormFieldTitle:
		f.Title.Focus()
	case FormFieldDescription:
		f.Description.Focus()
	case FormFieldDue:
		f.Due.Focus()
	}
}

// validate checks the form locally. It fails fast so a bad submission never
// reaches the network.
func (f *TaskForm) validate() (title string, description, dueDate *string, err error) {
	title = trimmed(f.Title.Value())
	if title == "" {
		return "", nil, nil, errTitleRequired
	}

	if desc := trimmed(f.Description.Value()); desc != "" {
		description = &desc
	}

	if due := trimmed(f.Due.Value()); due != "" {
		if _, parseErr := time.Parse("2006-01-02", due); parseErr != nil {
			return "", nil, nil, errBadDueDate
		}
		dueDate = &due
	}

	return title, description, dueDate, nil
}

// CreateRequest validates the form and builds the create payload.
func (f *TaskForm) CreateRequest() (api.CreateTaskRequest, error) {
	title, description, dueDate, err := f.validate()
	if err != nil {
		return api.CreateTaskRequest{}, err
	}

	return api.CreateTaskRequest{
		Title:       title,
		Description: description,
		DueDate:     dueDate,
		Priority:    f.Priority,
		ProjectID:   f.ProjectOptions[f.ProjectCursor].ID,
	}, nil
}

// UpdateRequest validates the form and builds the update payload.
func (f *TaskForm) UpdateRequest() (api.UpdateTaskRequest, error) {
	title, description, dueDate, err := f.validate()
	if err != nil {
		return api.UpdateTaskRequest{}, err
	}

	priority := f.Priority
	return api.UpdateTaskRequest{
		Title:       &title,
		Description: description,
		DueDate:     dueDate,
		Priority:    &priority,
		ProjectID:   f.ProjectOptions[f.ProjectCursor].ID,
	}, nil
}

// ProjectForm represents the state of the new-project modal.
type ProjectForm struct {
	Name        textinput.Model
	ColorCursor int
	Err         error
}

// projectColors is the palette offered for new projects.
var projectColors = []string{
	"#2563eb", "#7c3aed", "#db2777", "#dc2626",
	"#ea580c", "#ca8a04", "#16a34a", "#0891b2",
}

// NewProjectForm creates an empty new-project modal.
func NewProjectForm() *ProjectForm {
	f := &ProjectForm{}
	f.Name = textinput.New()
	f.Name.Placeholder = "Project name"
	f.Name.CharLimit = 80
	f.Name.Focus()
	return f
}

// Update routes key input to the modal.
func (f *ProjectForm) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "left", "shift+tab":
			if f.ColorCursor > 0 {
				f.ColorCursor--
			}
			return nil
		case "right", "tab":
			if f.ColorCursor < len(projectColors)-1 {
				f.ColorCursor++
			}
			return nil
		}
	}

	var cmd tea.Cmd
	f.Name, cmd = f.Name.Update(msg)
	return cmd
}

// Request validates the modal and builds the create payload.
func (f *ProjectForm) Request() (api.CreateProjectRequest, error) {
	name := trimmed(f.Name.Value())
	if name == "" {
		return api.CreateProjectRequest{}, errProjectNameRequired
	}
	return api.CreateProjectRequest{
		Name:  name,
		Color: projectColors[f.ColorCursor],
	}, nil
}

func trimmed(s string) string {
	return strings.TrimSpace(s)
}
