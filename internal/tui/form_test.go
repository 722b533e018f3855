package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/taskflow-app/taskflow-tui/internal/api"
)

func TestTaskFormDefaultsProjectToActive(t *testing.T) {
	projects := []api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
	}

	f := NewTaskForm(projects, 3)

	opt := f.ProjectOptions[f.ProjectCursor]
	if opt.ID == nil || *opt.ID != 3 {
		t.Errorf("expected active project preselected, got %+v", opt)
	}
}

func TestTaskFormPriorityKeys(t *testing.T) {
	f := NewTaskForm(nil, 0)
	f.FocusIndex = FormFieldPriority

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("4")})
	if f.Priority != 4 {
		t.Errorf("expected priority 4, got %d", f.Priority)
	}

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	if f.Priority != 3 {
		t.Errorf("expected priority 3 after h, got %d", f.Priority)
	}

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	if f.Priority != 4 {
		t.Errorf("expected priority clamped at 4, got %d", f.Priority)
	}
}

func TestTaskFormRejectsBadDueDate(t *testing.T) {
	f := NewTaskForm(nil, 0)
	f.Title.SetValue("Write report")
	f.Due.SetValue("next tuesday")

	if _, err := f.CreateRequest(); err != errBadDueDate {
		t.Errorf("expected due date validation error, got %v", err)
	}
}

func TestTaskFormCreateRequest(t *testing.T) {
	projects := []api.Project{{ID: 2, Name: "Inbox"}}
	f := NewTaskForm(projects, 2)
	f.Title.SetValue("  Write report  ")
	f.Due.SetValue("2024-03-01")
	f.Priority = 3

	req, err := f.CreateRequest()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Title != "Write report" {
		t.Errorf("expected trimmed title, got %q", req.Title)
	}
	if req.DueDate == nil || *req.DueDate != "2024-03-01" {
		t.Errorf("unexpected due date: %v", req.DueDate)
	}
	if req.ProjectID == nil || *req.ProjectID != 2 {
		t.Errorf("unexpected project: %v", req.ProjectID)
	}
	if req.Description != nil {
		t.Errorf("expected empty description to be nil, got %v", req.Description)
	}
}

func TestEditFormPrefillsTask(t *testing.T) {
	desc := "quarterly numbers"
	due := "2024-03-01"
	projectID := 3
	task := api.Task{
		ID:          7,
		Title:       "Write report",
		Description: &desc,
		DueDate:     &due,
		Priority:    4,
		ProjectID:   &projectID,
	}
	projects := []api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
	}

	f := NewEditTaskForm(task, projects)

	if f.Mode != "edit" || f.TaskID != 7 {
		t.Errorf("unexpected mode/task: %s/%d", f.Mode, f.TaskID)
	}
	if f.Title.Value() != "Write report" {
		t.Errorf("unexpected title: %q", f.Title.Value())
	}
	if f.Due.Value() != due {
		t.Errorf("unexpected due: %q", f.Due.Value())
	}
	if f.Priority != 4 {
		t.Errorf("unexpected priority: %d", f.Priority)
	}
	opt := f.ProjectOptions[f.ProjectCursor]
	if opt.ID == nil || *opt.ID != 3 {
		t.Errorf("expected task's project preselected, got %+v", opt)
	}
}

func TestProjectFormRequiresName(t *testing.T) {
	f := NewProjectForm()

	if _, err := f.Request(); err != errProjectNameRequired {
		t.Errorf("expected name validation error, got %v", err)
	}

	f.Name.SetValue("  Work  ")
	req, err := f.Request()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Name != "Work" {
		t.Errorf("expected trimmed name, got %q", req.Name)
	}
	if req.Color == "" {
		t.Error("expected a color from the palette")
	}
}
