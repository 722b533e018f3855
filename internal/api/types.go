// Package api provides a client for the Taskflow HTTP API.
package api

import (
	"fmt"
	"time"
)

// Project represents a Taskflow project.
type Project struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Task represents a Taskflow task.
type Task struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    int     `json:"priority"`
	Completed   bool    `json:"completed"`
	ProjectID   *int    `json:"project_id"`
	CreatedAt   string  `json:"created_at"`
}

// Summary holds the store-wide task counts returned by /api/tasks/summary.
// It is always fetched from the server, never recomputed from a filtered
// task list.
type Summary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	Active    int `json:"active"`
}

// CreateTaskRequest represents the request body for creating a task.
type CreateTaskRequest struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	Priority    int     `json:"priority"`
	ProjectID   *int    `json:"project_id"`
}

// UpdateTaskRequest represents the request body for updating a task.
// Nil fields are left unchanged by the server.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Priority    *int    `json:"priority,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
	ProjectID   *int    `json:"project_id,omitempty"`
}

// CreateProjectRequest represents the request body for creating a project.
type CreateProjectRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// IsOverdue returns true if the task has a due date in the past and is not
// completed.
func (t *Task) IsOverdue() bool {
	if t.DueDate == nil || t.Completed {
		return false
	}

	dueDate, err := time.Parse("2006-01-02", *t.DueDate)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return dueDate.Before(today)
}

// IsDueToday returns true if the task is due today.
func (t *Task) IsDueToday() bool {
	if t.DueDate == nil {
		return false
	}

	dueDate, err := time.Parse("2006-01-02", *t.DueDate)
	if err != nil {
		return false
	}

	today := time.Now().Truncate(24 * time.Hour)
	return dueDate.Equal(today)
}

// DueDisplay returns a human-readable due date string.
func (t *Task) DueDisplay() string {
	if t.DueDate == nil {
		return ""
	}

	dueDate, err := time.Parse("2006-01-02", *t.DueDate)
	if err != nil {
		return *t.DueDate
	}

	today := time.Now().Truncate(24 * time.Hour)
	diff := int(dueDate.Sub(today).Hours() / 24)

	switch {
	case diff < -1:
		return fmt.Sprintf("%d days ago", -diff)
	case diff == -1:
		return "yesterday"
	case diff == 0:
		return "today"
	case diff == 1:
		return "tomorrow"
	case diff < 7:
		return dueDate.Weekday().String()
	default:
		return dueDate.Format("Jan 2")
	}
}
