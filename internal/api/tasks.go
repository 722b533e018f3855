package api

import "fmt"

// GetTasks returns tasks matching the given filter. The result order is the
// server's: active before completed, then priority descending, then due date.
func (c *Client) GetTasks(filter TaskFilter) ([]Task, error) {
	tasks := make([]Task, 0)
	if err := c.GetWithQuery("/tasks", buildFilterQuery(filter), &tasks); err != nil {
		return nil, fmt.Errorf("failed to get tasks: %w", err)
	}
	return tasks, nil
}

// GetTask returns a single task by ID.
func (c *Client) GetTask(id int) (*Task, error) {
	var task Task
	if err := c.Get(fmt.Sprintf("/tasks/%d", id), &task); err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", id, err)
	}
	return &task, nil
}

// CreateTask creates a new task.
func (c *Client) CreateTask(req CreateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Post("/tasks", req, &task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return &task, nil
}

// UpdateTask updates an existing task.
func (c *Client) UpdateTask(id int, req UpdateTaskRequest) (*Task, error) {
	var task Task
	if err := c.Put(fmt.Sprintf("/tasks/%d", id), req, &task); err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &task, nil
}

// ToggleTask flips a task's completion state and returns the updated task.
func (c *Client) ToggleTask(id int) (*Task, error) {
	var task Task
	if err := c.Patch(fmt.Sprintf("/tasks/%d/toggle", id), nil, &task); err != nil {
		return nil, fmt.Errorf("failed to toggle task %d: %w", id, err)
	}
	return &task, nil
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(id int) error {
	if err := c.Delete(fmt.Sprintf("/tasks/%d", id)); err != nil {
		return fmt.Errorf("failed to delete task %d: %w", id, err)
	}
	return nil
}

// GetSummary returns the store-wide task counts.
func (c *Client) GetSummary() (*Summary, error) {
	var summary Summary
	if err := c.Get("/tasks/summary", &summary); err != nil {
		return nil, fmt.Errorf("failed to get summary: %w", err)
	}
	return &summary, nil
}
