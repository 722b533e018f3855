package api

import "fmt"

// GetProjects returns all projects, ordered by name.
func (c *Client) GetProjects() ([]Project, error) {
	projects := make([]Project, 0)
	if err := c.Get("/projects", &projects); err != nil {
		return nil, fmt.Errorf("failed to get projects: %w", err)
	}
	return projects, nil
}

// CreateProject creates a new project. The server rejects duplicate names.
func (c *Client) CreateProject(req CreateProjectRequest) (*Project, error) {
	var project Project
	if err := c.Post("/projects", req, &project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return &project, nil
}
