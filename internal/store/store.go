// Package store owns the client-side cache of projects and tasks.
//
// A single Store instance is created at startup and handed by pointer to
// the TUI layer. Every mutation completes synchronously: a renderer never
// observes a partially updated cache.
package store

import (
	"slices"

	"github.com/taskflow-app/taskflow-tui/internal/api"
)

// inboxName is the project the server seeds and the client defaults to.
const inboxName = "Inbox"

// Store holds the session's authoritative copy of projects, the currently
// filtered task set, and the active project selection. The task slice is
// always the result of exactly one completed reload, never a merge of two.
type Store struct {
	Projects []api.Project
	Tasks    []api.Task

	// ActiveProjectID is the selected project, or zero for no selection.
	ActiveProjectID int
}

// New creates an empty store.
func New() *Store {
	return &Store{}
}

// SetProjects replaces the project collection wholesale and reconciles the
// active selection. If no project is selected, or the selected project no
// longer exists server-side, selection defaults to the project named
// "Inbox", falling back to the first project in server order.
func (s *Store) SetProjects(projects []api.Project) {
	s.Projects = dedupeProjects(projects)

	if s.ActiveProjectID != 0 && s.projectByID(s.ActiveProjectID) != nil {
		return
	}

	s.ActiveProjectID = 0
	for _, p := range s.Projects {
		if p.Name == inboxName {
			s.ActiveProjectID = p.ID
			return
		}
	}
	if len(s.Projects) > 0 {
		s.ActiveProjectID = s.Projects[0].ID
	}
}

// AddProject appends a confirmed project. Server order is restored by the
// next SetProjects.
func (s *Store) AddProject(project api.Project) {
	if s.projectByID(project.ID) != nil {
		return
	}
	s.Projects = append(s.Projects, project)
}

// SetActiveProject selects a project. It is a no-op for unknown IDs.
func (s *Store) SetActiveProject(id int) {
	if s.projectByID(id) == nil {
		return
	}
	s.ActiveProjectID = id
}

// ActiveProject returns the selected project, or nil if none is selected.
func (s *Store) ActiveProject() *api.Project {
	return s.projectByID(s.ActiveProjectID)
}

// ReplaceTasks replaces the task set wholesale with one reload's result.
func (s *Store) ReplaceTasks(tasks []api.Task) {
	s.Tasks = dedupeTasks(tasks)
}

// ApplyToggle patches a confirmed toggle result into the task set. If the
// task is no longer cached (filtered out by a concurrent reload) nothing
// happens.
func (s *Store) ApplyToggle(taskID int, updated api.Task) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == taskID {
			s.Tasks[i] = updated
			return
		}
	}
}

// RemoveTask removes a confirmed-deleted task. Removing an absent task is
// a no-op.
func (s *Store) RemoveTask(taskID int) {
	s.Tasks = slices.DeleteFunc(s.Tasks, func(t api.Task) bool {
		return t.ID == taskID
	})
}

// Task returns the cached task with the given ID, or nil.
func (s *Store) Task(id int) *api.Task {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i]
		}
	}
	return nil
}

func (s *Store) projectByID(id int) *api.Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

func dedupeProjects(projects []api.Project) []api.Project {
	seen := make(map[int]bool, len(projects))
	out := projects[:0:0]
	for _, p := range projects {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, p)
	}
	return out
}

func dedupeTasks(tasks []api.Task) []api.Task {
	seen := make(map[int]bool, len(tasks))
	out := tasks[:0:0]
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
