package store

import (
	"testing"

	"github.com/taskflow-app/taskflow-tui/internal/api"
)

func TestSetProjectsDefaultsToInbox(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{
		{ID: 1, Name: "Work"},
		{ID: 2, Name: "Inbox"},
	})

	if s.ActiveProjectID != 2 {
		t.Errorf("expected Inbox (id 2) to be active, got %d", s.ActiveProjectID)
	}
	if p := s.ActiveProject(); p == nil || p.Name != "Inbox" {
		t.Errorf("unexpected active project: %+v", p)
	}
}

func TestSetProjectsFallsBackToFirst(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{
		{ID: 5, Name: "Work"},
		{ID: 6, Name: "Home"},
	})

	if s.ActiveProjectID != 5 {
		t.Errorf("expected first project (id 5) to be active, got %d", s.ActiveProjectID)
	}
}

func TestSetProjectsEmptyLeavesNoSelection(t *testing.T) {
	s := New()
	s.SetProjects(nil)

	if s.ActiveProjectID != 0 {
		t.Errorf("expected no selection, got %d", s.ActiveProjectID)
	}
	if s.ActiveProject() != nil {
		t.Error("expected nil active project")
	}
}

func TestSetProjectsKeepsValidSelection(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
	})
	s.SetActiveProject(3)

	s.SetProjects([]api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
		{ID: 4, Name: "Home"},
	})

	if s.ActiveProjectID != 3 {
		t.Errorf("expected selection to survive reload, got %d", s.ActiveProjectID)
	}
}

func TestSetProjectsRedefaultsWhenActiveVanishes(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
	})
	s.SetActiveProject(3)

	// Project 3 was deleted server-side out of band.
	s.SetProjects([]api.Project{
		{ID: 2, Name: "Inbox"},
	})

	if s.ActiveProjectID != 2 {
		t.Errorf("expected re-default to Inbox, got %d", s.ActiveProjectID)
	}
}

func TestSetActiveProjectUnknownIDIsNoop(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{{ID: 2, Name: "Inbox"}})

	s.SetActiveProject(99)

	if s.ActiveProjectID != 2 {
		t.Errorf("expected selection unchanged, got %d", s.ActiveProjectID)
	}
}

func TestSetProjectsDropsDuplicateIDs(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{
		{ID: 2, Name: "Inbox"},
		{ID: 2, Name: "Inbox"},
		{ID: 3, Name: "Work"},
	})

	if len(s.Projects) != 2 {
		t.Errorf("expected duplicate ids dropped, got %d projects", len(s.Projects))
	}
}

func TestReplaceTasksIsWholesale(t *testing.T) {
	s := New()
	s.ReplaceTasks([]api.Task{
		{ID: 1, Title: "old"},
		{ID: 2, Title: "old"},
	})
	s.ReplaceTasks([]api.Task{
		{ID: 3, Title: "new"},
	})

	if len(s.Tasks) != 1 || s.Tasks[0].ID != 3 {
		t.Errorf("expected wholesale replacement, got %+v", s.Tasks)
	}
}

func TestReplaceTasksDropsDuplicateIDs(t *testing.T) {
	s := New()
	s.ReplaceTasks([]api.Task{
		{ID: 1, Title: "a"},
		{ID: 1, Title: "b"},
	})

	if len(s.Tasks) != 1 {
		t.Errorf("expected duplicate ids dropped, got %d tasks", len(s.Tasks))
	}
	if s.Tasks[0].Title != "a" {
		t.Errorf("expected first occurrence kept, got %q", s.Tasks[0].Title)
	}
}

func TestApplyToggle(t *testing.T) {
	s := New()
	s.ReplaceTasks([]api.Task{
		{ID: 6, Title: "other", Completed: false},
		{ID: 7, Title: "Write report", Completed: false},
	})

	s.ApplyToggle(7, api.Task{ID: 7, Title: "Write report", Completed: true})

	if task := s.Task(7); task == nil || !task.Completed {
		t.Errorf("expected task 7 completed, got %+v", task)
	}
	if task := s.Task(6); task == nil || task.Completed {
		t.Errorf("expected task 6 untouched, got %+v", task)
	}
}

func TestApplyToggleAbsentTaskIsNoop(t *testing.T) {
	s := New()
	s.ReplaceTasks([]api.Task{{ID: 6, Title: "other"}})

	s.ApplyToggle(7, api.Task{ID: 7, Completed: true})

	if len(s.Tasks) != 1 || s.Tasks[0].ID != 6 {
		t.Errorf("expected cache unchanged, got %+v", s.Tasks)
	}
}

func TestRemoveTaskIsIdempotent(t *testing.T) {
	s := New()
	s.ReplaceTasks([]api.Task{
		{ID: 6, Title: "keep"},
		{ID: 7, Title: "remove"},
	})

	s.RemoveTask(7)
	s.RemoveTask(7)

	if len(s.Tasks) != 1 || s.Tasks[0].ID != 6 {
		t.Errorf("expected only task 6 remaining, got %+v", s.Tasks)
	}
}

func TestAddProject(t *testing.T) {
	s := New()
	s.SetProjects([]api.Project{{ID: 2, Name: "Inbox"}})

	s.AddProject(api.Project{ID: 3, Name: "Work"})
	s.AddProject(api.Project{ID: 3, Name: "Work"})

	if len(s.Projects) != 2 {
		t.Errorf("expected append without duplicates, got %d projects", len(s.Projects))
	}
	if s.Projects[1].Name != "Work" {
		t.Errorf("expected Work appended, got %+v", s.Projects)
	}
}
