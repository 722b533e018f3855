package api

import (
	"net/url"
	"strconv"
	"strings"
)

// CompletedFilter selects which completion states a task query matches.
type CompletedFilter int

const (
	// CompletedAll matches tasks regardless of completion state.
	CompletedAll CompletedFilter = iota
	// CompletedActive matches only tasks that are not completed.
	CompletedActive
	// CompletedDone matches only completed tasks.
	CompletedDone
)

// TaskFilter contains the filter criteria for listing tasks.
// The server applies the filter semantics; the client never filters locally.
type TaskFilter struct {
	// ProjectID restricts results to one project. Zero means no restriction.
	ProjectID int
	Completed CompletedFilter
	// DueBefore is an inclusive upper bound, ISO date (YYYY-MM-DD).
	DueBefore string
	// Search matches against title and description, case-insensitive.
	Search string
}

// buildFilterQuery maps a TaskFilter onto the canonical query parameters.
// It is pure: the same filter always yields the same url.Values, so callers
// may compare encodings to detect redundant reloads.
func buildFilterQuery(filter TaskFilter) url.Values {
	query := url.Values{}

	if filter.ProjectID != 0 {
		query.Set("project_id", strconv.Itoa(filter.ProjectID))
	}
	switch filter.Completed {
	case CompletedActive:
		query.Set("completed", "false")
	case CompletedDone:
		query.Set("completed", "true")
	}
	if filter.DueBefore != "" {
		query.Set("due_before", filter.DueBefore)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query.Set("search", search)
	}

	return query
}
