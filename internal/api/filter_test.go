package api

import (
	"reflect"
	"testing"
)

func TestBuildFilterQuery(t *testing.T) {
	tests := []struct {
		name   string
		filter TaskFilter
		want   map[string]string
	}{
		{
			name:   "empty filter",
			filter: TaskFilter{},
			want:   map[string]string{},
		},
		{
			name: "all criteria set",
			filter: TaskFilter{
				ProjectID: 3,
				Completed: CompletedActive,
				DueBefore: "2024-03-01",
				Search:    "report",
			},
			want: map[string]string{
				"project_id": "3",
				"completed":  "false",
				"due_before": "2024-03-01",
				"search":     "report",
			},
		},
		{
			name:   "completed only",
			filter: TaskFilter{Completed: CompletedDone},
			want:   map[string]string{"completed": "true"},
		},
		{
			name:   "all states omits completed",
			filter: TaskFilter{Completed: CompletedAll, ProjectID: 7},
			want:   map[string]string{"project_id": "7"},
		},
		{
			name:   "search is trimmed",
			filter: TaskFilter{Search: "  report  "},
			want:   map[string]string{"search": "report"},
		},
		{
			name:   "whitespace-only search is omitted",
			filter: TaskFilter{Search: "   "},
			want:   map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query := buildFilterQuery(tt.filter)

			if len(query) != len(tt.want) {
				t.Errorf("expected %d parameters, got %d (%v)", len(tt.want), len(query), query)
			}
			for key, want := range tt.want {
				if got := query.Get(key); got != want {
					t.Errorf("parameter %q: expected %q, got %q", key, want, got)
				}
			}
		})
	}
}

func TestBuildFilterQueryIdempotent(t *testing.T) {
	filter := TaskFilter{
		ProjectID: 3,
		Completed: CompletedActive,
		DueBefore: "2024-03-01",
		Search:    "report",
	}

	first := buildFilterQuery(filter)
	second := buildFilterQuery(filter)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated builds differ: %v vs %v", first, second)
	}
	if first.Encode() != second.Encode() {
		t.Errorf("encodings differ: %q vs %q", first.Encode(), second.Encode())
	}
}
