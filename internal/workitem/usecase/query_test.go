package usecase_test

import (
	"strings"
	"testing"
	"time"

	"azure-devops-mcp/internal/workitem/usecase"
	"azure-devops-mcp/pkg/datemath"
)

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name         string
		project      string
		workItemType string
		state        string
		clause       string
		want         []string
		notWant      []string
	}{
		{
			name:    "Project Only",
			project: "Demo",
			want:    []string{"FROM WorkItems WHERE [System.TeamProject] = 'Demo' ORDER BY [System.CreatedDate] DESC"},
			notWant: []string{"[System.WorkItemType] =", "[System.State] ="},
		},
		{
			name:         "Type And State",
			project:      "Demo",
			workItemType: "Bug",
			state:        "Active",
			want:         []string{"AND [System.WorkItemType] = 'Bug' AND [System.State] = 'Active'"},
		},
		{
			name:    "Quotes Escaped",
			project: "O'Brien",
			want:    []string{"[System.TeamProject] = 'O''Brien'"},
		},
		{
			name:    "Date Clause Appended",
			project: "Demo",
			clause:  "[System.CreatedDate] >= '2025-01-01'",
			want:    []string{"AND [System.CreatedDate] >= '2025-01-01' ORDER BY"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := usecase.BuildQuery(tt.project, tt.workItemType, tt.state, tt.clause)
			if !strings.HasPrefix(q, "SELECT [System.Id], [System.Title], [System.State], [System.WorkItemType], [System.CreatedDate], [System.ChangedDate], [System.AssignedTo], [System.Tags] FROM WorkItems") {
				t.Errorf("unexpected projection: %s", q)
			}
			for _, w := range tt.want {
				if !strings.Contains(q, w) {
					t.Errorf("expected %q in %s", w, q)
				}
			}
			for _, nw := range tt.notWant {
				if strings.Contains(q, nw) {
					t.Errorf("did not expect %q in %s", nw, q)
				}
			}
		})
	}
}

func TestBuildPlan(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	full := datemath.Interval{From: day(2025, 5, 1), To: day(2025, 5, 31)}

	t.Run("No Expression", func(t *testing.T) {
		p := usecase.BuildPlan("", "", datemath.Interval{})
		if p.ServerClause != "" || p.ClientFilter != "" {
			t.Errorf("expected empty plan, got %+v", p)
		}
	})

	t.Run("Server Side", func(t *testing.T) {
		p := usecase.BuildPlan("", "last month", full)
		if p.ClientFilter != "" {
			t.Errorf("client filter must be empty, got %q", p.ClientFilter)
		}
		if p.ServerClause != "[System.CreatedDate] >= '2025-05-01' AND [System.CreatedDate] <= '2025-05-31'" {
			t.Errorf("unexpected clause %q", p.ServerClause)
		}
	})

	t.Run("Lower Bound Only", func(t *testing.T) {
		p := usecase.BuildPlan("", "x", datemath.Interval{From: day(2025, 5, 1)})
		if p.ServerClause != "[System.CreatedDate] >= '2025-05-01'" {
			t.Errorf("unexpected clause %q", p.ServerClause)
		}
	})

	t.Run("Raw Query Defers To Client", func(t *testing.T) {
		p := usecase.BuildPlan("SELECT 1", "last month", full)
		if p.ServerClause != "" || p.ClientFilter != "last month" {
			t.Errorf("expected client plan, got %+v", p)
		}
	})

	t.Run("Blank Raw Query Stays Server Side", func(t *testing.T) {
		p := usecase.BuildPlan("  \n\t", "last month", full)
		if p.ClientFilter != "" || p.ServerClause == "" {
			t.Errorf("expected server plan, got %+v", p)
		}
	})

	t.Run("Unresolvable Defers To Client", func(t *testing.T) {
		p := usecase.BuildPlan("", "???", datemath.Interval{})
		if p.ServerClause != "" || p.ClientFilter != "???" {
			t.Errorf("expected client plan, got %+v", p)
		}
	})
}
