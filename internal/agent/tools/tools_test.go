package tools_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/agent/tools"
	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/pkg/datemath"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// mockWorkItemUseCase
type mockWorkItemUseCase struct {
	listInput   workitem.ListInput
	searchInput workitem.SearchInput
	getInput    workitem.GetInput
	output      workitem.ListOutput
	err         error
}

func (m *mockWorkItemUseCase) List(ctx context.Context, input workitem.ListInput) (workitem.ListOutput, error) {
	m.listInput = input
	return m.output, m.err
}

func (m *mockWorkItemUseCase) SearchByTypeAndDate(ctx context.Context, input workitem.SearchInput) (workitem.ListOutput, error) {
	m.searchInput = input
	return m.output, m.err
}

func (m *mockWorkItemUseCase) Get(ctx context.Context, input workitem.GetInput) (model.Record, error) {
	m.getInput = input
	return model.Record{"id": float64(input.ID)}, m.err
}

// mockDevOpsUseCase
type mockDevOpsUseCase struct {
	devops.UseCase

	prInput      devops.CreatePullRequestInput
	commentInput devops.AddPullRequestCommentInput
	listPRInput  devops.ListPullRequestsInput
}

func (m *mockDevOpsUseCase) ListProjects(ctx context.Context) ([]model.Record, error) {
	return []model.Record{{"name": "Demo"}}, nil
}

func (m *mockDevOpsUseCase) ListPullRequests(ctx context.Context, input devops.ListPullRequestsInput) ([]model.Record, error) {
	m.listPRInput = input
	return []model.Record{}, nil
}

func (m *mockDevOpsUseCase) CreatePullRequest(ctx context.Context, input devops.CreatePullRequestInput) (model.Record, error) {
	m.prInput = input
	return model.Record{"pullRequestId": float64(10)}, nil
}

func (m *mockDevOpsUseCase) AddPullRequestComment(ctx context.Context, input devops.AddPullRequestCommentInput) (model.Record, error) {
	m.commentInput = input
	return model.Record{"id": float64(1)}, nil
}

func sampleListOutput() workitem.ListOutput {
	return workitem.ListOutput{
		Items: []model.Record{{
			"id": float64(42),
			"fields": map[string]any{
				"System.Title":        "Crash on save",
				"System.State":        "Active",
				"System.WorkItemType": "Bug",
				"System.CreatedDate":  "2025-05-03T10:00:00Z",
				"System.AssignedTo":   map[string]any{"displayName": "Sam Doe"},
			},
		}},
		Count:          1,
		Query:          "SELECT ...",
		DateFilterMode: workitem.DateFilterServer,
		From:           "2025-05-01",
		To:             "2025-05-31",
	}
}

func TestWorkItemTools(t *testing.T) {
	ctx := context.Background()
	l := &mockLogger{}

	t.Run("ListWorkItemsTool", func(t *testing.T) {
		uc := &mockWorkItemUseCase{output: sampleListOutput()}
		tool := tools.NewListWorkItemsTool(uc, l)

		if tool.Name() != "list_work_items" {
			t.Errorf("unexpected name: %s", tool.Name())
		}
		if tool.Description() == "" || len(tool.Parameters()) == 0 {
			t.Errorf("missing desc or params")
		}

		res, err := tool.Execute(ctx, map[string]interface{}{
			"project":      "Demo",
			"date_filter":  "last month",
			"query_string": "SELECT [System.Id] FROM WorkItems",
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if uc.listInput.Query != "SELECT [System.Id] FROM WorkItems" || uc.listInput.DateFilter != "last month" {
			t.Errorf("input not forwarded: %+v", uc.listInput)
		}

		out, ok := res.(tools.WorkItemListOutput)
		if !ok || out.Count != 1 {
			t.Fatalf("unexpected result: %v", res)
		}
		wi := out.WorkItems[0]
		if wi.ID != 42 || wi.Title != "Crash on save" || wi.AssignedTo != "Sam Doe" || wi.Type != "Bug" {
			t.Errorf("unexpected summary: %+v", wi)
		}
		if !strings.Contains(out.Summary, "#42 [Bug] Crash on save") {
			t.Errorf("unexpected summary text: %s", out.Summary)
		}

		uc.err = workitem.ErrProjectRequired
		if _, err := tool.Execute(ctx, map[string]interface{}{}); !errors.Is(err, workitem.ErrProjectRequired) {
			t.Errorf("expected ErrProjectRequired, got %v", err)
		}
	})

	t.Run("SearchWorkItemsTool", func(t *testing.T) {
		uc := &mockWorkItemUseCase{output: sampleListOutput()}
		tool := tools.NewSearchWorkItemsTool(uc, l)

		if _, err := tool.Execute(ctx, map[string]interface{}{"work_item_type": "Bug"}); !errors.Is(err, agent.ErrInvalidArguments) {
			t.Errorf("expected ErrInvalidArguments, got %v", err)
		}

		if _, err := tool.Execute(ctx, map[string]interface{}{"work_item_type": "Bug", "date_filter": "today", "state": "New"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if uc.searchInput.WorkItemType != "Bug" || uc.searchInput.State != "New" {
			t.Errorf("input not forwarded: %+v", uc.searchInput)
		}
	})

	t.Run("GetWorkItemTool", func(t *testing.T) {
		uc := &mockWorkItemUseCase{}
		tool := tools.NewGetWorkItemTool(uc, l)

		res, err := tool.Execute(ctx, map[string]interface{}{"work_item_id": float64(7)})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if rec, ok := res.(model.Record); !ok || rec["id"] != float64(7) {
			t.Errorf("unexpected result: %v", res)
		}

		if _, err := tool.Execute(ctx, map[string]interface{}{"work_item_id": "seven"}); !errors.Is(err, agent.ErrInvalidArguments) {
			t.Errorf("expected ErrInvalidArguments, got %v", err)
		}
	})
}

func TestParseDateFilterTool(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	now := func() time.Time { return time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC) }
	tool := tools.NewParseDateFilterTool(resolver, now, &mockLogger{})

	res, err := tool.Execute(context.Background(), map[string]interface{}{"date_filter": "last week"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	out := res.(tools.ParseDateFilterOutput)
	if out.From != "2025-06-02" || out.To != "2025-06-08" || out.Form != "keyword" || out.Timezone != "UTC" {
		t.Errorf("unexpected output %+v", out)
	}

	if _, err := tool.Execute(context.Background(), map[string]interface{}{}); !errors.Is(err, agent.ErrInvalidArguments) {
		t.Errorf("expected ErrInvalidArguments, got %v", err)
	}
}

func TestDevOpsTools(t *testing.T) {
	ctx := context.Background()
	l := &mockLogger{}

	t.Run("ListProjectsTool", func(t *testing.T) {
		tool := tools.NewListProjectsTool(&mockDevOpsUseCase{}, l)
		res, err := tool.Execute(ctx, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if m, ok := res.(map[string]interface{}); !ok || m["count"] != 1 {
			t.Errorf("unexpected result: %v", res)
		}
	})

	t.Run("ListPullRequestsTool", func(t *testing.T) {
		uc := &mockDevOpsUseCase{}
		tool := tools.NewListPullRequestsTool(uc, l)

		if _, err := tool.Execute(ctx, map[string]interface{}{"status": "merged"}); !errors.Is(err, agent.ErrInvalidArguments) {
			t.Errorf("expected ErrInvalidArguments for bad status, got %v", err)
		}
		if _, err := tool.Execute(ctx, map[string]interface{}{"status": "all", "repository_id": "r"}); err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if uc.listPRInput.Status != "all" || uc.listPRInput.RepositoryID != "r" {
			t.Errorf("input not forwarded: %+v", uc.listPRInput)
		}
	})

	t.Run("CreatePullRequestTool", func(t *testing.T) {
		uc := &mockDevOpsUseCase{}
		tool := tools.NewCreatePullRequestTool(uc, l)

		if _, err := tool.Execute(ctx, map[string]interface{}{"repository_id": "r", "source_branch": "a"}); !errors.Is(err, agent.ErrInvalidArguments) {
			t.Errorf("expected ErrInvalidArguments, got %v", err)
		}
		_, err := tool.Execute(ctx, map[string]interface{}{
			"repository_id": "r", "source_branch": "feature", "target_branch": "main", "title": "T",
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if uc.prInput.SourceBranch != "feature" || uc.prInput.Title != "T" {
			t.Errorf("input not forwarded: %+v", uc.prInput)
		}
	})

	t.Run("AddPullRequestCommentTool", func(t *testing.T) {
		uc := &mockDevOpsUseCase{}
		tool := tools.NewAddPullRequestCommentTool(uc, l)

		_, err := tool.Execute(ctx, map[string]interface{}{
			"repository_id": "r", "pull_request_id": float64(4), "comment": "ok", "thread_id": float64(2),
		})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if uc.commentInput.PullRequestID != 4 || uc.commentInput.ThreadID != 2 {
			t.Errorf("input not forwarded: %+v", uc.commentInput)
		}
	})
}

func TestNewRegistry(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	reg := tools.NewRegistry(tools.Deps{
		WorkItems: &mockWorkItemUseCase{},
		DevOps:    &mockDevOpsUseCase{},
		Resolver:  resolver,
		Logger:    &mockLogger{},
	})

	want := []string{
		"add_pull_request_comment", "create_pull_request", "get_file_content", "get_me",
		"get_repository", "get_work_item", "list_pipelines", "list_projects",
		"list_pull_requests", "list_repositories", "list_work_items", "parse_date_filter",
		"search_work_items_by_type_and_date",
	}
	got := reg.List()
	if len(got) != len(want) {
		t.Fatalf("expected %d tools, got %d", len(want), len(got))
	}
	for i, name := range want {
		if got[i].Name() != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, got[i].Name())
		}
	}
}
