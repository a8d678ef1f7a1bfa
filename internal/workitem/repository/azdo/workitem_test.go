package azdo_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"azure-devops-mcp/internal/workitem/repository"
	wiAzdo "azure-devops-mcp/internal/workitem/repository/azdo"
	"azure-devops-mcp/pkg/azdo"
)

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

func TestWorkItemRepository(t *testing.T) {
	var lastQuery string
	var lastIDs string

	mux := http.NewServeMux()
	mux.HandleFunc("/Demo/_apis/wit/wiql", func(w http.ResponseWriter, r *http.Request) {
		var req azdo.WIQLRequest
		json.NewDecoder(r.Body).Decode(&req)
		lastQuery = req.Query
		if strings.Contains(req.Query, "broken") {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(azdo.WIQLResult{WorkItems: []azdo.WorkItemLink{{ID: 3}, {ID: 1}, {ID: 2}}})
	})
	mux.HandleFunc("/Demo/_apis/wit/workitems", func(w http.ResponseWriter, r *http.Request) {
		lastIDs = r.URL.Query().Get("ids")
		if r.URL.Query().Get("$expand") != "all" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var value []map[string]any
		for _, id := range strings.Split(lastIDs, ",") {
			value = append(value, map[string]any{"id": id})
		}
		json.NewEncoder(w).Encode(map[string]any{"count": len(value), "value": value})
	})
	mux.HandleFunc("/Demo/_apis/wit/workitems/42", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": 42, "fields": map[string]any{"System.Title": "Answer"}})
	})
	mux.HandleFunc("/Demo/_apis/wit/workitems/404", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := azdo.NewClient(azdo.Config{OrganizationURL: ts.URL, PAT: "pat"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo := wiAzdo.New(client, &mockLogger{})
	ctx := context.Background()

	t.Run("QueryIDs", func(t *testing.T) {
		ids, err := repo.QueryIDs(ctx, repository.QueryOptions{Project: "Demo", Query: "SELECT [System.Id] FROM WorkItems"})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(ids) != 3 || ids[0] != 3 || ids[2] != 2 {
			t.Errorf("ids order not preserved: %v", ids)
		}
		if lastQuery != "SELECT [System.Id] FROM WorkItems" {
			t.Errorf("query not sent verbatim: %q", lastQuery)
		}

		if _, err := repo.QueryIDs(ctx, repository.QueryOptions{Project: "Demo", Query: "broken"}); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("GetBatch", func(t *testing.T) {
		recs, err := repo.GetBatch(ctx, repository.GetBatchOptions{Project: "Demo", IDs: []int{5, 6, 7}})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if lastIDs != "5,6,7" || len(recs) != 3 {
			t.Errorf("unexpected batch: ids=%q recs=%v", lastIDs, recs)
		}

		empty, err := repo.GetBatch(ctx, repository.GetBatchOptions{Project: "Demo"})
		if err != nil || len(empty) != 0 {
			t.Errorf("empty batch should short-circuit, got %v %v", empty, err)
		}

		tooMany := make([]int, repository.MaxBatchSize+1)
		if _, err := repo.GetBatch(ctx, repository.GetBatchOptions{Project: "Demo", IDs: tooMany}); !errors.Is(err, repository.ErrBatchTooLarge) {
			t.Errorf("expected ErrBatchTooLarge, got %v", err)
		}
	})

	t.Run("Get", func(t *testing.T) {
		rec, err := repo.Get(ctx, repository.GetOptions{Project: "Demo", ID: 42})
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if title, _ := rec.LookupString("fields.System.Title"); title != "Answer" {
			t.Errorf("unexpected title %q", title)
		}

		if _, err := repo.Get(ctx, repository.GetOptions{Project: "Demo", ID: 404}); !errors.Is(err, repository.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
