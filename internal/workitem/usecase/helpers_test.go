package usecase_test

import (
	"context"
	"strconv"

	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem/repository"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// fakeRepo records every call and answers from func fields.
type fakeRepo struct {
	queryFunc func(opt repository.QueryOptions) ([]int, error)
	batchFunc func(opt repository.GetBatchOptions) ([]model.Record, error)
	getFunc   func(opt repository.GetOptions) (model.Record, error)

	queries []repository.QueryOptions
	batches [][]int
	gets    []repository.GetOptions
}

func (f *fakeRepo) QueryIDs(ctx context.Context, opt repository.QueryOptions) ([]int, error) {
	f.queries = append(f.queries, opt)
	if f.queryFunc != nil {
		return f.queryFunc(opt)
	}
	return nil, nil
}

func (f *fakeRepo) GetBatch(ctx context.Context, opt repository.GetBatchOptions) ([]model.Record, error) {
	f.batches = append(f.batches, append([]int(nil), opt.IDs...))
	if f.batchFunc != nil {
		return f.batchFunc(opt)
	}
	return recordsFor(opt.IDs, "2025-05-10T09:00:00Z"), nil
}

func (f *fakeRepo) Get(ctx context.Context, opt repository.GetOptions) (model.Record, error) {
	f.gets = append(f.gets, opt)
	if f.getFunc != nil {
		return f.getFunc(opt)
	}
	return model.Record{"id": float64(opt.ID)}, nil
}

func recordsFor(ids []int, created string) []model.Record {
	out := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, model.Record{
			"id": float64(id),
			"fields": map[string]any{
				"System.Title":       "Item " + strconv.Itoa(id),
				"System.CreatedDate": created,
			},
		})
	}
	return out
}

func seq(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}
