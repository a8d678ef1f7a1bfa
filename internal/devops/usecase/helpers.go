package usecase

import (
	"context"
	"strings"

	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/model"
	"golang.org/x/sync/errgroup"
)

func (uc *implUseCase) project(p string) (string, error) {
	if p = strings.TrimSpace(p); p != "" {
		return p, nil
	}
	if uc.defaultProject == "" {
		return "", devops.ErrProjectRequired
	}
	return uc.defaultProject, nil
}

// filterByDate resolves expr and keeps records whose date at path is inside it.
func (uc *implUseCase) filterByDate(records []model.Record, path, expr string) []model.Record {
	iv := uc.resolver.Resolve(expr, uc.now())
	return model.FilterByDate(records, path, iv)
}

// enrich replaces each record with fn(record), at most enrichConcurrency at a time.
// fn reports failures itself and returns the record it was given when it cannot improve it.
func enrich(ctx context.Context, records []model.Record, fn func(ctx context.Context, rec model.Record) model.Record) ([]model.Record, error) {
	out := make([]model.Record, len(records))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, rec := range records {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			out[i] = fn(gctx, rec)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// branchRef qualifies a bare branch name as refs/heads/<name>.
func branchRef(branch string) string {
	branch = strings.TrimSpace(branch)
	if strings.HasPrefix(branch, "refs/") {
		return branch
	}
	return "refs/heads/" + branch
}

func recordString(rec model.Record, path string) string {
	s, _ := rec.LookupString(path)
	return s
}

func recordInt(rec model.Record, path string) (int, bool) {
	v, ok := rec.Lookup(path)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
