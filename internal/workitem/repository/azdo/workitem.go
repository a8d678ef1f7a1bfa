package azdo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem/repository"
	pkgAzdo "azure-devops-mcp/pkg/azdo"
	pkgLog "azure-devops-mcp/pkg/log"
)

type implRepository struct {
	client *pkgAzdo.Client
	l      pkgLog.Logger
}

// New creates a new Azure DevOps work item repository.
func New(client *pkgAzdo.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) QueryIDs(ctx context.Context, opt repository.QueryOptions) ([]int, error) {
	var result pkgAzdo.WIQLResult
	err := r.client.PostJSON(ctx, pkgAzdo.ProjectPath(opt.Project, "wit/wiql"), nil, pkgAzdo.WIQLRequest{Query: opt.Query}, &result)
	if err != nil {
		r.l.Errorf(ctx, "workitem repository: wiql query failed: %v", err)
		return nil, fmt.Errorf("wiql query failed: %w", err)
	}

	ids := make([]int, 0, len(result.WorkItems))
	for _, wi := range result.WorkItems {
		ids = append(ids, wi.ID)
	}
	return ids, nil
}

func (r *implRepository) GetBatch(ctx context.Context, opt repository.GetBatchOptions) ([]model.Record, error) {
	if len(opt.IDs) == 0 {
		return []model.Record{}, nil
	}
	if len(opt.IDs) > repository.MaxBatchSize {
		return nil, repository.ErrBatchTooLarge
	}

	query := url.Values{}
	query.Set("ids", joinIDs(opt.IDs))
	query.Set("$expand", "all")

	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, pkgAzdo.ProjectPath(opt.Project, "wit/workitems"), query, &resp); err != nil {
		r.l.Errorf(ctx, "workitem repository: batch fetch of %d ids failed: %v", len(opt.IDs), err)
		return nil, fmt.Errorf("work item batch fetch failed: %w", err)
	}
	return resp.Value, nil
}

func (r *implRepository) Get(ctx context.Context, opt repository.GetOptions) (model.Record, error) {
	query := url.Values{}
	query.Set("$expand", "all")

	var rec model.Record
	path := pkgAzdo.ProjectPath(opt.Project, "wit/workitems/"+strconv.Itoa(opt.ID))
	if err := r.client.GetJSON(ctx, path, query, &rec); err != nil {
		if pkgAzdo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %d", repository.ErrNotFound, opt.ID)
		}
		return nil, fmt.Errorf("work item fetch failed: %w", err)
	}
	return rec, nil
}

func joinIDs(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}
