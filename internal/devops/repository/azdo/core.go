package azdo

import (
	"context"
	"fmt"

	"azure-devops-mcp/internal/model"
	pkgAzdo "azure-devops-mcp/pkg/azdo"
)

func (r *implRepository) ListProjects(ctx context.Context) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, pkgAzdo.OrgPath("projects"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return resp.Value, nil
}

func (r *implRepository) GetMe(ctx context.Context) (model.Record, error) {
	var me model.Record
	if err := r.client.GetJSON(ctx, pkgAzdo.OrgPath("graph/me"), nil, &me); err != nil {
		return nil, fmt.Errorf("get authenticated user: %w", err)
	}
	return me, nil
}

func (r *implRepository) ListPipelines(ctx context.Context, project string) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, pkgAzdo.ProjectPath(project, "pipelines"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list pipelines: %w", err)
	}
	return resp.Value, nil
}

func (r *implRepository) ListPipelineRuns(ctx context.Context, project string, pipelineID int) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	path := pkgAzdo.ProjectPath(project, fmt.Sprintf("pipelines/%d/runs", pipelineID))
	if err := r.client.GetJSON(ctx, path, nil, &resp); err != nil {
		return nil, fmt.Errorf("list runs of pipeline %d: %w", pipelineID, err)
	}
	return resp.Value, nil
}
