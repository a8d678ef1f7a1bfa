package usecase

import (
	"context"
	"fmt"
	"strings"

	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/model"
)

func (uc *implUseCase) ListProjects(ctx context.Context) ([]model.Record, error) {
	projects, err := uc.repo.ListProjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "devops.usecase.ListProjects: %v", err)
		return nil, err
	}
	return projects, nil
}

func (uc *implUseCase) GetMe(ctx context.Context) (model.Record, error) {
	me, err := uc.repo.GetMe(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "devops.usecase.GetMe: %v", err)
		return nil, err
	}
	return me, nil
}

// ListPipelines lists pipelines. With a date filter every pipeline is annotated with
// its most recent run under "latestRun" and filtered on that run's creation date.
func (uc *implUseCase) ListPipelines(ctx context.Context, input devops.ListPipelinesInput) ([]model.Record, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return nil, err
	}

	pipelines, err := uc.repo.ListPipelines(ctx, project)
	if err != nil {
		uc.l.Errorf(ctx, "devops.usecase.ListPipelines: %v", err)
		return nil, err
	}
	if strings.TrimSpace(input.DateFilter) == "" {
		return pipelines, nil
	}

	detailed, err := enrich(ctx, pipelines, func(ctx context.Context, p model.Record) model.Record {
		id, ok := recordInt(p, "id")
		if !ok {
			return p
		}
		runs, err := uc.repo.ListPipelineRuns(ctx, project, id)
		if err != nil {
			uc.l.Warnf(ctx, "devops.usecase.ListPipelines: runs of pipeline %d unavailable: %v", id, err)
			return p
		}
		if len(runs) == 0 {
			return p
		}

		annotated := make(model.Record, len(p)+1)
		for k, v := range p {
			annotated[k] = v
		}
		annotated["latestRun"] = runs[0]
		return annotated
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline runs: %w", err)
	}

	return uc.filterByDate(detailed, devops.PipelineLatestRunPath, input.DateFilter), nil
}
