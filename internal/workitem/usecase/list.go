package usecase

import (
	"context"
	"fmt"
	"strings"

	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/internal/workitem/repository"
	"azure-devops-mcp/pkg/datemath"
)

// List runs a work item listing.
// Flow: resolve project → plan date filter → WIQL → batched detail fetch → optional client filter.
func (uc *implUseCase) List(ctx context.Context, input workitem.ListInput) (workitem.ListOutput, error) {
	project := uc.project(input.Project)
	if project == "" {
		return workitem.ListOutput{}, workitem.ErrProjectRequired
	}

	var iv datemath.Interval
	if strings.TrimSpace(input.DateFilter) != "" {
		iv = uc.resolver.Resolve(input.DateFilter, uc.now())
	}
	plan := BuildPlan(input.Query, input.DateFilter, iv)

	query := input.Query
	if strings.TrimSpace(query) == "" {
		query = BuildQuery(project, input.WorkItemType, input.State, plan.ServerClause)
	}

	output := workitem.ListOutput{
		Items:          []model.Record{},
		Query:          query,
		DateFilterMode: planMode(plan),
		From:           plan.Interval.FromString(),
		To:             plan.Interval.ToString(),
	}

	uc.l.Infof(ctx, "workitem.usecase.List: project=%s mode=%s from=%q to=%q", project, output.DateFilterMode, output.From, output.To)

	ids, err := uc.repo.QueryIDs(ctx, repository.QueryOptions{Project: project, Query: query})
	if err != nil {
		return workitem.ListOutput{}, fmt.Errorf("failed to query work items: %w", err)
	}
	if len(ids) == 0 {
		return output, nil
	}

	items, err := uc.fetchAll(ctx, project, ids)
	if err != nil {
		return workitem.ListOutput{}, err
	}

	if plan.ClientFilter != "" {
		before := len(items)
		items = model.FilterByDate(items, workitem.CreatedDatePath, plan.Interval)
		uc.l.Debugf(ctx, "workitem.usecase.List: client date filter kept %d of %d", len(items), before)
	}

	output.Items = items
	output.Count = len(items)
	return output, nil
}

// SearchByTypeAndDate lists work items of one type created within a date expression.
func (uc *implUseCase) SearchByTypeAndDate(ctx context.Context, input workitem.SearchInput) (workitem.ListOutput, error) {
	if strings.TrimSpace(input.WorkItemType) == "" {
		return workitem.ListOutput{}, workitem.ErrWorkItemTypeRequired
	}
	if strings.TrimSpace(input.DateFilter) == "" {
		return workitem.ListOutput{}, workitem.ErrDateFilterRequired
	}

	return uc.List(ctx, workitem.ListInput{
		Project:      input.Project,
		WorkItemType: input.WorkItemType,
		State:        input.State,
		DateFilter:   input.DateFilter,
	})
}

// fetchAll requests details in consecutive chunks of BatchSize, preserving ID order.
// Any failed chunk fails the whole listing.
func (uc *implUseCase) fetchAll(ctx context.Context, project string, ids []int) ([]model.Record, error) {
	items := make([]model.Record, 0, len(ids))
	for start := 0; start < len(ids); start += BatchSize {
		end := min(start+BatchSize, len(ids))

		batch, err := uc.repo.GetBatch(ctx, repository.GetBatchOptions{Project: project, IDs: ids[start:end]})
		if err != nil {
			uc.l.Errorf(ctx, "workitem.usecase.fetchAll: batch %d-%d failed: %v", start, end, err)
			return nil, fmt.Errorf("failed to fetch work item details: %w", err)
		}
		items = append(items, batch...)
	}
	return items, nil
}
