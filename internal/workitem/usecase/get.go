package usecase

import (
	"context"
	"errors"
	"fmt"

	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/internal/workitem/repository"
)

// Get fetches one work item by ID.
func (uc *implUseCase) Get(ctx context.Context, input workitem.GetInput) (model.Record, error) {
	if input.ID <= 0 {
		return nil, workitem.ErrInvalidID
	}
	project := uc.project(input.Project)
	if project == "" {
		return nil, workitem.ErrProjectRequired
	}

	rec, err := uc.repo.Get(ctx, repository.GetOptions{Project: project, ID: input.ID})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %d", workitem.ErrWorkItemNotFound, input.ID)
		}
		return nil, fmt.Errorf("failed to get work item %d: %w", input.ID, err)
	}
	return rec, nil
}
