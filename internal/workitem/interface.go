package workitem

import (
	"context"

	"azure-devops-mcp/internal/model"
)

// UseCase defines the business logic interface for the work item domain.
type UseCase interface {
	// List plans the date filter (server-side WIQL clause or client-side post filter),
	// runs the query and fetches full records in batches.
	List(ctx context.Context, input ListInput) (ListOutput, error)

	// SearchByTypeAndDate is List without a caller-authored query.
	SearchByTypeAndDate(ctx context.Context, input SearchInput) (ListOutput, error)

	// Get fetches a single work item with all relations expanded.
	Get(ctx context.Context, input GetInput) (model.Record, error)
}
