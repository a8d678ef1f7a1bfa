package repository

import (
	"context"
	"errors"

	"azure-devops-mcp/internal/model"
)

// MaxBatchSize is the most IDs the work item detail endpoint accepts per call.
const MaxBatchSize = 200

var (
	ErrNotFound      = errors.New("work item not found")
	ErrBatchTooLarge = errors.New("work item batch exceeds 200 ids")
)

// Repository is the interface for Azure DevOps work item tracking access.
type Repository interface {
	// QueryIDs submits WIQL and returns matching IDs in result order.
	QueryIDs(ctx context.Context, opt QueryOptions) ([]int, error)
	// GetBatch fetches full records for at most MaxBatchSize IDs.
	GetBatch(ctx context.Context, opt GetBatchOptions) ([]model.Record, error)
	// Get fetches one work item; ErrNotFound when it does not exist.
	Get(ctx context.Context, opt GetOptions) (model.Record, error)
}
