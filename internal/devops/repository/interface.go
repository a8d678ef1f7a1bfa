package repository

import (
	"context"

	"azure-devops-mcp/internal/model"
)

// Repository is the REST surface used by the devops use case.
type Repository interface {
	ListProjects(ctx context.Context) ([]model.Record, error)
	GetMe(ctx context.Context) (model.Record, error)

	ListRepositories(ctx context.Context, project string) ([]model.Record, error)
	GetRepository(ctx context.Context, opt RepositoryOptions) (model.Record, error)
	ListRefs(ctx context.Context, opt RepositoryOptions) ([]model.Record, error)
	ListBranchStats(ctx context.Context, opt RepositoryOptions) ([]model.Record, error)

	GetItem(ctx context.Context, opt ItemOptions) (model.Record, error)
	ListItems(ctx context.Context, opt ItemOptions) ([]model.Record, error)
	DownloadItem(ctx context.Context, opt ItemOptions) (string, error)

	ListPipelines(ctx context.Context, project string) ([]model.Record, error)
	ListPipelineRuns(ctx context.Context, project string, pipelineID int) ([]model.Record, error)

	ListPullRequests(ctx context.Context, opt ListPullRequestsOptions) ([]model.Record, error)
	CreatePullRequest(ctx context.Context, opt CreatePullRequestOptions) (model.Record, error)
	CreateThread(ctx context.Context, opt CommentOptions) (model.Record, error)
	ReplyToThread(ctx context.Context, opt CommentOptions) (model.Record, error)
}
