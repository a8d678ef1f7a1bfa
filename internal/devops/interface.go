package devops

import (
	"context"

	"azure-devops-mcp/internal/model"
)

// UseCase groups the Azure DevOps operations outside work item tracking.
type UseCase interface {
	ListProjects(ctx context.Context) ([]model.Record, error)
	GetMe(ctx context.Context) (model.Record, error)

	ListRepositories(ctx context.Context, input ListRepositoriesInput) ([]model.Record, error)
	GetRepository(ctx context.Context, input GetRepositoryInput) (RepositoryDetails, error)
	GetFileContent(ctx context.Context, input GetFileContentInput) (FileContent, error)

	ListPipelines(ctx context.Context, input ListPipelinesInput) ([]model.Record, error)

	ListPullRequests(ctx context.Context, input ListPullRequestsInput) ([]model.Record, error)
	CreatePullRequest(ctx context.Context, input CreatePullRequestInput) (model.Record, error)
	AddPullRequestComment(ctx context.Context, input AddPullRequestCommentInput) (model.Record, error)
}
