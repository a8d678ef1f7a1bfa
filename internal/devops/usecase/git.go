package usecase

import (
	"context"
	"fmt"
	"strings"

	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/devops/repository"
	"azure-devops-mcp/internal/model"
)

// ListRepositories lists repositories. With a date filter each repository is
// replaced by its detail record before filtering on createdDate.
func (uc *implUseCase) ListRepositories(ctx context.Context, input devops.ListRepositoriesInput) ([]model.Record, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return nil, err
	}

	repos, err := uc.repo.ListRepositories(ctx, project)
	if err != nil {
		uc.l.Errorf(ctx, "devops.usecase.ListRepositories: %v", err)
		return nil, err
	}
	if strings.TrimSpace(input.DateFilter) == "" {
		return repos, nil
	}

	detailed, err := enrich(ctx, repos, func(ctx context.Context, rec model.Record) model.Record {
		id := recordString(rec, "id")
		if id == "" {
			return rec
		}
		full, err := uc.repo.GetRepository(ctx, repository.RepositoryOptions{Project: project, RepositoryID: id})
		if err != nil {
			uc.l.Warnf(ctx, "devops.usecase.ListRepositories: details of %s unavailable: %v", id, err)
			return rec
		}
		return full
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load repository details: %w", err)
	}

	return uc.filterByDate(detailed, devops.RepositoryCreatedPath, input.DateFilter), nil
}

// GetRepository returns the repository with its refs and branch statistics.
// Branch statistics are best effort.
func (uc *implUseCase) GetRepository(ctx context.Context, input devops.GetRepositoryInput) (devops.RepositoryDetails, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return devops.RepositoryDetails{}, err
	}
	if input.RepositoryID == "" {
		return devops.RepositoryDetails{}, devops.ErrRepositoryRequired
	}
	opt := repository.RepositoryOptions{Project: project, RepositoryID: input.RepositoryID}

	repo, err := uc.repo.GetRepository(ctx, opt)
	if err != nil {
		return devops.RepositoryDetails{}, err
	}
	refs, err := uc.repo.ListRefs(ctx, opt)
	if err != nil {
		return devops.RepositoryDetails{}, err
	}
	stats, err := uc.repo.ListBranchStats(ctx, opt)
	if err != nil {
		uc.l.Warnf(ctx, "devops.usecase.GetRepository: branch stats unavailable for %s: %v", input.RepositoryID, err)
		stats = []model.Record{}
	}

	return devops.RepositoryDetails{Repository: repo, Refs: refs, Stats: stats}, nil
}

// GetFileContent returns a one-level listing for folders and raw text for files.
func (uc *implUseCase) GetFileContent(ctx context.Context, input devops.GetFileContentInput) (devops.FileContent, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return devops.FileContent{}, err
	}
	if input.RepositoryID == "" {
		return devops.FileContent{}, devops.ErrRepositoryRequired
	}
	if strings.TrimSpace(input.Path) == "" {
		return devops.FileContent{}, devops.ErrPathRequired
	}
	branch := input.Branch
	if branch == "" {
		branch = devops.DefaultBranch
	}

	opt := repository.ItemOptions{Project: project, RepositoryID: input.RepositoryID, Path: input.Path, Branch: branch}
	out := devops.FileContent{Path: input.Path, Branch: branch}

	item, err := uc.repo.GetItem(ctx, opt)
	if err != nil {
		return devops.FileContent{}, err
	}

	if isFolder, _ := item["isFolder"].(bool); isFolder {
		items, err := uc.repo.ListItems(ctx, opt)
		if err != nil {
			return devops.FileContent{}, err
		}
		out.IsFolder = true
		out.Items = items
		return out, nil
	}

	text, err := uc.repo.DownloadItem(ctx, opt)
	if err != nil {
		return devops.FileContent{}, err
	}
	out.Content = text
	return out, nil
}

func (uc *implUseCase) ListPullRequests(ctx context.Context, input devops.ListPullRequestsInput) ([]model.Record, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return nil, err
	}
	status := input.Status
	if status == "" {
		status = devops.DefaultPRStatus
	}

	return uc.repo.ListPullRequests(ctx, repository.ListPullRequestsOptions{
		Project:      project,
		RepositoryID: input.RepositoryID,
		Status:       status,
	})
}

func (uc *implUseCase) CreatePullRequest(ctx context.Context, input devops.CreatePullRequestInput) (model.Record, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return nil, err
	}
	if input.RepositoryID == "" {
		return nil, devops.ErrRepositoryRequired
	}
	if strings.TrimSpace(input.SourceBranch) == "" || strings.TrimSpace(input.TargetBranch) == "" {
		return nil, devops.ErrBranchRequired
	}
	if strings.TrimSpace(input.Title) == "" {
		return nil, devops.ErrTitleRequired
	}

	return uc.repo.CreatePullRequest(ctx, repository.CreatePullRequestOptions{
		Project:       project,
		RepositoryID:  input.RepositoryID,
		SourceRefName: branchRef(input.SourceBranch),
		TargetRefName: branchRef(input.TargetBranch),
		Title:         input.Title,
		Description:   input.Description,
	})
}

// AddPullRequestComment starts a new thread, or replies when ThreadID is set.
func (uc *implUseCase) AddPullRequestComment(ctx context.Context, input devops.AddPullRequestCommentInput) (model.Record, error) {
	project, err := uc.project(input.Project)
	if err != nil {
		return nil, err
	}
	if input.RepositoryID == "" {
		return nil, devops.ErrRepositoryRequired
	}
	if input.PullRequestID <= 0 {
		return nil, devops.ErrInvalidPullRequest
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, devops.ErrCommentRequired
	}

	opt := repository.CommentOptions{
		Project:       project,
		RepositoryID:  input.RepositoryID,
		PullRequestID: input.PullRequestID,
		ThreadID:      input.ThreadID,
		Content:       input.Comment,
	}
	if input.ThreadID > 0 {
		return uc.repo.ReplyToThread(ctx, opt)
	}
	return uc.repo.CreateThread(ctx, opt)
}
