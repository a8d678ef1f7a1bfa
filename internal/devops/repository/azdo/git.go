package azdo

import (
	"context"
	"fmt"
	"net/url"

	"azure-devops-mcp/internal/devops/repository"
	"azure-devops-mcp/internal/model"
	pkgAzdo "azure-devops-mcp/pkg/azdo"
)

func repoPath(project, repositoryID, rest string) string {
	p := "git/repositories/" + url.PathEscape(repositoryID)
	if rest != "" {
		p += "/" + rest
	}
	return pkgAzdo.ProjectPath(project, p)
}

func (r *implRepository) ListRepositories(ctx context.Context, project string) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, pkgAzdo.ProjectPath(project, "git/repositories"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list repositories: %w", err)
	}
	return resp.Value, nil
}

func (r *implRepository) GetRepository(ctx context.Context, opt repository.RepositoryOptions) (model.Record, error) {
	var rec model.Record
	if err := r.client.GetJSON(ctx, repoPath(opt.Project, opt.RepositoryID, ""), nil, &rec); err != nil {
		return nil, fmt.Errorf("get repository %s: %w", opt.RepositoryID, err)
	}
	return rec, nil
}

func (r *implRepository) ListRefs(ctx context.Context, opt repository.RepositoryOptions) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, repoPath(opt.Project, opt.RepositoryID, "refs"), nil, &resp); err != nil {
		return nil, fmt.Errorf("list refs of %s: %w", opt.RepositoryID, err)
	}
	return resp.Value, nil
}

func (r *implRepository) ListBranchStats(ctx context.Context, opt repository.RepositoryOptions) ([]model.Record, error) {
	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, repoPath(opt.Project, opt.RepositoryID, "stats/branches"), nil, &resp); err != nil {
		return nil, fmt.Errorf("branch stats of %s: %w", opt.RepositoryID, err)
	}
	return resp.Value, nil
}

func itemQuery(opt repository.ItemOptions) url.Values {
	q := url.Values{}
	q.Set("path", opt.Path)
	q.Set("versionDescriptor.version", opt.Branch)
	return q
}

func (r *implRepository) GetItem(ctx context.Context, opt repository.ItemOptions) (model.Record, error) {
	var rec model.Record
	if err := r.client.GetJSON(ctx, repoPath(opt.Project, opt.RepositoryID, "items"), itemQuery(opt), &rec); err != nil {
		return nil, fmt.Errorf("get item %s: %w", opt.Path, err)
	}
	return rec, nil
}

func (r *implRepository) ListItems(ctx context.Context, opt repository.ItemOptions) ([]model.Record, error) {
	q := itemQuery(opt)
	q.Set("recursionLevel", "OneLevel")

	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, repoPath(opt.Project, opt.RepositoryID, "items"), q, &resp); err != nil {
		return nil, fmt.Errorf("list items under %s: %w", opt.Path, err)
	}
	return resp.Value, nil
}

func (r *implRepository) DownloadItem(ctx context.Context, opt repository.ItemOptions) (string, error) {
	q := itemQuery(opt)
	q.Set("download", "true")

	text, err := r.client.GetText(ctx, repoPath(opt.Project, opt.RepositoryID, "items"), q)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", opt.Path, err)
	}
	return text, nil
}

func (r *implRepository) ListPullRequests(ctx context.Context, opt repository.ListPullRequestsOptions) ([]model.Record, error) {
	path := pkgAzdo.ProjectPath(opt.Project, "git/pullrequests")
	if opt.RepositoryID != "" {
		path = repoPath(opt.Project, opt.RepositoryID, "pullrequests")
	}

	q := url.Values{}
	q.Set("searchCriteria.status", opt.Status)

	var resp pkgAzdo.ListResponse[model.Record]
	if err := r.client.GetJSON(ctx, path, q, &resp); err != nil {
		return nil, fmt.Errorf("list pull requests: %w", err)
	}
	return resp.Value, nil
}

type createPullRequestBody struct {
	SourceRefName string `json:"sourceRefName"`
	TargetRefName string `json:"targetRefName"`
	Title         string `json:"title"`
	Description   string `json:"description"`
}

func (r *implRepository) CreatePullRequest(ctx context.Context, opt repository.CreatePullRequestOptions) (model.Record, error) {
	body := createPullRequestBody{
		SourceRefName: opt.SourceRefName,
		TargetRefName: opt.TargetRefName,
		Title:         opt.Title,
		Description:   opt.Description,
	}

	var rec model.Record
	if err := r.client.PostJSON(ctx, repoPath(opt.Project, opt.RepositoryID, "pullrequests"), nil, body, &rec); err != nil {
		return nil, fmt.Errorf("create pull request: %w", err)
	}
	r.l.Infof(ctx, "devops repository: created pull request %s -> %s in %s", opt.SourceRefName, opt.TargetRefName, opt.RepositoryID)
	return rec, nil
}

type commentBody struct {
	Content string `json:"content"`
}

type threadBody struct {
	Comments []commentBody `json:"comments"`
}

func (r *implRepository) CreateThread(ctx context.Context, opt repository.CommentOptions) (model.Record, error) {
	path := repoPath(opt.Project, opt.RepositoryID, fmt.Sprintf("pullRequests/%d/threads", opt.PullRequestID))

	var rec model.Record
	if err := r.client.PostJSON(ctx, path, nil, threadBody{Comments: []commentBody{{Content: opt.Content}}}, &rec); err != nil {
		return nil, fmt.Errorf("create comment thread: %w", err)
	}
	return rec, nil
}

func (r *implRepository) ReplyToThread(ctx context.Context, opt repository.CommentOptions) (model.Record, error) {
	path := repoPath(opt.Project, opt.RepositoryID, fmt.Sprintf("pullRequests/%d/threads/%d/comments", opt.PullRequestID, opt.ThreadID))

	var rec model.Record
	if err := r.client.PostJSON(ctx, path, nil, commentBody{Content: opt.Content}, &rec); err != nil {
		return nil, fmt.Errorf("reply to thread %d: %w", opt.ThreadID, err)
	}
	return rec, nil
}
