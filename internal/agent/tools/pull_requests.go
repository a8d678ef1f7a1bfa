package tools

import (
	"context"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	pkgLog "azure-devops-mcp/pkg/log"
)

// ---- list_pull_requests ----

type ListPullRequestsTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewListPullRequestsTool(uc devops.UseCase, l pkgLog.Logger) *ListPullRequestsTool {
	return &ListPullRequestsTool{uc: uc, l: l}
}

func (t *ListPullRequestsTool) Name() string { return "list_pull_requests" }

func (t *ListPullRequestsTool) Description() string {
	return "List pull requests in a project, or in one repository when repository_id is given."
}

func (t *ListPullRequestsTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":       stringProp(projectDescription),
		"repository_id": stringProp("Repository ID. Omit to list across the project"),
		"status": map[string]interface{}{
			"type":        "string",
			"description": "Pull request status",
			"enum":        []string{"active", "abandoned", "completed", "all"},
			"default":     devops.DefaultPRStatus,
		},
	})
}

type ListPullRequestsInput struct {
	Project      string `json:"project"`
	RepositoryID string `json:"repository_id"`
	Status       string `json:"status" validate:"omitempty,oneof=active abandoned completed all"`
}

func (t *ListPullRequestsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ListPullRequestsInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	prs, err := t.uc.ListPullRequests(ctx, devops.ListPullRequestsInput{
		Project:      params.Project,
		RepositoryID: params.RepositoryID,
		Status:       params.Status,
	})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": len(prs), "pull_requests": prs}, nil
}

// ---- create_pull_request ----

type CreatePullRequestTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewCreatePullRequestTool(uc devops.UseCase, l pkgLog.Logger) *CreatePullRequestTool {
	return &CreatePullRequestTool{uc: uc, l: l}
}

func (t *CreatePullRequestTool) Name() string { return "create_pull_request" }

func (t *CreatePullRequestTool) Description() string {
	return "Open a pull request from a source branch into a target branch."
}

func (t *CreatePullRequestTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":       stringProp(projectDescription),
		"repository_id": stringProp("Repository ID"),
		"source_branch": stringProp("Branch holding the changes"),
		"target_branch": stringProp("Branch to merge into"),
		"title":         stringProp("Pull request title"),
		"description":   stringProp("Pull request description"),
	}, "repository_id", "source_branch", "target_branch", "title")
}

type CreatePullRequestInput struct {
	Project      string `json:"project"`
	RepositoryID string `json:"repository_id" validate:"required"`
	SourceBranch string `json:"source_branch" validate:"required"`
	TargetBranch string `json:"target_branch" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
}

func (t *CreatePullRequestTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params CreatePullRequestInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	t.l.Infof(ctx, "create_pull_request: %s -> %s in %s", params.SourceBranch, params.TargetBranch, params.RepositoryID)

	return t.uc.CreatePullRequest(ctx, devops.CreatePullRequestInput{
		Project:      params.Project,
		RepositoryID: params.RepositoryID,
		SourceBranch: params.SourceBranch,
		TargetBranch: params.TargetBranch,
		Title:        params.Title,
		Description:  params.Description,
	})
}

// ---- add_pull_request_comment ----

type AddPullRequestCommentTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewAddPullRequestCommentTool(uc devops.UseCase, l pkgLog.Logger) *AddPullRequestCommentTool {
	return &AddPullRequestCommentTool{uc: uc, l: l}
}

func (t *AddPullRequestCommentTool) Name() string { return "add_pull_request_comment" }

func (t *AddPullRequestCommentTool) Description() string {
	return "Comment on a pull request. Starts a new thread unless thread_id is given, in which case it replies to that thread."
}

func (t *AddPullRequestCommentTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":         stringProp(projectDescription),
		"repository_id":   stringProp("Repository ID"),
		"pull_request_id": integerProp("Pull request ID"),
		"comment":         stringProp("Comment text"),
		"thread_id":       integerProp("Existing thread to reply to"),
	}, "repository_id", "pull_request_id", "comment")
}

type AddPullRequestCommentInput struct {
	Project       string `json:"project"`
	RepositoryID  string `json:"repository_id" validate:"required"`
	PullRequestID int    `json:"pull_request_id" validate:"gt=0"`
	Comment       string `json:"comment" validate:"required"`
	ThreadID      int    `json:"thread_id" validate:"gte=0"`
}

func (t *AddPullRequestCommentTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params AddPullRequestCommentInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	return t.uc.AddPullRequestComment(ctx, devops.AddPullRequestCommentInput{
		Project:       params.Project,
		RepositoryID:  params.RepositoryID,
		PullRequestID: params.PullRequestID,
		Comment:       params.Comment,
		ThreadID:      params.ThreadID,
	})
}

var (
	_ agent.Tool = (*ListPullRequestsTool)(nil)
	_ agent.Tool = (*CreatePullRequestTool)(nil)
	_ agent.Tool = (*AddPullRequestCommentTool)(nil)
)
