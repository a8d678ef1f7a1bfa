package tools

import (
	"context"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	pkgLog "azure-devops-mcp/pkg/log"
)

type ListRepositoriesTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewListRepositoriesTool(uc devops.UseCase, l pkgLog.Logger) *ListRepositoriesTool {
	return &ListRepositoriesTool{uc: uc, l: l}
}

func (t *ListRepositoriesTool) Name() string { return "list_repositories" }

func (t *ListRepositoriesTool) Description() string {
	return "List the Git repositories of a project, optionally only those created within a date filter."
}

func (t *ListRepositoriesTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":     stringProp(projectDescription),
		"date_filter": stringProp(dateFilterDescription),
	})
}

type ListRepositoriesInput struct {
	Project    string `json:"project"`
	DateFilter string `json:"date_filter"`
}

func (t *ListRepositoriesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ListRepositoriesInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	repos, err := t.uc.ListRepositories(ctx, devops.ListRepositoriesInput{Project: params.Project, DateFilter: params.DateFilter})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": len(repos), "repositories": repos}, nil
}

type GetRepositoryTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewGetRepositoryTool(uc devops.UseCase, l pkgLog.Logger) *GetRepositoryTool {
	return &GetRepositoryTool{uc: uc, l: l}
}

func (t *GetRepositoryTool) Name() string { return "get_repository" }

func (t *GetRepositoryTool) Description() string {
	return "Get a repository with its refs (branches, tags) and branch statistics."
}

func (t *GetRepositoryTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":       stringProp(projectDescription),
		"repository_id": stringProp("Repository ID or name"),
	}, "repository_id")
}

type GetRepositoryInput struct {
	Project      string `json:"project"`
	RepositoryID string `json:"repository_id" validate:"required"`
}

func (t *GetRepositoryTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetRepositoryInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	return t.uc.GetRepository(ctx, devops.GetRepositoryInput{Project: params.Project, RepositoryID: params.RepositoryID})
}

type GetFileContentTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewGetFileContentTool(uc devops.UseCase, l pkgLog.Logger) *GetFileContentTool {
	return &GetFileContentTool{uc: uc, l: l}
}

func (t *GetFileContentTool) Name() string { return "get_file_content" }

func (t *GetFileContentTool) Description() string {
	return "Get the text of a file, or the entries of a folder, from a repository branch."
}

func (t *GetFileContentTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":       stringProp(projectDescription),
		"repository_id": stringProp("Repository ID or name"),
		"path":          stringProp("File or folder path inside the repository"),
		"branch": map[string]interface{}{
			"type":        "string",
			"description": "Branch name",
			"default":     devops.DefaultBranch,
		},
	}, "repository_id", "path")
}

type GetFileContentInput struct {
	Project      string `json:"project"`
	RepositoryID string `json:"repository_id" validate:"required"`
	Path         string `json:"path" validate:"required"`
	Branch       string `json:"branch"`
}

func (t *GetFileContentTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetFileContentInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	return t.uc.GetFileContent(ctx, devops.GetFileContentInput{
		Project:      params.Project,
		RepositoryID: params.RepositoryID,
		Path:         params.Path,
		Branch:       params.Branch,
	})
}

var (
	_ agent.Tool = (*ListRepositoriesTool)(nil)
	_ agent.Tool = (*GetRepositoryTool)(nil)
	_ agent.Tool = (*GetFileContentTool)(nil)
)
