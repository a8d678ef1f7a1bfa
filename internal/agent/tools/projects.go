package tools

import (
	"context"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	pkgLog "azure-devops-mcp/pkg/log"
)

type ListProjectsTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewListProjectsTool(uc devops.UseCase, l pkgLog.Logger) *ListProjectsTool {
	return &ListProjectsTool{uc: uc, l: l}
}

func (t *ListProjectsTool) Name() string { return "list_projects" }

func (t *ListProjectsTool) Description() string {
	return "List the projects of the configured Azure DevOps organization."
}

func (t *ListProjectsTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{})
}

func (t *ListProjectsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	projects, err := t.uc.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": len(projects), "projects": projects}, nil
}

type GetMeTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewGetMeTool(uc devops.UseCase, l pkgLog.Logger) *GetMeTool {
	return &GetMeTool{uc: uc, l: l}
}

func (t *GetMeTool) Name() string { return "get_me" }

func (t *GetMeTool) Description() string {
	return "Get the profile of the authenticated Azure DevOps user."
}

func (t *GetMeTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{})
}

func (t *GetMeTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	return t.uc.GetMe(ctx)
}

var (
	_ agent.Tool = (*ListProjectsTool)(nil)
	_ agent.Tool = (*GetMeTool)(nil)
)
