package tools

import (
	"time"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/pkg/datemath"
	pkgLog "azure-devops-mcp/pkg/log"
)

// Deps carries what the tool set needs.
type Deps struct {
	WorkItems workitem.UseCase
	DevOps    devops.UseCase
	Resolver  *datemath.Resolver
	Now       func() time.Time
	Logger    pkgLog.Logger
}

// NewRegistry builds a registry holding every Azure DevOps tool.
func NewRegistry(d Deps) *agent.ToolRegistry {
	r := agent.NewToolRegistry()

	r.Register(NewListWorkItemsTool(d.WorkItems, d.Logger))
	r.Register(NewSearchWorkItemsTool(d.WorkItems, d.Logger))
	r.Register(NewGetWorkItemTool(d.WorkItems, d.Logger))
	r.Register(NewParseDateFilterTool(d.Resolver, d.Now, d.Logger))

	r.Register(NewListProjectsTool(d.DevOps, d.Logger))
	r.Register(NewGetMeTool(d.DevOps, d.Logger))
	r.Register(NewListRepositoriesTool(d.DevOps, d.Logger))
	r.Register(NewGetRepositoryTool(d.DevOps, d.Logger))
	r.Register(NewGetFileContentTool(d.DevOps, d.Logger))
	r.Register(NewListPipelinesTool(d.DevOps, d.Logger))
	r.Register(NewListPullRequestsTool(d.DevOps, d.Logger))
	r.Register(NewCreatePullRequestTool(d.DevOps, d.Logger))
	r.Register(NewAddPullRequestCommentTool(d.DevOps, d.Logger))

	return r
}
