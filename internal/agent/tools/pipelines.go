package tools

import (
	"context"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	pkgLog "azure-devops-mcp/pkg/log"
)

type ListPipelinesTool struct {
	uc devops.UseCase
	l  pkgLog.Logger
}

func NewListPipelinesTool(uc devops.UseCase, l pkgLog.Logger) *ListPipelinesTool {
	return &ListPipelinesTool{uc: uc, l: l}
}

func (t *ListPipelinesTool) Name() string { return "list_pipelines" }

func (t *ListPipelinesTool) Description() string {
	return "List the pipelines of a project. With a date filter, only pipelines whose latest run started in that range are returned."
}

func (t *ListPipelinesTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":     stringProp(projectDescription),
		"date_filter": stringProp(dateFilterDescription),
	})
}

type ListPipelinesInput struct {
	Project    string `json:"project"`
	DateFilter string `json:"date_filter"`
}

func (t *ListPipelinesTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ListPipelinesInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	pipelines, err := t.uc.ListPipelines(ctx, devops.ListPipelinesInput{Project: params.Project, DateFilter: params.DateFilter})
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"count": len(pipelines), "pipelines": pipelines}, nil
}

var _ agent.Tool = (*ListPipelinesTool)(nil)
