package httpserver

import (
	"errors"
	"io"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/pkg/azdo"
	"azure-devops-mcp/pkg/response"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	agent.ErrInvalidArguments,
	workitem.ErrProjectRequired,
	workitem.ErrWorkItemTypeRequired,
	workitem.ErrDateFilterRequired,
	workitem.ErrInvalidID,
	devops.ErrProjectRequired,
	devops.ErrRepositoryRequired,
	devops.ErrPathRequired,
	devops.ErrBranchRequired,
	devops.ErrTitleRequired,
	devops.ErrCommentRequired,
	devops.ErrInvalidPullRequest,
}

// listTools returns every tool definition
// @Summary List tools
// @Description List the callable Azure DevOps tools with their JSON schemas
// @Tags Tools
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/v1/tools [get]
func (srv HTTPServer) listTools(c *gin.Context) {
	response.OK(c, srv.registry.Definitions())
}

// callTool executes a tool with the JSON object body as its arguments
// @Summary Call tool
// @Description Execute a tool by name
// @Tags Tools
// @Accept json
// @Produce json
// @Param name path string true "Tool name"
// @Param arguments body map[string]interface{} false "Tool arguments"
// @Success 200 {object} response.Resp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/tools/{name} [post]
func (srv HTTPServer) callTool(c *gin.Context) {
	ctx := c.Request.Context()
	name := c.Param("name")

	args := map[string]interface{}{}
	if err := c.ShouldBindJSON(&args); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, err, nil)
		return
	}

	out, err := srv.registry.Call(ctx, name, args)
	if err != nil {
		srv.writeError(c, name, err)
		return
	}
	response.OK(c, out)
}

func (srv HTTPServer) writeError(c *gin.Context, name string, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, agent.ErrToolNotFound), errors.Is(err, workitem.ErrWorkItemNotFound):
		response.NotFound(c, err)
	case isBadRequest(err):
		response.Error(c, err, nil)
	default:
		var apiErr *azdo.APIError
		if errors.As(err, &apiErr) {
			srv.l.Warnf(ctx, "httpserver.callTool: %s: upstream %d", name, apiErr.StatusCode)
			response.BadGateway(c, err)
			return
		}
		srv.l.Errorf(ctx, "httpserver.callTool: %s: %v", name, err)
		response.InternalError(c, err)
	}
}

func isBadRequest(err error) bool {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

