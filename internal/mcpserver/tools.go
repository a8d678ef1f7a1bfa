package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"azure-devops-mcp/internal/agent"
	pkgLog "azure-devops-mcp/pkg/log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func registerTools(s *server.MCPServer, reg *agent.ToolRegistry, l pkgLog.Logger) {
	for _, def := range reg.Definitions() {
		schema, err := json.Marshal(def.Parameters)
		if err != nil {
			l.Errorf(context.Background(), "mcpserver: skipping tool %s: bad schema: %v", def.Name, err)
			continue
		}
		tool := mcp.NewToolWithRawSchema(def.Name, def.Description, schema)
		s.AddTool(tool, toolHandler(reg, def.Name, l))
	}
}

// toolHandler adapts a registry tool. Tool failures are reported as error
// results so the calling agent can read them; they are not protocol errors.
func toolHandler(reg *agent.ToolRegistry, name string, l pkgLog.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx, reqID := pkgLog.NewRequestID(ctx)
		l.Infof(ctx, "mcpserver: call %s (request %s)", name, reqID)

		out, err := reg.Call(ctx, name, req.GetArguments())
		if err != nil {
			l.Warnf(ctx, "mcpserver: %s failed: %v", name, err)
			return mcp.NewToolResultError(err.Error()), nil
		}

		text, err := renderResult(out)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode %s result: %v", name, err)), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

func renderResult(v interface{}) (string, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
