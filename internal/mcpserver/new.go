package mcpserver

import (
	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/workitem"
	pkgLog "azure-devops-mcp/pkg/log"

	"github.com/mark3labs/mcp-go/server"
)

// Config identifies the server to MCP clients.
type Config struct {
	Name         string
	Version      string
	Instructions string
}

// Deps carries the tool registry plus the use cases backing prompts.
type Deps struct {
	Registry  *agent.ToolRegistry
	WorkItems workitem.UseCase
	DevOps    devops.UseCase
	Logger    pkgLog.Logger
}

// New builds an MCP server exposing every registered tool and the listing prompts.
func New(cfg Config, d Deps) *server.MCPServer {
	s := server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(cfg.Instructions),
	)

	registerTools(s, d.Registry, d.Logger)
	registerPrompts(s, d)
	return s
}
