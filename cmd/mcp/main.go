package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"azure-devops-mcp/config"
	"azure-devops-mcp/internal/app"
	"azure-devops-mcp/internal/mcpserver"
	"azure-devops-mcp/pkg/log"
)

// Stdio MCP server. stdout carries the protocol, so logs go to stderr.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config: ", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "Invalid config: ", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:       cfg.Logger.Level,
		Mode:        cfg.Logger.Mode,
		Encoding:    cfg.Logger.Encoding,
		OutputPaths: []string{"stderr"},
	})
	ctx := context.Background()

	a, err := app.New(cfg, logger, nil)
	if err != nil {
		logger.Error(ctx, "Failed to initialize tools: ", err)
		os.Exit(1)
	}

	s := mcpserver.New(mcpserver.Config{
		Name:         cfg.MCP.Name,
		Version:      cfg.MCP.Version,
		Instructions: cfg.MCP.Instructions,
	}, mcpserver.Deps{
		Registry:  a.Registry,
		WorkItems: a.WorkItems,
		DevOps:    a.DevOps,
		Logger:    logger,
	})

	logger.Infof(ctx, "MCP server %s %s serving on stdio (%d tools)", cfg.MCP.Name, cfg.MCP.Version, len(a.Registry.List()))
	if err := server.ServeStdio(s); err != nil {
		logger.Error(ctx, "MCP server stopped: ", err)
		os.Exit(1)
	}
}
