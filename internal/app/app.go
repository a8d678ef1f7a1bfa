package app

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"azure-devops-mcp/config"
	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/agent/tools"
	"azure-devops-mcp/internal/devops"
	devopsRepo "azure-devops-mcp/internal/devops/repository/azdo"
	devopsUC "azure-devops-mcp/internal/devops/usecase"
	"azure-devops-mcp/internal/workitem"
	workitemRepo "azure-devops-mcp/internal/workitem/repository/azdo"
	workitemUC "azure-devops-mcp/internal/workitem/usecase"
	"azure-devops-mcp/pkg/azdo"
	"azure-devops-mcp/pkg/datemath"
	pkgLog "azure-devops-mcp/pkg/log"
)

// App is the wired dependency graph shared by every binary.
type App struct {
	Resolver  *datemath.Resolver
	WorkItems workitem.UseCase
	DevOps    devops.UseCase
	Registry  *agent.ToolRegistry
}

// New wires the Azure DevOps client, repositories, use cases and tool registry.
// reg receives the client metrics; nil keeps them private.
func New(cfg *config.Config, l pkgLog.Logger, reg prometheus.Registerer) (*App, error) {
	resolver, err := datemath.NewResolver(cfg.Dates.Timezone)
	if err != nil {
		return nil, fmt.Errorf("date resolver: %w", err)
	}

	ado := cfg.AzureDevOps
	client, err := azdo.NewClient(azdo.Config{
		OrganizationURL:   ado.OrganizationURL,
		APIVersion:        ado.APIVersion,
		Timeout:           ado.Timeout,
		AuthMode:          ado.AuthMode,
		PAT:               ado.PAT,
		TenantID:          ado.TenantID,
		ClientID:          ado.ClientID,
		ClientSecret:      ado.ClientSecret,
		RequestsPerSecond: ado.RequestsPerSecond,
		Burst:             ado.Burst,
		Registerer:        reg,
	})
	if err != nil {
		return nil, fmt.Errorf("azure devops client: %w", err)
	}

	wiUC := workitemUC.New(l, workitemRepo.New(client, l), resolver, ado.Project)
	dvUC := devopsUC.New(l, devopsRepo.New(client, l), resolver, ado.Project)

	registry := tools.NewRegistry(tools.Deps{
		WorkItems: wiUC,
		DevOps:    dvUC,
		Resolver:  resolver,
		Now:       time.Now,
		Logger:    l,
	})

	return &App{
		Resolver:  resolver,
		WorkItems: wiUC,
		DevOps:    dvUC,
		Registry:  registry,
	}, nil
}
