package azdo

import (
	"azure-devops-mcp/internal/devops/repository"
	pkgAzdo "azure-devops-mcp/pkg/azdo"
	pkgLog "azure-devops-mcp/pkg/log"
)

type implRepository struct {
	client *pkgAzdo.Client
	l      pkgLog.Logger
}

// New creates the Azure DevOps backed devops repository.
func New(client *pkgAzdo.Client, l pkgLog.Logger) repository.Repository {
	return &implRepository{client: client, l: l}
}
