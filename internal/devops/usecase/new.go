package usecase

import (
	"time"

	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/devops/repository"
	"azure-devops-mcp/pkg/datemath"
	pkgLog "azure-devops-mcp/pkg/log"
)

// enrichConcurrency bounds the per-item detail calls made while date filtering.
const enrichConcurrency = 4

type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.Repository
	resolver       *datemath.Resolver
	defaultProject string
	now            func() time.Time
}

type Option func(*implUseCase)

// WithClock overrides the wall clock used to resolve relative date expressions.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) { uc.now = now }
}

// New creates a new devops UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver *datemath.Resolver,
	defaultProject string,
	opts ...Option,
) devops.UseCase {
	uc := &implUseCase{
		l:              l,
		repo:           repo,
		resolver:       resolver,
		defaultProject: defaultProject,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
