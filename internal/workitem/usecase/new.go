package usecase

import (
	"time"

	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/internal/workitem/repository"
	"azure-devops-mcp/pkg/datemath"
	pkgLog "azure-devops-mcp/pkg/log"
)

type implUseCase struct {
	l              pkgLog.Logger
	repo           repository.Repository
	resolver       *datemath.Resolver
	defaultProject string
	now            func() time.Time
}

// Option customises the work item UseCase.
type Option func(*implUseCase)

// WithClock overrides the wall clock used to resolve relative date expressions.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// New creates a new work item UseCase instance.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	resolver *datemath.Resolver,
	defaultProject string,
	opts ...Option,
) workitem.UseCase {
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
