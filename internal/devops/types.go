package devops

import "azure-devops-mcp/internal/model"

const (
	// RepositoryCreatedPath is the date consulted when filtering repositories.
	RepositoryCreatedPath = "createdDate"
	// PipelineLatestRunPath is the date consulted when filtering pipelines.
	PipelineLatestRunPath = "latestRun.createdDate"

	DefaultBranch   = "main"
	DefaultPRStatus = "active"
)

type ListRepositoriesInput struct {
	Project    string
	DateFilter string
}

type GetRepositoryInput struct {
	Project      string
	RepositoryID string
}

// RepositoryDetails combines a repository with its refs and branch statistics.
type RepositoryDetails struct {
	Repository model.Record   `json:"repository"`
	Refs       []model.Record `json:"refs"`
	Stats      []model.Record `json:"stats"`
}

type GetFileContentInput struct {
	Project      string
	RepositoryID string
	Path         string
	Branch       string
}

// FileContent is either a one-level folder listing or the raw text of a file.
type FileContent struct {
	Path     string         `json:"path"`
	Branch   string         `json:"branch"`
	IsFolder bool           `json:"isFolder"`
	Items    []model.Record `json:"items,omitempty"`
	Content  string         `json:"content,omitempty"`
}

type ListPipelinesInput struct {
	Project    string
	DateFilter string
}

type ListPullRequestsInput struct {
	Project      string
	RepositoryID string // empty lists across the project
	Status       string // active, abandoned, completed, all
}

type CreatePullRequestInput struct {
	Project      string
	RepositoryID string
	SourceBranch string
	TargetBranch string
	Title        string
	Description  string
}

type AddPullRequestCommentInput struct {
	Project       string
	RepositoryID  string
	PullRequestID int
	Comment       string
	ThreadID      int // 0 starts a new thread
}
