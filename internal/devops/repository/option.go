package repository

type RepositoryOptions struct {
	Project      string
	RepositoryID string
}

type ItemOptions struct {
	Project      string
	RepositoryID string
	Path         string
	Branch       string
}

type ListPullRequestsOptions struct {
	Project      string
	RepositoryID string
	Status       string
}

// CreatePullRequestOptions carries fully qualified ref names (refs/heads/...).
type CreatePullRequestOptions struct {
	Project       string
	RepositoryID  string
	SourceRefName string
	TargetRefName string
	Title         string
	Description   string
}

type CommentOptions struct {
	Project       string
	RepositoryID  string
	PullRequestID int
	ThreadID      int
	Content       string
}
