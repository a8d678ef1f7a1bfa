package devops

import "errors"

var (
	ErrProjectRequired    = errors.New("a project is required for this operation")
	ErrRepositoryRequired = errors.New("repository id is required")
	ErrPathRequired       = errors.New("path is required")
	ErrBranchRequired     = errors.New("source and target branches are required")
	ErrTitleRequired      = errors.New("pull request title is required")
	ErrCommentRequired    = errors.New("comment text is required")
	ErrInvalidPullRequest = errors.New("pull request id must be a positive integer")
)
