package workitem

import "errors"

// Domain-specific errors for the workitem package.
var (
	ErrProjectRequired      = errors.New("a project is required to query work items")
	ErrWorkItemTypeRequired = errors.New("work item type is required")
	ErrDateFilterRequired   = errors.New("date filter is required")
	ErrInvalidID            = errors.New("work item id must be a positive integer")
	ErrWorkItemNotFound     = errors.New("work item not found")
)
