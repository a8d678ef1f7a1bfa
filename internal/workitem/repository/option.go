package repository

// QueryOptions holds the parameters for a WIQL submission.
type QueryOptions struct {
	Project string
	Query   string // WIQL text, sent verbatim
}

// GetBatchOptions holds the parameters for a batched detail fetch.
type GetBatchOptions struct {
	Project string
	IDs     []int
}

// GetOptions holds the parameters for a single work item fetch.
type GetOptions struct {
	Project string
	ID      int
}
