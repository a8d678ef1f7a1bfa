package workitem

import "azure-devops-mcp/internal/model"

// CreatedDatePath is where a fetched work item keeps its creation timestamp.
const CreatedDatePath = "fields.System.CreatedDate"

// DateFilterMode reports how a date expression was applied.
type DateFilterMode string

const (
	DateFilterNone   DateFilterMode = "none"
	DateFilterServer DateFilterMode = "server"
	DateFilterClient DateFilterMode = "client"
)

// ListInput holds the filter criteria for listing work items.
// When Query is set it is sent verbatim and only DateFilter is still honoured (client-side).
type ListInput struct {
	Project      string
	WorkItemType string
	State        string
	DateFilter   string // natural language, e.g. "last month", "2025-03-01 to 2025-03-31"
	Query        string // caller-authored WIQL
}

// SearchInput is the input for the type + date convenience search.
type SearchInput struct {
	Project      string
	WorkItemType string
	DateFilter   string
	State        string
}

// GetInput identifies a single work item.
type GetInput struct {
	Project string
	ID      int
}

// ListOutput is the result of a work item listing.
type ListOutput struct {
	Items          []model.Record
	Count          int
	Query          string         // WIQL actually submitted
	DateFilterMode DateFilterMode // where the date expression was applied
	From           string         // resolved lower bound, YYYY-MM-DD or ""
	To             string         // resolved upper bound, YYYY-MM-DD or ""
}
