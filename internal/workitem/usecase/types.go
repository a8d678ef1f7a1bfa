package usecase

import "azure-devops-mcp/pkg/datemath"

// Plan records where a date expression is applied for one listing.
// At most one of ServerClause and ClientFilter is set.
type Plan struct {
	ServerClause string // WIQL predicate on [System.CreatedDate]
	ClientFilter string // expression applied to fetched records
	Interval     datemath.Interval
}

// BatchSize is the number of IDs requested per detail call.
const BatchSize = 200

// selectFields is the fixed projection of generated queries.
var selectFields = []string{
	"[System.Id]",
	"[System.Title]",
	"[System.State]",
	"[System.WorkItemType]",
	"[System.CreatedDate]",
	"[System.ChangedDate]",
	"[System.AssignedTo]",
	"[System.Tags]",
}
