package usecase

import (
	"fmt"
	"strings"

	"azure-devops-mcp/pkg/datemath"
)

// BuildPlan decides where dateFilter is applied. A caller-authored query is never
// rewritten, so its date filter moves to the client side; otherwise the resolved
// interval becomes a WIQL predicate.
func BuildPlan(rawQuery, dateFilter string, iv datemath.Interval) Plan {
	if strings.TrimSpace(dateFilter) == "" {
		return Plan{}
	}
	if strings.TrimSpace(rawQuery) != "" || iv.IsEmpty() {
		return Plan{ClientFilter: dateFilter, Interval: iv}
	}
	return Plan{ServerClause: dateClause(iv), Interval: iv}
}

// BuildQuery assembles the WIQL for a project scoped listing.
func BuildQuery(project, workItemType, state, dateClause string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM WorkItems WHERE [System.TeamProject] = '%s'",
		strings.Join(selectFields, ", "), quote(project))

	if workItemType != "" {
		fmt.Fprintf(&b, " AND [System.WorkItemType] = '%s'", quote(workItemType))
	}
	if state != "" {
		fmt.Fprintf(&b, " AND [System.State] = '%s'", quote(state))
	}
	if dateClause != "" {
		b.WriteString(" AND ")
		b.WriteString(dateClause)
	}

	b.WriteString(" ORDER BY [System.CreatedDate] DESC")
	return b.String()
}

func dateClause(iv datemath.Interval) string {
	var parts []string
	if iv.HasFrom() {
		parts = append(parts, fmt.Sprintf("[System.CreatedDate] >= '%s'", iv.FromString()))
	}
	if iv.HasTo() {
		parts = append(parts, fmt.Sprintf("[System.CreatedDate] <= '%s'", iv.ToString()))
	}
	return strings.Join(parts, " AND ")
}

// quote escapes a WIQL string literal.
func quote(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
