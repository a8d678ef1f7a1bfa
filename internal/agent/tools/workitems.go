package tools

import (
	"context"
	"fmt"
	"strings"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem"
	pkgLog "azure-devops-mcp/pkg/log"
)

// WorkItemSummary is the compact projection returned by listing tools.
type WorkItemSummary struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	State       string `json:"state"`
	Type        string `json:"type"`
	CreatedDate string `json:"created_date"`
	AssignedTo  string `json:"assigned_to,omitempty"`
}

type WorkItemListOutput struct {
	Count          int               `json:"count"`
	DateFilterMode string            `json:"date_filter_mode"`
	From           string            `json:"from,omitempty"`
	To             string            `json:"to,omitempty"`
	Query          string            `json:"query"`
	WorkItems      []WorkItemSummary `json:"work_items"`
	Summary        string            `json:"summary"`
}

// ---- list_work_items ----

type ListWorkItemsTool struct {
	uc workitem.UseCase
	l  pkgLog.Logger
}

func NewListWorkItemsTool(uc workitem.UseCase, l pkgLog.Logger) *ListWorkItemsTool {
	return &ListWorkItemsTool{uc: uc, l: l}
}

func (t *ListWorkItemsTool) Name() string {
	return "list_work_items"
}

func (t *ListWorkItemsTool) Description() string {
	return "Search and list work items in an Azure DevOps project. Filters by type, state and a natural language date filter on creation date. A custom WIQL query overrides the other filters; its date filter is then applied after fetching."
}

func (t *ListWorkItemsTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":        stringProp(projectDescription),
		"work_item_type": stringProp("Work item type (Epic, User Story, Task, Bug, ...)"),
		"state":          stringProp("Work item state (New, Active, Closed, ...)"),
		"date_filter":    stringProp(dateFilterDescription),
		"query_string":   stringProp("Custom WIQL query. When present the other filters except date_filter are ignored"),
	})
}

type ListWorkItemsInput struct {
	Project      string `json:"project"`
	WorkItemType string `json:"work_item_type"`
	State        string `json:"state"`
	DateFilter   string `json:"date_filter"`
	QueryString  string `json:"query_string"`
}

func (t *ListWorkItemsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ListWorkItemsInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}

	t.l.Infof(ctx, "list_work_items: project=%q type=%q state=%q date=%q raw=%t",
		params.Project, params.WorkItemType, params.State, params.DateFilter, params.QueryString != "")

	out, err := t.uc.List(ctx, workitem.ListInput{
		Project:      params.Project,
		WorkItemType: params.WorkItemType,
		State:        params.State,
		DateFilter:   params.DateFilter,
		Query:        params.QueryString,
	})
	if err != nil {
		return nil, err
	}
	return newWorkItemListOutput(out), nil
}

// ---- search_work_items_by_type_and_date ----

type SearchWorkItemsTool struct {
	uc workitem.UseCase
	l  pkgLog.Logger
}

func NewSearchWorkItemsTool(uc workitem.UseCase, l pkgLog.Logger) *SearchWorkItemsTool {
	return &SearchWorkItemsTool{uc: uc, l: l}
}

func (t *SearchWorkItemsTool) Name() string {
	return "search_work_items_by_type_and_date"
}

func (t *SearchWorkItemsTool) Description() string {
	return "Find work items of a given type created within a natural language date range, optionally narrowed by state."
}

func (t *SearchWorkItemsTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":        stringProp(projectDescription),
		"work_item_type": stringProp("Work item type (Epic, User Story, Task, Bug, ...)"),
		"date_filter":    stringProp(dateFilterDescription),
		"state":          stringProp("Work item state (New, Active, Closed, ...)"),
	}, "work_item_type", "date_filter")
}

type SearchWorkItemsInput struct {
	Project      string `json:"project"`
	WorkItemType string `json:"work_item_type" validate:"required"`
	DateFilter   string `json:"date_filter" validate:"required"`
	State        string `json:"state"`
}

func (t *SearchWorkItemsTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params SearchWorkItemsInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}

	out, err := t.uc.SearchByTypeAndDate(ctx, workitem.SearchInput{
		Project:      params.Project,
		WorkItemType: params.WorkItemType,
		DateFilter:   params.DateFilter,
		State:        params.State,
	})
	if err != nil {
		return nil, err
	}
	return newWorkItemListOutput(out), nil
}

// ---- get_work_item ----

type GetWorkItemTool struct {
	uc workitem.UseCase
	l  pkgLog.Logger
}

func NewGetWorkItemTool(uc workitem.UseCase, l pkgLog.Logger) *GetWorkItemTool {
	return &GetWorkItemTool{uc: uc, l: l}
}

func (t *GetWorkItemTool) Name() string {
	return "get_work_item"
}

func (t *GetWorkItemTool) Description() string {
	return "Get every field and relation of a single work item by ID."
}

func (t *GetWorkItemTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"project":      stringProp(projectDescription),
		"work_item_id": integerProp("Work item ID"),
	}, "work_item_id")
}

type GetWorkItemInput struct {
	Project    string `json:"project"`
	WorkItemID int    `json:"work_item_id" validate:"gt=0"`
}

func (t *GetWorkItemTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetWorkItemInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}
	return t.uc.Get(ctx, workitem.GetInput{Project: params.Project, ID: params.WorkItemID})
}

func newWorkItemListOutput(out workitem.ListOutput) WorkItemListOutput {
	summaries := make([]WorkItemSummary, 0, len(out.Items))
	for _, rec := range out.Items {
		summaries = append(summaries, summarizeWorkItem(rec))
	}

	var b strings.Builder
	if len(summaries) == 0 {
		b.WriteString("No work items found")
	} else {
		fmt.Fprintf(&b, "Found %d work items", len(summaries))
	}
	if out.From != "" || out.To != "" {
		fmt.Fprintf(&b, " created between %s and %s", orOpen(out.From), orOpen(out.To))
	}
	for _, s := range summaries {
		fmt.Fprintf(&b, "\n#%d [%s] %s (%s, created %s)", s.ID, s.Type, s.Title, s.State, s.CreatedDate)
	}

	return WorkItemListOutput{
		Count:          len(summaries),
		DateFilterMode: string(out.DateFilterMode),
		From:           out.From,
		To:             out.To,
		Query:          out.Query,
		WorkItems:      summaries,
		Summary:        b.String(),
	}
}

func summarizeWorkItem(rec model.Record) WorkItemSummary {
	s := WorkItemSummary{}
	if v, ok := rec.Lookup("id"); ok {
		if f, ok := v.(float64); ok {
			s.ID = int(f)
		}
	}
	s.Title, _ = rec.LookupString("fields.System.Title")
	s.State, _ = rec.LookupString("fields.System.State")
	s.Type, _ = rec.LookupString("fields.System.WorkItemType")
	s.CreatedDate, _ = rec.LookupString(workitem.CreatedDatePath)
	s.AssignedTo, _ = rec.LookupString("fields.System.AssignedTo.displayName")
	return s
}

func orOpen(s string) string {
	if s == "" {
		return "..."
	}
	return s
}

// Verify interface compliance
var (
	_ agent.Tool = (*ListWorkItemsTool)(nil)
	_ agent.Tool = (*SearchWorkItemsTool)(nil)
	_ agent.Tool = (*GetWorkItemTool)(nil)
)
