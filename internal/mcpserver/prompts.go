package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"azure-devops-mcp/internal/devops"
	"azure-devops-mcp/internal/model"
	"azure-devops-mcp/internal/workitem"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const descriptionPreview = 150

var errPromptProjectRequired = errors.New("project argument is required")

func registerPrompts(s *server.MCPServer, d Deps) {
	s.AddPrompt(mcp.NewPrompt("work_items",
		mcp.WithPromptDescription("Search work items in Azure DevOps"),
		mcp.WithArgument("project", mcp.ArgumentDescription("Project name"), mcp.RequiredArgument()),
		mcp.WithArgument("work_item_type", mcp.ArgumentDescription("Work item type (Epic, User Story, Task, Bug, ...)")),
		mcp.WithArgument("date_filter", mcp.ArgumentDescription("Natural language date filter")),
		mcp.WithArgument("state", mcp.ArgumentDescription("Work item state")),
	), workItemsPrompt(d.WorkItems))

	s.AddPrompt(mcp.NewPrompt("pull_requests",
		mcp.WithPromptDescription("List pull requests in a project or repository"),
		mcp.WithArgument("project", mcp.ArgumentDescription("Project name"), mcp.RequiredArgument()),
		mcp.WithArgument("repository_id", mcp.ArgumentDescription("Repository ID")),
		mcp.WithArgument("status", mcp.ArgumentDescription("Pull request status (active, abandoned, completed, all)")),
	), pullRequestsPrompt(d.DevOps))
}

func workItemsPrompt(uc workitem.UseCase) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		project := args["project"]
		if project == "" {
			return nil, errPromptProjectRequired
		}

		out, err := uc.List(ctx, workitem.ListInput{
			Project:      project,
			WorkItemType: args["work_item_type"],
			DateFilter:   args["date_filter"],
			State:        args["state"],
		})
		if err != nil {
			return nil, err
		}

		var filters []string
		for _, k := range []string{"work_item_type", "date_filter", "state"} {
			if v := args[k]; v != "" {
				filters = append(filters, k+"="+v)
			}
		}
		title := "Work items in " + project
		if len(filters) > 0 {
			title += " (" + strings.Join(filters, " ") + ")"
		}

		if len(out.Items) == 0 {
			return userPrompt("No work items in "+project,
				fmt.Sprintf("No work items in project %s match the given criteria.", project)), nil
		}

		var b strings.Builder
		b.WriteString(title + ":\n\n")
		for i, wi := range out.Items {
			fmt.Fprintf(&b, "%d. #%s - %s\n", i+1, idString(wi, "id"), field(wi, "fields.System.Title", "Untitled"))
			fmt.Fprintf(&b, "   Type: %s\n", field(wi, "fields.System.WorkItemType", "N/A"))
			fmt.Fprintf(&b, "   State: %s\n", field(wi, "fields.System.State", "N/A"))
			fmt.Fprintf(&b, "   Assigned to: %s\n", field(wi, "fields.System.AssignedTo.displayName", "N/A"))
			fmt.Fprintf(&b, "   Created: %s\n", field(wi, workitem.CreatedDatePath, "N/A"))
			if desc, ok := wi.LookupString("fields.System.Description"); ok {
				fmt.Fprintf(&b, "   Description: %s\n", truncate(desc))
			}
			b.WriteString("\n")
		}
		return userPrompt(title, b.String()), nil
	}
}

func pullRequestsPrompt(uc devops.UseCase) server.PromptHandlerFunc {
	return func(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
		args := req.Params.Arguments
		project := args["project"]
		if project == "" {
			return nil, errPromptProjectRequired
		}
		status := args["status"]
		if status == "" {
			status = devops.DefaultPRStatus
		}
		repoID := args["repository_id"]

		prs, err := uc.ListPullRequests(ctx, devops.ListPullRequestsInput{Project: project, RepositoryID: repoID, Status: status})
		if err != nil {
			return nil, err
		}

		scope := ""
		if repoID != "" {
			scope = " in repository " + repoID
		}
		title := fmt.Sprintf("Pull requests %s%s in %s", status, scope, project)

		if len(prs) == 0 {
			return userPrompt("No "+strings.ToLower(title[:1])+title[1:],
				fmt.Sprintf("No pull requests%s in project %s with status %s.", scope, project, status)), nil
		}

		var b strings.Builder
		b.WriteString(title + ":\n\n")
		for i, pr := range prs {
			fmt.Fprintf(&b, "%d. #%s - %s\n", i+1, idString(pr, "pullRequestId"), field(pr, "title", ""))
			fmt.Fprintf(&b, "   Status: %s\n", field(pr, "status", "N/A"))
			fmt.Fprintf(&b, "   Created by: %s\n", field(pr, "createdBy.displayName", "N/A"))
			fmt.Fprintf(&b, "   Created: %s\n", field(pr, "creationDate", "N/A"))
			fmt.Fprintf(&b, "   Source branch: %s\n", strings.TrimPrefix(field(pr, "sourceRefName", ""), "refs/heads/"))
			fmt.Fprintf(&b, "   Target branch: %s\n", strings.TrimPrefix(field(pr, "targetRefName", ""), "refs/heads/"))
			fmt.Fprintf(&b, "   Repository: %s\n", field(pr, "repository.name", "N/A"))
			fmt.Fprintf(&b, "   Description: %s\n\n", truncate(field(pr, "description", "N/A")))
		}
		return userPrompt(title, b.String()), nil
	}
}

func userPrompt(description, text string) *mcp.GetPromptResult {
	return mcp.NewGetPromptResult(description, []mcp.PromptMessage{
		mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text)),
	})
}

func field(rec model.Record, path, fallback string) string {
	if s, ok := rec.LookupString(path); ok {
		return s
	}
	return fallback
}

func idString(rec model.Record, path string) string {
	v, ok := rec.Lookup(path)
	if !ok {
		return "?"
	}
	if f, ok := v.(float64); ok {
		return fmt.Sprintf("%d", int(f))
	}
	return fmt.Sprint(v)
}

func truncate(s string) string {
	r := []rune(s)
	if len(r) <= descriptionPreview {
		return s
	}
	return string(r[:descriptionPreview]) + "..."
}
