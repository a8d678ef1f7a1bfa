package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"azure-devops-mcp/config"
	"azure-devops-mcp/internal/app"
	"azure-devops-mcp/internal/workitem"
	"azure-devops-mcp/pkg/datemath"
	"azure-devops-mcp/pkg/log"
)

var (
	flagTimezone string
	flagNow      string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "azdoctl",
		Short:         "Query Azure DevOps with natural language date filters",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagTimezone, "tz", "", "timezone for date filters (overrides dates.timezone)")

	root.AddCommand(newResolveDateCmd(), newWorkItemsCmd(), newToolCmd())
	return root
}

// newResolveDateCmd prints the interval a date phrase resolves to without touching Azure DevOps.
func newResolveDateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve-date <expression>",
		Short: "Show the date interval a filter phrase resolves to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz := flagTimezone
			if tz == "" {
				tz = "UTC"
			}
			resolver, err := datemath.NewResolver(tz)
			if err != nil {
				return err
			}
			now := time.Now()
			if flagNow != "" {
				if now, err = time.ParseInLocation(time.DateOnly, flagNow, resolver.Location()); err != nil {
					return fmt.Errorf("--now: %w", err)
				}
			}
			iv, form := resolver.ResolveForm(args[0], now)
			return writeJSON(cmd.OutOrStdout(), map[string]any{
				"expression": args[0],
				"form":       form,
				"from":       iv.FromString(),
				"to":         iv.ToString(),
			})
		},
	}
	cmd.Flags().StringVar(&flagNow, "now", "", "reference day as YYYY-MM-DD (defaults to today)")
	return cmd
}

func newWorkItemsCmd() *cobra.Command {
	var in workitem.ListInput
	cmd := &cobra.Command{
		Use:   "work-items",
		Short: "List work items, optionally filtered by type, state and creation date",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp()
			if err != nil {
				return err
			}
			out, err := a.WorkItems.List(cmd.Context(), in)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVarP(&in.Project, "project", "p", "", "project (defaults to azure_devops.project)")
	cmd.Flags().StringVarP(&in.WorkItemType, "type", "t", "", "work item type, e.g. Bug")
	cmd.Flags().StringVarP(&in.State, "state", "s", "", "state, e.g. Active")
	cmd.Flags().StringVarP(&in.DateFilter, "date", "d", "", "created date filter, e.g. 'last month'")
	cmd.Flags().StringVarP(&in.Query, "query", "q", "", "raw WIQL query")
	return cmd
}

// newToolCmd invokes any registered tool with JSON arguments, the same way MCP and HTTP callers do.
func newToolCmd() *cobra.Command {
	var rawArgs string
	cmd := &cobra.Command{
		Use:   "tool <name>",
		Short: "Call a registered tool with JSON arguments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := map[string]interface{}{}
			if rawArgs != "" {
				if err := json.Unmarshal([]byte(rawArgs), &params); err != nil {
					return fmt.Errorf("--args: %w", err)
				}
			}
			a, err := buildApp()
			if err != nil {
				return err
			}
			out, err := a.Registry.Call(cmd.Context(), args[0], params)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "", "tool arguments as a JSON object")
	return cmd
}

func buildApp() (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if flagTimezone != "" {
		cfg.Dates.Timezone = flagTimezone
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := log.Init(log.ZapConfig{Level: "error", Encoding: log.EncodingConsole, OutputPaths: []string{"stderr"}})
	return app.New(cfg, l, nil)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
