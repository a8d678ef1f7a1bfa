package app_test

import (
	"testing"

	"azure-devops-mcp/config"
	"azure-devops-mcp/internal/app"
	pkgLog "azure-devops-mcp/pkg/log"
)

func TestNew(t *testing.T) {
	base := func() *config.Config {
		return &config.Config{
			AzureDevOps: config.AzureDevOpsConfig{
				OrganizationURL: "https://dev.azure.com/contoso",
				Project:         "Demo",
				AuthMode:        config.AuthModePAT,
				PAT:             "pat",
			},
			Dates: config.DatesConfig{Timezone: "UTC"},
		}
	}

	t.Run("Registers All Tools", func(t *testing.T) {
		a, err := app.New(base(), pkgLog.NewNop(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := len(a.Registry.List()); got != 13 {
			t.Errorf("expected 13 tools, got %d", got)
		}
		if _, ok := a.Registry.Get("list_work_items"); !ok {
			t.Error("list_work_items not registered")
		}
	})

	t.Run("Bad Timezone", func(t *testing.T) {
		cfg := base()
		cfg.Dates.Timezone = "Nowhere/Void"
		if _, err := app.New(cfg, pkgLog.NewNop(), nil); err == nil {
			t.Error("expected error for bad timezone")
		}
	})

	t.Run("Missing Organization", func(t *testing.T) {
		cfg := base()
		cfg.AzureDevOps.OrganizationURL = ""
		if _, err := app.New(cfg, pkgLog.NewNop(), nil); err == nil {
			t.Error("expected error for missing organization")
		}
	})
}
