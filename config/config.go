package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	MCP        MCPConfig

	// Azure DevOps
	AzureDevOps AzureDevOpsConfig
	Dates       DatesConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type MCPConfig struct {
	Name         string
	Version      string
	Instructions string
}

type AzureDevOpsConfig struct {
	OrganizationURL   string // e.g. https://dev.azure.com/contoso
	Project           string // default project when a call omits one
	APIVersion        string
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int

	AuthMode     string // "pat" or "entra"
	PAT          string
	TenantID     string
	ClientID     string
	ClientSecret string
}

type DatesConfig struct {
	// Timezone in which "today" is evaluated for date filters.
	Timezone string
}

const (
	AuthModePAT   = "pat"
	AuthModeEntra = "entra"
)

// flatEnv maps keys to the short variable names accepted alongside the nested ones.
var flatEnv = map[string]string{
	"azure_devops.pat":              "AZDO_PAT",
	"azure_devops.organization_url": "AZDO_ORG",
	"azure_devops.project":          "AZDO_PROJECT",
}

// Load loads configuration using Viper.
// A .env file in the working directory is read first when present.
// Config file name: config.yaml, searched in ./config, ., /etc/azure-devops-mcp/
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/azure-devops-mcp/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key, env := range flatEnv {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// MCP
	cfg.MCP.Name = v.GetString("mcp.name")
	cfg.MCP.Version = v.GetString("mcp.version")
	cfg.MCP.Instructions = v.GetString("mcp.instructions")

	// Azure DevOps
	cfg.AzureDevOps.OrganizationURL = strings.TrimRight(v.GetString("azure_devops.organization_url"), "/")
	cfg.AzureDevOps.Project = v.GetString("azure_devops.project")
	cfg.AzureDevOps.APIVersion = v.GetString("azure_devops.api_version")
	cfg.AzureDevOps.Timeout = v.GetDuration("azure_devops.timeout")
	cfg.AzureDevOps.RequestsPerSecond = v.GetFloat64("azure_devops.requests_per_second")
	cfg.AzureDevOps.Burst = v.GetInt("azure_devops.burst")
	cfg.AzureDevOps.AuthMode = strings.ToLower(v.GetString("azure_devops.auth_mode"))
	cfg.AzureDevOps.PAT = v.GetString("azure_devops.pat")
	cfg.AzureDevOps.TenantID = v.GetString("azure_devops.tenant_id")
	cfg.AzureDevOps.ClientID = v.GetString("azure_devops.client_id")
	cfg.AzureDevOps.ClientSecret = v.GetString("azure_devops.client_secret")

	cfg.Dates.Timezone = v.GetString("dates.timezone")

	return cfg, nil
}

// Validate reports the first configuration problem that would prevent talking to Azure DevOps.
func (c *Config) Validate() error {
	ado := c.AzureDevOps
	if ado.OrganizationURL == "" {
		return errors.New("azure_devops.organization_url (AZDO_ORG) is required")
	}

	switch ado.AuthMode {
	case AuthModePAT:
		if ado.PAT == "" {
			return errors.New("azure_devops.pat (AZDO_PAT) is required when auth_mode is pat")
		}
	case AuthModeEntra:
		if ado.TenantID == "" || ado.ClientID == "" || ado.ClientSecret == "" {
			return errors.New("azure_devops tenant_id, client_id and client_secret are required when auth_mode is entra")
		}
	default:
		return fmt.Errorf("unknown azure_devops.auth_mode %q", ado.AuthMode)
	}

	if _, err := time.LoadLocation(c.Dates.Timezone); err != nil {
		return fmt.Errorf("invalid dates.timezone %q: %w", c.Dates.Timezone, err)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("mcp.name", "mcp-azuredevops")
	v.SetDefault("mcp.version", "1.0.0")
	v.SetDefault("mcp.instructions", "Azure DevOps tools. Date filters accept phrases like 'today', 'last week', 'last 30 days', 'this month', 'since 2025-01-01' or '2025-01-01 to 2025-01-31'.")

	v.SetDefault("azure_devops.api_version", "7.0")
	v.SetDefault("azure_devops.timeout", "30s")
	v.SetDefault("azure_devops.requests_per_second", 10)
	v.SetDefault("azure_devops.burst", 20)
	v.SetDefault("azure_devops.auth_mode", AuthModePAT)

	v.SetDefault("dates.timezone", "UTC")
}
