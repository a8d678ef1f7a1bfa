package azdo

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultAPIVersion = "7.0"
	DefaultTimeout    = 30 * time.Second

	AuthModePAT   = "pat"
	AuthModeEntra = "entra"

	// azureDevOpsScope is the resource ID of Azure DevOps in Entra ID.
	azureDevOpsScope = "499b84ac-1321-427f-aa17-267ca6975798/.default"
	entraTokenURL    = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
)

// Config configures the Azure DevOps REST client.
type Config struct {
	OrganizationURL string // e.g. https://dev.azure.com/contoso
	APIVersion      string
	Timeout         time.Duration

	AuthMode     string // "pat" (default) or "entra"
	PAT          string
	TenantID     string
	ClientID     string
	ClientSecret string

	// Outbound pacing. RequestsPerSecond <= 0 disables it.
	RequestsPerSecond float64
	Burst             int

	// Registerer receives the client metrics. A private registry is used when nil.
	Registerer prometheus.Registerer

	// HTTPClient overrides the transport (tests). Auth is still applied on top of it.
	HTTPClient *http.Client

	// TokenURL overrides the Entra ID token endpoint (tests).
	TokenURL string
}

// ListResponse is the envelope Azure DevOps wraps collections in.
type ListResponse[T any] struct {
	Count int `json:"count"`
	Value []T `json:"value"`
}

// WIQLResult is the body returned by POST _apis/wit/wiql.
type WIQLResult struct {
	QueryType string         `json:"queryType"`
	WorkItems []WorkItemLink `json:"workItems"`
}

// WorkItemLink is a bare work item reference inside a WIQL result.
type WorkItemLink struct {
	ID  int    `json:"id"`
	URL string `json:"url"`
}

// WIQLRequest is the body for POST _apis/wit/wiql.
type WIQLRequest struct {
	Query string `json:"query"`
}
