package azdo_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"azure-devops-mcp/pkg/azdo"
)

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  azdo.Config
	}{
		{"missing organization", azdo.Config{PAT: "x"}},
		{"missing pat", azdo.Config{OrganizationURL: "https://dev.azure.com/org"}},
		{"incomplete entra", azdo.Config{OrganizationURL: "https://dev.azure.com/org", AuthMode: azdo.AuthModeEntra, ClientID: "id"}},
		{"unknown mode", azdo.Config{OrganizationURL: "https://dev.azure.com/org", AuthMode: "kerberos"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := azdo.NewClient(tt.cfg); err == nil {
				t.Errorf("expected error")
			}
		})
	}

	if _, err := azdo.NewClient(azdo.Config{OrganizationURL: "https://dev.azure.com/org", PAT: "x"}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestClient(t *testing.T) {
	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(":secret-pat"))

	mux := http.NewServeMux()
	mux.HandleFunc("/My%20Project/_apis/wit/wiql", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		var req azdo.WIQLRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Query == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(azdo.WIQLResult{WorkItems: []azdo.WorkItemLink{{ID: 1}, {ID: 2}}})
	})
	mux.HandleFunc("/_apis/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != wantAuth {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.URL.Query().Get("api-version") != "7.1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"count": 1, "value": []map[string]any{{"name": "Demo"}}})
	})
	mux.HandleFunc("/_apis/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"not here"}`))
	})
	mux.HandleFunc("/_apis/file", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("package main\n"))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	reg := prometheus.NewRegistry()
	client, err := azdo.NewClient(azdo.Config{
		OrganizationURL:   ts.URL + "/",
		APIVersion:        "7.1",
		PAT:               "secret-pat",
		RequestsPerSecond: 100,
		Burst:             10,
		Registerer:        reg,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if client.OrganizationURL() != ts.URL {
		t.Errorf("OrganizationURL() = %s, want trailing slash trimmed", client.OrganizationURL())
	}

	t.Run("GetJSON", func(t *testing.T) {
		var out azdo.ListResponse[map[string]any]
		if err := client.GetJSON(ctx, azdo.OrgPath("projects"), nil, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Value) != 1 || out.Value[0]["name"] != "Demo" {
			t.Errorf("unexpected list: %+v", out)
		}
	})

	t.Run("PostJSON with escaped project", func(t *testing.T) {
		var out azdo.WIQLResult
		err := client.PostJSON(ctx, azdo.ProjectPath("My Project", "wit/wiql"), nil, azdo.WIQLRequest{Query: "SELECT 1"}, &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.WorkItems) != 2 {
			t.Errorf("unexpected result: %+v", out)
		}
	})

	t.Run("GetText", func(t *testing.T) {
		text, err := client.GetText(ctx, azdo.OrgPath("file"), url.Values{"download": {"true"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(text, "package main") {
			t.Errorf("unexpected text: %q", text)
		}
	})

	t.Run("Non-2xx is APIError", func(t *testing.T) {
		var out map[string]any
		err := client.GetJSON(ctx, azdo.OrgPath("missing"), nil, &out)
		if err == nil {
			t.Fatalf("expected error")
		}
		var apiErr *azdo.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusNotFound {
			t.Errorf("expected 404 APIError, got %v", err)
		}
		if !azdo.IsNotFound(err) {
			t.Errorf("IsNotFound() = false")
		}
		if !strings.Contains(err.Error(), "not here") {
			t.Errorf("error should carry response body: %v", err)
		}
	})

	t.Run("Metrics recorded", func(t *testing.T) {
		n, err := testutil.GatherAndCount(reg, "azdo_requests_total")
		if err != nil {
			t.Fatalf("gather: %v", err)
		}
		if n == 0 {
			t.Errorf("expected azdo_requests_total series")
		}
	})

	t.Run("Server Down", func(t *testing.T) {
		bad, _ := azdo.NewClient(azdo.Config{OrganizationURL: "http://localhost:59999", PAT: "x"})
		var out map[string]any
		if err := bad.GetJSON(ctx, azdo.OrgPath("projects"), nil, &out); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}

func TestEntraAuth(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		if r.Form.Get("grant_type") != "client_credentials" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"entra-token","token_type":"Bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/_apis/projects", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer entra-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"count":0,"value":[]}`))
	})
	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := azdo.NewClient(azdo.Config{
		OrganizationURL: ts.URL,
		AuthMode:        azdo.AuthModeEntra,
		TenantID:        "tenant",
		ClientID:        "client",
		ClientSecret:    "secret",
		TokenURL:        ts.URL + "/token",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var out azdo.ListResponse[map[string]any]
	if err := client.GetJSON(context.Background(), azdo.OrgPath("projects"), nil, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
