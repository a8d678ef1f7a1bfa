package azdo

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// patTransport adds Basic authentication with an empty user name, which is how
// Azure DevOps accepts personal access tokens.
type patTransport struct {
	token string
	base  http.RoundTripper
}

func (t *patTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Basic "+t.token)
	return t.base.RoundTrip(clone)
}

func encodePAT(pat string) string {
	return base64.StdEncoding.EncodeToString([]byte(":" + pat))
}

// newAuthenticatedClient wraps base with PAT or Entra ID client-credentials auth.
func newAuthenticatedClient(cfg Config, base *http.Client) (*http.Client, error) {
	switch cfg.AuthMode {
	case "", AuthModePAT:
		if cfg.PAT == "" {
			return nil, errors.New("azure devops personal access token is required")
		}
		transport := base.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		return &http.Client{
			Timeout:   base.Timeout,
			Transport: &patTransport{token: encodePAT(cfg.PAT), base: transport},
		}, nil

	case AuthModeEntra:
		if cfg.TenantID == "" || cfg.ClientID == "" || cfg.ClientSecret == "" {
			return nil, errors.New("entra auth requires tenant id, client id and client secret")
		}
		tokenURL := cfg.TokenURL
		if tokenURL == "" {
			tokenURL = fmt.Sprintf(entraTokenURL, cfg.TenantID)
		}
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     tokenURL,
			Scopes:       []string{azureDevOpsScope},
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
		client := cc.Client(ctx)
		client.Timeout = base.Timeout
		return client, nil
	}

	return nil, fmt.Errorf("unknown azure devops auth mode %q", cfg.AuthMode)
}
