package azdo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// Client is the HTTP wrapper for the Azure DevOps REST API.
type Client struct {
	baseURL    string
	apiVersion string
	httpClient *http.Client
	limiter    *rate.Limiter
	metrics    *metrics
}

// NewClient creates a new Azure DevOps HTTP client.
func NewClient(cfg Config) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.OrganizationURL), "/")
	if baseURL == "" {
		return nil, ErrMissingOrganization
	}

	apiVersion := cfg.APIVersion
	if apiVersion == "" {
		apiVersion = DefaultAPIVersion
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	if base.Timeout == 0 {
		base = &http.Client{Transport: base.Transport, Timeout: timeout}
	}

	httpClient, err := newAuthenticatedClient(cfg, base)
	if err != nil {
		return nil, err
	}

	limit := rate.Inf
	burst := cfg.Burst
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
		if burst <= 0 {
			burst = 1
		}
	}

	return &Client{
		baseURL:    baseURL,
		apiVersion: apiVersion,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, burst),
		metrics:    newMetrics(cfg.Registerer),
	}, nil
}

// OrganizationURL returns the organization base URL without a trailing slash.
func (c *Client) OrganizationURL() string {
	return c.baseURL
}

// GetJSON issues a GET and decodes the JSON response into out.
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out any) error {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode azure devops GET %s response: %w", path, err)
	}
	return nil
}

// PostJSON issues a POST with a JSON body and decodes the JSON response into out.
func (c *Client) PostJSON(ctx context.Context, path string, query url.Values, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal azure devops POST %s request: %w", path, err)
	}

	raw, err := c.do(ctx, http.MethodPost, path, query, payload)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode azure devops POST %s response: %w", path, err)
	}
	return nil
}

// GetText issues a GET and returns the raw body (file downloads).
func (c *Client) GetText(ctx context.Context, path string, query url.Values) (string, error) {
	raw, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body []byte) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("azure devops rate limiter: %w", err)
	}

	endpoint := c.buildURL(path, query)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build azure devops %s request: %w", method, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	c.metrics.requestDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.requestsTotal.WithLabelValues(method, "error").Inc()
		return nil, fmt.Errorf("failed to call azure devops %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	c.metrics.requestsTotal.WithLabelValues(method, strconv.Itoa(resp.StatusCode)).Inc()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read azure devops %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Method:     method,
			URL:        endpoint,
			Body:       string(raw),
		}
	}
	return raw, nil
}

func (c *Client) buildURL(path string, query url.Values) string {
	q := url.Values{}
	for k, v := range query {
		q[k] = v
	}
	q.Set("api-version", c.apiVersion)

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path + "?" + q.Encode()
}

// ProjectPath builds "/{project}/_apis/..." with the project segment escaped.
func ProjectPath(project, rest string) string {
	return "/" + url.PathEscape(project) + "/_apis/" + strings.TrimLeft(rest, "/")
}

// OrgPath builds "/_apis/..." for organization scoped endpoints.
func OrgPath(rest string) string {
	return "/_apis/" + strings.TrimLeft(rest, "/")
}
