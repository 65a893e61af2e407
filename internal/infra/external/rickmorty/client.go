// Package rickmorty talks to the public Rick and Morty REST API.
package rickmorty

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"charview/internal/domain/catalog"
)

const (
	defaultBaseURL     = "https://rickandmortyapi.com/api"
	defaultUserAgent   = "charview-bot/1.0"
	defaultHTTPTimeout = 10 * time.Second
)

// ClientConfig represents knobs required to talk to the API.
type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	UserAgent  string
}

// Client is a thin read-only wrapper around the character and location
// endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

// NewClient wires a client with sane defaults.
func NewClient(cfg ClientConfig) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultHTTPTimeout,
		}
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

// HealthCheck issues a cheap request against the API root.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.do(ctx, c.baseURL)
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rickmorty: health check failed: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req) // #nosec G704
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// getJSON performs a GET and decodes a 2xx body into out. A 404 is
// reported as catalog.ErrNotFound so callers can treat it as an empty
// result.
func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	resp, err := c.do(ctx, url)
	if err != nil {
		return err
	}
	defer drainAndClose(resp.Body)

	if resp.StatusCode == http.StatusNotFound {
		return catalog.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("rickmorty: request failed: status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("rickmorty: failed to decode response: %w", err)
	}
	return nil
}

func drainAndClose(body io.ReadCloser) {
	_, _ = io.Copy(io.Discard, body)
	_ = body.Close()
}
