package podchaser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/killallgit/podcast-gateway/internal/models"
)

const (
	DefaultAPIURL    = "https://api.podchaser.com/graphql"
	DefaultUserAgent = "PodcastGateway/1.0"

	// maxErrorBodyBytes bounds how much of a non-2xx body is kept for diagnostics
	maxErrorBodyBytes = 512
)

// Client handles communication with the Podchaser GraphQL API
type Client struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	userAgent  string
}

// Config holds configuration for the Podchaser client
type Config struct {
	APIURL    string
	APIKey    string
	UserAgent string
	// Timeout bounds a single upstream call; zero means no client-side limit
	Timeout time.Duration
	// HTTPClient replaces the default client when set (Timeout is then ignored)
	HTTPClient *http.Client
}

// NewClient creates a new Podchaser API client
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.Timeout,
		}
	}

	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}

	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		apiURL:     cfg.APIURL,
		apiKey:     cfg.APIKey,
		userAgent:  cfg.UserAgent,
	}
}

// Endpoint returns the upstream URL the client posts to
func (c *Client) Endpoint() string {
	return c.apiURL
}

// SearchPodcasts runs the fixed search document against the upstream API and
// returns data.podcasts.data exactly as received.
func (c *Client) SearchPodcasts(ctx context.Context, query string) ([]models.Podcast, error) {
	var resp SearchResponse
	if err := c.do(ctx, GraphQLRequest{
		Query:         searchPodcastsQuery,
		Variables:     map[string]interface{}{"query": query},
		OperationName: "searchPodcasts",
	}, &resp); err != nil {
		return nil, err
	}

	podcasts, ok := resp.Podcasts()
	if !ok {
		return nil, MissingFieldError{
			Path:           resultPath,
			UpstreamErrors: resp.errorMessages(),
		}
	}

	return podcasts, nil
}

// do posts a GraphQL request and decodes the response body into result
func (c *Client) do(ctx context.Context, gqlReq GraphQLRequest, result interface{}) error {
	payload, err := json.Marshal(gqlReq)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return TransportError{Endpoint: c.apiURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return UpstreamStatusError{
			Endpoint:   c.apiURL,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return MalformedBodyError{Err: err}
	}

	return nil
}
