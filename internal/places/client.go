package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://places-api.foursquare.com"

	// apiVersion is the pinned value the X-Places-Api-Version header must carry.
	apiVersion = "2025-06-17"
)

// ErrSearchFailed is the matchable root of every transport or HTTP failure
// of the search call. Failures are never swallowed here.
var ErrSearchFailed = errors.New("places: search failed")

// httpClient is used for all search requests; the 30s timeout guards against
// stalled connections while context cancellation is still honoured via
// NewRequestWithContext.
var httpClient = &http.Client{Timeout: 30 * time.Second}

// Client is a thin wrapper over the places-search endpoint. No retries, no
// pagination, no caching.
type Client struct {
	apiKey  string
	baseURL string
	log     zerolog.Logger
}

// NewClient creates a Client. baseURL may be empty to use the production
// endpoint; tests point it at a local server.
func NewClient(apiKey, baseURL string, log zerolog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		log:     log.With().Str("component", "places").Logger(),
	}
}

// Search issues one GET against the search endpoint and returns the raw
// results list. Any failure is logged once and returned to the caller.
func (c *Client) Search(ctx context.Context, req SearchRequest) ([]Place, error) {
	q := url.Values{}
	q.Set("query", req.Query)
	q.Set("near", req.Near)
	q.Set("limit", strconv.Itoa(req.Limit))
	q.Set("sort", req.Sort)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/places/search?"+q.Encode(), nil)
	if err != nil {
		return nil, c.fail(req, "build request", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("X-Places-Api-Version", apiVersion)
	httpReq.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(httpReq)
	if err != nil {
		return nil, c.fail(req, "do request", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, c.fail(req, "response status", fmt.Errorf("%d: %s", resp.StatusCode, body))
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, c.fail(req, "decode response", err)
	}
	return sr.Results, nil
}

// fail logs the error once and wraps it with the matchable sentinel.
func (c *Client) fail(req SearchRequest, step string, err error) error {
	wrapped := fmt.Errorf("%w: query %q near %q: %s: %v", ErrSearchFailed, req.Query, req.Near, step, err)
	c.log.Error().Err(wrapped).Msg("search request failed")
	return wrapped
}
