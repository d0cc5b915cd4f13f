package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/octobees/huntflow/api/internal/entity"
)

// Searcher fetches leads from the external scraping backend.
type Searcher interface {
	Search(ctx context.Context, keyword, location string) ([]entity.Lead, error)
}

// Client issues search requests against the configured backend. Any transport
// failure, non-2xx status or decode error is surfaced as a single error; there
// is no retry and no caching. Input validation is the caller's job.
type Client struct {
	client  *http.Client
	baseURL string
}

// NewClient builds a search client, auto-configuring an ID token client when
// running service-to-service and no explicit client is given.
func NewClient(client *http.Client, baseURL string) *Client {
	if baseURL == "" {
		panic("baseURL must not be empty")
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if client == nil {
		idc, err := idtoken.NewClient(context.Background(), baseURL)
		if err != nil {
			client = &http.Client{Timeout: 15 * time.Second}
		} else {
			client = idc
		}
	}
	return &Client{client: client, baseURL: baseURL}
}

// Search performs GET <base>/search?keyword=<k>&location=<l> and decodes the
// JSON array of leads verbatim.
func (c *Client) Search(ctx context.Context, keyword, location string) ([]entity.Lead, error) {
	q := url.Values{}
	q.Set("keyword", keyword)
	q.Set("location", location)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create search request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("search backend returned status %d", resp.StatusCode)
	}

	var leads []entity.Lead
	if err := json.NewDecoder(resp.Body).Decode(&leads); err != nil {
		return nil, fmt.Errorf("could not decode search response: %w", err)
	}
	return leads, nil
}

var _ Searcher = (*Client)(nil)
