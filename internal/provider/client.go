// Package provider implements the client for the external news search
// API (newsdata.io wire format).
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Article is one raw candidate as returned by the provider. Candidates
// without a title or image are not eligible for storage.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Link        string `json:"link"`
	SourceID    string `json:"source_id"`
	PubDate     string `json:"pubDate"`
}

// PublishedAt parses the provider's publish timestamp. The second
// return value is false when the timestamp is absent or unparseable;
// callers then fall back to ingestion time.
func (a Article) PublishedAt() (time.Time, bool) {
	if a.PubDate == "" {
		return time.Time{}, false
	}
	layouts := []string{
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, a.PubDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// UpstreamError describes a failed provider call: transport failure,
// non-2xx status, or a malformed payload.
type UpstreamError struct {
	StatusCode int
	Reason     string
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("news provider returned status %d: %s", e.StatusCode, e.Reason)
	}
	return fmt.Sprintf("news provider call failed: %s", e.Reason)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type searchResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Results      []Article `json:"results"`
}

// Client talks to the external news search API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a reusable provider client with a bounded timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: timeout},
	}
}

// Configured reports whether a provider credential is present. When it
// is not, Fetch must never be attempted.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// Fetch runs one search against the provider and returns the raw
// candidate articles. Failures come back as *UpstreamError.
func (c *Client) Fetch(ctx context.Context, query string) ([]Article, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", query)
	params.Set("language", "en")

	endpoint := fmt.Sprintf("%s/api/1/news?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &UpstreamError{Reason: "build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &UpstreamError{Reason: "request failed", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Reason: http.StatusText(resp.StatusCode)}
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &UpstreamError{Reason: "decode response", Err: err}
	}

	if payload.Status != "" && payload.Status != "success" {
		return nil, &UpstreamError{Reason: fmt.Sprintf("provider status %q", payload.Status)}
	}

	return payload.Results, nil
}
