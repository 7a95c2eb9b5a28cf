// Package geocoding is a minimal client for the Google Geocoding API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client calls /maps/api/geocode/json.
type Client struct {
	apiKey     string
	apiURL     string
	language   string
	httpClient *http.Client
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API base URL. Used in tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetLanguage sets the result language.
func (c *Client) SetLanguage(lang string) {
	c.language = lang
}

// SetTimeout overrides the HTTP timeout. Non-positive values are ignored.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// Geocode resolves a free-text address. ZERO_RESULTS yields an empty slice
// and a nil error; every other non-OK status is an *APIError.
func (c *Client) Geocode(ctx context.Context, address string) ([]Result, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	if c.language != "" {
		params.Set("language", c.language)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/maps/api/geocode/json?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call geocoding API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
	}

	var result Response
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	switch result.Status {
	case StatusOK:
		return result.Results, nil
	case StatusZeroResults:
		return []Result{}, nil
	default:
		return nil, &APIError{StatusCode: resp.StatusCode, Status: result.Status, Message: result.ErrorMessage}
	}
}
