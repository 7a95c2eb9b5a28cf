// Package nominatim is a client for the OpenStreetMap Nominatim search API.
// Calls through one Client are serialized and spaced apart.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"trip-planner/pkg/ratelimit"
)

// Client calls /search.
type Client struct {
	apiURL     string
	userAgent  string
	email      string
	language   string
	spacer     *ratelimit.Spacer
	httpClient *http.Client
}

// NewClient creates a client identifying itself with userAgent.
func NewClient(userAgent string) *Client {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		apiURL:     DefaultAPIURL,
		userAgent:  userAgent,
		spacer:     ratelimit.NewSpacer(DefaultMinInterval),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API base URL. Used in tests and for self-hosted instances.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetEmail sets the contact address sent with each request.
func (c *Client) SetEmail(email string) {
	c.email = email
}

// SetLanguage sets the Accept-Language header.
func (c *Client) SetLanguage(lang string) {
	c.language = lang
}

// SetMinInterval replaces the spacing between consecutive requests.
func (c *Client) SetMinInterval(d time.Duration) {
	c.spacer = ratelimit.NewSpacer(d)
}

// SetTimeout overrides the HTTP timeout. Non-positive values are ignored.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// Search runs a free-form query. It waits for the spacing interval first and
// returns ctx.Err() if ctx ends while waiting.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")
	if c.email != "" {
		params.Set("email", c.email)
	}

	var results []Result
	err := c.spacer.Do(ctx, func(ctx context.Context) error {
		var err error
		results, err = c.search(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) search(ctx context.Context, params url.Values) ([]Result, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", c.userAgent)
	if c.language != "" {
		httpReq.Header.Set("Accept-Language", c.language)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	results := []Result{}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("failed to decode nominatim response: %w", err)
	}
	return results, nil
}
