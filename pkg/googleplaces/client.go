// Package googleplaces is a minimal client for the Google Places API (New) text search.
package googleplaces

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client calls places:searchText.
type Client struct {
	apiKey       string
	apiURL       string
	fieldMask    string
	languageCode string
	regionCode   string
	httpClient   *http.Client
}

// NewClient creates a client for the given API key.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiURL:     DefaultAPIURL,
		fieldMask:  DefaultFieldMask,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// SetAPIURL overrides the API base URL. Used in tests.
func (c *Client) SetAPIURL(url string) {
	c.apiURL = url
}

// SetLocale sets the default language and region applied to requests that
// leave them empty.
func (c *Client) SetLocale(languageCode, regionCode string) {
	c.languageCode = languageCode
	c.regionCode = regionCode
}

// SetTimeout overrides the HTTP timeout. Non-positive values are ignored.
func (c *Client) SetTimeout(d time.Duration) {
	if d > 0 {
		c.httpClient.Timeout = d
	}
}

// SearchText runs a free-text place search. Non-200 responses are returned as *APIError.
func (c *Client) SearchText(ctx context.Context, req SearchTextRequest) ([]Place, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	if req.MaxResultCount <= 0 || req.MaxResultCount > MaxResultCount {
		req.MaxResultCount = MaxResultCount
	}
	if req.LanguageCode == "" {
		req.LanguageCode = c.languageCode
	}
	if req.RegionCode == "" {
		req.RegionCode = c.regionCode
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/v1/places:searchText", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Goog-Api-Key", c.apiKey)
	httpReq.Header.Set("X-Goog-FieldMask", c.fieldMask)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to call places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(raw)}
		var env errorEnvelope
		if json.Unmarshal(raw, &env) == nil && env.Error.Message != "" {
			apiErr.Status = env.Error.Status
			apiErr.Message = env.Error.Message
		}
		return nil, apiErr
	}

	var result SearchTextResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}
	return result.Places, nil
}
