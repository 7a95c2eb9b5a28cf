package webtext

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxBytes  = 2 << 20
	DefaultMaxChars  = 30000
	DefaultUserAgent = "Mozilla/5.0 (compatible; trip-planner/1.0)"
)

var (
	ErrUnsupportedScheme  = errors.New("only http and https URLs are supported")
	ErrUnsupportedContent = errors.New("page is not HTML or plain text")
)

// StatusError is a non-2xx answer from the fetched site.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("page returned status %d", e.StatusCode)
}

// Fetcher downloads pages with a size cap.
type Fetcher struct {
	httpClient *http.Client
	maxBytes   int64
	maxChars   int
	userAgent  string
}

// NewFetcher creates a Fetcher. Non-positive values use the package defaults.
func NewFetcher(timeout time.Duration, maxBytes int64, maxChars int) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Fetcher{
		httpClient: &http.Client{Timeout: timeout},
		maxBytes:   maxBytes,
		maxChars:   maxChars,
		userAgent:  DefaultUserAgent,
	}
}

// ValidateURL checks that raw is an absolute http(s) URL.
func ValidateURL(raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrUnsupportedScheme
	}
	return u, nil
}

// Fetch downloads rawURL and extracts its readable text. Plain-text pages are
// returned as-is.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (Page, error) {
	u, err := ValidateURL(rawURL)
	if err != nil {
		return Page{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return Page{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,text/plain;q=0.8")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return Page{}, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Page{}, &StatusError{StatusCode: resp.StatusCode}
	}

	body := io.LimitReader(resp.Body, f.maxBytes)
	mediaType, _, _ := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	switch {
	case mediaType == "" || mediaType == "text/html" || mediaType == "application/xhtml+xml":
		return Extract(body, f.maxChars)
	case mediaType == "text/plain":
		raw, err := io.ReadAll(body)
		if err != nil {
			return Page{}, fmt.Errorf("failed to read page: %w", err)
		}
		text := []rune(tidy(string(raw)))
		if len(text) > f.maxChars {
			text = text[:f.maxChars]
		}
		return Page{Text: string(text)}, nil
	default:
		return Page{}, ErrUnsupportedContent
	}
}
