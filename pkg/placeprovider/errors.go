package placeprovider

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

// PlaceSearchProviderError is a failed provider call with the upstream HTTP status.
type PlaceSearchProviderError struct {
	Provider string
	Status   int
	Err      error
}

func (e *PlaceSearchProviderError) Error() string {
	return fmt.Sprintf("%s: provider error (status %d): %v", e.Provider, e.Status, e.Err)
}

func (e *PlaceSearchProviderError) Unwrap() error {
	return e.Err
}

// IsRateLimited reports whether the provider answered 429.
func (e *PlaceSearchProviderError) IsRateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}

// wrapError tags err with the provider name. Errors without an HTTP status
// are reported as 502. Context errors pass through unchanged.
func wrapError(provider string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	status := http.StatusBadGateway
	var withStatus interface{ HTTPStatus() int }
	if errors.As(err, &withStatus) {
		status = withStatus.HTTPStatus()
	}
	return &PlaceSearchProviderError{Provider: provider, Status: status, Err: err}
}
