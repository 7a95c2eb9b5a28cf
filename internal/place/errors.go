package place

import (
	"errors"

	"trip-planner/pkg/placeprovider"
)

var (
	ErrEmptyName    = errors.New("place name is empty")
	ErrEmptyQuery   = errors.New("search query is empty")
	ErrNoNames      = errors.New("no place names provided")
	ErrTooManyNames = errors.New("too many place names")
	ErrRateLimited  = errors.New("too many search requests, try again shortly")
	ErrNoProviders  = errors.New("no place provider configured")
)

// PlaceSearchProviderError is a provider failure carrying the upstream HTTP status.
type PlaceSearchProviderError = placeprovider.PlaceSearchProviderError

// IsRateLimited reports whether err is, or wraps, an upstream 429.
func IsRateLimited(err error) bool {
	var pErr *PlaceSearchProviderError
	return errors.As(err, &pErr) && pErr.IsRateLimited()
}
