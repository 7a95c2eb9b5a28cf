package http

import (
	"errors"
	"net/http"

	"trip-planner/internal/place"
	pkgErrors "trip-planner/pkg/errors"
)

var (
	errRateLimited         = pkgErrors.NewHTTPError(http.StatusTooManyRequests, place.ErrRateLimited.Error())
	errProviderRateLimited = pkgErrors.NewHTTPError(http.StatusTooManyRequests, "place provider is rate limited, try again shortly")
	errProviderUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, "place provider is unavailable")
	errNoProviders         = pkgErrors.NewHTTPError(http.StatusServiceUnavailable, place.ErrNoProviders.Error())
)

// mapError translates place errors into HTTP errors.
func (h *handler) mapError(err error) error {
	var pErr *place.PlaceSearchProviderError
	switch {
	case errors.Is(err, place.ErrEmptyName),
		errors.Is(err, place.ErrEmptyQuery),
		errors.Is(err, place.ErrNoNames),
		errors.Is(err, place.ErrTooManyNames):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, place.ErrRateLimited):
		return errRateLimited
	case errors.As(err, &pErr):
		if pErr.IsRateLimited() {
			return errProviderRateLimited
		}
		return errProviderUnavailable
	case errors.Is(err, place.ErrNoProviders):
		return errNoProviders
	default:
		return pkgErrors.ErrInternalServerError
	}
}
