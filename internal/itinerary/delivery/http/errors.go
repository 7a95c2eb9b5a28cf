package http

import (
	"errors"
	"net/http"

	"trip-planner/internal/itinerary"
	pkgErrors "trip-planner/pkg/errors"
)

var (
	errProviderRateLimited = pkgErrors.NewHTTPError(http.StatusTooManyRequests, itinerary.ErrProviderRateLimited.Error())
	errProviderUnavailable = pkgErrors.NewHTTPError(http.StatusBadGateway, itinerary.ErrProviderUnavailable.Error())
	errUnreadableResponse  = pkgErrors.NewHTTPError(http.StatusBadGateway, itinerary.ErrUnreadableResponse.Error())
)

// mapError translates itinerary errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, itinerary.ErrEmptyText),
		errors.Is(err, itinerary.ErrInvalidStartDate),
		errors.Is(err, itinerary.ErrNoImages),
		errors.Is(err, itinerary.ErrTooManyImages),
		errors.Is(err, itinerary.ErrInvalidURL),
		errors.Is(err, itinerary.ErrNoDays):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, itinerary.ErrTextTooLong),
		errors.Is(err, itinerary.ErrImageTooLarge):
		return pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, err.Error())
	case errors.Is(err, itinerary.ErrUnsupportedImage),
		errors.Is(err, itinerary.ErrUnsupportedPage):
		return pkgErrors.NewHTTPError(http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, itinerary.ErrNoTextFound):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, itinerary.ErrProviderRateLimited):
		return errProviderRateLimited
	case errors.Is(err, itinerary.ErrProviderUnavailable):
		return errProviderUnavailable
	case errors.Is(err, itinerary.ErrUnreadableResponse):
		return errUnreadableResponse
	case errors.Is(err, itinerary.ErrAINotConfigured),
		errors.Is(err, itinerary.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
