package geocoding

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrMissingAPIKey = errors.New("geocoding: api key is not configured")

// APIError is a failed geocoding answer, either a non-200 response or a
// non-OK status in the body.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("geocoding API error %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// HTTPStatus maps the API status to an HTTP status.
func (e *APIError) HTTPStatus() int {
	switch e.Status {
	case StatusOverQueryLimit, StatusOverDailyLimit:
		return http.StatusTooManyRequests
	case StatusRequestDenied:
		return http.StatusForbidden
	case StatusInvalidRequest:
		return http.StatusBadRequest
	}
	if e.StatusCode != 0 && e.StatusCode != http.StatusOK {
		return e.StatusCode
	}
	return http.StatusBadGateway
}
