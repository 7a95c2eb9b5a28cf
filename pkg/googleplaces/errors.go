package googleplaces

import (
	"errors"
	"fmt"
)

var ErrMissingAPIKey = errors.New("googleplaces: api key is not configured")

// APIError is a non-200 answer from the Places API.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("places API error %d %s: %s", e.StatusCode, e.Status, e.Message)
}

// HTTPStatus returns the upstream HTTP status.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
