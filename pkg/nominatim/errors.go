package nominatim

import "fmt"

// APIError is a non-200 answer from Nominatim.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("nominatim error %d: %s", e.StatusCode, e.Body)
}

// HTTPStatus returns the upstream HTTP status.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}
