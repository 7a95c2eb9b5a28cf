package nominatim

import "time"

const (
	DefaultAPIURL    = "https://nominatim.openstreetmap.org"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "trip-planner/1.0"

	// DefaultMinInterval keeps requests under the public instance's
	// one-request-per-second policy.
	DefaultMinInterval = 1100 * time.Millisecond

	DefaultLimit = 5
	MaxLimit     = 40
)
