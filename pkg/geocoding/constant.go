package geocoding

import "time"

const (
	DefaultAPIURL  = "https://maps.googleapis.com"
	DefaultTimeout = 10 * time.Second

	StatusOK             = "OK"
	StatusZeroResults    = "ZERO_RESULTS"
	StatusOverQueryLimit = "OVER_QUERY_LIMIT"
	StatusOverDailyLimit = "OVER_DAILY_LIMIT"
	StatusRequestDenied  = "REQUEST_DENIED"
	StatusInvalidRequest = "INVALID_REQUEST"
	StatusUnknownError   = "UNKNOWN_ERROR"
)
