package googleplaces

import "time"

const (
	DefaultAPIURL  = "https://places.googleapis.com"
	DefaultTimeout = 10 * time.Second

	// DefaultFieldMask requests only the fields the resolver maps.
	DefaultFieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
		"places.addressComponents,places.types,places.primaryType"

	MaxResultCount = 20
)
