package model

// PlaceSource identifies which provider produced a PlaceCandidate.
type PlaceSource string

const (
	PlaceSourcePlaces    PlaceSource = "places"
	PlaceSourceGeocoding PlaceSource = "geocoding"
	PlaceSourceNone      PlaceSource = "none"
)

// Confidence grades how sure the resolver is about a match.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// AddressComponents is the city/region/country decomposition of an address.
type AddressComponents struct {
	City    *string `json:"city"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}

// PlaceCandidate is the provider-independent resolution of a place name.
// When Resolved is false every geo field is nil.
type PlaceCandidate struct {
	Name              string             `json:"name"`
	Resolved          bool               `json:"resolved"`
	DisplayName       *string            `json:"displayName"`
	PlaceID           *string            `json:"placeId"`
	FormattedAddress  *string            `json:"formattedAddress"`
	AddressComponents *AddressComponents `json:"addressComponents"`
	Lat               *float64           `json:"lat"`
	Lng               *float64           `json:"lng"`
	Category          *string            `json:"category"`
	BestGuess         bool               `json:"bestGuess"`
	Confidence        Confidence         `json:"confidence,omitempty"`
	Source            PlaceSource        `json:"source"`
}

// Unresolved returns the candidate reported when no provider matched name.
func Unresolved(name string) PlaceCandidate {
	return PlaceCandidate{Name: name, Source: PlaceSourceNone}
}

// BatchStatus is the overall outcome of a multi-item operation.
type BatchStatus string

const (
	BatchStatusReady   BatchStatus = "ready"
	BatchStatusPartial BatchStatus = "partial"
	BatchStatusFailed  BatchStatus = "failed"
)

// NewBatchStatus derives the batch status from per-item counts.
func NewBatchStatus(succeeded, failed int) BatchStatus {
	switch {
	case succeeded > 0 && failed == 0:
		return BatchStatusReady
	case succeeded > 0:
		return BatchStatusPartial
	default:
		return BatchStatusFailed
	}
}
