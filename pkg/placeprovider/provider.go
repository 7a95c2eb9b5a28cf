// Package placeprovider adapts the places and geocoding clients to a single
// Provider interface producing model.PlaceCandidate values.
package placeprovider

import (
	"context"
	"strings"

	"trip-planner/internal/model"
)

const (
	NamePlaces    = "google_places"
	NameGeocoding = "google_geocoding"
	NameNominatim = "nominatim"

	DefaultLimit = 5
)

// Query is one lookup. Destination biases the lookup when set.
type Query struct {
	Text        string
	Destination string
	Limit       int
}

// Provider looks up candidates for a query. An empty result with a nil error
// means the provider answered but found nothing.
type Provider interface {
	Name() string
	Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error)
}

func (q Query) limit() int {
	if q.Limit <= 0 {
		return DefaultLimit
	}
	return q.Limit
}

// biasedText appends the destination unless the text already mentions it.
func (q Query) biasedText() string {
	text := strings.TrimSpace(q.Text)
	dest := strings.TrimSpace(q.Destination)
	if dest == "" || strings.Contains(strings.ToLower(text), strings.ToLower(dest)) {
		return text
	}
	return text + ", " + dest
}
