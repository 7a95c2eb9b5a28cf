package placeprovider

import (
	"context"

	"trip-planner/internal/model"
	"trip-planner/pkg/geocoding"
)

type geocodingProvider struct {
	client *geocoding.Client
}

// NewGeocoding adapts a Geocoding API client.
func NewGeocoding(client *geocoding.Client) Provider {
	return &geocodingProvider{client: client}
}

func (p *geocodingProvider) Name() string { return NameGeocoding }

func (p *geocodingProvider) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	results, err := p.client.Geocode(ctx, q.biasedText())
	if err != nil {
		return nil, wrapError(NameGeocoding, err)
	}
	candidates := FromGeocoding(results)
	if len(candidates) > q.limit() {
		candidates = candidates[:q.limit()]
	}
	return candidates, nil
}

// FromGeocoding maps Geocoding API results. Entries without usable coordinates are dropped.
func FromGeocoding(results []geocoding.Result) []model.PlaceCandidate {
	out := make([]model.PlaceCandidate, 0, len(results))
	for _, r := range results {
		lat, lng := r.Geometry.Location.Lat, r.Geometry.Location.Lng
		if !validCoords(lat, lng) {
			continue
		}

		components := make([]typedComponent, 0, len(r.AddressComponents))
		for _, c := range r.AddressComponents {
			components = append(components, typedComponent{name: c.LongName, types: c.Types})
		}

		var firstComponent, firstType string
		if len(r.AddressComponents) > 0 {
			firstComponent = r.AddressComponents[0].LongName
		}
		if len(r.Types) > 0 {
			firstType = r.Types[0]
		}
		display := firstNonEmpty(leadingSegment(r.FormattedAddress), firstComponent)

		out = append(out, model.PlaceCandidate{
			Name:              display,
			Resolved:          true,
			DisplayName:       optional(display),
			PlaceID:           optional(r.PlaceID),
			FormattedAddress:  optional(r.FormattedAddress),
			AddressComponents: decomposeTyped(components),
			Lat:               &lat,
			Lng:               &lng,
			Category:          optional(firstType),
			Source:            model.PlaceSourceGeocoding,
		})
	}
	return out
}
