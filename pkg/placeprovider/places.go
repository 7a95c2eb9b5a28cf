package placeprovider

import (
	"context"

	"trip-planner/internal/model"
	"trip-planner/pkg/googleplaces"
)

type placesProvider struct {
	client *googleplaces.Client
}

// NewPlaces adapts a Places API client.
func NewPlaces(client *googleplaces.Client) Provider {
	return &placesProvider{client: client}
}

func (p *placesProvider) Name() string { return NamePlaces }

func (p *placesProvider) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	places, err := p.client.SearchText(ctx, googleplaces.SearchTextRequest{
		TextQuery:      q.biasedText(),
		MaxResultCount: q.limit(),
	})
	if err != nil {
		return nil, wrapError(NamePlaces, err)
	}
	return FromPlaces(places), nil
}

// FromPlaces maps Places API results. Entries without usable coordinates are dropped.
func FromPlaces(places []googleplaces.Place) []model.PlaceCandidate {
	out := make([]model.PlaceCandidate, 0, len(places))
	for _, p := range places {
		if p.Location == nil || !validCoords(p.Location.Latitude, p.Location.Longitude) {
			continue
		}
		lat, lng := p.Location.Latitude, p.Location.Longitude

		var display string
		if p.DisplayName != nil {
			display = p.DisplayName.Text
		}

		components := make([]typedComponent, 0, len(p.AddressComponents))
		for _, c := range p.AddressComponents {
			components = append(components, typedComponent{name: c.LongText, types: c.Types})
		}

		var firstType string
		if len(p.Types) > 0 {
			firstType = p.Types[0]
		}

		out = append(out, model.PlaceCandidate{
			Name:              firstNonEmpty(display, leadingSegment(p.FormattedAddress)),
			Resolved:          true,
			DisplayName:       optional(display),
			PlaceID:           optional(p.ID),
			FormattedAddress:  optional(p.FormattedAddress),
			AddressComponents: decomposeTyped(components),
			Lat:               &lat,
			Lng:               &lng,
			Category:          optional(firstNonEmpty(p.PrimaryType, firstType)),
			Source:            model.PlaceSourcePlaces,
		})
	}
	return out
}
