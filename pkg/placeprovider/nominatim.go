package placeprovider

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"trip-planner/internal/model"
	"trip-planner/pkg/nominatim"
)

type nominatimProvider struct {
	client *nominatim.Client
}

// NewNominatim adapts a Nominatim client.
func NewNominatim(client *nominatim.Client) Provider {
	return &nominatimProvider{client: client}
}

func (p *nominatimProvider) Name() string { return NameNominatim }

func (p *nominatimProvider) Search(ctx context.Context, q Query) ([]model.PlaceCandidate, error) {
	results, err := p.client.Search(ctx, q.biasedText(), q.limit())
	if err != nil {
		return nil, wrapError(NameNominatim, err)
	}
	return FromNominatim(results), nil
}

// FromNominatim maps Nominatim results. Coordinates arrive as strings; entries
// whose coordinates do not parse are dropped.
func FromNominatim(results []nominatim.Result) []model.PlaceCandidate {
	out := make([]model.PlaceCandidate, 0, len(results))
	for _, r := range results {
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(r.Lat), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(r.Lon), 64)
		if errLat != nil || errLng != nil || !validCoords(lat, lng) {
			continue
		}

		display := firstNonEmpty(r.Name, leadingSegment(r.DisplayName))

		var placeID string
		switch {
		case r.OSMType != "" && r.OSMID != 0:
			placeID = fmt.Sprintf("osm:%s/%d", r.OSMType, r.OSMID)
		case r.PlaceID != 0:
			placeID = strconv.FormatInt(r.PlaceID, 10)
		}

		category := r.Type
		if category == "" || category == "yes" {
			category = r.Category
		}

		out = append(out, model.PlaceCandidate{
			Name:              display,
			Resolved:          true,
			DisplayName:       optional(display),
			PlaceID:           optional(placeID),
			FormattedAddress:  optional(r.DisplayName),
			AddressComponents: decomposeOSM(r.Address),
			Lat:               &lat,
			Lng:               &lng,
			Category:          optional(category),
			Source:            model.PlaceSourceGeocoding,
		})
	}
	return out
}
