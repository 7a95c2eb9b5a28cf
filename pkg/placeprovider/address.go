package placeprovider

import (
	"math"
	"slices"
	"strings"

	"trip-planner/internal/model"
)

var (
	cityTypes    = []string{"locality", "postal_town", "sublocality_level_1", "sublocality", "administrative_area_level_3"}
	regionTypes  = []string{"administrative_area_level_1"}
	countryTypes = []string{"country"}

	osmCityKeys    = []string{"city", "town", "village", "municipality", "hamlet", "suburb"}
	osmRegionKeys  = []string{"state", "region", "province", "state_district", "county"}
	osmCountryKeys = []string{"country"}
)

type typedComponent struct {
	name  string
	types []string
}

func decomposeTyped(components []typedComponent) *model.AddressComponents {
	pick := func(wanted []string) *string {
		for _, w := range wanted {
			for _, c := range components {
				if c.name != "" && slices.Contains(c.types, w) {
					return optional(c.name)
				}
			}
		}
		return nil
	}
	return newAddress(pick(cityTypes), pick(regionTypes), pick(countryTypes))
}

func decomposeOSM(address map[string]string) *model.AddressComponents {
	pick := func(keys []string) *string {
		for _, k := range keys {
			if v := optional(address[k]); v != nil {
				return v
			}
		}
		return nil
	}
	return newAddress(pick(osmCityKeys), pick(osmRegionKeys), pick(osmCountryKeys))
}

func newAddress(city, region, country *string) *model.AddressComponents {
	if city == nil && region == nil && country == nil {
		return nil
	}
	return &model.AddressComponents{City: city, Region: region, Country: country}
}

func validCoords(lat, lng float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return false
	}
	return math.Abs(lat) <= 90 && math.Abs(lng) <= 180
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// leadingSegment returns the text before the first comma.
func leadingSegment(s string) string {
	head, _, _ := strings.Cut(s, ",")
	return strings.TrimSpace(head)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
