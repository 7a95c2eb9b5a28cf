package placeprovider_test

import (
	"math"
	"testing"

	"trip-planner/internal/model"
	"trip-planner/pkg/geocoding"
	"trip-planner/pkg/googleplaces"
	"trip-planner/pkg/nominatim"
	"trip-planner/pkg/placeprovider"
)

func deref(s *string) string {
	if s == nil {
		return "<nil>"
	}
	return *s
}

func TestFromPlaces(t *testing.T) {
	places := []googleplaces.Place{
		{
			ID:               "ChIJ4zGFAZpYwokRGUGph3Mf37k",
			DisplayName:      &googleplaces.LocalizedText{Text: "Central Park"},
			FormattedAddress: "New York, NY, USA",
			Location:         &googleplaces.LatLng{Latitude: 40.7825547, Longitude: -73.9655834},
			AddressComponents: []googleplaces.AddressComponent{
				{LongText: "Manhattan", Types: []string{"sublocality_level_1", "sublocality"}},
				{LongText: "New York", Types: []string{"locality", "political"}},
				{LongText: "New York", ShortText: "NY", Types: []string{"administrative_area_level_1"}},
				{LongText: "United States", ShortText: "US", Types: []string{"country"}},
			},
			Types:       []string{"park", "tourist_attraction"},
			PrimaryType: "park",
		},
		{ID: "no-location", DisplayName: &googleplaces.LocalizedText{Text: "Nowhere"}},
		{ID: "bad", Location: &googleplaces.LatLng{Latitude: math.NaN(), Longitude: 1}},
	}

	got := placeprovider.FromPlaces(places)
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	c := got[0]
	if !c.Resolved || c.Source != model.PlaceSourcePlaces {
		t.Errorf("unexpected resolved/source: %v %v", c.Resolved, c.Source)
	}
	if c.Name != "Central Park" || deref(c.DisplayName) != "Central Park" {
		t.Errorf("unexpected name %q / %q", c.Name, deref(c.DisplayName))
	}
	if c.Lat == nil || *c.Lat != 40.7825547 || c.Lng == nil || *c.Lng != -73.9655834 {
		t.Errorf("unexpected coords %v %v", c.Lat, c.Lng)
	}
	if c.AddressComponents == nil {
		t.Fatal("expected address components")
	}
	if deref(c.AddressComponents.City) != "New York" {
		t.Errorf("locality should win over sublocality, got %q", deref(c.AddressComponents.City))
	}
	if deref(c.AddressComponents.Region) != "New York" || deref(c.AddressComponents.Country) != "United States" {
		t.Errorf("unexpected address %+v", c.AddressComponents)
	}
	if deref(c.Category) != "park" {
		t.Errorf("unexpected category %q", deref(c.Category))
	}
}

func TestFromGeocoding(t *testing.T) {
	results := []geocoding.Result{
		{
			PlaceID:          "g1",
			FormattedAddress: "Centennial Park, Sydney NSW 2021, Australia",
			AddressComponents: []geocoding.AddressComponent{
				{LongName: "Sydney", Types: []string{"locality", "political"}},
				{LongName: "New South Wales", ShortName: "NSW", Types: []string{"administrative_area_level_1"}},
				{LongName: "Australia", ShortName: "AU", Types: []string{"country"}},
			},
			Geometry: geocoding.Geometry{Location: geocoding.Location{Lat: -33.8973, Lng: 151.2345}},
			Types:    []string{"park"},
		},
		{
			FormattedAddress: "London, UK",
			AddressComponents: []geocoding.AddressComponent{
				{LongName: "London", Types: []string{"postal_town"}},
			},
			Geometry: geocoding.Geometry{Location: geocoding.Location{Lat: 51.5, Lng: -0.12}},
		},
		{Geometry: geocoding.Geometry{Location: geocoding.Location{Lat: 123, Lng: 0}}},
	}

	got := placeprovider.FromGeocoding(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}
	if got[0].Source != model.PlaceSourceGeocoding || deref(got[0].DisplayName) != "Centennial Park" {
		t.Errorf("unexpected first candidate %+v", got[0])
	}
	if deref(got[0].AddressComponents.City) != "Sydney" || deref(got[0].AddressComponents.Country) != "Australia" {
		t.Errorf("unexpected address %+v", got[0].AddressComponents)
	}
	if deref(got[1].AddressComponents.City) != "London" {
		t.Errorf("postal_town should map to city")
	}
	if got[1].AddressComponents.Region != nil || got[1].Category != nil || got[1].PlaceID != nil {
		t.Errorf("missing fields should stay nil: %+v", got[1])
	}
}

func TestFromNominatim(t *testing.T) {
	results := []nominatim.Result{
		{
			PlaceID: 1, OSMType: "way", OSMID: 42,
			Lat: "40.7826", Lon: "-73.9656",
			DisplayName: "Central Park, Manhattan, New York County, New York, United States",
			Category:    "leisure", Type: "park",
			Address: map[string]string{"city": "New York", "state": "New York", "country": "United States"},
		},
		{
			PlaceID:     2,
			Lat:         "48.8584", Lon: "2.2945",
			DisplayName: "Tour Eiffel, Avenue Gustave Eiffel, Paris, France",
			Category:    "tourism", Type: "yes",
			Address: map[string]string{"town": "Paris", "country": "France"},
		},
		{Lat: "not-a-number", Lon: "1"},
		{Lat: "", Lon: ""},
	}

	got := placeprovider.FromNominatim(results)
	if len(got) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(got))
	}

	first := got[0]
	if first.Name != "Central Park" || deref(first.PlaceID) != "osm:way/42" {
		t.Errorf("unexpected first candidate name=%q id=%q", first.Name, deref(first.PlaceID))
	}
	if *first.Lat != 40.7826 || *first.Lng != -73.9656 {
		t.Errorf("unexpected coords %v %v", *first.Lat, *first.Lng)
	}
	if deref(first.Category) != "park" || first.Source != model.PlaceSourceGeocoding {
		t.Errorf("unexpected category/source %q %v", deref(first.Category), first.Source)
	}

	second := got[1]
	if deref(second.PlaceID) != "2" || deref(second.Category) != "tourism" {
		t.Errorf("unexpected second candidate id=%q category=%q", deref(second.PlaceID), deref(second.Category))
	}
	if deref(second.AddressComponents.City) != "Paris" || second.AddressComponents.Region != nil {
		t.Errorf("unexpected address %+v", second.AddressComponents)
	}
}

func TestFromAdapters_EmptyInput(t *testing.T) {
	if got := placeprovider.FromPlaces(nil); got == nil || len(got) != 0 {
		t.Errorf("FromPlaces(nil) = %v", got)
	}
	if got := placeprovider.FromGeocoding(nil); got == nil || len(got) != 0 {
		t.Errorf("FromGeocoding(nil) = %v", got)
	}
	if got := placeprovider.FromNominatim(nil); got == nil || len(got) != 0 {
		t.Errorf("FromNominatim(nil) = %v", got)
	}
}
