package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"trip-planner/internal/itinerary"
	"trip-planner/pkg/webtext"
)

const kyotoReply = `{"destination": "Kyoto", "durationDays": 2, "itineraryText": "Day 1\nFushimi Inari\nDay 2\nKinkaku-ji"}`

func TestImportURL(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: kyotoReply}}}
	fetcher := &fakeFetcher{page: webtext.Page{Title: "Kyoto in two days", Text: "Our favourite route through Kyoto..."}}
	uc := newUseCase(t, deps{llm: gen, fetcher: fetcher})

	out, err := uc.ImportURL(context.Background(), itinerary.URLInput{
		URL:         " https://blog.example.com/kyoto ",
		Destination: ptr("Kyoto, Japan"),
		StartDate:   "2026-04-01",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.URL != "https://blog.example.com/kyoto" || out.Title != "Kyoto in two days" {
		t.Errorf("unexpected page info: %q %q", out.URL, out.Title)
	}
	if len(fetcher.urls) != 1 || fetcher.urls[0] != out.URL {
		t.Errorf("fetched %v", fetcher.urls)
	}
	if d := out.Result.Destination; d == nil || *d != "Kyoto, Japan" {
		t.Errorf("destination = %v, want the caller hint", d)
	}
	if len(out.Result.Days) != 2 || out.Result.Days[1].Date == nil || *out.Result.Days[1].Date != "2026-04-02" {
		t.Errorf("unexpected days %+v", out.Result.Days)
	}

	prompt := gen.requests[0].Contents[0].Parts[0].Text
	if !strings.Contains(prompt, "Our favourite route through Kyoto") {
		t.Error("prompt does not include the page text")
	}
}

func TestImportURL_ModelDestinationUsedWithoutHint(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: kyotoReply}}}
	uc := newUseCase(t, deps{llm: gen, fetcher: &fakeFetcher{page: webtext.Page{Text: "route"}}})

	out, err := uc.ImportURL(context.Background(), itinerary.URLInput{URL: "https://blog.example.com/kyoto"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d := out.Result.Destination; d == nil || *d != "Kyoto" {
		t.Errorf("destination = %v, want Kyoto", d)
	}
}

func TestImportURL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		fetcher *fakeFetcher
		reply   fakeReply
		want    error
	}{
		{
			name:    "unsupported scheme",
			url:     "ftp://example.com/trip",
			fetcher: &fakeFetcher{},
			want:    itinerary.ErrInvalidURL,
		},
		{
			name:    "binary page",
			url:     "https://example.com/trip.pdf",
			fetcher: &fakeFetcher{err: webtext.ErrUnsupportedContent},
			want:    itinerary.ErrUnsupportedPage,
		},
		{
			name:    "upstream down",
			url:     "https://example.com/trip",
			fetcher: &fakeFetcher{err: &webtext.StatusError{StatusCode: 503}},
			want:    itinerary.ErrProviderUnavailable,
		},
		{
			name:    "empty page",
			url:     "https://example.com/trip",
			fetcher: &fakeFetcher{page: webtext.Page{Text: "  "}},
			want:    itinerary.ErrNoTextFound,
		},
		{
			name:    "unreadable reply",
			url:     "https://example.com/trip",
			fetcher: &fakeFetcher{page: webtext.Page{Text: "route"}},
			reply:   fakeReply{text: "Sorry, I can't help with that."},
			want:    itinerary.ErrUnreadableResponse,
		},
		{
			name:    "no itinerary in reply",
			url:     "https://example.com/trip",
			fetcher: &fakeFetcher{page: webtext.Page{Text: "route"}},
			reply:   fakeReply{text: `{"itineraryText": ""}`},
			want:    itinerary.ErrNoTextFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &fakeGenerator{replies: []fakeReply{tt.reply}}
			uc := newUseCase(t, deps{llm: gen, fetcher: tt.fetcher})

			_, err := uc.ImportURL(context.Background(), itinerary.URLInput{URL: tt.url})
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestImportURL_NotConfigured(t *testing.T) {
	uc := newUseCase(t, deps{fetcher: &fakeFetcher{}})

	_, err := uc.ImportURL(context.Background(), itinerary.URLInput{URL: "https://example.com"})
	if !errors.Is(err, itinerary.ErrAINotConfigured) {
		t.Errorf("expected ErrAINotConfigured, got %v", err)
	}
}
