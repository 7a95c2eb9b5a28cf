package llmjson_test

import (
	"encoding/json"
	"errors"
	"testing"

	"trip-planner/pkg/llmjson"
)

type ocrReply struct {
	Text        string   `json:"text"`
	Destination *string  `json:"destination"`
	Lat         float64  `json:"lat"`
	Tags        []string `json:"tags"`
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantText string
		wantLat  float64
		wantTags int
	}{
		{
			name:     "valid json",
			raw:      `{"text": "Day 1: Tokyo Tower", "lat": 35.65}`,
			wantText: "Day 1: Tokyo Tower",
			wantLat:  35.65,
		},
		{
			name:     "prose around object",
			raw:      "Sure! Here is the extracted itinerary:\n{\"text\": \"Senso-ji\"}\nLet me know if you need more.",
			wantText: "Senso-ji",
		},
		{
			name:     "markdown fence",
			raw:      "```json\n{\"text\": \"Shibuya\"}\n```",
			wantText: "Shibuya",
		},
		{
			name:     "literal newline inside string",
			raw:      "{\"text\": \"Day 1\nTokyo Tower\n\tSenso-ji\"}",
			wantText: "Day 1\nTokyo Tower\n\tSenso-ji",
		},
		{
			name:     "trailing comma before brace",
			raw:      `{"text": "Ueno", "tags": ["park", "museum",],}`,
			wantText: "Ueno",
			wantTags: 2,
		},
		{
			name:     "number with trailing dot",
			raw:      `{"text": "Meiji Shrine", "lat": 35.}`,
			wantText: "Meiji Shrine",
			wantLat:  35,
		},
		{
			name:     "stray dot after string",
			raw:      `{"text": "Akihabara".}`,
			wantText: "Akihabara",
		},
		{
			name:     "valid json with comma-brace inside string is untouched",
			raw:      `{"text": "a, }"}`,
			wantText: "a, }",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := llmjson.Parse[ocrReply](tt.raw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Text != tt.wantText {
				t.Errorf("text = %q, want %q", got.Text, tt.wantText)
			}
			if got.Lat != tt.wantLat {
				t.Errorf("lat = %v, want %v", got.Lat, tt.wantLat)
			}
			if len(got.Tags) != tt.wantTags {
				t.Errorf("tags = %v, want %d items", got.Tags, tt.wantTags)
			}
		})
	}
}

func TestParse_Unrecoverable(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no object", "I could not read the screenshot."},
		{"truncated", `{"text": "Day 1`},
		{"garbage inside braces", `{text: Tokyo}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := llmjson.Parse[ocrReply](tt.raw)
			if err == nil {
				t.Fatal("expected error")
			}

			var recErr *llmjson.JSONRecoveryError
			if !errors.As(err, &recErr) {
				t.Fatalf("expected JSONRecoveryError, got %T", err)
			}

			// the original parse error is reported, not a sanitized one
			var origErr error
			var v ocrReply
			origErr = json.Unmarshal([]byte(tt.raw), &v)
			if recErr.Err.Error() != origErr.Error() {
				t.Errorf("wrapped error = %q, want original %q", recErr.Err, origErr)
			}
		})
	}
}

func TestParse_Map(t *testing.T) {
	got, err := llmjson.Parse[map[string]any]("result: {\"durationDays\": 3,}")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got["durationDays"] != float64(3) {
		t.Errorf("unexpected map: %v", got)
	}
}
