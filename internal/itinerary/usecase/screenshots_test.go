package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/itinerary/usecase"
	"trip-planner/internal/model"
	"trip-planner/pkg/gemini"
)

func TestImportScreenshots_PartialBatch(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{
		{text: "```json\n{\"text\": \"Day 1\\nTokyo Tower\\nSenso-ji\", \"destination\": \"Tokyo\"}\n```"},
		{err: &gemini.APIError{StatusCode: http.StatusTooManyRequests, Body: "quota"}},
	}}
	uc := newUseCase(t, deps{llm: gen})

	out, err := uc.ImportScreenshots(context.Background(), itinerary.ScreenshotsInput{
		Images: []itinerary.Screenshot{
			{Filename: "a.png", Data: pngImage(t)},
			{Filename: "b.png", Data: pngImage(t)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.BatchID == "" {
		t.Error("expected a batch id")
	}
	if out.Status != model.BatchStatusPartial {
		t.Errorf("status = %s, want partial", out.Status)
	}
	if out.ProcessedCount != 1 || out.FailedCount != 1 {
		t.Errorf("processed=%d failed=%d, want 1/1", out.ProcessedCount, out.FailedCount)
	}
	if got := out.Items[1]; got.Status != itinerary.ItemStatusFailed || got.StatusCode != http.StatusTooManyRequests {
		t.Errorf("second item = %+v, want failed with 429", got)
	}
	if got := out.Items[0]; got.Status != itinerary.ItemStatusOK || got.TextLength == 0 {
		t.Errorf("first item = %+v, want ok with text", got)
	}
	if len(out.Warnings) != 1 || out.Warnings[0] != "OCR extraction failed for 1 of 2 screenshots" {
		t.Errorf("warnings = %v", out.Warnings)
	}

	if out.Result == nil {
		t.Fatal("expected a parse result")
	}
	if out.Result.Destination == nil || *out.Result.Destination != "Tokyo" {
		t.Errorf("destination = %v, want detected Tokyo", out.Result.Destination)
	}
	if out.Result.PlaceCount() != 2 {
		t.Errorf("place count = %d, want 2", out.Result.PlaceCount())
	}

	for _, req := range gen.requests {
		if req.GenerationConfig == nil || req.GenerationConfig.ResponseMimeType != gemini.MimeTypeJSON {
			t.Error("expected a JSON response mime type")
		}
		if len(req.Contents) != 1 || len(req.Contents[0].Parts) != 2 || req.Contents[0].Parts[1].InlineData == nil {
			t.Errorf("expected prompt and inline image, got %+v", req.Contents)
		}
	}
}

func TestImportScreenshots_CallerDestinationWins(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{{text: `{"text": "Louvre", "destination": "Paris"}`}}}
	uc := newUseCase(t, deps{llm: gen})

	out, err := uc.ImportScreenshots(context.Background(), itinerary.ScreenshotsInput{
		Images:      []itinerary.Screenshot{{Filename: "a.png", Data: pngImage(t)}},
		Destination: ptr("Paris, France"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Status != model.BatchStatusReady {
		t.Errorf("status = %s, want ready", out.Status)
	}
	if out.Result == nil || out.Result.Destination == nil || *out.Result.Destination != "Paris, France" {
		t.Errorf("unexpected destination in %+v", out.Result)
	}
}

func TestImportScreenshots_ItemFailures(t *testing.T) {
	gen := &fakeGenerator{replies: []fakeReply{
		{text: "I cannot read this image"},
		{text: `{"text": "   "}`},
	}}
	uc := newUseCase(t, deps{llm: gen, opts: usecase.Options{MaxImageBytes: 1 << 20}})

	out, err := uc.ImportScreenshots(context.Background(), itinerary.ScreenshotsInput{
		Images: []itinerary.Screenshot{
			{Filename: "notes.txt", Data: []byte("plain text, not an image")},
			{Filename: "huge.png", MimeType: "image/png", Data: make([]byte, 1<<20+1)},
			{Filename: "garbled.png", Data: pngImage(t)},
			{Filename: "blank.png", Data: pngImage(t)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantCodes := []int{
		http.StatusUnsupportedMediaType,
		http.StatusRequestEntityTooLarge,
		http.StatusBadGateway,
		http.StatusUnprocessableEntity,
	}
	for i, want := range wantCodes {
		if got := out.Items[i].StatusCode; got != want {
			t.Errorf("item %d status code = %d, want %d", i, got, want)
		}
	}
	if out.Status != model.BatchStatusFailed {
		t.Errorf("status = %s, want failed", out.Status)
	}
	if out.Result != nil {
		t.Errorf("expected no parse result, got %+v", out.Result)
	}
	if gen.callCount() != 2 {
		t.Errorf("expected 2 model calls for the valid images, got %d", gen.callCount())
	}
}

func TestImportScreenshots_Validation(t *testing.T) {
	img := itinerary.Screenshot{Filename: "a.png", Data: []byte{0x89}}
	tests := []struct {
		name  string
		llm   gemini.Generator
		input itinerary.ScreenshotsInput
		want  error
	}{
		{"no images", &fakeGenerator{}, itinerary.ScreenshotsInput{}, itinerary.ErrNoImages},
		{"too many", &fakeGenerator{}, itinerary.ScreenshotsInput{Images: make([]itinerary.Screenshot, 11)}, itinerary.ErrTooManyImages},
		{"no model", nil, itinerary.ScreenshotsInput{Images: []itinerary.Screenshot{img}}, itinerary.ErrAINotConfigured},
		{"bad start", &fakeGenerator{}, itinerary.ScreenshotsInput{Images: []itinerary.Screenshot{img}, StartDate: "2026-13-01"}, itinerary.ErrInvalidStartDate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newUseCase(t, deps{llm: tt.llm})
			_, err := uc.ImportScreenshots(context.Background(), tt.input)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestImportScreenshots_Cancelled(t *testing.T) {
	gen := &fakeGenerator{}
	uc := newUseCase(t, deps{llm: gen})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uc.ImportScreenshots(ctx, itinerary.ScreenshotsInput{
		Images: []itinerary.Screenshot{{Filename: "a.png", Data: pngImage(t)}},
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if gen.callCount() != 0 {
		t.Errorf("expected no model calls, got %d", gen.callCount())
	}
}

func TestImportScreenshots_CombinedTextTooLong(t *testing.T) {
	long := strings.Repeat("Tokyo Tower ", 8)
	gen := &fakeGenerator{replies: []fakeReply{
		{text: `{"text": "` + long + `"}`},
		{text: `{"text": "` + long + `"}`},
	}}
	uc := newUseCase(t, deps{llm: gen, opts: usecase.Options{MaxTextChars: 150}})

	out, err := uc.ImportScreenshots(context.Background(), itinerary.ScreenshotsInput{
		Images: []itinerary.Screenshot{
			{Filename: "a.png", Data: pngImage(t)},
			{Filename: "b.png", Data: pngImage(t)},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gen.callCount() != 2 {
		t.Errorf("calls = %d, want 2", gen.callCount())
	}
	if out.Status != model.BatchStatusReady || out.ProcessedCount != 2 || out.FailedCount != 0 || len(out.Items) != 2 {
		t.Errorf("status=%s processed=%d failed=%d items=%d", out.Status, out.ProcessedCount, out.FailedCount, len(out.Items))
	}
	if out.Result != nil {
		t.Errorf("expected no parse result, got %+v", out.Result)
	}
	if len(out.Warnings) != 1 || !strings.HasPrefix(out.Warnings[0], "combined OCR text could not be parsed: ") ||
		!strings.Contains(out.Warnings[0], itinerary.ErrTextTooLong.Error()) {
		t.Errorf("warnings = %v", out.Warnings)
	}
}
