package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trip-planner/pkg/gemini"
)

func TestBuildURLExtractionPrompt(t *testing.T) {
	prompt := gemini.BuildURLExtractionPrompt("https://example.com/tokyo", "Day 1 Tokyo Tower")

	if !strings.HasPrefix(prompt, gemini.URLExtractionPrompt) {
		t.Errorf("prompt missing system context")
	}
	if !strings.Contains(prompt, "https://example.com/tokyo") {
		t.Errorf("prompt missing source url")
	}
	if !strings.Contains(prompt, "Day 1 Tokyo Tower") {
		t.Errorf("prompt missing page text")
	}
}

func TestClient_GenerateContent(t *testing.T) {
	var lastReq gemini.GenerateRequest
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&lastReq); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch lastReq.Contents[0].Parts[0].Text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": {"status": "RESOURCE_EXHAUSTED"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"text\": " },
							{ "text": "\"Tokyo Tower\"}" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			]
		}`))
	}))
	defer ts.Close()

	client := gemini.NewClient("test-api-key")
	client.SetAPIURL(ts.URL)
	client.SetModel("test-model")

	t.Run("Success Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{
			Contents: []gemini.Content{{Parts: []gemini.Part{
				{Text: "Hello world"},
				gemini.NewImagePart("image/png", []byte{0x89, 0x50}),
			}}},
			GenerationConfig: &gemini.GenerationConfig{ResponseMimeType: gemini.MimeTypeJSON},
		}

		resp, err := client.GenerateContent(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resp.Text(); got != `{"text": "Tokyo Tower"}` {
			t.Errorf("unexpected text: %s", got)
		}

		img := lastReq.Contents[0].Parts[1].InlineData
		if img == nil || img.MimeType != "image/png" || img.Data != "iVA=" {
			t.Errorf("inline data not sent as expected: %+v", img)
		}
		if lastReq.GenerationConfig == nil || lastReq.GenerationConfig.ResponseMimeType != gemini.MimeTypeJSON {
			t.Errorf("generation config not sent")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}}}

		_, err := client.GenerateContent(context.Background(), req)
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
		if gemini.StatusCode(err) != http.StatusInternalServerError {
			t.Errorf("expected status 500, got %d", gemini.StatusCode(err))
		}
		if gemini.IsRateLimited(err) {
			t.Errorf("500 must not count as rate limited")
		}
	})

	t.Run("Rate Limited Flow", func(t *testing.T) {
		req := gemini.GenerateRequest{Contents: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_429"}}}}}

		_, err := client.GenerateContent(context.Background(), req)
		if !gemini.IsRateLimited(err) {
			t.Fatalf("expected rate limited error, got %v", err)
		}
	})
}

func TestGenerateResponse_TextEmpty(t *testing.T) {
	var nilResp *gemini.GenerateResponse
	if nilResp.Text() != "" {
		t.Errorf("nil response should have empty text")
	}
	if (&gemini.GenerateResponse{}).Text() != "" {
		t.Errorf("no candidates should have empty text")
	}
}
