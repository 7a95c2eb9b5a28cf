package gemini_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"trip-planner/pkg/gemini"
)

type flakyGenerator struct {
	errs  []error
	calls int
}

func (f *flakyGenerator) GenerateContent(context.Context, gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	i := f.calls
	f.calls++
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	return &gemini.GenerateResponse{}, nil
}

func TestWithRetry(t *testing.T) {
	tests := []struct {
		name      string
		errs      []error
		wantCalls int
		wantErr   bool
	}{
		{"success first try", nil, 1, false},
		{"recovers from 503", []error{&gemini.APIError{StatusCode: http.StatusServiceUnavailable}}, 2, false},
		{"recovers from transport error", []error{errors.New("connection reset")}, 2, false},
		{"rate limit not retried", []error{&gemini.APIError{StatusCode: http.StatusTooManyRequests}}, 1, true},
		{"bad request not retried", []error{&gemini.APIError{StatusCode: http.StatusBadRequest}}, 1, true},
		{
			name: "gives up after attempts",
			errs: []error{
				&gemini.APIError{StatusCode: 500},
				&gemini.APIError{StatusCode: 502},
				&gemini.APIError{StatusCode: 503},
			},
			wantCalls: 3,
			wantErr:   true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &flakyGenerator{errs: tt.errs}
			_, err := gemini.WithRetry(g, 3, time.Millisecond).GenerateContent(context.Background(), gemini.GenerateRequest{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if g.calls != tt.wantCalls {
				t.Errorf("calls = %d, want %d", g.calls, tt.wantCalls)
			}
		})
	}
}

func TestWithRetry_StopsOnCancel(t *testing.T) {
	g := &flakyGenerator{errs: []error{errors.New("down"), errors.New("down")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gemini.WithRetry(g, 3, time.Hour).GenerateContent(ctx, gemini.GenerateRequest{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if g.calls != 1 {
		t.Errorf("calls = %d, want 1", g.calls)
	}
}

func TestWithRetry_SingleAttemptIsPassthrough(t *testing.T) {
	g := &flakyGenerator{}
	if got := gemini.WithRetry(g, 1, time.Second); got != gemini.Generator(g) {
		t.Error("expected the wrapped generator to be returned unchanged")
	}
}
