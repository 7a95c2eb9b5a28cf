package usecase_test

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"sync"
	"testing"

	"trip-planner/internal/itinerary"
	"trip-planner/internal/itinerary/usecase"
	"trip-planner/pkg/datemath"
	"trip-planner/pkg/gcalendar"
	"trip-planner/pkg/gemini"
	"trip-planner/pkg/log"
	"trip-planner/pkg/webtext"
)

// fakeGenerator answers calls in order from replies.
type fakeGenerator struct {
	mu       sync.Mutex
	replies  []fakeReply
	requests []gemini.GenerateRequest
}

type fakeReply struct {
	text string
	err  error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	i := len(f.requests)
	f.requests = append(f.requests, req)
	if i >= len(f.replies) {
		return &gemini.GenerateResponse{}, nil
	}
	r := f.replies[i]
	if r.err != nil {
		return nil, r.err
	}
	return &gemini.GenerateResponse{Candidates: []gemini.Candidate{{
		Content: gemini.Content{Parts: []gemini.Part{{Text: r.text}}},
	}}}, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

type fakeFetcher struct {
	page webtext.Page
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) (webtext.Page, error) {
	f.urls = append(f.urls, url)
	return f.page, f.err
}

type fakeCalendar struct {
	requests []gcalendar.AllDayEventRequest
	failOn   map[int]error
}

func (f *fakeCalendar) CreateAllDayEvent(_ context.Context, req gcalendar.AllDayEventRequest) (*gcalendar.Event, error) {
	n := len(f.requests)
	f.requests = append(f.requests, req)
	if err := f.failOn[n]; err != nil {
		return nil, err
	}
	return &gcalendar.Event{
		ID:       "evt-" + req.Date.Format(datemath.DateLayout),
		Summary:  req.Summary,
		HtmlLink: "https://calendar.example/" + req.Date.Format(datemath.DateLayout),
		Date:     req.Date.Format(datemath.DateLayout),
	}, nil
}

type deps struct {
	llm      gemini.Generator
	fetcher  usecase.PageFetcher
	calendar usecase.CalendarWriter
	opts     usecase.Options
}

func newUseCase(t *testing.T, d deps) itinerary.UseCase {
	t.Helper()
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatal(err)
	}
	return usecase.New(log.NewNop(), d.llm, d.fetcher, d.calendar, dates, d.opts)
}

func pngImage(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func ptr[T any](v T) *T { return &v }
