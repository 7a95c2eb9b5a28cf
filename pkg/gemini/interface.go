package gemini

import "context"

// Generator is the subset of the Gemini API used by the service.
// Implementations are safe for concurrent use.
type Generator interface {
	// GenerateContent sends a generation request to Gemini API
	GenerateContent(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

var _ Generator = (*Client)(nil)
