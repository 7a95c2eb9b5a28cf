package http

import (
	"trip-planner/internal/place"
	"trip-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc place.UseCase
}

// New creates a new HTTP handler for the place domain.
func New(l log.Logger, uc place.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
