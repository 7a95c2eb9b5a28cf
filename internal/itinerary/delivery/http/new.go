package http

import (
	"trip-planner/internal/itinerary"
	"trip-planner/pkg/log"
)

type handler struct {
	l  log.Logger
	uc itinerary.UseCase
}

// New creates a new HTTP handler for the itinerary domain.
func New(l log.Logger, uc itinerary.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
