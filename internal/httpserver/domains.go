package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itineraryHTTP "trip-planner/internal/itinerary/delivery/http"
	placeHTTP "trip-planner/internal/place/delivery/http"
)

// setupPlaceDomain registers /api/v1/places/*.
func (srv HTTPServer) setupPlaceDomain(ctx context.Context, api *gin.RouterGroup) {
	h := placeHTTP.New(srv.l, srv.placeUC)
	placeHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Place domain registered")
}

// setupItineraryDomain registers /api/v1/itineraries/*.
func (srv HTTPServer) setupItineraryDomain(ctx context.Context, api *gin.RouterGroup) {
	h := itineraryHTTP.New(srv.l, srv.itineraryUC)
	itineraryHTTP.RegisterRoutes(api, h)
	srv.l.Infof(ctx, "Itinerary domain registered")
}
