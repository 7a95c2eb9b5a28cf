package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the itinerary endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	itineraries := rg.Group("/itineraries")
	{
		itineraries.POST("/parse", h.Parse)
		itineraries.POST("/warnings", h.DetectWarnings)
		itineraries.POST("/screenshots", h.ImportScreenshots)
		itineraries.POST("/url", h.ImportURL)
		itineraries.POST("/calendar", h.ExportCalendar)
	}
}
