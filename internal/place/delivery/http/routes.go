package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the place endpoints under rg.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	places := rg.Group("/places")
	{
		places.POST("/resolve", h.Resolve)
		places.GET("/search", h.Search)
		places.POST("/resolve-batch", h.ResolveBatch)
	}
}
