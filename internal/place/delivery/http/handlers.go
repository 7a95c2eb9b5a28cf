package http

import (
	"github.com/gin-gonic/gin"

	"trip-planner/pkg/response"
)

// Resolve godoc
// @Summary     Resolve a place name
// @Description Resolves one place name to a candidate with coordinates, trying the places provider before geocoding.
// @Tags        Places
// @Accept      json
// @Produce     json
// @Param       body body resolveReq true "Place name and optional destination"
// @Success     200  {object} model.PlaceCandidate
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Provider rate limited"
// @Failure     502  {object} response.Resp "Provider unavailable"
// @Router      /api/v1/places/resolve [POST]
func (h *handler) Resolve(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	candidate, err := h.uc.Resolve(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "place.delivery.http.Resolve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, candidate)
}

// Search godoc
// @Summary     Search places
// @Description Returns ranked candidates for a query. Repeated calls from one client inside the throttle window get 429.
// @Tags        Places
// @Produce     json
// @Param       q           query string true  "Query text"
// @Param       destination query string false "Destination context"
// @Param       limit       query int    false "Max candidates (1-10, default 5)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     502 {object} response.Resp "Provider unavailable"
// @Router      /api/v1/places/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	candidates, err := h.uc.Search(ctx, req.toInput(c.ClientIP()))
	if err != nil {
		h.l.Warnf(ctx, "place.delivery.http.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(candidates))
}

// ResolveBatch godoc
// @Summary     Resolve several place names
// @Description Resolves names one after another with a shared destination. Per-name failures do not fail the batch.
// @Tags        Places
// @Accept      json
// @Produce     json
// @Param       body body resolveBatchReq true "Place names and optional destination"
// @Success     200  {object} resolveBatchResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/places/resolve-batch [POST]
func (h *handler) ResolveBatch(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processResolveBatchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ResolvePlaces(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "place.delivery.http.ResolveBatch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newResolveBatchResp(out))
}
