package http

import (
	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// TrackClick - Record a click on a search hit
// @Summary Track a click
// @Description Report a click on a record, using the analytics data returned with the record
// @Tags Analytics
// @Accept json
// @Produce json
// @Param body body clickReq true "Click"
// @Success 200 {object} clickResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/analytics/click [post]
func (h *handler) TrackClick(c *gin.Context) {
	ctx := c.Request.Context()

	var req clickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "analytics.delivery.http.TrackClick: bind failed: %v", err)
		response.Error(c, errBadBody)
		return
	}

	if err := h.uc.TrackClick(ctx, req.toInput()); err != nil {
		h.l.Errorf(ctx, "analytics.delivery.http.TrackClick: usecase TrackClick failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, clickResp{Accepted: true})
}
