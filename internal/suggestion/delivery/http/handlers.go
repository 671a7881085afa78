package http

import (
	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// QuerySuggestion - Complete a partial query
// @Summary Query suggestions
// @Tags Suggestion
// @Accept json
// @Produce json
// @Param index path string true "Index name"
// @Param body body suggestionReq true "Suggestion request"
// @Success 200 {object} suggestionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/suggestions/{index}/query [post]
func (h *handler) QuerySuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	var req suggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "suggestion.delivery.http.QuerySuggestion: bind failed: %v", err)
		response.Error(c, errBadBody)
		return
	}

	out, err := h.uc.QuerySuggestion(ctx, req.toInput(c.Param("index")))
	if err != nil {
		h.l.Errorf(ctx, "suggestion.delivery.http.QuerySuggestion: usecase failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestionResp(out))
}

// SpellingSuggestion - Suggest corrected spellings
// @Summary Spelling suggestions
// @Tags Suggestion
// @Accept json
// @Produce json
// @Param index path string true "Index name"
// @Param body body suggestionReq true "Suggestion request"
// @Success 200 {object} suggestionResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/suggestions/{index}/spelling [post]
func (h *handler) SpellingSuggestion(c *gin.Context) {
	ctx := c.Request.Context()

	var req suggestionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "suggestion.delivery.http.SpellingSuggestion: bind failed: %v", err)
		response.Error(c, errBadBody)
		return
	}

	out, err := h.uc.SpellingSuggestion(ctx, req.toInput(c.Param("index")))
	if err != nil {
		h.l.Errorf(ctx, "suggestion.delivery.http.SpellingSuggestion: usecase failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSuggestionResp(out))
}
