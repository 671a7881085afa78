package http

import (
	"net/http"

	pkgErrors "appsearch-srv/pkg/errors"
	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

var errBadBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Malformed request body")

// Search - Search one index
// @Summary Search an index
// @Description Compile the query, run it against the engine and decode the hits. An engine failure answers 200 with success=false.
// @Tags Search
// @Accept json
// @Produce json
// @Param index path string true "Index name"
// @Param body body searchReq true "Search request"
// @Success 200 {object} searchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/search/{index} [post]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	// 1. Process request
	input, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Search: processSearchRequest failed: %v", err)
		response.Error(c, h.bindError(err))
		return
	}

	// 2. Call UseCase
	results, err := h.uc.Search(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.Search: usecase Search failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	// 3. Return response
	response.OK(c, h.newSearchResp(results))
}

// Compile - Show the engine request a search would send
// @Summary Compile a search
// @Description Build the engine request body without sending it
// @Tags Search
// @Accept json
// @Produce json
// @Param index path string true "Index name"
// @Param body body searchReq true "Search request"
// @Success 200 {object} compileResp
// @Failure 400 {object} response.Resp
// @Router /api/v1/search/{index}/compile [post]
func (h *handler) Compile(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Compile: processSearchRequest failed: %v", err)
		response.Error(c, h.bindError(err))
		return
	}

	req, err := h.uc.Compile(input.Query)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Compile: usecase Compile failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, compileResp{Request: req})
}

// MultiSearch - Run several searches at once
// @Summary Multi search
// @Description Run up to 10 searches concurrently. Results keep the request order.
// @Tags Search
// @Accept json
// @Produce json
// @Param body body multiSearchReq true "Multi search request"
// @Success 200 {object} multiSearchResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/multi-search [post]
func (h *handler) MultiSearch(c *gin.Context) {
	ctx := c.Request.Context()

	inputs, err := h.processMultiSearchRequest(c)
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.MultiSearch: processMultiSearchRequest failed: %v", err)
		response.Error(c, h.bindError(err))
		return
	}

	results, err := h.uc.MultiSearch(ctx, inputs)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.MultiSearch: usecase MultiSearch failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newMultiSearchResp(results))
}

// InvalidateCache - Drop cached responses of an index
// @Summary Invalidate cached searches
// @Tags Search
// @Produce json
// @Param index path string true "Index name"
// @Success 200 {object} invalidateCacheResp
// @Failure 401 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Security BearerAuth
// @Router /api/v1/search/{index}/cache [delete]
func (h *handler) InvalidateCache(c *gin.Context) {
	ctx := c.Request.Context()
	index := c.Param("index")

	deleted, err := h.uc.InvalidateCache(ctx, index)
	if err != nil {
		h.l.Errorf(ctx, "search.delivery.http.InvalidateCache: usecase InvalidateCache failed: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, invalidateCacheResp{Index: index, Deleted: deleted})
}

// bindError keeps validation errors and hides JSON decoding details.
func (h *handler) bindError(err error) error {
	if _, ok := err.(*pkgErrors.ValidationErrorCollector); ok {
		return err
	}
	return errBadBody
}
