package http

import (
	"appsearch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	{
		api.POST("/search/:index", h.Search)
		api.POST("/search/:index/compile", h.Compile)
		api.POST("/multi-search", h.MultiSearch)
		api.DELETE("/search/:index/cache", mw.InternalAuth(), h.InvalidateCache)
	}
}
