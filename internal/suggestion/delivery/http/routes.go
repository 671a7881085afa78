package http

import "github.com/gin-gonic/gin"

func (h *handler) RegisterRoutes(r *gin.RouterGroup) {
	api := r.Group("/api/v1/suggestions/:index")
	{
		api.POST("/query", h.QuerySuggestion)
		api.POST("/spelling", h.SpellingSuggestion)
	}
}
