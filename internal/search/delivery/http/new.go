package http

import (
	"appsearch-srv/internal/middleware"
	"appsearch-srv/internal/search"
	"appsearch-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho search HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New - Factory
func New(l log.Logger, uc search.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
