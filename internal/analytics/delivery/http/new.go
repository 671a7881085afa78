package http

import (
	"appsearch-srv/internal/analytics"
	"appsearch-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho analytics HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc analytics.UseCase
}

// New - Factory
func New(l log.Logger, uc analytics.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
