package http

import (
	"appsearch-srv/internal/suggestion"
	"appsearch-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface cho suggestion HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New - Factory
func New(l log.Logger, uc suggestion.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
