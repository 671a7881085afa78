package httpserver

import (
	"context"

	suggestionHTTP "appsearch-srv/internal/suggestion/delivery/http"
	suggestionUsecase "appsearch-srv/internal/suggestion/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSuggestionDomain(ctx context.Context, r *gin.RouterGroup) error {
	uc := suggestionUsecase.New(srv.appSearch, srv.metrics, srv.l, suggestionUsecase.Config{
		EnginePrefix: srv.config.AppSearch.EnginePrefix,
	})

	suggestionHTTP.New(srv.l, uc).RegisterRoutes(r)

	srv.l.Infof(ctx, "Suggestion domain registered")
	return nil
}
