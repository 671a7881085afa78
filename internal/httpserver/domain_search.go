package httpserver

import (
	"context"

	"appsearch-srv/internal/middleware"
	searchHTTP "appsearch-srv/internal/search/delivery/http"
	"appsearch-srv/internal/search/repository"
	searchRedis "appsearch-srv/internal/search/repository/redis"
	searchUsecase "appsearch-srv/internal/search/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupSearchDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	var cacheRepo repository.CacheRepository
	cfg := searchUsecase.Config{
		PageLimit:        srv.config.AppSearch.PageLimit,
		ResultsLimit:     srv.config.AppSearch.ResultsLimit,
		EnginePrefix:     srv.config.AppSearch.EnginePrefix,
		AnalyticsEnabled: srv.config.Analytics.Enabled,
		Concurrency:      srv.config.Search.Concurrency,
	}
	if srv.redisClient != nil {
		cacheRepo = searchRedis.New(srv.redisClient, srv.l)
		cfg.CacheTTL = srv.config.Cache.SearchTTL
	}

	uc := searchUsecase.New(srv.appSearch, cacheRepo, srv.metrics, srv.l, cfg)

	handler := searchHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Search domain registered (cache enabled: %t)", cacheRepo != nil)
	return nil
}
