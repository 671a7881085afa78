package httpserver

import (
	"context"
	"fmt"

	"appsearch-srv/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()
	mw := middleware.New(srv.l, srv.config.InternalConfig.InternalKey)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	r := srv.gin.Group("")
	if err := srv.setupSearchDomain(ctx, r, mw); err != nil {
		return fmt.Errorf("failed to setup search domain: %w", err)
	}
	if err := srv.setupSuggestionDomain(ctx, r); err != nil {
		return fmt.Errorf("failed to setup suggestion domain: %w", err)
	}
	if err := srv.setupAnalyticsDomain(ctx, r); err != nil {
		return fmt.Errorf("failed to setup analytics domain: %w", err)
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(middleware.Recovery(srv.l))
	srv.gin.Use(mw.RequestID())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	if srv.metrics != nil {
		srv.gin.GET("/metrics", gin.WrapH(srv.metrics.Handler()))
	}

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
