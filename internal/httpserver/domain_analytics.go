package httpserver

import (
	"context"

	"appsearch-srv/internal/analytics"
	analyticsHTTP "appsearch-srv/internal/analytics/delivery/http"
	analyticsProducer "appsearch-srv/internal/analytics/delivery/kafka/producer"
	analyticsUsecase "appsearch-srv/internal/analytics/usecase"

	"github.com/gin-gonic/gin"
)

func (srv *HTTPServer) setupAnalyticsDomain(ctx context.Context, r *gin.RouterGroup) error {
	var producer analytics.Producer
	if srv.kafkaProducer != nil {
		producer = analyticsProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := analyticsUsecase.New(srv.appSearch, producer, srv.metrics, srv.l, analyticsUsecase.Config{
		Enabled: srv.config.Analytics.Enabled,
	})

	analyticsHTTP.New(srv.l, uc).RegisterRoutes(r)

	srv.l.Infof(ctx, "Analytics domain registered (queued clicks: %t)", producer != nil)
	return nil
}
