package httpserver

import (
	"net/http"

	"appsearch-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "App Search gateway is up"
	HealthVersion = "1.0.0"
	ServiceName   = "appsearch-srv"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests. Redis and Kafka are checked only when configured.
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is down"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	status := gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"redis":   "disabled",
		"kafka":   "disabled",
	}

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: redis ping failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Redis connection failed",
				"error":   err.Error(),
			})
			return
		}
		status["redis"] = "connected"
	}

	if srv.kafkaProducer != nil {
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: kafka health check failed: %v", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "not ready",
				"message": "Kafka connection failed",
				"error":   err.Error(),
			})
			return
		}
		status["kafka"] = "connected"
	}

	response.OK(c, status)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
