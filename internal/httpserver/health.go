package httpserver

import (
	"github.com/gin-gonic/gin"

	"broadcast-srv/pkg/errors"
	"broadcast-srv/pkg/response"
)

// healthCheck reports overall service health.
// @Summary Health Check
// @Description Check if the broadcast service and its backends are healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.Resp "A backend is unavailable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Postgres connection failed"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection failed"))
		return
	}

	stats := srv.hub.Stats()
	subscriberActive, _ := srv.subscriber.HealthInfo()

	response.OK(c, gin.H{
		"status":             "healthy",
		"service":            "broadcast-srv",
		"active_connections": stats.ActiveConnections,
		"active_channels":    stats.ActiveChannels,
		"subscriber_active":  subscriberActive,
		"postgres":           "connected",
		"redis":              "connected",
	})
}

// readyCheck reports readiness to serve traffic.
// @Summary Readiness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.Resp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.db.PingContext(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Postgres connection not available"))
		return
	}
	if err := srv.redis.Ping(ctx); err != nil {
		response.HttpError(c, errors.NewHTTPError(503, "Redis connection not available"))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"service": "broadcast-srv",
	})
}

// liveCheck reports process liveness.
// @Summary Liveness Check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": "broadcast-srv",
	})
}
