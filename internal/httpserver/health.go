package httpserver

import (
	"net/http"

	pkgErrors "jewelbot-srv/pkg/errors"
	"jewelbot-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "From Jewelbot API V1 With Love"
	HealthVersion = "1.0.0"
	ServiceName   = "jewelbot-srv"
)

// healthCheck handles health check requests
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports whether the service can serve traffic: the catalog is
// loaded and, when configured, Redis answers a ping.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if srv.redisClient != nil {
		if err := srv.redisClient.Ping(ctx); err != nil {
			srv.l.Errorf(ctx, "httpserver.readyCheck: redis ping failed: %v", err)
			response.Error(c, pkgErrors.NewHTTPError(http.StatusServiceUnavailable, "Redis connection failed"), srv.discord)
			return
		}
	}

	response.OK(c, gin.H{
		"status":        "ready",
		"message":       HealthMessage,
		"version":       HealthVersion,
		"service":       ServiceName,
		"catalog_size":  srv.catalogUC.Size(),
		"conversations": srv.dialogueRepo.Len(),
		"redis":         srv.redisClient != nil,
		"kafka":         srv.eventProducer != nil,
		"discord":       srv.discord != nil,
	})
}

// liveCheck handles liveness check requests
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
