package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"birthday-calendar-sync/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Birthday calendar sync is running"
	HealthVersion = "1.0.0"
	ServiceName   = "birthday-calendar-sync"
)

func (srv HTTPServer) healthCheck(c *gin.Context) { srv.status(c, "healthy") }

func (srv HTTPServer) liveCheck(c *gin.Context) { srv.status(c, "alive") }

// readyCheck reports ready once the birthday routes are mounted.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.birthdayHandler == nil {
		c.JSON(http.StatusServiceUnavailable, response.Resp{ErrorCode: http.StatusServiceUnavailable, Message: "birthday sync not configured"})
		return
	}
	srv.status(c, "ready")
}

func (srv HTTPServer) status(c *gin.Context, status string) {
	response.OK(c, gin.H{
		"status":      status,
		"message":     HealthMessage,
		"version":     HealthVersion,
		"service":     ServiceName,
		"environment": srv.environment,
	})
}
