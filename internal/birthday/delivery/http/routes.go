package http

import (
	"github.com/gin-gonic/gin"

	"birthday-calendar-sync/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes are protected by the Auth middleware.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/sync", mw.Auth(), h.Sync)

	calendars := rg.Group("/calendars", mw.Auth())
	{
		calendars.GET("", h.ListCalendars)
		calendars.GET("/:name/plan", h.Plan)
		calendars.GET("/:name/ics", h.ExportICS)
	}
}
