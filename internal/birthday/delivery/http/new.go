package http

import (
	"github.com/gin-gonic/gin"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/pkg/log"
)

// Handler is the public interface for the birthday HTTP delivery layer.
type Handler interface {
	Sync(c *gin.Context)
	Plan(c *gin.Context)
	ExportICS(c *gin.Context)
	ListCalendars(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc birthday.UseCase
}

// New creates a new HTTP handler for the birthday domain.
func New(l log.Logger, uc birthday.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
