package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/pkg/response"
)

// writeError translates use-case errors into HTTP responses.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, birthday.ErrUnknownCalendar):
		response.NotFound(c, err)
	case errors.Is(err, birthday.ErrAmbiguousCalendarName):
		response.Conflict(c, err)
	case errors.Is(err, birthday.ErrNoCalendars):
		response.Error(c, err, nil)
	default:
		response.InternalError(c, err)
	}
}
