package http

import (
	"errors"
	"io"
	"strings"

	"github.com/gin-gonic/gin"
)

var errCalendarRequired = errors.New("calendar name is required")

// processSyncReq binds the optional sync body. An empty body syncs everything.
func (h *handler) processSyncReq(c *gin.Context) (syncReq, error) {
	var req syncReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processCalendarParam(c *gin.Context) (string, error) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		return "", errCalendarRequired
	}
	return name, nil
}
