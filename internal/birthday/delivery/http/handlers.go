package http

import (
	"github.com/gin-gonic/gin"

	"birthday-calendar-sync/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// Sync runs a reconciliation pass over the requested calendars.
// POST /api/v1/sync
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Sync(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Sync: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newSyncResp(output))
}

// Plan returns the operations a pass would apply to one calendar.
// GET /api/v1/calendars/:name/plan
func (h *handler) Plan(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := h.processCalendarParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	res, err := h.uc.Plan(ctx, name)
	if err != nil {
		h.l.Errorf(ctx, "uc.Plan: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newPlanResp(res))
}

// ExportICS serves the expected birthdays of one calendar as an iCalendar file.
// GET /api/v1/calendars/:name/ics
func (h *handler) ExportICS(c *gin.Context) {
	ctx := c.Request.Context()

	name, err := h.processCalendarParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	body, err := h.uc.ExportICS(ctx, name)
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportICS: %v", err)
		h.writeError(c, err)
		return
	}

	response.Attachment(c, name+".ics", icsContentType, body)
}

// ListCalendars lists the calendars visible to the service account.
// GET /api/v1/calendars
func (h *handler) ListCalendars(c *gin.Context) {
	ctx := c.Request.Context()

	cals, err := h.uc.ListCalendars(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCalendars: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, h.newListCalendarsResp(cals))
}
