package gcalendar

import (
	"context"
	"fmt"
	"sort"
	"time"

	"google.golang.org/api/calendar/v3"
)

const defaultPageSize = 250

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
	}

	if req.AllDay {
		// End is exclusive for all-day events.
		event.Start = &calendar.EventDateTime{Date: req.StartTime.Format(DateLayout)}
		event.End = &calendar.EventDateTime{Date: req.EndTime.Format(DateLayout)}
	} else {
		event.Start = &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
		event.End = &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		}
	}
	if req.Transparent {
		event.Transparency = "transparent"
	}
	if len(req.PrivateProperties) > 0 {
		event.ExtendedProperties = &calendar.EventExtendedProperties{Private: req.PrivateProperties}
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	created, err := c.service.Events.Insert(calendarIDOrPrimary(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, wrapAPIError("create event", err)
	}

	out := toEvent(created)
	if out.StartTime.IsZero() {
		out.StartTime = req.StartTime
		out.EndTime = req.EndTime
	}
	return &out, nil
}

// ListEvents returns every event of the calendar matching req, following page tokens.
func (c *Client) ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error) {
	pageSize := req.MaxResults
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	// Sorted so that requests are reproducible.
	filters := make([]string, 0, len(req.PrivateProperties))
	for k, v := range req.PrivateProperties {
		filters = append(filters, k+"="+v)
	}
	sort.Strings(filters)

	var events []Event
	pageToken := ""
	for {
		call := c.service.Events.List(calendarIDOrPrimary(req.CalendarID)).
			SingleEvents(true).
			OrderBy("startTime").
			MaxResults(pageSize).
			Context(ctx)
		if !req.TimeMin.IsZero() {
			call = call.TimeMin(req.TimeMin.Format(time.RFC3339))
		}
		if !req.TimeMax.IsZero() {
			call = call.TimeMax(req.TimeMax.Format(time.RFC3339))
		}
		if len(filters) > 0 {
			call = call.PrivateExtendedProperty(filters...)
		}
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, err := call.Do()
		if err != nil {
			return nil, wrapAPIError("list events", err)
		}

		for _, item := range page.Items {
			events = append(events, toEvent(item))
		}

		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}

	return events, nil
}

// DeleteEvent removes an event. ErrNotFound is returned when it is already gone.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if eventID == "" {
		return fmt.Errorf("gcalendar: delete event: empty event id")
	}
	if err := c.wait(ctx); err != nil {
		return err
	}
	if err := c.service.Events.Delete(calendarIDOrPrimary(calendarID), eventID).Context(ctx).Do(); err != nil {
		return wrapAPIError("delete event", err)
	}
	return nil
}

func toEvent(item *calendar.Event) Event {
	ev := Event{
		ID:          item.Id,
		Summary:     item.Summary,
		Description: item.Description,
		HtmlLink:    item.HtmlLink,
		Location:    item.Location,
	}
	if item.Start != nil {
		if item.Start.Date != "" {
			ev.AllDay = true
			ev.StartDate = item.Start.Date
			if t, err := time.Parse(DateLayout, item.Start.Date); err == nil {
				ev.StartTime = t
			}
		} else if t, err := time.Parse(time.RFC3339, item.Start.DateTime); err == nil {
			ev.StartTime = t
		}
	}
	if item.End != nil {
		if item.End.Date != "" {
			ev.EndDate = item.End.Date
			if t, err := time.Parse(DateLayout, item.End.Date); err == nil {
				ev.EndTime = t
			}
		} else if t, err := time.Parse(time.RFC3339, item.End.DateTime); err == nil {
			ev.EndTime = t
		}
	}
	if item.ExtendedProperties != nil && len(item.ExtendedProperties.Private) > 0 {
		ev.PrivateProperties = make(map[string]string, len(item.ExtendedProperties.Private))
		for k, v := range item.ExtendedProperties.Private {
			ev.PrivateProperties[k] = v
		}
	}
	return ev
}
