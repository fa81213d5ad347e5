package gcalendar

import (
	"context"
	"strings"
)

// ListCalendars returns the authenticated user's calendar list.
func (c *Client) ListCalendars(ctx context.Context) ([]Calendar, error) {
	var out []Calendar
	pageToken := ""
	for {
		call := c.service.CalendarList.List().Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		if err := c.wait(ctx); err != nil {
			return nil, err
		}
		page, err := call.Do()
		if err != nil {
			return nil, wrapAPIError("list calendars", err)
		}
		for _, item := range page.Items {
			summary := item.Summary
			if item.SummaryOverride != "" {
				summary = item.SummaryOverride
			}
			out = append(out, Calendar{ID: item.Id, Summary: summary, Primary: item.Primary})
		}
		if page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	return out, nil
}

// FindCalendarsByName returns every calendar whose summary equals name
// (case-insensitive). Lookups are cached for a few minutes.
func (c *Client) FindCalendarsByName(ctx context.Context, name string) ([]Calendar, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if cached, ok := c.calendars.Get(key); ok {
		return cached, nil
	}

	all, err := c.ListCalendars(ctx)
	if err != nil {
		return nil, err
	}

	var matches []Calendar
	for _, cal := range all {
		if strings.EqualFold(strings.TrimSpace(cal.Summary), key) {
			matches = append(matches, cal)
		}
	}
	c.calendars.Add(key, matches)
	return matches, nil
}
