package gcalendar

import "time"

// DateLayout is the wire layout of all-day event dates.
const DateLayout = "2006-01-02"

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // e.g. "Europe/Paris", ignored for all-day events

	// AllDay creates a date-only event. EndTime is exclusive.
	AllDay bool
	// Transparent marks the event as not blocking time ("free").
	Transparent bool
	// PrivateProperties are stored as private extended properties.
	PrivateProperties map[string]string
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string

	// StartDate and EndDate hold the raw date of all-day events, empty otherwise.
	StartDate string
	EndDate   string
	AllDay    bool

	PrivateProperties map[string]string
}

// ListEventsRequest is the input for listing Google Calendar events.
// Pagination is handled by the client; the result is always complete.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64 // page size, defaults to defaultPageSize

	// PrivateProperties restricts the result to events carrying all of these
	// private extended properties.
	PrivateProperties map[string]string
}

// Calendar is an entry of the authenticated user's calendar list.
type Calendar struct {
	ID      string
	Summary string
	Primary bool
}
