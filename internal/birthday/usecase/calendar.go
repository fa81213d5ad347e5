package usecase

//go:generate mockgen -source=calendar.go -destination=mocks/mocks.go -package=mocks CalendarClient

import (
	"context"

	"birthday-calendar-sync/pkg/gcalendar"
)

// CalendarClient abstracts the Google Calendar API for mocking.
type CalendarClient interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
	FindCalendarsByName(ctx context.Context, name string) ([]gcalendar.Calendar, error)
}

var _ CalendarClient = (*gcalendar.Client)(nil)
