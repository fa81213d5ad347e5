package birthday

import (
	"context"

	"birthday-calendar-sync/pkg/gcalendar"
)

// UseCase defines the business logic interface for the birthday domain.
type UseCase interface {
	// Sync reconciles every selected calendar with the roster.
	Sync(ctx context.Context, input SyncInput) (SyncOutput, error)

	// Plan computes the operations for one calendar without applying them.
	Plan(ctx context.Context, calendar string) (CalendarResult, error)

	// ExportICS renders the expected birthdays of one calendar as iCalendar data.
	ExportICS(ctx context.Context, calendar string) ([]byte, error)

	// ListCalendars lists the calendars visible to the configured account.
	ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error)
}
