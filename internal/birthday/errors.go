package birthday

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the birthday package.
var (
	ErrMalformedEvent        = errors.New("malformed birthday event")
	ErrAmbiguousCalendarName = errors.New("calendar name does not match exactly one calendar")
	ErrInvalidLookAhead      = errors.New("look-ahead count must be positive")
	ErrUnknownCalendar       = errors.New("calendar is not configured")
	ErrNoCalendars           = errors.New("no calendars configured")
)

// MalformedEventError reports a tagged event that lacks the metadata needed to manage it.
type MalformedEventError struct {
	EventID string
	Reason  string
}

func (e *MalformedEventError) Error() string {
	return fmt.Sprintf("%v: event %q: %s", ErrMalformedEvent, e.EventID, e.Reason)
}

func (e *MalformedEventError) Is(target error) bool { return target == ErrMalformedEvent }

// AmbiguousCalendarNameError reports a calendar name matching zero or several calendars.
type AmbiguousCalendarNameError struct {
	Name    string
	Matches int
}

func (e *AmbiguousCalendarNameError) Error() string {
	return fmt.Sprintf("%v: %q matched %d calendars", ErrAmbiguousCalendarName, e.Name, e.Matches)
}

func (e *AmbiguousCalendarNameError) Is(target error) bool { return target == ErrAmbiguousCalendarName }
