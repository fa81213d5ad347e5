package gcalendar

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrNotFound is returned when the event or calendar does not exist (404/410).
	ErrNotFound = errors.New("calendar resource not found")
	// ErrTokenNotFound is returned by a TokenStore holding no token.
	ErrTokenNotFound = errors.New("oauth token not found")
)

// APIError wraps a failed Google Calendar API call.
type APIError struct {
	Op         string
	StatusCode int
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("gcalendar: %s failed with status %d: %v", e.Op, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("gcalendar: %s failed: %v", e.Op, e.Err)
}

func (e *APIError) Unwrap() error { return e.Err }

// Temporary reports whether retrying the call later may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= http.StatusInternalServerError
}

func wrapAPIError(op string, err error) error {
	if err == nil {
		return nil
	}
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		if gerr.Code == http.StatusNotFound || gerr.Code == http.StatusGone {
			return fmt.Errorf("gcalendar: %s: %w", op, ErrNotFound)
		}
		return &APIError{Op: op, StatusCode: gerr.Code, Err: err}
	}
	return &APIError{Op: op, Err: err}
}
