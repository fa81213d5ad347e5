package birthday

import (
	"time"

	"birthday-calendar-sync/internal/model"
)

const (
	// TagKey and TagValue mark every event this service generates.
	TagKey   = "tag"
	TagValue = "generated-birthday-event"
	// PIDKey holds the person identifier in the event's private properties.
	PIDKey = "pid"

	DefaultLookAhead = 10
)

// ExpectedSet maps a PID to the person's next birthdays, ordered by date.
type ExpectedSet map[string][]model.Occurrence

// ExistingSet maps a PID to its managed events. Order within a group is irrelevant.
type ExistingSet map[string][]model.ManagedEvent

// OpKind is the kind of a reconciliation operation.
type OpKind string

const (
	OpCreate OpKind = "create"
	OpDelete OpKind = "delete"
)

// Operation is one change needed to converge a calendar.
// Occurrence is set for creates, EventID for deletes.
type Operation struct {
	Kind       OpKind
	PID        string
	Occurrence model.Occurrence
	EventID    string
	Date       time.Time
}

// ReconcileOptions tunes Reconcile.
type ReconcileOptions struct {
	// Prune also deletes, for people still in the roster, duplicate events on
	// one date and events dated on or after Today that are not expected.
	Prune bool
	Today time.Time
}

// SyncInput selects what a sync run covers.
type SyncInput struct {
	// Calendars limits the run to these configured calendars. Empty means all.
	Calendars []string
	DryRun    bool
}

// CalendarResult is the outcome of one reconciliation pass.
type CalendarResult struct {
	Calendar    string
	CalendarID  string
	Existing    int
	Malformed   int
	Operations  []Operation
	Created     int
	Deleted     int
	AlreadyGone int
	Failed      int
	Skipped     int
	DryRun      bool
	Converged   *bool
	Err         error
}

// SyncOutput aggregates the results of a run.
type SyncOutput struct {
	RunID   string
	Results []CalendarResult
}

// Failed reports whether any calendar pass or operation failed.
func (o SyncOutput) Failed() bool {
	for _, r := range o.Results {
		if r.Err != nil || r.Failed > 0 {
			return true
		}
	}
	return false
}
