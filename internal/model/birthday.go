package model

import "time"

// Occurrence is one future birthday of a person.
type Occurrence struct {
	PID  string
	Date time.Time
	Age  int
}

// ManagedEvent is the part of a generated calendar event the reconciler looks at.
type ManagedEvent struct {
	EventID string
	PID     string
	Date    time.Time
}

// CalendarTarget is one calendar kept in sync.
type CalendarTarget struct {
	NameOrID   string
	LookAhead  int
	RosterPath string // optional, overrides the global roster
}
