package repository

import "errors"

var (
	ErrRosterNotFound     = errors.New("roster file not found")
	ErrUnsupportedFormat  = errors.New("unsupported roster format")
	ErrInvalidRosterEntry = errors.New("invalid roster entry")
)
