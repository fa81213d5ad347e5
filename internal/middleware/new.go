package middleware

import (
	"birthday-calendar-sync/pkg/log"
)

type Middleware struct {
	l      log.Logger
	apiKey string
}

// New builds the middleware set. An empty apiKey disables authentication.
func New(l log.Logger, apiKey string) Middleware {
	return Middleware{
		l:      l,
		apiKey: apiKey,
	}
}
