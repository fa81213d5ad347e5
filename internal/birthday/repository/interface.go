package repository

import (
	"context"

	"birthday-calendar-sync/internal/model"
)

// RosterRepository loads the people whose birthdays are kept in sync.
type RosterRepository interface {
	LoadPeople(ctx context.Context, opt LoadPeopleOptions) ([]model.Person, error)
}
