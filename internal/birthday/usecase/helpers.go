package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/birthday/repository"
	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
)

// pass holds everything computed before a calendar is touched.
type pass struct {
	target     model.CalendarTarget
	calendarID string
	today      time.Time
	roster     birthday.Roster
	expected   birthday.ExpectedSet
	existing   birthday.ExistingSet
	malformed  []error
	ops        []birthday.Operation
}

// lockFor serialises passes of one calendar.
func (uc *implUseCase) lockFor(calendar string) *sync.Mutex {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	key := strings.ToLower(calendar)
	lock, ok := uc.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		uc.locks[key] = lock
	}
	return lock
}

// today returns the current civil date in the configured location.
func (uc *implUseCase) today() (civil time.Time, startOfDay time.Time) {
	now := uc.cfg.Now().In(uc.cfg.Location)
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), time.Date(y, m, d, 0, 0, 0, 0, uc.cfg.Location)
}

func (uc *implUseCase) selectTargets(names []string) ([]model.CalendarTarget, error) {
	if len(uc.cfg.Calendars) == 0 {
		return nil, birthday.ErrNoCalendars
	}
	if len(names) == 0 {
		return uc.cfg.Calendars, nil
	}

	targets := make([]model.CalendarTarget, 0, len(names))
	for _, name := range names {
		target, err := uc.findTarget(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (uc *implUseCase) findTarget(name string) (model.CalendarTarget, error) {
	for _, t := range uc.cfg.Calendars {
		if strings.EqualFold(t.NameOrID, strings.TrimSpace(name)) {
			return t, nil
		}
	}
	return model.CalendarTarget{}, fmt.Errorf("%w: %q", birthday.ErrUnknownCalendar, name)
}

// resolveCalendarID maps a configured name to a calendar id. Values that already
// look like ids are used as-is.
func (uc *implUseCase) resolveCalendarID(ctx context.Context, nameOrID string) (string, error) {
	if nameOrID == "primary" || strings.Contains(nameOrID, "@") {
		return nameOrID, nil
	}

	matches, err := uc.calendar.FindCalendarsByName(ctx, nameOrID)
	if err != nil {
		return "", fmt.Errorf("failed to look up calendar %q: %w", nameOrID, err)
	}
	if len(matches) != 1 {
		return "", &birthday.AmbiguousCalendarNameError{Name: nameOrID, Matches: len(matches)}
	}
	return matches[0].ID, nil
}

func (uc *implUseCase) loadRoster(ctx context.Context, target model.CalendarTarget) (birthday.Roster, error) {
	path := target.RosterPath
	if path == "" {
		path = uc.cfg.RosterPath
	}

	people, err := uc.roster.LoadPeople(ctx, repository.LoadPeopleOptions{Path: path})
	if err != nil {
		return birthday.Roster{}, err
	}

	roster := birthday.NewRoster(people)
	for _, dup := range roster.Duplicates {
		uc.l.Warnf(ctx, "birthday: %s (%s) shares its identity with another roster entry, ignoring it",
			dup.Name, dup.DOB.Format(model.DateLayout))
	}
	return roster, nil
}

// expectation loads the roster and derives the expected occurrences of a target.
func (uc *implUseCase) expectation(ctx context.Context, target model.CalendarTarget) (birthday.Roster, birthday.ExpectedSet, time.Time, error) {
	roster, err := uc.loadRoster(ctx, target)
	if err != nil {
		return birthday.Roster{}, nil, time.Time{}, err
	}
	today, _ := uc.today()
	expected, err := roster.Expected(today, target.LookAhead)
	if err != nil {
		return birthday.Roster{}, nil, time.Time{}, err
	}
	return roster, expected, today, nil
}

// fetchExisting lists every tagged event from today on and groups it by PID.
func (uc *implUseCase) fetchExisting(ctx context.Context, calendarID string) (birthday.ExistingSet, []error, error) {
	_, startOfDay := uc.today()
	events, err := uc.calendar.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID:        calendarID,
		TimeMin:           startOfDay,
		PrivateProperties: map[string]string{birthday.TagKey: birthday.TagValue},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list birthday events: %w", err)
	}

	existing, malformed := birthday.BuildExistingSet(events)
	return existing, malformed, nil
}

// prepare runs everything up to and including the diff.
func (uc *implUseCase) prepare(ctx context.Context, target model.CalendarTarget) (pass, error) {
	p := pass{target: target}

	calendarID, err := uc.resolveCalendarID(ctx, target.NameOrID)
	if err != nil {
		return p, err
	}
	p.calendarID = calendarID

	p.roster, p.expected, p.today, err = uc.expectation(ctx, target)
	if err != nil {
		return p, err
	}

	p.existing, p.malformed, err = uc.fetchExisting(ctx, calendarID)
	if err != nil {
		return p, err
	}
	for _, mErr := range p.malformed {
		uc.l.Warnf(ctx, "birthday: skipping event: %v", mErr)
	}
	uc.metrics.AddMalformed(len(p.malformed))

	p.ops = birthday.Reconcile(p.expected, p.existing, birthday.ReconcileOptions{
		Prune: uc.cfg.Prune,
		Today: p.today,
	})
	return p, nil
}

func countExisting(existing birthday.ExistingSet) int {
	n := 0
	for _, events := range existing {
		n += len(events)
	}
	return n
}
