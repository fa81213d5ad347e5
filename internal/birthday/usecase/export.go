package usecase

import (
	"bytes"
	"context"
	"fmt"

	"github.com/emersion/go-ical"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
)

const (
	icsProductID = "-//birthday-calendar-sync//EN"
	icsUIDDomain = "birthday-calendar-sync"
	icsPropPID   = "X-BIRTHDAY-PID"
)

// ExportICS renders the expected birthdays of one calendar as an iCalendar feed.
// Only the roster is read, the remote calendar is not contacted.
func (uc *implUseCase) ExportICS(ctx context.Context, calendar string) ([]byte, error) {
	target, err := uc.findTarget(calendar)
	if err != nil {
		return nil, err
	}

	roster, expected, _, err := uc.expectation(ctx, target)
	if err != nil {
		return nil, err
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, icsProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	stamp := ical.NewProp(ical.PropDateTimeStamp)
	stamp.SetDateTime(uc.cfg.Now().UTC())

	for _, pid := range roster.PIDs() {
		person := roster.People[pid]
		for _, o := range expected[pid] {
			cal.Children = append(cal.Children, icsEvent(person, o, stamp).Component)
		}
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}
	return buf.Bytes(), nil
}

func icsEvent(p model.Person, o model.Occurrence, stamp *ical.Prop) *ical.Event {
	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s-%s@%s", o.PID, o.Date.Format("20060102"), icsUIDDomain))
	event.Props.Set(stamp)
	event.Props.SetText(ical.PropSummary, birthday.Summary(p.Name))
	event.Props.SetText(ical.PropDescription, birthday.Description(p.Name, o.Age))
	event.Props.SetText(ical.PropTransparency, "TRANSPARENT")
	event.Props.SetText(icsPropPID, o.PID)

	start := ical.NewProp(ical.PropDateTimeStart)
	start.SetDate(o.Date)
	event.Props.Set(start)

	end := ical.NewProp(ical.PropDateTimeEnd)
	end.SetDate(o.Date.AddDate(0, 0, 1))
	event.Props.Set(end)

	return event
}

// ListCalendars lists the calendars visible to the configured account.
func (uc *implUseCase) ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error) {
	cals, err := uc.calendar.ListCalendars(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "birthday: failed to list calendars: %v", err)
		return nil, err
	}
	return cals, nil
}
