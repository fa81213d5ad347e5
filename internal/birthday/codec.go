package birthday

import (
	"fmt"
	"strings"
	"time"

	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
)

const (
	summaryFormat     = "🎂 %s's birthday"
	descriptionFormat = "%s turns %d today!"
)

// Summary is the visible title of a person's birthday event.
func Summary(name string) string {
	return fmt.Sprintf(summaryFormat, name)
}

// Description is the visible body of a birthday event.
func Description(name string, age int) string {
	return fmt.Sprintf(descriptionFormat, name, age)
}

// EncodeEvent builds the all-day event for one occurrence. The end date is exclusive.
func EncodeEvent(calendarID string, p model.Person, o model.Occurrence) gcalendar.CreateEventRequest {
	day := model.CivilDate(o.Date)
	return gcalendar.CreateEventRequest{
		CalendarID:  calendarID,
		Summary:     Summary(p.Name),
		Description: Description(p.Name, o.Age),
		StartTime:   day,
		EndTime:     day.AddDate(0, 0, 1),
		AllDay:      true,
		Transparent: true,
		PrivateProperties: map[string]string{
			TagKey: TagValue,
			PIDKey: o.PID,
		},
	}
}

// DecodeEvent validates a fetched event and projects it to a ManagedEvent.
// The PID comes from the private properties, never from the visible text.
func DecodeEvent(ev gcalendar.Event) (model.ManagedEvent, error) {
	if ev.ID == "" {
		return model.ManagedEvent{}, &MalformedEventError{Reason: "missing event id"}
	}
	if ev.PrivateProperties[TagKey] != TagValue {
		return model.ManagedEvent{}, &MalformedEventError{EventID: ev.ID, Reason: "missing generated-event tag"}
	}
	pid := strings.TrimSpace(ev.PrivateProperties[PIDKey])
	if pid == "" {
		return model.ManagedEvent{}, &MalformedEventError{EventID: ev.ID, Reason: "missing pid"}
	}

	date, err := eventDate(ev)
	if err != nil {
		return model.ManagedEvent{}, &MalformedEventError{EventID: ev.ID, Reason: err.Error()}
	}

	return model.ManagedEvent{EventID: ev.ID, PID: pid, Date: date}, nil
}

func eventDate(ev gcalendar.Event) (time.Time, error) {
	if ev.StartDate != "" {
		d, err := model.ParseDate(ev.StartDate)
		if err != nil {
			return time.Time{}, fmt.Errorf("unparseable start date %q", ev.StartDate)
		}
		return d, nil
	}
	if !ev.StartTime.IsZero() {
		return model.CivilDate(ev.StartTime), nil
	}
	return time.Time{}, fmt.Errorf("missing start date")
}

// BuildExistingSet decodes events and groups them by PID in a single pass.
// Malformed events are left out and reported.
func BuildExistingSet(events []gcalendar.Event) (ExistingSet, []error) {
	existing := make(ExistingSet)
	var malformed []error
	for _, ev := range events {
		me, err := DecodeEvent(ev)
		if err != nil {
			malformed = append(malformed, err)
			continue
		}
		existing[me.PID] = append(existing[me.PID], me)
	}
	return existing, malformed
}
