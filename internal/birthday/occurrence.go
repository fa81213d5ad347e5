package birthday

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"birthday-calendar-sync/internal/model"
)

// GenerateOccurrences returns the next count birthdays of a person born on dob,
// starting with the first one on or after today.
//
// People born on Feb 29 celebrate on Feb 28 in non-leap years.
func GenerateOccurrences(pid string, dob, today time.Time, count int) ([]model.Occurrence, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLookAhead, count)
	}

	dob = model.CivilDate(dob)
	start := model.CivilDate(today)
	if start.Before(dob) {
		start = dob
	}

	rule, err := rrule.NewRRule(yearlyRule(dob, start, count))
	if err != nil {
		return nil, fmt.Errorf("birthday rule for %s: %w", pid, err)
	}

	dates := rule.All()
	if len(dates) != count {
		return nil, fmt.Errorf("birthday rule for %s produced %d dates, want %d", pid, len(dates), count)
	}

	out := make([]model.Occurrence, 0, count)
	for _, d := range dates {
		d = model.CivilDate(d)
		out = append(out, model.Occurrence{
			PID:  pid,
			Date: d,
			Age:  d.Year() - dob.Year(),
		})
	}
	return out, nil
}

func yearlyRule(dob, start time.Time, count int) rrule.ROption {
	opt := rrule.ROption{
		Freq:       rrule.YEARLY,
		Dtstart:    start,
		Count:      count,
		Bymonth:    []int{int(dob.Month())},
		Bymonthday: []int{dob.Day()},
	}
	if dob.Month() == time.February && dob.Day() == 29 {
		// Last day of February: the 29th in leap years, the 28th otherwise.
		opt.Bymonthday = []int{-1}
	}
	return opt
}
