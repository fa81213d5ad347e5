package birthday

import (
	"sort"
	"time"

	"birthday-calendar-sync/internal/model"
)

// Roster indexes people by PID.
type Roster struct {
	People map[string]model.Person
	// Duplicates lists entries dropped because an earlier one had the same PID.
	Duplicates []model.Person
}

// NewRoster indexes people, keeping the first entry of each PID.
func NewRoster(people []model.Person) Roster {
	r := Roster{People: make(map[string]model.Person, len(people))}
	for _, p := range people {
		pid := p.PID()
		if _, ok := r.People[pid]; ok {
			r.Duplicates = append(r.Duplicates, p)
			continue
		}
		r.People[pid] = p
	}
	return r
}

// PIDs returns the roster PIDs in sorted order.
func (r Roster) PIDs() []string {
	pids := make([]string, 0, len(r.People))
	for pid := range r.People {
		pids = append(pids, pid)
	}
	sort.Strings(pids)
	return pids
}

// Expected builds the ExpectedSet of the roster for the look-ahead window.
func (r Roster) Expected(today time.Time, lookAhead int) (ExpectedSet, error) {
	expected := make(ExpectedSet, len(r.People))
	for pid, p := range r.People {
		occ, err := GenerateOccurrences(pid, p.DOB, today, lookAhead)
		if err != nil {
			return nil, err
		}
		expected[pid] = occ
	}
	return expected, nil
}
