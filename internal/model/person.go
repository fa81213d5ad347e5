package model

import (
	"strings"
	"time"
)

// DateLayout is the ISO date layout used for dates of birth and event dates.
const DateLayout = "2006-01-02"

// Person is one roster entry.
type Person struct {
	Name string    // Display name, e.g. "Ada Lovelace"
	DOB  time.Time // Date of birth, civil date at UTC midnight
}

// PID derives the person identifier embedded in every generated event.
// Two people with the same name and date of birth share a PID.
func (p Person) PID() string {
	return NormalizeName(p.Name) + p.DOB.Format("20060102")
}

// NormalizeName lowercases name and strips its spaces.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// CivilDate truncates t to its calendar date at UTC midnight.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date into a civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}
