package file

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-vcard"

	"birthday-calendar-sync/internal/model"
)

// Only layouts carrying a year; "--MMDD" birthdays cannot produce an age.
var vcardDateLayouts = []string{
	model.DateLayout,
	"20060102",
	time.RFC3339,
	"20060102T150405Z",
}

func (r *implRepository) decodeVCard(ctx context.Context, in io.Reader) ([]model.Person, error) {
	dec := vcard.NewDecoder(in)

	var people []model.Person
	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		name := cardName(card)
		bday := card.Get(vcard.FieldBirthday)
		if name == "" || bday == nil || bday.Value == "" {
			continue
		}

		dob, ok := parseVCardDate(bday.Value)
		if !ok {
			r.l.Warnf(ctx, "roster: skipping %s, birthday %q has no usable year", name, bday.Value)
			continue
		}
		people = append(people, model.Person{Name: name, DOB: dob})
	}
	return people, nil
}

func cardName(card vcard.Card) string {
	if fn := strings.TrimSpace(card.PreferredValue(vcard.FieldFormattedName)); fn != "" {
		return fn
	}
	if n := card.Name(); n != nil {
		return strings.TrimSpace(strings.Join([]string{n.GivenName, n.FamilyName}, " "))
	}
	return ""
}

func parseVCardDate(value string) (time.Time, bool) {
	for _, layout := range vcardDateLayouts {
		if t, err := time.Parse(layout, strings.TrimSpace(value)); err == nil {
			return model.CivilDate(t), true
		}
	}
	return time.Time{}, false
}
