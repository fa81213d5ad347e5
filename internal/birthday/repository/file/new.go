package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"birthday-calendar-sync/internal/birthday/repository"
	"birthday-calendar-sync/internal/model"
	pkgLog "birthday-calendar-sync/pkg/log"
)

const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatVCard = "vcard"
)

type implRepository struct {
	l pkgLog.Logger
}

// New creates a roster repository reading local files.
func New(l pkgLog.Logger) repository.RosterRepository {
	return &implRepository{l: l}
}

func (r *implRepository) LoadPeople(ctx context.Context, opt repository.LoadPeopleOptions) ([]model.Person, error) {
	format := opt.Format
	if format == "" {
		format = formatFromExt(opt.Path)
	}

	f, err := os.Open(opt.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", repository.ErrRosterNotFound, opt.Path)
		}
		return nil, fmt.Errorf("failed to open roster: %w", err)
	}
	defer f.Close()

	var people []model.Person
	switch format {
	case FormatJSON:
		people, err = decodeJSON(f)
	case FormatYAML:
		people, err = decodeYAML(f)
	case FormatVCard:
		people, err = r.decodeVCard(ctx, f)
	default:
		return nil, fmt.Errorf("%w: %q", repository.ErrUnsupportedFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", opt.Path, err)
	}

	r.l.Debugf(ctx, "roster: loaded %d people from %s", len(people), opt.Path)
	return people, nil
}

func formatFromExt(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".vcf", ".vcard":
		return FormatVCard
	default:
		return FormatJSON
	}
}

// entry is the external representation of a roster person.
type entry struct {
	Name string `json:"name" yaml:"name"`
	DOB  string `json:"dob" yaml:"dob"`
}

func (e entry) toPerson(i int) (model.Person, error) {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return model.Person{}, fmt.Errorf("%w: entry %d has no name", repository.ErrInvalidRosterEntry, i)
	}
	dob, err := model.ParseDate(e.DOB)
	if err != nil {
		return model.Person{}, fmt.Errorf("%w: entry %d (%s) has invalid dob %q", repository.ErrInvalidRosterEntry, i, name, e.DOB)
	}
	return model.Person{Name: name, DOB: dob}, nil
}

func toPeople(entries []entry) ([]model.Person, error) {
	people := make([]model.Person, 0, len(entries))
	for i, e := range entries {
		p, err := e.toPerson(i)
		if err != nil {
			return nil, err
		}
		people = append(people, p)
	}
	return people, nil
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster: %w", err)
	}
	return data, nil
}
