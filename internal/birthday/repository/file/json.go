package file

import (
	"encoding/json"
	"fmt"
	"io"

	"birthday-calendar-sync/internal/model"
)

// jsonRoster accepts either a bare list or {"persons": [...]}.
type jsonRoster struct {
	Persons []entry `json:"persons"`
}

func decodeJSON(r io.Reader) ([]model.Person, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var list []entry
	if err := json.Unmarshal(data, &list); err == nil {
		return toPeople(list)
	}

	var wrapped jsonRoster
	if err := json.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse json roster: %w", err)
	}
	return toPeople(wrapped.Persons)
}
