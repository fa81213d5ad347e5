package file

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"birthday-calendar-sync/internal/model"
)

func decodeYAML(r io.Reader) ([]model.Person, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, err
	}

	var list []entry
	if err := yaml.Unmarshal(data, &list); err == nil {
		return toPeople(list)
	}

	var wrapped struct {
		Persons []entry `yaml:"persons"`
	}
	if err := yaml.Unmarshal(data, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to parse yaml roster: %w", err)
	}
	return toPeople(wrapped.Persons)
}
