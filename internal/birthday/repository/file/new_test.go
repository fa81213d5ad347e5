package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-calendar-sync/internal/birthday/repository"
	"birthday-calendar-sync/internal/birthday/repository/file"
	pkgLog "birthday-calendar-sync/pkg/log"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadPeople(t *testing.T) {
	ctx := context.Background()
	repo := file.New(pkgLog.NewNop())
	adaDOB := time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)

	cases := map[string]struct {
		file    string
		content string
	}{
		"json list": {"roster.json", `[{"name": "Ada Lovelace", "dob": "1815-12-10"}, {"name": "Grace Hopper", "dob": "1906-12-09"}]`},
		"json wrapped": {"roster.json", `{"persons": [{"name": "Ada Lovelace", "dob": "1815-12-10"}, {"name": "Grace Hopper", "dob": "1906-12-09"}]}`},
		"yaml list": {"roster.yaml", "- name: Ada Lovelace\n  dob: 1815-12-10\n- name: Grace Hopper\n  dob: \"1906-12-09\"\n"},
		"yaml wrapped": {"roster.yml", "persons:\n  - name: Ada Lovelace\n    dob: \"1815-12-10\"\n  - name: Grace Hopper\n    dob: \"1906-12-09\"\n"},
		"vcard": {"contacts.vcf", "BEGIN:VCARD\r\nVERSION:3.0\r\nFN:Ada Lovelace\r\nBDAY:1815-12-10\r\nEND:VCARD\r\n" +
			"BEGIN:VCARD\r\nVERSION:3.0\r\nN:Hopper;Grace;;;\r\nBDAY:19061209\r\nEND:VCARD\r\n" +
			"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:No Year\r\nBDAY:--0704\r\nEND:VCARD\r\n" +
			"BEGIN:VCARD\r\nVERSION:3.0\r\nFN:No Birthday\r\nEND:VCARD\r\n"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			people, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: writeFile(t, tc.file, tc.content)})
			require.NoError(t, err)
			require.Len(t, people, 2)
			assert.Equal(t, "Ada Lovelace", people[0].Name)
			assert.Equal(t, adaDOB, people[0].DOB)
			assert.Equal(t, "Grace Hopper", people[1].Name)
			assert.Equal(t, "gracehopper19061209", people[1].PID())
		})
	}

	t.Run("explicit format wins over extension", func(t *testing.T) {
		path := writeFile(t, "roster.txt", `- {name: Ada Lovelace, dob: "1815-12-10"}`)
		people, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: path, Format: file.FormatYAML})
		require.NoError(t, err)
		assert.Len(t, people, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: filepath.Join(t.TempDir(), "nope.json")})
		assert.ErrorIs(t, err, repository.ErrRosterNotFound)
	})

	t.Run("invalid dob", func(t *testing.T) {
		path := writeFile(t, "roster.json", `[{"name": "Ada", "dob": "10/12/1815"}]`)
		_, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: path})
		assert.ErrorIs(t, err, repository.ErrInvalidRosterEntry)
	})

	t.Run("missing name", func(t *testing.T) {
		path := writeFile(t, "roster.json", `[{"name": " ", "dob": "1815-12-10"}]`)
		_, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: path})
		assert.ErrorIs(t, err, repository.ErrInvalidRosterEntry)
	})

	t.Run("unsupported format", func(t *testing.T) {
		path := writeFile(t, "roster.json", `[]`)
		_, err := repo.LoadPeople(ctx, repository.LoadPeopleOptions{Path: path, Format: "xml"})
		assert.ErrorIs(t, err, repository.ErrUnsupportedFormat)
	})
}
