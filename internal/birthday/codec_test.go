package birthday_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
)

func TestEncodeEvent(t *testing.T) {
	p := model.Person{Name: "Ada Lovelace", DOB: date(1990, 3, 15)}
	o := model.Occurrence{PID: p.PID(), Date: date(2024, 3, 15), Age: 34}

	req := birthday.EncodeEvent("cal-1", p, o)

	assert.Equal(t, "cal-1", req.CalendarID)
	assert.Equal(t, "🎂 Ada Lovelace's birthday", req.Summary)
	assert.Equal(t, "Ada Lovelace turns 34 today!", req.Description)
	assert.True(t, req.AllDay)
	assert.Equal(t, date(2024, 3, 15), req.StartTime)
	assert.Equal(t, date(2024, 3, 16), req.EndTime, "end date must be exclusive")
	assert.Equal(t, map[string]string{"tag": "generated-birthday-event", "pid": "adalovelace19900315"}, req.PrivateProperties)
}

func TestDecodeEvent(t *testing.T) {
	tagged := func(pid string) map[string]string {
		return map[string]string{birthday.TagKey: birthday.TagValue, birthday.PIDKey: pid}
	}

	t.Run("all-day event", func(t *testing.T) {
		me, err := birthday.DecodeEvent(gcalendar.Event{
			ID:                "e1",
			Summary:           "edited by hand",
			StartDate:         "2025-03-15",
			AllDay:            true,
			PrivateProperties: tagged("adalovelace19900315"),
		})
		require.NoError(t, err)
		assert.Equal(t, model.ManagedEvent{EventID: "e1", PID: "adalovelace19900315", Date: date(2025, 3, 15)}, me)
	})

	t.Run("timed event uses its local date", func(t *testing.T) {
		loc := time.FixedZone("UTC-5", -5*3600)
		me, err := birthday.DecodeEvent(gcalendar.Event{
			ID:                "e2",
			StartTime:         time.Date(2025, 3, 15, 22, 0, 0, 0, loc),
			PrivateProperties: tagged("p"),
		})
		require.NoError(t, err)
		assert.Equal(t, date(2025, 3, 15), me.Date)
	})

	malformed := map[string]gcalendar.Event{
		"no id":       {StartDate: "2025-03-15", PrivateProperties: tagged("p")},
		"no tag":      {ID: "e", StartDate: "2025-03-15", PrivateProperties: map[string]string{"pid": "p"}},
		"wrong tag":   {ID: "e", StartDate: "2025-03-15", PrivateProperties: map[string]string{"tag": "other", "pid": "p"}},
		"empty pid":   {ID: "e", StartDate: "2025-03-15", PrivateProperties: tagged(" ")},
		"no start":    {ID: "e", PrivateProperties: tagged("p")},
		"bad start":   {ID: "e", StartDate: "2025-13-40", PrivateProperties: tagged("p")},
		"no metadata": {ID: "e", StartDate: "2025-03-15"},
	}
	for name, ev := range malformed {
		t.Run(name, func(t *testing.T) {
			_, err := birthday.DecodeEvent(ev)
			require.Error(t, err)
			assert.ErrorIs(t, err, birthday.ErrMalformedEvent)
			var me *birthday.MalformedEventError
			assert.True(t, errors.As(err, &me))
		})
	}
}

func TestBuildExistingSet(t *testing.T) {
	events := []gcalendar.Event{
		{ID: "a1", StartDate: "2025-03-15", PrivateProperties: map[string]string{"tag": birthday.TagValue, "pid": "ada"}},
		{ID: "b1", StartDate: "2025-06-01", PrivateProperties: map[string]string{"tag": birthday.TagValue, "pid": "bob"}},
		{ID: "a2", StartDate: "2026-03-15", PrivateProperties: map[string]string{"tag": birthday.TagValue, "pid": "ada"}},
		{ID: "x", StartDate: "2026-03-15", PrivateProperties: map[string]string{"tag": birthday.TagValue}},
	}

	existing, malformed := birthday.BuildExistingSet(events)

	assert.Len(t, existing, 2)
	assert.Len(t, existing["ada"], 2)
	assert.Len(t, existing["bob"], 1)
	require.Len(t, malformed, 1)
	assert.ErrorIs(t, malformed[0], birthday.ErrMalformedEvent)
}
