package gcalendar_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"birthday-calendar-sync/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient, gcalendar.WithRateLimit(0))
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestCalendarClient(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"auth_uri": "https://accounts.google.com/o/oauth2/auth",
			"token_uri": "https://oauth2.googleapis.com/token",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("Initialize with broken JWT/OAuth config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Initialize from installed app config", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds),
			gcalendar.WithTokenStore(gcalendar.FileTokenStore{Path: tokenPath}))
		if err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("Initialize from installed app config bad token", func(t *testing.T) {
		tokenPath := filepath.Join(t.TempDir(), "token.json")
		os.WriteFile(tokenPath, []byte(`{"broken": true`), 0600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds),
			gcalendar.WithTokenStore(gcalendar.FileTokenStore{Path: tokenPath}))
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Initialize from installed app config missing token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds),
			gcalendar.WithTokenStore(gcalendar.FileTokenStore{Path: filepath.Join(t.TempDir(), "none.json")}))
		if !errors.Is(err, gcalendar.ErrTokenNotFound) {
			t.Fatalf("expected ErrTokenNotFound, got %v", err)
		}
	})

	t.Run("Initialize from File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "creds.json")
		os.WriteFile(path, []byte(`{"broken":true}`), 0600)

		_, err := gcalendar.NewClientFromCredentialsFile(context.Background(), path)
		if err == nil {
			t.Errorf("expected failure loading broken file")
		}

		_, err = gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json")
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})

	t.Run("Create all-day Event E2E", func(t *testing.T) {
		var body map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/birthdays@group/events" && r.Method == http.MethodPost {
				raw, _ := io.ReadAll(r.Body)
				json.Unmarshal(raw, &body)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"id": "event-123",
					"htmlLink": "https://calendar.google.com/event-uri",
					"start": {"date": "2024-03-15"},
					"end": {"date": "2024-03-16"},
					"extendedProperties": {"private": {"tag": "generated-birthday-event", "pid": "adalovelace19900315"}}
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID:        "birthdays@group",
			Summary:           "Title",
			Description:       "Desc",
			StartTime:         start,
			EndTime:           start.AddDate(0, 0, 1),
			AllDay:            true,
			Transparent:       true,
			PrivateProperties: map[string]string{"tag": "generated-birthday-event", "pid": "adalovelace19900315"},
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || !event.AllDay || event.StartDate != "2024-03-15" {
			t.Errorf("unexpected event: %+v", event)
		}
		if event.PrivateProperties["pid"] != "adalovelace19900315" {
			t.Errorf("unexpected private properties: %v", event.PrivateProperties)
		}

		startBody, _ := body["start"].(map[string]any)
		endBody, _ := body["end"].(map[string]any)
		if startBody["date"] != "2024-03-15" || endBody["date"] != "2024-03-16" {
			t.Errorf("unexpected date range sent: %v %v", startBody, endBody)
		}
		if body["transparency"] != "transparent" {
			t.Errorf("expected transparent event, got %v", body["transparency"])
		}
	})

	t.Run("List Events follows pages E2E", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/test-fail/events" && r.Method == http.MethodGet {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
				atomic.AddInt32(&calls, 1)
				if got := r.URL.Query().Get("privateExtendedProperty"); got != "tag=generated-birthday-event" {
					t.Errorf("unexpected filter %q", got)
				}
				w.WriteHeader(http.StatusOK)
				if r.URL.Query().Get("pageToken") == "" {
					w.Write([]byte(`{
						"nextPageToken": "page-2",
						"items": [{"id": "event-1", "summary": "One", "start": {"date": "2024-05-01"}, "end": {"date": "2024-05-02"}}]
					}`))
					return
				}
				w.Write([]byte(`{
					"items": [{"id": "event-2", "summary": "Two", "start": {"dateTime": "2024-05-03T10:00:00Z"}, "end": {"dateTime": "2024-05-03T11:00:00Z"}}]
				}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
			CalendarID:        "primary",
			TimeMin:           time.Now(),
			PrivateProperties: map[string]string{"tag": "generated-birthday-event"},
		})
		if err != nil {
			t.Fatalf("failed to list events: %v", err)
		}
		if len(events) != 2 || calls != 2 {
			t.Fatalf("expected 2 events over 2 pages, got %d events in %d calls", len(events), calls)
		}
		if !events[0].AllDay || events[0].StartDate != "2024-05-01" {
			t.Errorf("unexpected all-day event: %+v", events[0])
		}
		if events[1].AllDay || events[1].StartTime.Hour() != 10 {
			t.Errorf("unexpected timed event: %+v", events[1])
		}

		_, err = client.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "test-fail"})
		var apiErr *gcalendar.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError || !apiErr.Temporary() {
			t.Fatalf("expected temporary api error on test-fail, got %v", err)
		}
	})

	t.Run("Create Event Error E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		})
		_, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID: "primary",
		})
		var apiErr *gcalendar.APIError
		if !errors.As(err, &apiErr) || apiErr.Temporary() {
			t.Fatalf("expected permanent api error, got %v", err)
		}
	})

	t.Run("Delete Event E2E", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				w.WriteHeader(http.StatusMethodNotAllowed)
				return
			}
			switch r.URL.Path {
			case "/calendar/v3/calendars/primary/events/ok":
				w.WriteHeader(http.StatusNoContent)
			case "/calendar/v3/calendars/primary/events/gone":
				w.WriteHeader(http.StatusGone)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		})

		if err := client.DeleteEvent(context.Background(), "primary", "ok"); err != nil {
			t.Fatalf("unexpected delete error: %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "primary", "gone"); !errors.Is(err, gcalendar.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for 410, got %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "primary", "missing"); !errors.Is(err, gcalendar.ErrNotFound) {
			t.Fatalf("expected ErrNotFound for 404, got %v", err)
		}
		if err := client.DeleteEvent(context.Background(), "primary", ""); err == nil {
			t.Fatalf("expected error for empty id")
		}
	})

	t.Run("Find calendars by name is cached", func(t *testing.T) {
		var calls int32
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/users/me/calendarList" {
				atomic.AddInt32(&calls, 1)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"items": [
					{"id": "a@group", "summary": "Birthdays"},
					{"id": "b@group", "summary": "Work"},
					{"id": "c@group", "summary": "Team", "summaryOverride": "birthdays"},
					{"id": "me@example.com", "summary": "me@example.com", "primary": true}
				]}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		matches, err := client.FindCalendarsByName(context.Background(), "Birthdays")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(matches) != 2 {
			t.Fatalf("expected 2 matches, got %v", matches)
		}
		if _, err := client.FindCalendarsByName(context.Background(), "birthdays "); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if calls != 1 {
			t.Errorf("expected cached lookup, got %d calls", calls)
		}

		all, err := client.ListCalendars(context.Background())
		if err != nil || len(all) != 4 || !all[3].Primary {
			t.Fatalf("unexpected calendar list: %v %v", all, err)
		}
	})
}

func TestFileTokenStore(t *testing.T) {
	store, err := gcalendar.NewTokenStore(gcalendar.TokenStoreFile, filepath.Join(t.TempDir(), "tok.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Load(); !errors.Is(err, gcalendar.ErrTokenNotFound) {
		t.Fatalf("expected ErrTokenNotFound, got %v", err)
	}
	if err := store.Save(&oauth2.Token{AccessToken: "abc", TokenType: "Bearer"}); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	tok, err := store.Load()
	if err != nil || tok.AccessToken != "abc" {
		t.Fatalf("unexpected token %v %v", tok, err)
	}

	if _, err := gcalendar.NewTokenStore("vault", ""); err == nil {
		t.Errorf("expected unknown store error")
	}
}
