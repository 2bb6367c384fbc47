package gcalendar_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/pkg/gcalendar"
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

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNewClientFromCredentialsJSON(t *testing.T) {
	mockCreds := `{
		"installed": {
			"client_id": "test-client-id.apps.googleusercontent.com",
			"project_id": "test-project",
			"client_secret": "test-secret",
			"redirect_uris": ["http://localhost"]
		}
	}`

	t.Run("broken config", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`))
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("installed app config with token file", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"access_token": "dummy", "token_type": "Bearer", "expiry": "2030-01-01T00:00:00Z"}`), 0644)
		defer os.Remove("token.json")

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err != nil {
			t.Fatalf("expected parsing to succeed: %v", err)
		}
	})

	t.Run("installed app config bad token", func(t *testing.T) {
		os.WriteFile("token.json", []byte(`{"broken": true`), 0644)
		defer os.Remove("token.json")

		if _, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(mockCreds)); err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(context.Background(), "non-existent-file-path-12345.json"); err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestListEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/calendar/v3/calendars/primary/events" && r.Method == http.MethodGet {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"items": [
					{
						"id": "event-1",
						"summary": "OOO - vacation",
						"start": { "date": "2026-09-03" },
						"end": { "date": "2026-09-04" }
					},
					{
						"id": "event-2",
						"summary": "Weekly standup",
						"start": { "dateTime": "2026-08-31T09:00:00Z" },
						"end": { "dateTime": "2026-08-31T09:30:00Z" }
					}
				]
			}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	events, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		TimeMax: time.Date(2026, 9, 4, 23, 59, 59, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	allDay := events[0]
	if allDay.AllDayDate.IsZero() {
		t.Error("all-day event missing AllDayDate")
	}
	if !allDay.StartTime.IsZero() {
		t.Error("all-day event must not carry StartTime")
	}

	timed := events[1]
	if timed.StartTime.IsZero() || timed.EndTime.IsZero() {
		t.Error("timed event missing StartTime/EndTime")
	}
	if got := timed.EndTime.Sub(timed.StartTime); got != 30*time.Minute {
		t.Errorf("duration = %v, want 30m", got)
	}
}

func TestListEventsServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		TimeMin: time.Now(),
		TimeMax: time.Now().Add(time.Hour),
	})
	if err == nil {
		t.Fatal("expected error")
	}
}
