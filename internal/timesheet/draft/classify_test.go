package draft_test

import (
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/draft"
)

// 2026-08-31 is a Monday.
var (
	monday   = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	thursday = monday.AddDate(0, 0, 3)
)

func TestClassifyOutOfOffice(t *testing.T) {
	cases := []struct {
		name  string
		title string
	}{
		{"ooo marker", "OOO - vacation"},
		{"lowercase ooo", "ooo dentist"},
		{"spelled out", "Out of office all day"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := draft.Classify(model.CalendarEvent{Title: tc.title, AllDayDate: thursday}, nil)
			if c.Kind != draft.KindPTO {
				t.Fatalf("kind = %v, want KindPTO", c.Kind)
			}
			if c.Day != "Thursday" {
				t.Errorf("day = %q, want Thursday", c.Day)
			}
		})
	}
}

func TestClassifyOOORequiresAllDayDate(t *testing.T) {
	// A timed event mentioning OOO is not a PTO marker.
	c := draft.Classify(model.CalendarEvent{
		Title: "OOO planning sync",
		Start: monday.Add(9 * time.Hour),
		End:   monday.Add(10 * time.Hour),
	}, nil)
	if c.Kind != draft.KindIgnore {
		t.Errorf("kind = %v, want KindIgnore", c.Kind)
	}
}

func TestClassifyTimedEvents(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		start    time.Time
		end      time.Time
		wantCat  model.Category
		wantHrs  float64
		wantKind draft.Kind
	}{
		{
			name:     "meeting",
			title:    "Weekly standup",
			start:    monday.Add(9 * time.Hour),
			end:      monday.Add(10*time.Hour + 30*time.Minute),
			wantCat:  model.CategoryMeetings,
			wantHrs:  1.5,
			wantKind: draft.KindDuration,
		},
		{
			name:     "task marker means project work",
			title:    "[TASK] migrate billing service",
			start:    monday.Add(13 * time.Hour),
			end:      monday.Add(17 * time.Hour),
			wantCat:  model.CategoryProjectWork,
			wantHrs:  4,
			wantKind: draft.KindDuration,
		},
		{
			name:     "sub-hour duration rounds to 2 decimals",
			title:    "1:1",
			start:    monday.Add(9 * time.Hour),
			end:      monday.Add(9*time.Hour + 20*time.Minute),
			wantCat:  model.CategoryMeetings,
			wantHrs:  0.33,
			wantKind: draft.KindDuration,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := draft.Classify(model.CalendarEvent{Title: tc.title, Start: tc.start, End: tc.end}, nil)
			if c.Kind != tc.wantKind {
				t.Fatalf("kind = %v, want %v", c.Kind, tc.wantKind)
			}
			if c.Category != tc.wantCat {
				t.Errorf("category = %q, want %q", c.Category, tc.wantCat)
			}
			if c.Hours != tc.wantHrs {
				t.Errorf("hours = %v, want %v", c.Hours, tc.wantHrs)
			}
		})
	}
}

func TestClassifyNegativeDurationClampsToZero(t *testing.T) {
	c := draft.Classify(model.CalendarEvent{
		Title: "broken event",
		Start: monday.Add(10 * time.Hour),
		End:   monday.Add(9 * time.Hour),
	}, nil)

	if c.Kind != draft.KindDuration {
		t.Fatalf("kind = %v, want KindDuration", c.Kind)
	}
	if c.Hours != 0 {
		t.Errorf("hours = %v, want 0", c.Hours)
	}
	if !c.Clamped {
		t.Error("expected Clamped to be set")
	}
}

func TestClassifyIgnoresPTODays(t *testing.T) {
	c := draft.Classify(model.CalendarEvent{
		Title: "Morning sync",
		Start: thursday.Add(9 * time.Hour),
		End:   thursday.Add(10 * time.Hour),
	}, map[string]bool{"Thursday": true})

	if c.Kind != draft.KindIgnore {
		t.Errorf("event on a PTO day must be ignored, got kind %v", c.Kind)
	}
}

func TestClassifyIgnoresEventsWithoutTimes(t *testing.T) {
	c := draft.Classify(model.CalendarEvent{Title: "Floating reminder"}, nil)
	if c.Kind != draft.KindIgnore {
		t.Errorf("kind = %v, want KindIgnore", c.Kind)
	}
}

func TestClassifyIgnoresWeekendEvents(t *testing.T) {
	saturday := monday.AddDate(0, 0, 5)
	c := draft.Classify(model.CalendarEvent{
		Title: "Weekend hackathon",
		Start: saturday.Add(10 * time.Hour),
		End:   saturday.Add(12 * time.Hour),
	}, nil)
	if c.Kind != draft.KindIgnore {
		t.Errorf("kind = %v, want KindIgnore", c.Kind)
	}
}
