package session

import (
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/draft"
)

func seedDraft(t *testing.T, state *draft.State) {
	t.Helper()
	week := draft.CurrentWeek(time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC))
	state.Replace(draft.Build(t.Context(), nil, week, nil))
}

func TestGetOrCreateReturnsSameState(t *testing.T) {
	store, err := NewStore(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := store.GetOrCreate("session-a")
	seedDraft(t, a)

	again := store.GetOrCreate("session-a")
	d, err := again.Get()
	if err != nil {
		t.Fatalf("draft should survive across lookups: %v", err)
	}
	if len(d.Days) != 5 {
		t.Errorf("expected 5 days, got %d", len(d.Days))
	}
}

func TestSessionsAreIsolated(t *testing.T) {
	store, err := NewStore(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a := store.GetOrCreate("session-a")
	seedDraft(t, a)

	b := store.GetOrCreate("session-b")
	if _, err := b.Get(); err != draft.ErrNoDraft {
		t.Errorf("fresh session should have no draft, got %v", err)
	}

	if err := a.Mutate("Monday", map[model.Category]float64{model.CategoryPTO: 8}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Get(); err != draft.ErrNoDraft {
		t.Error("mutating one session must not leak into another")
	}
}

func TestEvictionBoundsSessions(t *testing.T) {
	store, err := NewStore(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.GetOrCreate("session-a")
	store.GetOrCreate("session-b")
	store.GetOrCreate("session-c")

	if store.Len() != 2 {
		t.Errorf("expected 2 live sessions, got %d", store.Len())
	}
	if _, ok := store.Get("session-a"); ok {
		t.Error("oldest session should have been evicted")
	}
}

func TestRemove(t *testing.T) {
	store, err := NewStore(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	store.GetOrCreate("session-a")
	store.Remove("session-a")
	if _, ok := store.Get("session-a"); ok {
		t.Error("removed session still present")
	}
}

func TestDefaultCapacity(t *testing.T) {
	store, err := NewStore(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("new store should be empty")
	}
}
