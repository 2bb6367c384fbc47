package draft_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/draft"
)

func TestApplySingleIntentClearsDay(t *testing.T) {
	// "Set Tuesday to 5 hours" on a draft with prior Meetings hours: the day
	// is cleared first, so only Misc remains.
	events := []model.CalendarEvent{
		{Title: "Standup", Start: monday.AddDate(0, 0, 1).Add(9 * time.Hour), End: monday.AddDate(0, 0, 1).Add(11 * time.Hour)},
	}
	s := draft.NewState()
	s.Replace(draft.Build(context.Background(), &mockLogger{}, draft.CurrentWeek(monday), events))

	updated, confirmation, err := s.Apply([]model.EditIntent{
		{Day: "Tuesday", Hours: 5, Category: model.CategoryMisc},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tue := updated.Days["Tuesday"]
	if got := tue.Hours[model.CategoryMisc]; got != 5 {
		t.Errorf("Misc = %v, want 5", got)
	}
	if got := tue.Hours[model.CategoryMeetings]; got != 0 {
		t.Errorf("Meetings = %v, want 0 after clear", got)
	}
	if !strings.Contains(confirmation, "5 hours for Misc") {
		t.Errorf("confirmation %q missing applied intent", confirmation)
	}
}

func TestApplyPTOIntent(t *testing.T) {
	s := freshState(t)

	updated, _, err := s.Apply([]model.EditIntent{
		{Day: "Wednesday", Hours: 8, Category: model.CategoryPTO},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wed := updated.Days["Wednesday"]
	if got := wed.Hours[model.CategoryPTO]; got != 8 {
		t.Errorf("PTO = %v, want 8", got)
	}
	for _, cat := range []model.Category{model.CategoryMeetings, model.CategoryProjectWork, model.CategoryMisc} {
		if got := wed.Hours[cat]; got != 0 {
			t.Errorf("%s = %v, want 0", cat, got)
		}
	}
}

func TestApplyCompoundAccumulatesAfterSingleClear(t *testing.T) {
	// "Monday: 4 hours PTO and 4 hours Misc" — the day is cleared exactly
	// once, then both intents accumulate.
	s := freshState(t)

	updated, confirmation, err := s.Apply([]model.EditIntent{
		{Day: "Monday", Hours: 4, Category: model.CategoryPTO},
		{Day: "Monday", Hours: 4, Category: model.CategoryMisc},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mon := updated.Days["Monday"]
	if got := mon.Hours[model.CategoryPTO]; got != 4 {
		t.Errorf("PTO = %v, want 4", got)
	}
	if got := mon.Hours[model.CategoryMisc]; got != 4 {
		t.Errorf("Misc = %v, want 4", got)
	}
	if !strings.Contains(confirmation, "4 hours for PTO") || !strings.Contains(confirmation, " and ") {
		t.Errorf("confirmation %q should join intents with \"and\"", confirmation)
	}
}

func TestApplySameCategoryAccumulatesWithinBatch(t *testing.T) {
	s := freshState(t)

	updated, _, err := s.Apply([]model.EditIntent{
		{Day: "Friday", Hours: 2, Category: model.CategoryMeetings},
		{Day: "Friday", Hours: 3, Category: model.CategoryMeetings},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := updated.Days["Friday"].Hours[model.CategoryMeetings]; got != 5 {
		t.Errorf("Meetings = %v, want 5", got)
	}
}

func TestApplyBatchAtomicity(t *testing.T) {
	// One bad day in the batch: nothing is applied.
	s := freshState(t)
	before, _ := s.Get()

	_, _, err := s.Apply([]model.EditIntent{
		{Day: "Monday", Hours: 2, Category: model.CategoryMisc},
		{Day: "Saturday", Hours: 2, Category: model.CategoryMisc},
	})
	if !errors.Is(err, draft.ErrUnknownDay) {
		t.Fatalf("err = %v, want ErrUnknownDay", err)
	}

	after, _ := s.Get()
	for _, name := range model.WeekdayNames {
		for cat, h := range before.Days[name].Hours {
			if after.Days[name].Hours[cat] != h {
				t.Errorf("%s/%s mutated despite failed batch", name, cat)
			}
		}
	}
}

func TestApplyFullPTOPlusWorkRejected(t *testing.T) {
	s := freshState(t)
	before, _ := s.Get()

	_, _, err := s.Apply([]model.EditIntent{
		{Day: "Monday", Hours: 8, Category: model.CategoryPTO},
		{Day: "Monday", Hours: 2, Category: model.CategoryMisc},
	})
	if !errors.Is(err, draft.ErrPTOExclusive) {
		t.Fatalf("err = %v, want ErrPTOExclusive", err)
	}

	after, _ := s.Get()
	if after.Days["Monday"].Hours[model.CategoryPTO] != before.Days["Monday"].Hours[model.CategoryPTO] {
		t.Error("draft mutated despite invariant violation")
	}
}

func TestApplyEmptyBatch(t *testing.T) {
	s := freshState(t)
	if _, _, err := s.Apply(nil); err == nil {
		t.Error("expected error for empty batch")
	}
}

func TestApplyWithoutDraft(t *testing.T) {
	s := draft.NewState()
	_, _, err := s.Apply([]model.EditIntent{{Day: "Monday", Hours: 1, Category: model.CategoryMisc}})
	if !errors.Is(err, draft.ErrNoDraft) {
		t.Errorf("err = %v, want ErrNoDraft", err)
	}
}
