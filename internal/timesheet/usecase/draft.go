package usecase

import (
	"context"
	"fmt"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/draft"
	"timesheet-assistant/pkg/response"
)

// BuildDraft derives a fresh weekly draft from the calendar and installs it
// as the session's draft, replacing any prior one.
func (uc *implUseCase) BuildDraft(ctx context.Context, sc model.Scope) (timesheet.DraftOutput, error) {
	week := draft.CurrentWeek(uc.now())

	events, err := uc.fetchWeekEvents(ctx, week)
	if err != nil {
		return timesheet.DraftOutput{}, err
	}

	d := draft.Build(ctx, uc.l, week, events)
	state := uc.sessions.GetOrCreate(sc.SessionID)
	state.Replace(d)

	uc.l.Infof(ctx, "BuildDraft: session=%s week=%s events=%d",
		sc.SessionID, week.Start().Format(response.DateFormat), len(events))

	return uc.newDraftOutput(d), nil
}

// GetDraft returns the session's current draft without touching it.
func (uc *implUseCase) GetDraft(ctx context.Context, sc model.Scope) (timesheet.DraftOutput, error) {
	state, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return timesheet.DraftOutput{}, timesheet.ErrNoDraft
	}

	d, err := state.Get()
	if err != nil {
		return timesheet.DraftOutput{}, timesheet.ErrNoDraft
	}

	return uc.newDraftOutput(d), nil
}

// fetchWeekEvents pulls the week's events from the calendar. Without a
// configured calendar, non-production environments fall back to a fixed
// example week so the flow stays usable locally.
func (uc *implUseCase) fetchWeekEvents(ctx context.Context, week model.WorkWeek) ([]model.CalendarEvent, error) {
	if uc.calendar == nil {
		if uc.env == model.EnvironmentProduction {
			return nil, timesheet.ErrSourceUnavailable
		}
		uc.l.Warn(ctx, "no calendar configured, falling back to example events")
		return exampleWeekEvents(week), nil
	}

	events, err := uc.calendar.ListWeekEvents(ctx, week)
	if err != nil {
		uc.l.Errorf(ctx, "fetchWeekEvents: %v", err)
		return nil, fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}
	return events, nil
}

// exampleWeekEvents yields the fixed fallback week: Monday with 2.5h of
// meetings and a 4h project block, Tuesday out of office.
func exampleWeekEvents(week model.WorkWeek) []model.CalendarEvent {
	monday := week.Days[0]
	return []model.CalendarEvent{
		{
			Title: "Team sync",
			Start: monday.Add(9 * time.Hour),
			End:   monday.Add(11*time.Hour + 30*time.Minute),
		},
		{
			Title: "[TASK] Quarterly report",
			Start: monday.Add(13 * time.Hour),
			End:   monday.Add(17 * time.Hour),
		},
		{
			Title:      "OOO",
			AllDayDate: week.Days[1],
		},
	}
}

func (uc *implUseCase) newDraftOutput(d *model.Draft) timesheet.DraftOutput {
	return timesheet.DraftOutput{
		WeekStart: d.Week.Start().Format(response.DateFormat),
		WeekEnd:   d.Week.Days[4].Format(response.DateFormat),
		Draft:     d,
	}
}
