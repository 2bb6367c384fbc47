package gcal

import (
	"context"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/gcalendar"
	pkgLog "timesheet-assistant/pkg/log"
)

type implRepository struct {
	client     *gcalendar.Client
	calendarID string
	l          pkgLog.Logger
}

// New creates a Google Calendar backed event source.
func New(client *gcalendar.Client, calendarID string, l pkgLog.Logger) repository.CalendarRepository {
	if calendarID == "" {
		calendarID = "primary"
	}
	return &implRepository{
		client:     client,
		calendarID: calendarID,
		l:          l,
	}
}

func (r *implRepository) ListWeekEvents(ctx context.Context, week model.WorkWeek) ([]model.CalendarEvent, error) {
	items, err := r.client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.calendarID,
		TimeMin:    week.Start(),
		TimeMax:    week.End(),
		MaxResults: 250,
	})
	if err != nil {
		r.l.Errorf(ctx, "gcal repository: event listing failed: %v", err)
		return nil, err
	}

	events := make([]model.CalendarEvent, 0, len(items))
	for _, item := range items {
		events = append(events, model.CalendarEvent{
			Title:      item.Summary,
			AllDayDate: item.AllDayDate,
			Start:      item.StartTime,
			End:        item.EndTime,
		})
	}
	return events, nil
}
