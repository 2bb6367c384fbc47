package draft

import (
	"context"

	"timesheet-assistant/internal/model"
	pkgLog "timesheet-assistant/pkg/log"
)

// StandardDayHours is the canonical length of a business day. Unallocated
// time up to this is filled as Misc; a full PTO day is exactly this many
// hours.
const StandardDayHours = 8.0

// Build produces the weekly draft from classified calendar events.
//
// PTO days are decided first: an out-of-office day becomes exactly
// {PTO: 8}, discarding any timed contribution on it. Remaining timed
// events accumulate onto Meetings or Project Work, then every non-PTO day
// is topped up to StandardDayHours with Misc.
func Build(ctx context.Context, l pkgLog.Logger, week model.WorkWeek, events []model.CalendarEvent) *model.Draft {
	d := &model.Draft{
		Week: week,
		Days: make(map[string]*model.DayEntry, len(model.WeekdayNames)),
	}
	for i, name := range model.WeekdayNames {
		d.Days[name] = &model.DayEntry{
			Date: week.Days[i],
			Hours: map[model.Category]float64{
				model.CategoryMeetings:    0,
				model.CategoryProjectWork: 0,
				model.CategoryMisc:        0,
			},
		}
	}

	// First pass: PTO markers override everything else for their day.
	ptoDays := make(map[string]bool)
	for _, ev := range events {
		c := Classify(ev, nil)
		if c.Kind == KindPTO {
			ptoDays[c.Day] = true
			d.Days[c.Day].Hours = map[model.Category]float64{model.CategoryPTO: StandardDayHours}
		}
	}

	// Second pass: timed events on non-PTO days.
	for _, ev := range events {
		c := Classify(ev, ptoDays)
		if c.Kind != KindDuration {
			continue
		}
		if c.Clamped {
			l.Warnf(ctx, "draft builder: event %q has non-positive duration, counting as 0 hours", ev.Title)
		}
		entry := d.Days[c.Day]
		entry.Hours[c.Category] = round2(entry.Hours[c.Category] + c.Hours)
	}

	Fill(d)
	return d
}

// Fill applies the default-fill policy: every non-PTO day gets
// Misc = max(0, 8 - Meetings - ProjectWork). Filling an already-filled day
// is a fixed point.
func Fill(d *model.Draft) {
	for _, name := range model.WeekdayNames {
		entry, ok := d.Days[name]
		if !ok {
			continue
		}
		if entry.Hours[model.CategoryPTO] > 0 {
			continue
		}
		logged := entry.Hours[model.CategoryMeetings] + entry.Hours[model.CategoryProjectWork]
		misc := round2(StandardDayHours - logged)
		if misc < 0 {
			misc = 0
		}
		entry.Hours[model.CategoryMisc] = misc
	}
}
