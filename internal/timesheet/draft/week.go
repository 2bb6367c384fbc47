package draft

import (
	"time"

	"timesheet-assistant/internal/model"
)

// CurrentWeek derives the Monday-Friday work week containing the given
// moment by walking back to the most recent Monday. A Saturday or Sunday
// resolves to the week that just ended.
func CurrentWeek(now time.Time) model.WorkWeek {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	monday = time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, now.Location())

	var week model.WorkWeek
	for i := 0; i < 5; i++ {
		week.Days[i] = monday.AddDate(0, 0, i)
	}
	return week
}
