package gcalendar

import "time"

// Event is a simplified representation of a Google Calendar event.
// Exactly one of AllDayDate or StartTime/EndTime is populated.
type Event struct {
	ID         string
	Summary    string
	AllDayDate time.Time
	StartTime  time.Time
	EndTime    time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
