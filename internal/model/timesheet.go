package model

import (
	"strings"
	"time"
)

// Category is the closed vocabulary of timesheet categories.
type Category string

const (
	CategoryMeetings    Category = "Meetings"
	CategoryProjectWork Category = "Project Work"
	CategoryMisc        Category = "Misc"
	CategoryPTO         Category = "PTO"
)

// Categories lists the full vocabulary in presentation order.
var Categories = []Category{CategoryMeetings, CategoryProjectWork, CategoryMisc, CategoryPTO}

// NormalizeCategory maps free-form category text onto the closed vocabulary.
// Unrecognized or empty input defaults to Misc so oracle output never
// introduces new keys.
func NormalizeCategory(s string) Category {
	upper := strings.ToUpper(s)
	switch {
	case strings.Contains(upper, "PTO"):
		return CategoryPTO
	case strings.Contains(upper, "MEETING"):
		return CategoryMeetings
	case strings.Contains(upper, "PROJECT"):
		return CategoryProjectWork
	default:
		return CategoryMisc
	}
}

// WeekdayNames is the canonical Monday-first ordering of the work week.
// Draft days are keyed by these names, in this order.
var WeekdayNames = [5]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// CanonicalDay resolves a case-insensitive weekday name to its canonical
// form. The second return is false for anything outside Monday-Friday.
func CanonicalDay(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	for _, name := range WeekdayNames {
		if strings.EqualFold(trimmed, name) {
			return name, true
		}
	}
	return "", false
}

// WorkWeek is the Monday-Friday date span being drafted.
type WorkWeek struct {
	Days [5]time.Time // Monday..Friday, midnight local time
}

// Start returns midnight on Monday.
func (w WorkWeek) Start() time.Time { return w.Days[0] }

// End returns the last instant of Friday.
func (w WorkWeek) End() time.Time {
	return w.Days[4].Add(24*time.Hour - time.Second)
}

// DayEntry is the hour allocation of a single work day.
type DayEntry struct {
	Date  time.Time            `json:"date"`
	Hours map[Category]float64 `json:"hours"`
}

// Worked returns the non-PTO hours of the day.
func (e *DayEntry) Worked() float64 {
	var total float64
	for cat, h := range e.Hours {
		if cat != CategoryPTO {
			total += h
		}
	}
	return total
}

// Total returns all hours of the day including PTO.
func (e *DayEntry) Total() float64 {
	var total float64
	for _, h := range e.Hours {
		total += h
	}
	return total
}

// Clone returns a deep copy of the entry.
func (e *DayEntry) Clone() *DayEntry {
	hours := make(map[Category]float64, len(e.Hours))
	for cat, h := range e.Hours {
		hours[cat] = h
	}
	return &DayEntry{Date: e.Date, Hours: hours}
}

// Draft is the weekly hour allocation under construction. Days is keyed by
// canonical weekday name and covers exactly the current work week.
type Draft struct {
	Week WorkWeek             `json:"-"`
	Days map[string]*DayEntry `json:"days"`
}

// Clone returns a deep copy of the draft. The edit applicator snapshots a
// draft before a batch so a failed batch commits nothing.
func (d *Draft) Clone() *Draft {
	days := make(map[string]*DayEntry, len(d.Days))
	for name, entry := range d.Days {
		days[name] = entry.Clone()
	}
	return &Draft{Week: d.Week, Days: days}
}

// EditIntent is a normalized, validated instruction to adjust one
// day/category's hours. Produced by the interpreter, consumed by the
// applicator, never persisted.
type EditIntent struct {
	Day      string
	Hours    float64
	Category Category
}

// CalendarEvent is the neutral event shape consumed by the classifier.
// Either AllDayDate is set (all-day events) or Start/End are set (timed
// events); an event with neither is ignored.
type CalendarEvent struct {
	Title      string
	AllDayDate time.Time
	Start      time.Time
	End        time.Time
}

// TimesheetRecord is the record shape the HR store expects.
type TimesheetRecord struct {
	ActivityID string
	Date       time.Time
	Status     string
	TimeType   string
	Hours      float64
}

// Record store picklist values.
const (
	RecordStatusSubmitted = "Submitted"
	RecordStatusApproved  = "Approved"
	RecordStatusRejected  = "Rejected"

	TimeTypePTO         = "PTO"
	TimeTypeBusinessDay = "Business Day - Morning Shift - Standard Time"
)

// ChatStatus tags every chat-facing result.
type ChatStatus string

const (
	ChatStatusSuccess    ChatStatus = "success"
	ChatStatusError      ChatStatus = "error"
	ChatStatusSubmitting ChatStatus = "submitting"
)
