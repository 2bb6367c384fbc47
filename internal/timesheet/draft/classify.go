package draft

import (
	"math"
	"strings"

	"timesheet-assistant/internal/model"
)

// Kind discriminates classifier results.
type Kind int

const (
	KindIgnore Kind = iota
	KindPTO
	KindDuration
)

// Classification is the contribution of a single calendar event to the
// weekly draft.
type Classification struct {
	Kind     Kind
	Day      string // canonical weekday name
	Category model.Category
	Hours    float64
	Clamped  bool // true when a malformed duration was clamped to zero
}

// Title markers. Matching is case-insensitive on the whole title.
const (
	markerOOO         = "OOO"
	markerOutOfOffice = "OUT OF OFFICE"
	markerTask        = "[TASK]"
)

// Classify maps one calendar event to its draft contribution. ptoDays is
// the set of weekday names already marked PTO; timed events on those days
// are ignored because PTO is exclusive and decided first.
func Classify(ev model.CalendarEvent, ptoDays map[string]bool) Classification {
	title := strings.ToUpper(ev.Title)

	if strings.Contains(title, markerOOO) || strings.Contains(title, markerOutOfOffice) {
		if ev.AllDayDate.IsZero() {
			return Classification{Kind: KindIgnore}
		}
		day, ok := model.CanonicalDay(ev.AllDayDate.Weekday().String())
		if !ok {
			// OOO on a weekend contributes nothing
			return Classification{Kind: KindIgnore}
		}
		return Classification{Kind: KindPTO, Day: day}
	}

	if ev.Start.IsZero() || ev.End.IsZero() {
		return Classification{Kind: KindIgnore}
	}

	day, ok := model.CanonicalDay(ev.Start.Weekday().String())
	if !ok {
		return Classification{Kind: KindIgnore}
	}
	if ptoDays[day] {
		return Classification{Kind: KindIgnore}
	}

	hours := round2(ev.End.Sub(ev.Start).Seconds() / 3600)
	clamped := false
	if hours < 0 {
		hours = 0
		clamped = true
	}

	category := model.CategoryMeetings
	if strings.Contains(title, markerTask) {
		category = model.CategoryProjectWork
	}

	return Classification{Kind: KindDuration, Day: day, Category: category, Hours: hours, Clamped: clamped}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
