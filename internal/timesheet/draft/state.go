package draft

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"timesheet-assistant/internal/model"
)

// Errors surfaced by draft state mutations.
var (
	ErrNoDraft      = errors.New("no draft available")
	ErrUnknownDay   = errors.New("day is not part of the work week")
	ErrInvalidHours = errors.New("hours must be a finite non-negative number")
	ErrPTOExclusive = errors.New("a full PTO day cannot hold other hours")
)

// State holds the single live draft of one session. All access goes
// through the mutex so two requests racing on the same session cannot
// observe a half-applied batch.
type State struct {
	mu    sync.Mutex
	draft *model.Draft
}

// NewState returns an empty state with no draft yet.
func NewState() *State {
	return &State{}
}

// Get returns a deep copy of the current draft, or ErrNoDraft before the
// first Replace. Callers never receive the live structure.
func (s *State) Get() (*model.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, ErrNoDraft
	}
	return s.draft.Clone(), nil
}

// Replace installs a freshly built draft, discarding the previous one.
func (s *State) Replace(d *model.Draft) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = d
}

// Mutate sets the given category hours on one day, enforcing the category
// vocabulary, non-negative hours and PTO exclusivity. An unknown day fails
// with ErrUnknownDay and leaves the state unchanged.
func (s *State) Mutate(day string, hours map[model.Category]float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return ErrNoDraft
	}

	name, ok := model.CanonicalDay(day)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}
	entry, ok := s.draft.Days[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDay, day)
	}

	next := entry.Clone()
	for cat, h := range hours {
		if !validHours(h) {
			return fmt.Errorf("%w: %v for %s", ErrInvalidHours, h, cat)
		}
		if !knownCategory(cat) {
			return fmt.Errorf("unknown category %q", cat)
		}
		next.Hours[cat] = h
	}
	if err := checkPTOExclusive(next); err != nil {
		return err
	}

	s.draft.Days[name] = next
	return nil
}

func validHours(h float64) bool {
	return !math.IsNaN(h) && !math.IsInf(h, 0) && h >= 0
}

func knownCategory(cat model.Category) bool {
	for _, c := range model.Categories {
		if c == cat {
			return true
		}
	}
	return false
}

// checkPTOExclusive rejects a day holding a full PTO day alongside worked
// hours. Partial PTO (below a full day) may coexist with other categories:
// that is how a compound instruction like "4 hours PTO and 4 hours Misc"
// is represented.
func checkPTOExclusive(entry *model.DayEntry) error {
	if entry.Hours[model.CategoryPTO] >= StandardDayHours && entry.Worked() > 0 {
		return ErrPTOExclusive
	}
	return nil
}
