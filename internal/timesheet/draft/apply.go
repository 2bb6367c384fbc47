package draft

import (
	"fmt"
	"strings"

	"timesheet-assistant/internal/model"
)

// Apply runs one interpretation batch against the draft as a single
// transaction. Intents are applied in order onto a snapshot; the snapshot
// replaces the live draft only when every intent succeeds, so a bad intent
// anywhere in the batch commits nothing.
//
// The first intent touching a day clears that day once (Meetings, Project
// Work and Misc reset to zero, PTO dropped); later intents for the same
// day accumulate. A compound instruction therefore starts each mentioned
// day from a clean slate instead of stacking on top of the prior draft.
//
// On success Apply returns the updated draft and a confirmation such as
// "4 hours for PTO and 2 hours for Misc".
func (s *State) Apply(intents []model.EditIntent) (*model.Draft, string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.draft == nil {
		return nil, "", ErrNoDraft
	}
	if len(intents) == 0 {
		return nil, "", fmt.Errorf("empty edit batch")
	}

	next := s.draft.Clone()
	cleared := make(map[string]bool)
	confirmations := make([]string, 0, len(intents))

	for _, intent := range intents {
		name, ok := model.CanonicalDay(intent.Day)
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownDay, intent.Day)
		}
		entry, ok := next.Days[name]
		if !ok {
			return nil, "", fmt.Errorf("%w: %q", ErrUnknownDay, intent.Day)
		}
		if !validHours(intent.Hours) {
			return nil, "", fmt.Errorf("%w: %v", ErrInvalidHours, intent.Hours)
		}
		if !knownCategory(intent.Category) {
			return nil, "", fmt.Errorf("unknown category %q", intent.Category)
		}

		if !cleared[name] {
			entry.Hours = map[model.Category]float64{
				model.CategoryMeetings:    0,
				model.CategoryProjectWork: 0,
				model.CategoryMisc:        0,
			}
			cleared[name] = true
		}

		entry.Hours[intent.Category] = round2(entry.Hours[intent.Category] + intent.Hours)
		confirmations = append(confirmations, fmt.Sprintf("%v hours for %s", intent.Hours, intent.Category))
	}

	for name := range cleared {
		if err := checkPTOExclusive(next.Days[name]); err != nil {
			return nil, "", fmt.Errorf("%s: %w", name, err)
		}
	}

	s.draft = next
	return next.Clone(), strings.Join(confirmations, " and "), nil
}
