package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/draft"
)

// Chat applies one conversational instruction to the session's draft.
// Interpretation and validation failures come back as an error-status
// envelope with the draft untouched; only missing state is a hard error.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input timesheet.ChatInput) (timesheet.ChatOutput, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return timesheet.ChatOutput{}, timesheet.ErrEmptyMessage
	}

	state, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return timesheet.ChatOutput{}, timesheet.ErrNoDraft
	}
	current, err := state.Get()
	if err != nil {
		return timesheet.ChatOutput{}, timesheet.ErrNoDraft
	}

	result, err := uc.interp.Interpret(ctx, message)
	if err != nil {
		uc.l.Warnf(ctx, "Chat: session=%s interpret failed: %v", sc.SessionID, err)
		return timesheet.ChatOutput{
			Status:  model.ChatStatusError,
			Message: "Sorry, I couldn't understand that. Try something like 'Set Tuesday to 6 hours' or 'Mark Friday as PTO'.",
		}, nil
	}

	if result.Ready {
		return timesheet.ChatOutput{
			Status:  model.ChatStatusSubmitting,
			Message: "Great, submitting your timesheet now.",
			Draft:   current,
		}, nil
	}

	updated, confirmation, err := state.Apply(result.Intents)
	if err != nil {
		uc.l.Warnf(ctx, "Chat: session=%s apply failed: %v", sc.SessionID, err)
		return timesheet.ChatOutput{
			Status:  model.ChatStatusError,
			Message: applyFailureMessage(err),
		}, nil
	}

	uc.l.Infof(ctx, "Chat: session=%s applied %d edits", sc.SessionID, len(result.Intents))

	return timesheet.ChatOutput{
		Status:  model.ChatStatusSuccess,
		Message: fmt.Sprintf("Done. I've set %s. Anything else, or shall I submit?", confirmation),
		Draft:   updated,
	}, nil
}

// applyFailureMessage phrases an applicator rejection for the user. The
// whole batch was discarded, so the draft they saw is still current.
func applyFailureMessage(err error) string {
	switch {
	case errors.Is(err, draft.ErrUnknownDay):
		return "I can only log hours Monday through Friday. Nothing was changed."
	case errors.Is(err, draft.ErrInvalidHours):
		return "Hours have to be a non-negative number. Nothing was changed."
	case errors.Is(err, draft.ErrPTOExclusive):
		return "A full PTO day can't also have worked hours. Nothing was changed."
	default:
		return "I couldn't apply that change. Nothing was changed."
	}
}
