package timesheet

import (
	"context"

	"timesheet-assistant/internal/model"
)

// UseCase defines the business logic interface for the timesheet domain.
type UseCase interface {
	// BuildDraft derives a fresh weekly draft for the session from the
	// calendar and replaces whatever draft the session held.
	BuildDraft(ctx context.Context, sc model.Scope) (DraftOutput, error)

	// GetDraft returns the session's current draft.
	GetDraft(ctx context.Context, sc model.Scope) (DraftOutput, error)

	// Chat applies one conversational instruction to the session's draft.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)

	// Submit finalizes the draft into HR store records, files them for
	// approval, and renders the PDF summary.
	Submit(ctx context.Context, sc model.Scope, input SubmitInput) (SubmitOutput, error)

	// DeleteRecords removes previously created records from the HR store.
	DeleteRecords(ctx context.Context, sc model.Scope, input DeleteRecordsInput) error

	// FAQs lists published knowledge articles.
	FAQs(ctx context.Context, sc model.Scope) (FAQsOutput, error)
}
