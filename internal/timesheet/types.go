package timesheet

import (
	"timesheet-assistant/internal/model"
)

// DraftOutput is the session's draft plus its week span.
type DraftOutput struct {
	WeekStart string
	WeekEnd   string
	Draft     *model.Draft
}

// ChatInput is one conversational instruction from the user.
type ChatInput struct {
	Message string
}

// ChatOutput is the status envelope every chat turn returns. Draft is set
// only on success or submitting.
type ChatOutput struct {
	Status  model.ChatStatus
	Message string
	Draft   *model.Draft
}

// SubmitInput controls the submission side effects.
type SubmitInput struct {
	EmailCopy bool // also email the PDF summary to the user
}

// SubmitOutput reports what the submission created.
type SubmitOutput struct {
	RecordIDs      []string
	ApprovalStatus string
	ManagerName    string
	PDF            []byte
	EmailSent      bool
}

// DeleteRecordsInput names the records to remove from the HR store.
type DeleteRecordsInput struct {
	RecordIDs []string
}

// FAQsOutput is the published knowledge articles, most recent first.
type FAQsOutput struct {
	Items []model.FAQ
}
