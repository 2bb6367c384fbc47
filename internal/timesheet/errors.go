package timesheet

import "errors"

// Domain-specific errors for the timesheet package.
var (
	// ErrSourceUnavailable means the calendar or HR store collaborator is
	// unreachable or unauthorized. Prior draft state is left untouched.
	ErrSourceUnavailable = errors.New("upstream source unavailable")

	// ErrNoDraft means the session has no draft to read, edit, or submit.
	ErrNoDraft = errors.New("no draft available for session")

	// ErrInterpretation means the instruction could not be turned into any
	// valid edit. The draft is unchanged; the user should rephrase.
	ErrInterpretation = errors.New("could not interpret instruction")

	// ErrEmptyMessage means the chat message was blank.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrNoRecordIDs means a record operation was called without ids.
	ErrNoRecordIDs = errors.New("no record ids given")

	// ErrAlreadySubmitted means the HR store already holds submitted
	// records for this user and week. Existing records must be deleted
	// before submitting again.
	ErrAlreadySubmitted = errors.New("timesheet already submitted for this week")
)

// PartialFailure reports a submission where some records were created and
// some were not. Created ids are kept; the core never rolls them back.
type PartialFailure struct {
	CreatedIDs []string
	Errs       []string
}

func (e *PartialFailure) Error() string {
	return "submission partially failed"
}
