package insight

import "errors"

// Domain-specific errors for the insight package.
var (
	ErrSourceUnavailable = errors.New("upstream source unavailable")
	ErrNoDraft           = errors.New("no draft available for session")
	ErrNoManager         = errors.New("user has no reporting team")
	ErrNoRecordIDs       = errors.New("no record ids given")
	ErrEmptyReason       = errors.New("rejection reason is empty")
)
