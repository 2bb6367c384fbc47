package insight

import (
	"context"

	"timesheet-assistant/internal/model"
)

// UseCase defines the business logic interface for the insight domain.
type UseCase interface {
	// Productivity generates a one-line coaching insight over the
	// session's current draft. Generator failure degrades to an empty
	// insight, never an error.
	Productivity(ctx context.Context, sc model.Scope) (ProductivityOutput, error)

	// TeamSummary aggregates this week's records across the manager's
	// reports and adds a narrative summary.
	TeamSummary(ctx context.Context, sc model.Scope) (TeamSummaryOutput, error)

	// MissingSubmitters lists active reports with no submitted records
	// this week.
	MissingSubmitters(ctx context.Context, sc model.Scope) (MissingOutput, error)

	// Approve marks the given records approved.
	Approve(ctx context.Context, sc model.Scope, input ReviewInput) error

	// Reject marks the given records rejected and notifies their owner
	// with the reason.
	Reject(ctx context.Context, sc model.Scope, input ReviewInput) error
}
