package repository

import (
	"context"
	"time"

	"timesheet-assistant/internal/model"
)

// CalendarRepository supplies the week's events for draft derivation.
type CalendarRepository interface {
	ListWeekEvents(ctx context.Context, week model.WorkWeek) ([]model.CalendarEvent, error)
}

// HRRepository is the interface for HR store (Salesforce) data access.
type HRRepository interface {
	// FindUser resolves a user and their reporting line by username.
	FindUser(ctx context.Context, username string) (model.HRUser, error)

	// InsertRecords creates timesheet records and returns their ids in
	// input order.
	InsertRecords(ctx context.Context, opts []CreateRecordOptions) ([]string, error)

	// WeekRecords lists a user's records overlapping the given span.
	WeekRecords(ctx context.Context, opt WeekRecordsOptions) ([]model.TimesheetRecord, error)

	// DeleteRecords removes records by id.
	DeleteRecords(ctx context.Context, ids []string) error

	// SubmitForApproval routes records to the approver and returns the
	// resulting approval status.
	SubmitForApproval(ctx context.Context, opt ApprovalOptions) (string, error)

	// PostComment posts a feed message on the subject record or user.
	PostComment(ctx context.Context, subjectID, text string) error

	// ListFAQs returns up to limit published knowledge articles.
	ListFAQs(ctx context.Context, limit int) ([]model.FAQ, error)

	// UpdateRecordStatus sets the status on the given records.
	UpdateRecordStatus(ctx context.Context, ids []string, status string) error
}

// CreateRecordOptions defines one record to insert.
type CreateRecordOptions struct {
	OwnerID  string
	Date     time.Time
	TimeType string
	Hours    float64
	Status   string
}

// WeekRecordsOptions filters a record listing.
type WeekRecordsOptions struct {
	OwnerID string
	Start   time.Time
	End     time.Time
	Status  string // optional
}

// ApprovalOptions defines an approval submission for a set of records.
type ApprovalOptions struct {
	RecordIDs  []string
	ApproverID string
	Comments   string
}
