package repository

import (
	"context"
	"time"

	"timesheet-assistant/internal/model"
)

// TeamRepository answers manager-scoped questions about the HR store.
type TeamRepository interface {
	// TeamMembers lists the active users reporting to the manager.
	TeamMembers(ctx context.Context, managerID string) ([]model.HRUser, error)

	// TeamWeekRecords lists all reports' records overlapping the span.
	TeamWeekRecords(ctx context.Context, opt TeamWeekOptions) ([]TeamRecord, error)
}

// TeamWeekOptions filters a team record listing.
type TeamWeekOptions struct {
	ManagerID string
	Start     time.Time
	End       time.Time
}

// TeamRecord is one report's timesheet record with owner identity attached.
type TeamRecord struct {
	RecordID  string
	OwnerID   string
	OwnerName string
	Date      time.Time
	TimeType  string
	Hours     float64
	Status    string
}
