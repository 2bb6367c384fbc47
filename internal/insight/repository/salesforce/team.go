package salesforce

import (
	"context"
	"fmt"
	"time"

	"timesheet-assistant/internal/insight/repository"
	"timesheet-assistant/internal/model"
	pkgLog "timesheet-assistant/pkg/log"
	pkgSalesforce "timesheet-assistant/pkg/salesforce"
)

const dateLayout = "2006-01-02"

type implRepository struct {
	client *pkgSalesforce.Client
	l      pkgLog.Logger
}

// New creates a new Salesforce-backed team repository.
func New(client *pkgSalesforce.Client, l pkgLog.Logger) repository.TeamRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) TeamMembers(ctx context.Context, managerID string) ([]model.HRUser, error) {
	soql := fmt.Sprintf(
		"SELECT Id, Name, Email FROM User WHERE ManagerId = '%s' AND IsActive = true",
		pkgSalesforce.EscapeSOQL(managerID))

	resp, err := r.client.Query(ctx, soql)
	if err != nil {
		r.l.Errorf(ctx, "team repository: member query failed: %v", err)
		return nil, err
	}

	members := make([]model.HRUser, 0, len(resp.Records))
	for _, rec := range resp.Records {
		members = append(members, model.HRUser{
			ID:        str(rec["Id"]),
			Name:      str(rec["Name"]),
			Email:     str(rec["Email"]),
			ManagerID: managerID,
		})
	}
	return members, nil
}

func (r *implRepository) TeamWeekRecords(ctx context.Context, opt repository.TeamWeekOptions) ([]repository.TeamRecord, error) {
	// Only submitted records count: drafts and rejections must not make an
	// employee look submitted in the team views.
	soql := fmt.Sprintf(
		"SELECT Id, OwnerId, Owner.Name, Date__c, Time_Type__c, Hours__c, Status__c "+
			"FROM Timesheet__c WHERE Owner.ManagerId = '%s' AND Date__c >= %s AND Date__c <= %s "+
			"AND Status__c = '%s' ORDER BY Owner.Name, Date__c",
		pkgSalesforce.EscapeSOQL(opt.ManagerID), opt.Start.Format(dateLayout), opt.End.Format(dateLayout),
		model.RecordStatusSubmitted)

	resp, err := r.client.Query(ctx, soql)
	if err != nil {
		r.l.Errorf(ctx, "team repository: week query failed: %v", err)
		return nil, err
	}

	records := make([]repository.TeamRecord, 0, len(resp.Records))
	for _, rec := range resp.Records {
		date, _ := time.Parse(dateLayout, str(rec["Date__c"]))
		tr := repository.TeamRecord{
			RecordID: str(rec["Id"]),
			OwnerID:  str(rec["OwnerId"]),
			Date:     date,
			TimeType: str(rec["Time_Type__c"]),
			Hours:    num(rec["Hours__c"]),
			Status:   str(rec["Status__c"]),
		}
		if owner, ok := rec["Owner"].(map[string]any); ok {
			tr.OwnerName = str(owner["Name"])
		}
		records = append(records, tr)
	}
	return records, nil
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	f, _ := v.(float64)
	return f
}
