package salesforce

import (
	"context"
	"fmt"
	"strings"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	pkgLog "timesheet-assistant/pkg/log"
	pkgSalesforce "timesheet-assistant/pkg/salesforce"
)

const (
	timesheetObject = "Timesheet__c"
	dateLayout      = "2006-01-02"
)

type implRepository struct {
	client *pkgSalesforce.Client
	l      pkgLog.Logger
}

// New creates a new Salesforce-backed HR repository.
func New(client *pkgSalesforce.Client, l pkgLog.Logger) repository.HRRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) FindUser(ctx context.Context, username string) (model.HRUser, error) {
	soql := fmt.Sprintf(
		"SELECT Id, Name, Email, ManagerId, Manager.Name, Manager.Email FROM User WHERE Username = '%s' LIMIT 1",
		pkgSalesforce.EscapeSOQL(username))

	resp, err := r.client.Query(ctx, soql)
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: user lookup failed: %v", err)
		return model.HRUser{}, err
	}
	if len(resp.Records) == 0 {
		return model.HRUser{}, fmt.Errorf("user %q not found", username)
	}

	rec := resp.Records[0]
	user := model.HRUser{
		ID:        str(rec["Id"]),
		Name:      str(rec["Name"]),
		Email:     str(rec["Email"]),
		ManagerID: str(rec["ManagerId"]),
	}
	if mgr, ok := rec["Manager"].(map[string]any); ok {
		user.ManagerName = str(mgr["Name"])
		user.ManagerEmail = str(mgr["Email"])
	}
	return user, nil
}

func (r *implRepository) InsertRecords(ctx context.Context, opts []repository.CreateRecordOptions) ([]string, error) {
	records := make([]map[string]any, 0, len(opts))
	for _, opt := range opts {
		records = append(records, map[string]any{
			"OwnerId":      opt.OwnerID,
			"Date__c":      opt.Date.Format(dateLayout),
			"Time_Type__c": opt.TimeType,
			"Hours__c":     opt.Hours,
			"Status__c":    opt.Status,
		})
	}

	results, err := r.client.CreateRecords(ctx, timesheetObject, records)
	ids := make([]string, 0, len(results))
	for _, res := range results {
		if res.Success {
			ids = append(ids, res.ID)
		}
	}
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: insert failed after %d records: %v", len(ids), err)
		return ids, err
	}
	return ids, nil
}

func (r *implRepository) WeekRecords(ctx context.Context, opt repository.WeekRecordsOptions) ([]model.TimesheetRecord, error) {
	var filters []string
	filters = append(filters, fmt.Sprintf("OwnerId = '%s'", pkgSalesforce.EscapeSOQL(opt.OwnerID)))
	filters = append(filters, fmt.Sprintf("Date__c >= %s", opt.Start.Format(dateLayout)))
	filters = append(filters, fmt.Sprintf("Date__c <= %s", opt.End.Format(dateLayout)))
	if opt.Status != "" {
		filters = append(filters, fmt.Sprintf("Status__c = '%s'", pkgSalesforce.EscapeSOQL(opt.Status)))
	}

	soql := fmt.Sprintf(
		"SELECT Id, Date__c, Status__c, Time_Type__c, Hours__c FROM %s WHERE %s ORDER BY Date__c",
		timesheetObject, strings.Join(filters, " AND "))

	resp, err := r.client.Query(ctx, soql)
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: week records query failed: %v", err)
		return nil, err
	}

	records := make([]model.TimesheetRecord, 0, len(resp.Records))
	for _, rec := range resp.Records {
		date, _ := time.Parse(dateLayout, str(rec["Date__c"]))
		records = append(records, model.TimesheetRecord{
			ActivityID: str(rec["Id"]),
			Date:       date,
			Status:     str(rec["Status__c"]),
			TimeType:   str(rec["Time_Type__c"]),
			Hours:      num(rec["Hours__c"]),
		})
	}
	return records, nil
}

func (r *implRepository) DeleteRecords(ctx context.Context, ids []string) error {
	return r.client.DeleteRecords(ctx, ids)
}

func (r *implRepository) SubmitForApproval(ctx context.Context, opt repository.ApprovalOptions) (string, error) {
	req := pkgSalesforce.ApprovalRequest{}
	for _, id := range opt.RecordIDs {
		item := pkgSalesforce.ApprovalRequestItem{
			ActionType: "Submit",
			ContextID:  id,
			Comments:   opt.Comments,
		}
		if opt.ApproverID != "" {
			item.NextApproverIDs = []string{opt.ApproverID}
		}
		req.Requests = append(req.Requests, item)
	}

	results, err := r.client.SubmitForApproval(ctx, req)
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: approval submission failed: %v", err)
		return "", err
	}
	for _, res := range results {
		if !res.Success {
			msg := "approval rejected"
			if len(res.Errors) > 0 {
				msg = res.Errors[0].Message
			}
			return "", fmt.Errorf("salesforce approval: %s", msg)
		}
	}
	if len(results) == 0 {
		return "", fmt.Errorf("salesforce approval: empty result")
	}
	return results[0].InstanceStatus, nil
}

func (r *implRepository) PostComment(ctx context.Context, subjectID, text string) error {
	return r.client.PostFeedElement(ctx, subjectID, text)
}

func (r *implRepository) ListFAQs(ctx context.Context, limit int) ([]model.FAQ, error) {
	if limit <= 0 {
		limit = 5
	}
	soql := fmt.Sprintf(
		"SELECT Id, Title, UrlName FROM Knowledge__kav WHERE PublishStatus = 'Online' ORDER BY LastPublishedDate DESC LIMIT %d",
		limit)

	resp, err := r.client.Query(ctx, soql)
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: faq query failed: %v", err)
		return nil, err
	}

	faqs := make([]model.FAQ, 0, len(resp.Records))
	for _, rec := range resp.Records {
		faqs = append(faqs, model.FAQ{
			ID:       str(rec["Id"]),
			Question: str(rec["Title"]),
			URL:      str(rec["UrlName"]),
		})
	}
	return faqs, nil
}

func (r *implRepository) UpdateRecordStatus(ctx context.Context, ids []string, status string) error {
	records := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		records = append(records, map[string]any{
			"Id":        id,
			"Status__c": status,
		})
	}
	_, err := r.client.UpdateRecords(ctx, timesheetObject, records)
	if err != nil {
		r.l.Errorf(ctx, "salesforce repository: status update failed: %v", err)
	}
	return err
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func num(v any) float64 {
	f, _ := v.(float64)
	return f
}
