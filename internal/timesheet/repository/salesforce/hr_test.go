package salesforce

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/repository"
	pkgSalesforce "timesheet-assistant/pkg/salesforce"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newTestRepo(t *testing.T, handler http.HandlerFunc) repository.HRRepository {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client := pkgSalesforce.NewClient(server.URL, "test-token")
	return New(client, &mockLogger{})
}

func TestFindUser(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, "FROM User") || !strings.Contains(q, "alice@example.com") {
			t.Errorf("unexpected query: %q", q)
		}
		w.Write([]byte(`{"totalSize": 1, "done": true, "records": [{
			"Id": "005aa",
			"Name": "Alice",
			"Email": "alice@example.com",
			"ManagerId": "005mm",
			"Manager": {"Name": "Mara", "Email": "mara@example.com"}
		}]}`))
	})

	user, err := repo.FindUser(context.Background(), "alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != "005aa" || user.ManagerID != "005mm" {
		t.Errorf("unexpected user: %+v", user)
	}
	if user.ManagerName != "Mara" || user.ManagerEmail != "mara@example.com" {
		t.Errorf("manager fields not mapped: %+v", user)
	}
}

func TestFindUserNotFound(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"totalSize": 0, "done": true, "records": []}`))
	})

	if _, err := repo.FindUser(context.Background(), "ghost@example.com"); err == nil {
		t.Fatal("expected error for unknown user")
	}
}

func TestFindUserEscapesQuery(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, `o\'brien`) {
			t.Errorf("quote not escaped in query: %q", q)
		}
		w.Write([]byte(`{"totalSize": 1, "done": true, "records": [{"Id": "005aa"}]}`))
	})

	if _, err := repo.FindUser(context.Background(), "o'brien"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestInsertRecords(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		var req pkgSalesforce.CollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Records) != 2 {
			t.Fatalf("expected 2 records, got %d", len(req.Records))
		}
		if req.Records[0]["Date__c"] != "2026-08-31" {
			t.Errorf("date not formatted: %v", req.Records[0]["Date__c"])
		}
		if req.Records[1]["Time_Type__c"] != model.TimeTypePTO {
			t.Errorf("time type not forwarded: %v", req.Records[1]["Time_Type__c"])
		}
		w.Write([]byte(`[{"id": "a01aa", "success": true}, {"id": "a01bb", "success": true}]`))
	})

	ids, err := repo.InsertRecords(context.Background(), []repository.CreateRecordOptions{
		{
			OwnerID:  "005aa",
			Date:     time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
			TimeType: model.TimeTypeBusinessDay,
			Hours:    8,
			Status:   model.RecordStatusSubmitted,
		},
		{
			OwnerID:  "005aa",
			Date:     time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			TimeType: model.TimeTypePTO,
			Hours:    8,
			Status:   model.RecordStatusSubmitted,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 2 || ids[0] != "a01aa" {
		t.Errorf("unexpected ids: %v", ids)
	}
}

func TestWeekRecords(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, "Date__c >= 2026-08-31") || !strings.Contains(q, "Date__c <= 2026-09-04") {
			t.Errorf("date range not in query: %q", q)
		}
		w.Write([]byte(`{"totalSize": 1, "done": true, "records": [{
			"Id": "a01aa",
			"Date__c": "2026-09-01",
			"Status__c": "Submitted",
			"Time_Type__c": "PTO",
			"Hours__c": 8
		}]}`))
	})

	records, err := repo.WeekRecords(context.Background(), repository.WeekRecordsOptions{
		OwnerID: "005aa",
		Start:   time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC),
		End:     time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	rec := records[0]
	if rec.ActivityID != "a01aa" || rec.TimeType != model.TimeTypePTO || rec.Hours != 8 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Date.Format("2006-01-02") != "2026-09-01" {
		t.Errorf("date not parsed: %v", rec.Date)
	}
}

func TestSubmitForApproval(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		var req pkgSalesforce.ApprovalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if len(req.Requests) != 2 {
			t.Fatalf("expected 2 approval items, got %d", len(req.Requests))
		}
		if req.Requests[0].NextApproverIDs[0] != "005mm" {
			t.Errorf("approver not routed: %+v", req.Requests[0])
		}
		w.Write([]byte(`[{"success": true, "instanceStatus": "Pending"}, {"success": true, "instanceStatus": "Pending"}]`))
	})

	status, err := repo.SubmitForApproval(context.Background(), repository.ApprovalOptions{
		RecordIDs:  []string{"a01aa", "a01bb"},
		ApproverID: "005mm",
		Comments:   "Weekly timesheet",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "Pending" {
		t.Errorf("status = %q", status)
	}
}

func TestUpdateRecordStatus(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch {
			t.Errorf("method = %s, want PATCH", r.Method)
		}
		var req pkgSalesforce.CollectionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Records[0]["Status__c"] != model.RecordStatusApproved {
			t.Errorf("status not forwarded: %v", req.Records[0])
		}
		w.Write([]byte(`[{"id": "a01aa", "success": true}]`))
	})

	err := repo.UpdateRecordStatus(context.Background(), []string{"a01aa"}, model.RecordStatusApproved)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestListFAQs(t *testing.T) {
	repo := newTestRepo(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if !strings.Contains(q, "Knowledge__kav") || !strings.Contains(q, "LIMIT 5") {
			t.Errorf("unexpected query: %q", q)
		}
		w.Write([]byte(`{"totalSize": 1, "done": true, "records": [{
			"Id": "ka0aa",
			"Title": "How do I log PTO?",
			"UrlName": "how-do-i-log-pto"
		}]}`))
	})

	faqs, err := repo.ListFAQs(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(faqs) != 1 || faqs[0].Question != "How do I log PTO?" {
		t.Errorf("unexpected faqs: %+v", faqs)
	}
}
