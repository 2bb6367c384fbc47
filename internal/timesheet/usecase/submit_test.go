package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
)

func managedUser() model.HRUser {
	return model.HRUser{
		ID:           "005aa",
		Name:         "Alice",
		Email:        "alice@example.com",
		ManagerID:    "005mm",
		ManagerName:  "Mara",
		ManagerEmail: "mara@example.com",
	}
}

func TestSubmitHappyPath(t *testing.T) {
	hr := &mockHR{
		user:           managedUser(),
		insertIDs:      []string{"a01aa", "a01bb", "a01cc", "a01dd", "a01ee"},
		approvalStatus: "Pending",
	}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc) // fallback example week: Mon worked 8, Tue PTO 8, Wed-Fri Misc 8

	out, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// One worked record per working day plus Tuesday's PTO record.
	if len(hr.insertedOpts) != 5 {
		t.Fatalf("expected 5 records, got %d: %+v", len(hr.insertedOpts), hr.insertedOpts)
	}
	first := hr.insertedOpts[0]
	if first.TimeType != model.TimeTypeBusinessDay || first.Hours != 8 || first.OwnerID != "005aa" {
		t.Errorf("unexpected Monday record: %+v", first)
	}
	tue := hr.insertedOpts[1]
	if tue.TimeType != model.TimeTypePTO || tue.Hours != 8 {
		t.Errorf("unexpected Tuesday record: %+v", tue)
	}

	if hr.weekOpt.OwnerID != "005aa" || hr.weekOpt.Status != model.RecordStatusSubmitted {
		t.Errorf("duplicate guard queried with %+v", hr.weekOpt)
	}
	if !hr.weekOpt.Start.Equal(fixedMonday) {
		t.Errorf("duplicate guard start = %v, want %v", hr.weekOpt.Start, fixedMonday)
	}

	if hr.approvalOpt.ApproverID != "005mm" {
		t.Errorf("approval not routed to manager: %+v", hr.approvalOpt)
	}
	if out.ApprovalStatus != "Pending" || out.ManagerName != "Mara" {
		t.Errorf("unexpected output: %+v", out)
	}
	if !bytes.HasPrefix(out.PDF, []byte("%PDF")) {
		t.Error("submission should render a PDF summary")
	}
	if out.EmailSent {
		t.Error("no email requested")
	}
}

func TestSubmitWithEmailCopy(t *testing.T) {
	hr := &mockHR{user: managedUser(), insertIDs: []string{"a01aa"}, approvalStatus: "Pending"}
	mailer := &mockMailer{}
	uc, _ := newTestUseCase(ucOptions{hr: hr, mailer: mailer})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	out, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{EmailCopy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.EmailSent || !mailer.called {
		t.Fatal("email copy requested but not sent")
	}
	if mailer.sentTo.Email != "alice@example.com" {
		t.Errorf("sent to %q", mailer.sentTo.Email)
	}
	if !bytes.HasPrefix(mailer.attachment, []byte("%PDF")) {
		t.Error("email should attach the PDF")
	}
}

func TestSubmitEmailFailureDoesNotFailSubmission(t *testing.T) {
	hr := &mockHR{user: managedUser(), insertIDs: []string{"a01aa"}, approvalStatus: "Pending"}
	mailer := &mockMailer{err: errors.New("sendgrid 401")}
	uc, _ := newTestUseCase(ucOptions{hr: hr, mailer: mailer})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	out, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{EmailCopy: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.EmailSent {
		t.Error("failed email must not be reported as sent")
	}
}

func TestSubmitWithoutDraft(t *testing.T) {
	uc, _ := newTestUseCase(ucOptions{hr: &mockHR{}})
	sc := model.Scope{SessionID: "s1"}

	if _, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{}); !errors.Is(err, timesheet.ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}
}

func TestSubmitUserLookupFailure(t *testing.T) {
	hr := &mockHR{userErr: errors.New("INVALID_SESSION_ID")}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	if _, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{}); !errors.Is(err, timesheet.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestSubmitRejectsDuplicateWeek(t *testing.T) {
	hr := &mockHR{
		user: managedUser(),
		records: []model.TimesheetRecord{
			{ActivityID: "a01old", Date: fixedMonday, TimeType: model.TimeTypeBusinessDay, Hours: 8, Status: model.RecordStatusSubmitted},
		},
	}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	if _, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{}); !errors.Is(err, timesheet.ErrAlreadySubmitted) {
		t.Fatalf("expected ErrAlreadySubmitted, got %v", err)
	}
	if hr.insertedOpts != nil {
		t.Errorf("no records may be inserted after the guard fired: %+v", hr.insertedOpts)
	}
}

func TestSubmitDuplicateLookupFailure(t *testing.T) {
	hr := &mockHR{
		user:       managedUser(),
		recordsErr: errors.New("MALFORMED_QUERY"),
	}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	if _, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{}); !errors.Is(err, timesheet.ErrSourceUnavailable) {
		t.Fatalf("expected ErrSourceUnavailable, got %v", err)
	}
	if hr.insertedOpts != nil {
		t.Errorf("no records may be inserted when the guard cannot run: %+v", hr.insertedOpts)
	}
}

func TestSubmitPartialInsertFailure(t *testing.T) {
	hr := &mockHR{
		user:      managedUser(),
		insertIDs: []string{"a01aa", "a01bb"},
		insertErr: errors.New("REQUIRED_FIELD_MISSING"),
	}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	out, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{})

	var partial *timesheet.PartialFailure
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialFailure, got %v", err)
	}
	if len(partial.CreatedIDs) != 2 || len(partial.Errs) != 1 {
		t.Errorf("unexpected partial failure: %+v", partial)
	}
	if len(out.RecordIDs) != 2 {
		t.Errorf("created ids should be reported: %+v", out)
	}
}

func TestSubmitApprovalFailureIsPartial(t *testing.T) {
	hr := &mockHR{
		user:        managedUser(),
		insertIDs:   []string{"a01aa"},
		approvalErr: errors.New("NO_APPLICABLE_PROCESS"),
	}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1", UserID: "alice@example.com"}
	buildSession(t, uc, sc)

	out, err := uc.Submit(context.Background(), sc, timesheet.SubmitInput{})

	var partial *timesheet.PartialFailure
	if !errors.As(err, &partial) {
		t.Fatalf("expected PartialFailure, got %v", err)
	}
	if len(out.RecordIDs) != 1 {
		t.Errorf("records were created and must be reported: %+v", out)
	}
}

func TestFinalizeForSubmission(t *testing.T) {
	uc, _ := newTestUseCase(ucOptions{})
	sc := model.Scope{SessionID: "s1"}
	buildSession(t, uc, sc)

	d, _ := uc.GetDraft(context.Background(), sc)
	opts := finalizeForSubmission(d.Draft, "005aa")

	// Monday worked 8, Tuesday PTO 8, Wednesday-Friday Misc 8 each.
	if len(opts) != 5 {
		t.Fatalf("expected 5 records, got %d", len(opts))
	}
	if opts[0].TimeType != model.TimeTypeBusinessDay || opts[0].Hours != 8 {
		t.Errorf("unexpected first record: %+v", opts[0])
	}
	if opts[1].TimeType != model.TimeTypePTO {
		t.Errorf("PTO day should produce a PTO record: %+v", opts[1])
	}
	for _, opt := range opts {
		if opt.Status != model.RecordStatusSubmitted {
			t.Errorf("record not marked submitted: %+v", opt)
		}
	}
}

func TestDeleteRecords(t *testing.T) {
	hr := &mockHR{}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1"}

	err := uc.DeleteRecords(context.Background(), sc, timesheet.DeleteRecordsInput{RecordIDs: []string{"a01aa"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hr.deletedIDs) != 1 || hr.deletedIDs[0] != "a01aa" {
		t.Errorf("unexpected deleted ids: %v", hr.deletedIDs)
	}
}

func TestDeleteRecordsEmpty(t *testing.T) {
	uc, _ := newTestUseCase(ucOptions{hr: &mockHR{}})
	sc := model.Scope{SessionID: "s1"}

	err := uc.DeleteRecords(context.Background(), sc, timesheet.DeleteRecordsInput{})
	if !errors.Is(err, timesheet.ErrNoRecordIDs) {
		t.Fatalf("expected ErrNoRecordIDs, got %v", err)
	}
}

func TestFAQs(t *testing.T) {
	hr := &mockHR{faqs: []model.FAQ{{ID: "ka0aa", Question: "How do I log PTO?"}}}
	uc, _ := newTestUseCase(ucOptions{hr: hr})
	sc := model.Scope{SessionID: "s1"}

	out, err := uc.FAQs(context.Background(), sc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Items) != 1 || out.Items[0].Question != "How do I log PTO?" {
		t.Errorf("unexpected faqs: %+v", out)
	}
}
