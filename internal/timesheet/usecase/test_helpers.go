package usecase

import (
	"context"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/session"
	"timesheet-assistant/internal/timesheet/interpret"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/sendgrid"
)

// Mock logger for testing
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

// Mock oracle for the interpreter's LLM tier
type mockOracle struct {
	intents []model.EditIntent
	err     error
	called  bool
}

func (m *mockOracle) Interpret(ctx context.Context, text string) ([]model.EditIntent, error) {
	m.called = true
	return m.intents, m.err
}

// Mock calendar repository
type mockCalendar struct {
	events []model.CalendarEvent
	err    error
}

func (m *mockCalendar) ListWeekEvents(ctx context.Context, week model.WorkWeek) ([]model.CalendarEvent, error) {
	return m.events, m.err
}

// Mock HR repository
type mockHR struct {
	user    model.HRUser
	userErr error

	insertedOpts []repository.CreateRecordOptions
	insertIDs    []string
	insertErr    error

	approvalOpt    repository.ApprovalOptions
	approvalStatus string
	approvalErr    error

	deletedIDs []string
	deleteErr  error

	faqs    []model.FAQ
	faqsErr error

	weekOpt    repository.WeekRecordsOptions
	records    []model.TimesheetRecord
	recordsErr error

	statusIDs   []string
	statusValue string
	statusErr   error

	comments []string
}

func (m *mockHR) FindUser(ctx context.Context, username string) (model.HRUser, error) {
	return m.user, m.userErr
}

func (m *mockHR) InsertRecords(ctx context.Context, opts []repository.CreateRecordOptions) ([]string, error) {
	m.insertedOpts = opts
	return m.insertIDs, m.insertErr
}

func (m *mockHR) WeekRecords(ctx context.Context, opt repository.WeekRecordsOptions) ([]model.TimesheetRecord, error) {
	m.weekOpt = opt
	return m.records, m.recordsErr
}

func (m *mockHR) DeleteRecords(ctx context.Context, ids []string) error {
	m.deletedIDs = ids
	return m.deleteErr
}

func (m *mockHR) SubmitForApproval(ctx context.Context, opt repository.ApprovalOptions) (string, error) {
	m.approvalOpt = opt
	return m.approvalStatus, m.approvalErr
}

func (m *mockHR) PostComment(ctx context.Context, subjectID, text string) error {
	m.comments = append(m.comments, text)
	return nil
}

func (m *mockHR) ListFAQs(ctx context.Context, limit int) ([]model.FAQ, error) {
	return m.faqs, m.faqsErr
}

func (m *mockHR) UpdateRecordStatus(ctx context.Context, ids []string, status string) error {
	m.statusIDs = ids
	m.statusValue = status
	return m.statusErr
}

// Mock mailer
type mockMailer struct {
	sentTo     sendgrid.Address
	attachment []byte
	err        error
	called     bool
}

func (m *mockMailer) SendMail(ctx context.Context, to sendgrid.Address, subject, body string, attachmentName string, attachment []byte) error {
	m.called = true
	m.sentTo = to
	m.attachment = attachment
	return m.err
}

// fixedMonday is a known Monday used to pin the work week in tests.
var fixedMonday = time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)

type ucOptions struct {
	oracle   *mockOracle
	calendar repository.CalendarRepository
	hr       repository.HRRepository
	mailer   Mailer
	env      model.Environment
}

// newTestUseCase wires a usecase over mocks with the clock pinned to
// mid-week of fixedMonday's week.
func newTestUseCase(opt ucOptions) (*implUseCase, *session.Store) {
	l := &mockLogger{}
	if opt.oracle == nil {
		opt.oracle = &mockOracle{}
	}
	if opt.env == "" {
		opt.env = model.EnvironmentDevelopment
	}
	sessions, _ := session.NewStore(16)

	uc := New(l, interpret.New(l, opt.oracle), opt.calendar, opt.hr, opt.mailer, sessions, opt.env)
	uc.now = func() time.Time { return fixedMonday.Add(34 * time.Hour) }
	return uc, sessions
}
