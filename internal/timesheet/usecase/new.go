package usecase

import (
	"context"
	"time"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/session"
	"timesheet-assistant/internal/timesheet/interpret"
	"timesheet-assistant/internal/timesheet/repository"
	pkgLog "timesheet-assistant/pkg/log"
	"timesheet-assistant/pkg/sendgrid"
)

// Mailer sends the submission summary email. pkg/sendgrid implements it.
type Mailer interface {
	SendMail(ctx context.Context, to sendgrid.Address, subject, body string, attachmentName string, attachment []byte) error
}

type implUseCase struct {
	l        pkgLog.Logger
	interp   *interpret.Interpreter
	calendar repository.CalendarRepository // nil when no calendar is configured
	hr       repository.HRRepository
	mailer   Mailer // nil when email delivery is disabled
	sessions *session.Store
	env      model.Environment
	now      func() time.Time
}

// New creates a new timesheet UseCase instance.
func New(
	l pkgLog.Logger,
	interp *interpret.Interpreter,
	calendar repository.CalendarRepository,
	hr repository.HRRepository,
	mailer Mailer,
	sessions *session.Store,
	env model.Environment,
) *implUseCase {
	return &implUseCase{
		l:        l,
		interp:   interp,
		calendar: calendar,
		hr:       hr,
		mailer:   mailer,
		sessions: sessions,
		env:      env,
		now:      time.Now,
	}
}
