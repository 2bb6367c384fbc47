package usecase

import (
	"context"
	"fmt"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/internal/timesheet/repository"
	"timesheet-assistant/pkg/pdfgen"
	"timesheet-assistant/pkg/sendgrid"
)

const pdfTitle = "Weekly Timesheet Summary"

// Submit finalizes the session's draft into HR store records, routes them
// to the user's manager for approval, and renders the PDF summary.
func (uc *implUseCase) Submit(ctx context.Context, sc model.Scope, input timesheet.SubmitInput) (timesheet.SubmitOutput, error) {
	if uc.hr == nil {
		return timesheet.SubmitOutput{}, timesheet.ErrSourceUnavailable
	}

	state, ok := uc.sessions.Get(sc.SessionID)
	if !ok {
		return timesheet.SubmitOutput{}, timesheet.ErrNoDraft
	}
	d, err := state.Get()
	if err != nil {
		return timesheet.SubmitOutput{}, timesheet.ErrNoDraft
	}

	user, err := uc.hr.FindUser(ctx, sc.UserID)
	if err != nil {
		uc.l.Errorf(ctx, "Submit: user lookup failed: %v", err)
		return timesheet.SubmitOutput{}, fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}

	existing, err := uc.hr.WeekRecords(ctx, repository.WeekRecordsOptions{
		OwnerID: user.ID,
		Start:   d.Week.Start(),
		End:     d.Week.Days[4],
		Status:  model.RecordStatusSubmitted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "Submit: existing records lookup failed: %v", err)
		return timesheet.SubmitOutput{}, fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}
	if len(existing) > 0 {
		uc.l.Warnf(ctx, "Submit: session=%s user=%s already has %d submitted records this week", sc.SessionID, user.ID, len(existing))
		return timesheet.SubmitOutput{}, timesheet.ErrAlreadySubmitted
	}

	opts := finalizeForSubmission(d, user.ID)
	ids, err := uc.hr.InsertRecords(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "Submit: insert failed, %d of %d records created: %v", len(ids), len(opts), err)
		if len(ids) > 0 {
			return timesheet.SubmitOutput{RecordIDs: ids}, &timesheet.PartialFailure{
				CreatedIDs: ids,
				Errs:       []string{err.Error()},
			}
		}
		return timesheet.SubmitOutput{}, fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}

	out := timesheet.SubmitOutput{
		RecordIDs:   ids,
		ManagerName: user.ManagerName,
	}

	status, err := uc.hr.SubmitForApproval(ctx, repository.ApprovalOptions{
		RecordIDs:  ids,
		ApproverID: user.ManagerID,
		Comments:   fmt.Sprintf("Weekly timesheet for %s", user.Name),
	})
	if err != nil {
		uc.l.Errorf(ctx, "Submit: approval routing failed: %v", err)
		return out, &timesheet.PartialFailure{
			CreatedIDs: ids,
			Errs:       []string{fmt.Sprintf("approval routing failed: %v", err)},
		}
	}
	out.ApprovalStatus = status

	pdf, err := pdfgen.Generate(pdfTitle, draftToSummary(d))
	if err != nil {
		// Records are already filed; a broken PDF must not undo that.
		uc.l.Errorf(ctx, "Submit: pdf rendering failed: %v", err)
	} else {
		out.PDF = pdf
	}

	if input.EmailCopy && uc.mailer != nil && user.Email != "" && len(out.PDF) > 0 {
		mailErr := uc.mailer.SendMail(ctx, sendgrid.Address{Email: user.Email, Name: user.Name},
			pdfTitle,
			fmt.Sprintf("Hi %s, your timesheet for the week of %s has been submitted. The summary is attached.",
				user.Name, d.Week.Start().Format("2006-01-02")),
			fmt.Sprintf("timesheet_%s.pdf", d.Week.Start().Format("2006-01-02")),
			out.PDF)
		if mailErr != nil {
			uc.l.Errorf(ctx, "Submit: email delivery failed: %v", mailErr)
		} else {
			out.EmailSent = true
		}
	}

	uc.l.Infof(ctx, "Submit: session=%s records=%d approval=%s", sc.SessionID, len(ids), out.ApprovalStatus)
	return out, nil
}

// DeleteRecords removes previously created records from the HR store.
func (uc *implUseCase) DeleteRecords(ctx context.Context, sc model.Scope, input timesheet.DeleteRecordsInput) error {
	if uc.hr == nil {
		return timesheet.ErrSourceUnavailable
	}
	if len(input.RecordIDs) == 0 {
		return timesheet.ErrNoRecordIDs
	}

	if err := uc.hr.DeleteRecords(ctx, input.RecordIDs); err != nil {
		uc.l.Errorf(ctx, "DeleteRecords: %v", err)
		return fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}

	uc.l.Infof(ctx, "DeleteRecords: session=%s deleted=%d", sc.SessionID, len(input.RecordIDs))
	return nil
}

// FAQs lists published knowledge articles.
func (uc *implUseCase) FAQs(ctx context.Context, sc model.Scope) (timesheet.FAQsOutput, error) {
	if uc.hr == nil {
		return timesheet.FAQsOutput{}, timesheet.ErrSourceUnavailable
	}

	faqs, err := uc.hr.ListFAQs(ctx, 5)
	if err != nil {
		return timesheet.FAQsOutput{}, fmt.Errorf("%w: %v", timesheet.ErrSourceUnavailable, err)
	}
	return timesheet.FAQsOutput{Items: faqs}, nil
}

// finalizeForSubmission flattens the draft into HR store records: one PTO
// record per PTO day, one aggregated worked-hours record per day that has
// any. Days come out in Monday-first order.
func finalizeForSubmission(d *model.Draft, ownerID string) []repository.CreateRecordOptions {
	var opts []repository.CreateRecordOptions
	for _, name := range model.WeekdayNames {
		entry, ok := d.Days[name]
		if !ok {
			continue
		}
		if pto := entry.Hours[model.CategoryPTO]; pto > 0 {
			opts = append(opts, repository.CreateRecordOptions{
				OwnerID:  ownerID,
				Date:     entry.Date,
				TimeType: model.TimeTypePTO,
				Hours:    pto,
				Status:   model.RecordStatusSubmitted,
			})
		}
		if worked := entry.Worked(); worked > 0 {
			opts = append(opts, repository.CreateRecordOptions{
				OwnerID:  ownerID,
				Date:     entry.Date,
				TimeType: model.TimeTypeBusinessDay,
				Hours:    worked,
				Status:   model.RecordStatusSubmitted,
			})
		}
	}
	return opts
}

// draftToSummary converts the draft into the PDF renderer's row shape.
func draftToSummary(d *model.Draft) []pdfgen.DaySummary {
	days := make([]pdfgen.DaySummary, 0, len(model.WeekdayNames))
	for _, name := range model.WeekdayNames {
		entry, ok := d.Days[name]
		if !ok {
			continue
		}
		hours := make(map[string]float64, len(entry.Hours))
		for cat, h := range entry.Hours {
			hours[string(cat)] = h
		}
		days = append(days, pdfgen.DaySummary{Day: name, Hours: hours})
	}
	return days
}
