package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"timesheet-assistant/internal/insight"
	"timesheet-assistant/internal/insight/repository"
	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet/draft"
	"timesheet-assistant/pkg/gemini"
)

// TeamSummary aggregates this week's records across the manager's reports
// and adds a narrative summary. The caller is the manager.
func (uc *implUseCase) TeamSummary(ctx context.Context, sc model.Scope) (insight.TeamSummaryOutput, error) {
	_, records, err := uc.teamWeek(ctx, sc)
	if err != nil {
		return insight.TeamSummaryOutput{}, err
	}

	byOwner := make(map[string]*insight.MemberSummary)
	var order []string
	for _, rec := range records {
		m, ok := byOwner[rec.OwnerID]
		if !ok {
			m = &insight.MemberSummary{UserID: rec.OwnerID, Name: rec.OwnerName}
			byOwner[rec.OwnerID] = m
			order = append(order, rec.OwnerID)
		}
		if rec.TimeType == model.TimeTypePTO {
			m.PTOHours += rec.Hours
		} else {
			m.WorkedHours += rec.Hours
		}
		m.RecordIDs = append(m.RecordIDs, rec.RecordID)
	}
	sort.Strings(order)

	out := insight.TeamSummaryOutput{}
	for _, id := range order {
		out.Members = append(out.Members, *byOwner[id])
	}

	if data, err := json.Marshal(out.Members); err == nil {
		out.Narrative = uc.generate(ctx, gemini.BuildTeamSummaryPrompt(string(data)))
	}
	return out, nil
}

// MissingSubmitters lists active reports with no submitted records this
// week.
func (uc *implUseCase) MissingSubmitters(ctx context.Context, sc model.Scope) (insight.MissingOutput, error) {
	manager, records, err := uc.teamWeek(ctx, sc)
	if err != nil {
		return insight.MissingOutput{}, err
	}

	members, err := uc.team.TeamMembers(ctx, manager.ID)
	if err != nil {
		return insight.MissingOutput{}, fmt.Errorf("%w: %v", insight.ErrSourceUnavailable, err)
	}

	submitted := make(map[string]bool)
	for _, rec := range records {
		submitted[rec.OwnerID] = true
	}

	out := insight.MissingOutput{}
	for _, member := range members {
		if submitted[member.ID] {
			out.Submitted = append(out.Submitted, member.Name)
		} else {
			out.Missing = append(out.Missing, member.Name)
		}
	}
	return out, nil
}

// Approve marks the given records approved.
func (uc *implUseCase) Approve(ctx context.Context, sc model.Scope, input insight.ReviewInput) error {
	if len(input.RecordIDs) == 0 {
		return insight.ErrNoRecordIDs
	}
	if err := uc.hr.UpdateRecordStatus(ctx, input.RecordIDs, model.RecordStatusApproved); err != nil {
		return fmt.Errorf("%w: %v", insight.ErrSourceUnavailable, err)
	}
	uc.l.Infof(ctx, "Approve: user=%s records=%d", sc.UserID, len(input.RecordIDs))
	return nil
}

// Reject marks the given records rejected and posts the reason on each
// record's feed so the owner sees it.
func (uc *implUseCase) Reject(ctx context.Context, sc model.Scope, input insight.ReviewInput) error {
	if len(input.RecordIDs) == 0 {
		return insight.ErrNoRecordIDs
	}
	if input.Reason == "" {
		return insight.ErrEmptyReason
	}

	if err := uc.hr.UpdateRecordStatus(ctx, input.RecordIDs, model.RecordStatusRejected); err != nil {
		return fmt.Errorf("%w: %v", insight.ErrSourceUnavailable, err)
	}

	note := fmt.Sprintf("Timesheet rejected: %s", input.Reason)
	for _, id := range input.RecordIDs {
		if err := uc.hr.PostComment(ctx, id, note); err != nil {
			// Status is already updated; a missed notification is logged,
			// not fatal.
			uc.l.Warnf(ctx, "Reject: feed post on %s failed: %v", id, err)
		}
	}

	uc.l.Infof(ctx, "Reject: user=%s records=%d", sc.UserID, len(input.RecordIDs))
	return nil
}

// teamWeek resolves the caller and pulls their reports' records for the
// current work week.
func (uc *implUseCase) teamWeek(ctx context.Context, sc model.Scope) (model.HRUser, []repository.TeamRecord, error) {
	manager, err := uc.hr.FindUser(ctx, sc.UserID)
	if err != nil {
		return model.HRUser{}, nil, fmt.Errorf("%w: %v", insight.ErrSourceUnavailable, err)
	}

	week := draft.CurrentWeek(uc.now())
	records, err := uc.team.TeamWeekRecords(ctx, repository.TeamWeekOptions{
		ManagerID: manager.ID,
		Start:     week.Start(),
		End:       week.Days[4],
	})
	if err != nil {
		return model.HRUser{}, nil, fmt.Errorf("%w: %v", insight.ErrSourceUnavailable, err)
	}
	return manager, records, nil
}
