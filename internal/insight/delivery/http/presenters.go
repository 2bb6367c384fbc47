package http

import (
	"timesheet-assistant/internal/insight"
)

// --- Request DTOs ---

type reviewReq struct {
	RecordIDs []string `json:"record_ids" binding:"required"`
	Reason    string   `json:"reason"`
}

func (r reviewReq) toInput() insight.ReviewInput {
	return insight.ReviewInput{
		RecordIDs: r.RecordIDs,
		Reason:    r.Reason,
	}
}

// --- Response DTOs ---

type productivityResp struct {
	TotalHours   float64 `json:"total_hours"`
	MeetingHours float64 `json:"meeting_hours"`
	Insight      string  `json:"insight,omitempty"`
}

func newProductivityResp(out insight.ProductivityOutput) productivityResp {
	return productivityResp{
		TotalHours:   out.TotalHours,
		MeetingHours: out.MeetingHours,
		Insight:      out.Insight,
	}
}

type memberResp struct {
	UserID      string   `json:"user_id"`
	Name        string   `json:"name"`
	WorkedHours float64  `json:"worked_hours"`
	PTOHours    float64  `json:"pto_hours"`
	RecordIDs   []string `json:"record_ids"`
}

type teamSummaryResp struct {
	Members   []memberResp `json:"members"`
	Narrative string       `json:"narrative,omitempty"`
}

func newTeamSummaryResp(out insight.TeamSummaryOutput) teamSummaryResp {
	members := make([]memberResp, 0, len(out.Members))
	for _, m := range out.Members {
		members = append(members, memberResp{
			UserID:      m.UserID,
			Name:        m.Name,
			WorkedHours: m.WorkedHours,
			PTOHours:    m.PTOHours,
			RecordIDs:   m.RecordIDs,
		})
	}
	return teamSummaryResp{
		Members:   members,
		Narrative: out.Narrative,
	}
}

type missingResp struct {
	Missing   []string `json:"missing"`
	Submitted []string `json:"submitted"`
}

func newMissingResp(out insight.MissingOutput) missingResp {
	return missingResp{
		Missing:   out.Missing,
		Submitted: out.Submitted,
	}
}
