package http

import (
	"encoding/base64"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/response"
)

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" binding:"required"`
}

func (r chatReq) toInput() timesheet.ChatInput {
	return timesheet.ChatInput{Message: r.Message}
}

type submitReq struct {
	EmailCopy bool `json:"email_copy"`
}

func (r submitReq) toInput() timesheet.SubmitInput {
	return timesheet.SubmitInput{EmailCopy: r.EmailCopy}
}

type deleteReq struct {
	RecordIDs []string `json:"record_ids" binding:"required"`
}

func (r deleteReq) toInput() timesheet.DeleteRecordsInput {
	return timesheet.DeleteRecordsInput{RecordIDs: r.RecordIDs}
}

// --- Response DTOs ---

type dayResp struct {
	Date  string             `json:"date"`
	Hours map[string]float64 `json:"hours"`
}

type draftResp struct {
	WeekStart string             `json:"week_start"`
	WeekEnd   string             `json:"week_end"`
	Days      map[string]dayResp `json:"days"`
}

func newDraftResp(out timesheet.DraftOutput) draftResp {
	return draftResp{
		WeekStart: out.WeekStart,
		WeekEnd:   out.WeekEnd,
		Days:      newDaysResp(out.Draft),
	}
}

func newDaysResp(d *model.Draft) map[string]dayResp {
	if d == nil {
		return nil
	}
	days := make(map[string]dayResp, len(d.Days))
	for name, entry := range d.Days {
		hours := make(map[string]float64, len(entry.Hours))
		for cat, h := range entry.Hours {
			hours[string(cat)] = h
		}
		days[name] = dayResp{
			Date:  entry.Date.Format(response.DateFormat),
			Hours: hours,
		}
	}
	return days
}

type chatResp struct {
	Status  string             `json:"status"`
	Message string             `json:"message"`
	Days    map[string]dayResp `json:"days,omitempty"`
}

func newChatResp(out timesheet.ChatOutput) chatResp {
	return chatResp{
		Status:  string(out.Status),
		Message: out.Message,
		Days:    newDaysResp(out.Draft),
	}
}

type submitResp struct {
	RecordIDs      []string `json:"record_ids"`
	ApprovalStatus string   `json:"approval_status,omitempty"`
	Manager        string   `json:"manager,omitempty"`
	EmailSent      bool     `json:"email_sent"`
	PDFBase64      string   `json:"pdf_base64,omitempty"`
}

func newSubmitResp(out timesheet.SubmitOutput) submitResp {
	resp := submitResp{
		RecordIDs:      out.RecordIDs,
		ApprovalStatus: out.ApprovalStatus,
		Manager:        out.ManagerName,
		EmailSent:      out.EmailSent,
	}
	if len(out.PDF) > 0 {
		resp.PDFBase64 = base64.StdEncoding.EncodeToString(out.PDF)
	}
	return resp
}

type faqResp struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	URL      string `json:"url"`
}

type faqsResp struct {
	Items []faqResp `json:"items"`
}

func newFAQsResp(out timesheet.FAQsOutput) faqsResp {
	items := make([]faqResp, 0, len(out.Items))
	for _, faq := range out.Items {
		items = append(items, faqResp{ID: faq.ID, Question: faq.Question, URL: faq.URL})
	}
	return faqsResp{Items: items}
}
