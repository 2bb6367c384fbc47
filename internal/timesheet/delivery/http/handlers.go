package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/timesheet"
	"timesheet-assistant/pkg/response"
)

// BuildDraft godoc
// @Summary     Build the weekly draft
// @Description Derives a fresh draft from the calendar and replaces the session's draft.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string false "Conversation session id (minted when absent)"
// @Success     200 {object} draftResp
// @Failure     503 {object} response.Resp "Calendar unavailable"
// @Router      /api/v1/timesheet/draft [POST]
func (h *handler) BuildDraft(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.BuildDraft(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.BuildDraft: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDraftResp(output))
}

// GetDraft godoc
// @Summary     Get the current draft
// @Description Returns the session's draft without modifying it.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Conversation session id"
// @Success     200 {object} draftResp
// @Failure     404 {object} response.Resp "No draft yet"
// @Router      /api/v1/timesheet/draft [GET]
func (h *handler) GetDraft(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.GetDraft(ctx, sc)
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newDraftResp(output))
}

// Chat godoc
// @Summary     Apply a chat instruction
// @Description Interprets a natural-language edit and applies it to the session's draft.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Conversation session id"
// @Param       body body chatReq true "Instruction"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No draft yet"
// @Router      /api/v1/timesheet/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Chat(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(output))
}

// Submit godoc
// @Summary     Submit the timesheet
// @Description Files the draft as HR records, routes approval to the manager, renders the PDF summary.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Conversation session id"
// @Param       body body submitReq false "Submission options"
// @Success     200 {object} submitResp
// @Failure     404 {object} response.Resp "No draft yet"
// @Failure     409 {object} response.Resp "Already submitted this week"
// @Failure     502 {object} response.Resp "Partial failure, created ids included"
// @Failure     503 {object} response.Resp "HR store unavailable"
// @Router      /api/v1/timesheet/submit [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	req, err := h.processSubmitReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Submit(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Submit: %v", err)

		var partial *timesheet.PartialFailure
		if errors.As(err, &partial) {
			c.JSON(http.StatusBadGateway, response.Resp{
				ErrorCode: http.StatusBadGateway,
				Message:   "submission partially failed",
				Data: gin.H{
					"created_ids": partial.CreatedIDs,
					"errors":      partial.Errs,
				},
			})
			return
		}

		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newSubmitResp(output))
}

// DeleteRecords godoc
// @Summary     Delete timesheet records
// @Description Removes previously created records from the HR store.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Param       body body deleteReq true "Record ids"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     503 {object} response.Resp "HR store unavailable"
// @Router      /api/v1/timesheet/records [DELETE]
func (h *handler) DeleteRecords(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	req, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.DeleteRecords(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.DeleteRecords: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// FAQs godoc
// @Summary     List FAQs
// @Description Returns published knowledge articles from the HR store.
// @Tags        Timesheet
// @Accept      json
// @Produce     json
// @Success     200 {object} faqsResp
// @Failure     503 {object} response.Resp "HR store unavailable"
// @Router      /api/v1/faqs [GET]
func (h *handler) FAQs(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.FAQs(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.FAQs: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newFAQsResp(output))
}
