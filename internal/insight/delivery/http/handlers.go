package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/pkg/response"
)

// Productivity godoc
// @Summary     Personal productivity insight
// @Description Summarizes the session's draft hours with a generated coaching line.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       X-Session-ID header string true "Conversation session id"
// @Success     200 {object} productivityResp
// @Failure     404 {object} response.Resp "No draft yet"
// @Router      /api/v1/insight/productivity [GET]
func (h *handler) Productivity(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.Productivity(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Productivity: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newProductivityResp(output))
}

// TeamSummary godoc
// @Summary     Weekly team summary
// @Description Aggregates this week's records across the manager's reports.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Success     200 {object} teamSummaryResp
// @Failure     503 {object} response.Resp "HR store unavailable"
// @Router      /api/v1/team/summary [GET]
func (h *handler) TeamSummary(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.TeamSummary(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.TeamSummary: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newTeamSummaryResp(output))
}

// MissingSubmitters godoc
// @Summary     Reports with no submission
// @Description Lists active reports who have not submitted records this week.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Success     200 {object} missingResp
// @Failure     503 {object} response.Resp "HR store unavailable"
// @Router      /api/v1/team/missing [GET]
func (h *handler) MissingSubmitters(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	output, err := h.uc.MissingSubmitters(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.MissingSubmitters: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newMissingResp(output))
}

// Approve godoc
// @Summary     Approve timesheet records
// @Description Marks the given records approved in the HR store.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body reviewReq true "Record ids"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/team/approve [POST]
func (h *handler) Approve(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	req, err := h.processReviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Approve(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Approve: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Reject godoc
// @Summary     Reject timesheet records
// @Description Marks the given records rejected and posts the reason to their owner.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body reviewReq true "Record ids and reason"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/team/reject [POST]
func (h *handler) Reject(c *gin.Context) {
	ctx := c.Request.Context()
	sc := h.buildScope(c)

	req, err := h.processReviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Reject(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "uc.Reject: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
