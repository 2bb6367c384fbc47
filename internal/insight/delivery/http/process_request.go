package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/internal/insight"
	"timesheet-assistant/internal/model"
)

const sessionHeader = "X-Session-ID"

// buildScope resolves the caller's scope from headers, minting a session id
// when the client did not send one.
func (h *handler) buildScope(c *gin.Context) model.Scope {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(sessionHeader, sessionID)

	return model.Scope{
		SessionID: sessionID,
		UserID:    h.username,
		Username:  h.username,
	}
}

// processReviewReq binds and validates an approve/reject body.
func (h *handler) processReviewReq(c *gin.Context) (reviewReq, error) {
	var req reviewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if len(req.RecordIDs) == 0 {
		return req, insight.ErrNoRecordIDs
	}
	return req, nil
}
