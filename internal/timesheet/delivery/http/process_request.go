package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"timesheet-assistant/internal/model"
	"timesheet-assistant/internal/timesheet"
)

// SessionHeader carries the conversation identity. A missing header mints a
// fresh session id, echoed back so the client can stick to it.
const SessionHeader = "X-Session-ID"

// buildScope resolves the caller's scope from headers, minting a session id
// when the client did not send one.
func (h *handler) buildScope(c *gin.Context) model.Scope {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	c.Header(SessionHeader, sessionID)

	return model.Scope{
		SessionID: sessionID,
		UserID:    h.username,
		Username:  h.username,
	}
}

// processChatReq binds and validates the chat request body.
func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if req.Message == "" {
		return req, timesheet.ErrEmptyMessage
	}
	return req, nil
}

// processSubmitReq binds the submit request body; an empty body means
// default options.
func (h *handler) processSubmitReq(c *gin.Context) (submitReq, error) {
	var req submitReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}

// processDeleteReq binds and validates the record deletion body.
func (h *handler) processDeleteReq(c *gin.Context) (deleteReq, error) {
	var req deleteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if len(req.RecordIDs) == 0 {
		return req, timesheet.ErrNoRecordIDs
	}
	return req, nil
}
