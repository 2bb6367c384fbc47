package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/timesheet"
	pkgLog "timesheet-assistant/pkg/log"
)

// Handler is the public interface for the timesheet HTTP delivery layer.
type Handler interface {
	BuildDraft(c *gin.Context)
	GetDraft(c *gin.Context)
	Chat(c *gin.Context)
	Submit(c *gin.Context)
	DeleteRecords(c *gin.Context)
	FAQs(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       timesheet.UseCase
	username string // HR store username of the acting employee
}

// New creates a new HTTP handler for the timesheet domain.
func New(l pkgLog.Logger, uc timesheet.UseCase, username string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		username: username,
	}
}
