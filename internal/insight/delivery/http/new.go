package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/insight"
	pkgLog "timesheet-assistant/pkg/log"
)

// Handler is the public interface for the insight HTTP delivery layer.
type Handler interface {
	Productivity(c *gin.Context)
	TeamSummary(c *gin.Context)
	MissingSubmitters(c *gin.Context)
	Approve(c *gin.Context)
	Reject(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       insight.UseCase
	username string // HR store username of the acting manager
}

// New creates a new HTTP handler for the insight domain.
func New(l pkgLog.Logger, uc insight.UseCase, username string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		username: username,
	}
}
