package http

import (
	"github.com/gin-gonic/gin"

	"timesheet-assistant/internal/middleware"
)

// MapRoutes attaches the timesheet endpoints under the given router group.
func MapRoutes(rg *gin.RouterGroup, h Handler, mw *middleware.Middleware) {
	ts := rg.Group("/timesheet")
	ts.POST("/draft", h.BuildDraft)
	ts.GET("/draft", h.GetDraft)
	ts.POST("/chat", mw.RateLimit(), h.Chat)
	ts.POST("/submit", h.Submit)
	ts.DELETE("/records", h.DeleteRecords)

	rg.GET("/faqs", h.FAQs)
}
