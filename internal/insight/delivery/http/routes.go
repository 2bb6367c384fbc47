package http

import (
	"github.com/gin-gonic/gin"
)

// MapRoutes attaches the insight endpoints under the given router group.
func MapRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/insight/productivity", h.Productivity)

	team := rg.Group("/team")
	team.GET("/summary", h.TeamSummary)
	team.GET("/missing", h.MissingSubmitters)
	team.POST("/approve", h.Approve)
	team.POST("/reject", h.Reject)
}
