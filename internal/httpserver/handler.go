package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	insightHTTP "timesheet-assistant/internal/insight/delivery/http"
	timesheetHTTP "timesheet-assistant/internal/timesheet/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	timesheetHTTP.MapRoutes(api, srv.timesheetHandler, srv.middleware)
	srv.l.Infof(ctx, "Timesheet domain registered")

	if srv.insightHandler != nil {
		insightHTTP.MapRoutes(api, srv.insightHandler)
		srv.l.Infof(ctx, "Insight domain registered")
	} else {
		srv.l.Infof(ctx, "Insight handler not configured, skipping manager routes")
	}

	return nil
}
