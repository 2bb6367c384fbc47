package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	insightHTTP "timesheet-assistant/internal/insight/delivery/http"
	"timesheet-assistant/internal/middleware"
	timesheetHTTP "timesheet-assistant/internal/timesheet/delivery/http"
	"timesheet-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Timesheet domain
	timesheetHandler timesheetHTTP.Handler

	// Insight domain (manager extension)
	insightHandler insightHTTP.Handler

	// Request middleware
	middleware *middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Timesheet domain
	TimesheetHandler timesheetHTTP.Handler

	// Insight domain (manager extension)
	InsightHandler insightHTTP.Handler

	// Request middleware
	Middleware *middleware.Middleware
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.Default(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		timesheetHandler: cfg.TimesheetHandler,
		insightHandler:   cfg.InsightHandler,
		middleware:       cfg.Middleware,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.timesheetHandler == nil {
		return errors.New("timesheet handler is required")
	}
	if srv.middleware == nil {
		return errors.New("middleware is required")
	}
	return nil
}
