package http

import (
	"time"

	"github.com/gserrano-dev/portfolio-api/internal/config"
	"github.com/gserrano-dev/portfolio-api/internal/logger"
	"github.com/gserrano-dev/portfolio-api/internal/service"
)

// Handler carries the dependencies shared by every HTTP endpoint: the
// injected services, the runtime metadata surfaced by the root and
// health endpoints, and the CORS origin allowed by the browser-facing
// middleware.
type Handler struct {
	services *service.Services

	environment string
	version     string
	corsOrigin  string
	started     time.Time

	logger *logger.Logger
}

func NewHandler(services *service.Services, app config.App, server config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		environment: app.Environment,
		version:     app.Version,
		corsOrigin:  server.CORSOrigin,
		started:     time.Now(),
		logger:      logger,
	}
}
