package handler

import (
	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	"github.com/MKhiriev/go-content-mirror/internal/handler/http"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(content *fixture.ContentStore, cfg config.FixtureConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if content == nil {
		return nil, errNoContentStore
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(content, cfg, buildInfo, logger),
	}, nil
}
