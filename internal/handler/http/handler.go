package http

import (
	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

type Handler struct {
	content   *fixture.ContentStore
	cfg       config.FixtureConfig
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(content *fixture.ContentStore, cfg config.FixtureConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		content:   content,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
