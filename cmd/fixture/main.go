package main

import (
	"fmt"

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	"github.com/MKhiriev/go-content-mirror/internal/handler"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/report"
	"github.com/MKhiriev/go-content-mirror/internal/server"
	"github.com/MKhiriev/go-content-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(report.RenderBuildInfo("content-fixture", buildInfo))

	log := logger.NewLogger("content-fixture")
	cfg, err := config.GetFixtureConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.HTTPAddress).
		Int("page_size", cfg.PageSize).
		Str("space", cfg.SpaceID).
		Str("environment", cfg.Environment).
		Msg("received configs")

	content := fixture.NewContentStore(cfg.PageSize)
	if cfg.SeedFile != "" {
		resources, err := fixture.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading seed file")
		}
		if err = content.Seed(resources); err != nil {
			log.Fatal().Err(err).Msg("error seeding content store")
		}
		log.Info().Int("resources", content.Len()).Msg("content store seeded")
	}

	handlers, err := handler.NewHandlers(content, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
