package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-content-mirror/internal/adapter"
	"github.com/MKhiriev/go-content-mirror/internal/client"
	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/report"
	"github.com/MKhiriev/go-content-mirror/internal/store"
	"github.com/MKhiriev/go-content-mirror/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Println(report.RenderBuildInfo("content-mirror", models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("content-mirror").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("content-mirror", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	ctx := context.Background()

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create transport")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	app, err := client.NewApp(ctx, cfg, transport, storages.MirrorRepository, storages.Classifier(), log)
	if err != nil {
		storages.Close()
		log.Fatal().Err(err).Msg("init client app error")
	}

	os.Exit(runAndClose(app, storages, log))
}

// runAndClose runs the client, then closes the local storage. The returned
// value is the process exit code.
func runAndClose(app client.Client, storages io.Closer, log *logger.Logger) int {
	runErr := app.Run()
	if err := storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Err(runErr).Msg("client run error")
		return 1
	}
	return 0
}
