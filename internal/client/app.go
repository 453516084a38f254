package client

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-content-mirror/internal/adapter"
	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/report"
	"github.com/MKhiriev/go-content-mirror/internal/service"
	"github.com/MKhiriev/go-content-mirror/internal/store"
	"github.com/MKhiriev/go-content-mirror/internal/workers"
	"github.com/MKhiriev/go-content-mirror/models"
)

const statsTimeout = 10 * time.Second

type App struct {
	services *service.ClientServices
	repo     store.MirrorRepository
	sink     *store.AsyncSink
	session  *models.SyncSession
	types    models.SyncableTypes
	interval time.Duration

	out    io.Writer
	logger *logger.Logger
}

// NewApp restores the sync session from repo and wires the services that
// keep the mirror up to date.
func NewApp(
	ctx context.Context,
	cfg *config.ClientConfig,
	transport adapter.Transport,
	repo store.MirrorRepository,
	classifier store.ErrorClassificator,
	log *logger.Logger,
) (*App, error) {
	types, err := models.ParseSyncableTypes(cfg.App.SyncType, cfg.App.ContentType)
	if err != nil {
		return nil, fmt.Errorf("parse sync types: %w", err)
	}

	token, err := repo.LoadSyncToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("load sync token: %w", err)
	}

	session := models.RestoreSyncSession(token)
	if token != "" && cfg.Adapter.IsPreview() {
		// preview endpoints only serve full syncs
		log.Warn().Msg("preview endpoint configured, ignoring stored sync token")
		session = models.NewSyncSession()
	}

	sink := store.NewAsyncSink(repo, classifier, cfg.Workers.SinkBuffer, log)

	return &App{
		services: service.NewClientServices(transport, cfg.Adapter, sink, session, types, log),
		repo:     repo,
		sink:     sink,
		session:  session,
		types:    types,
		interval: cfg.Workers.SyncInterval,
		out:      os.Stdout,
		logger:   log,
	}, nil
}

// Run syncs once, or until SIGINT/SIGTERM when a sync interval is set, then
// prints a summary of the run.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	return a.run(ctx)
}

func (a *App) run(ctx context.Context) error {
	start := time.Now()
	summary := report.Summary{Mode: a.session.Mode(), Types: a.types, Session: a.session}

	ws := a.workers(ctx)
	ws.Run()

	err := a.services.Coordinator.SyncBlocking(ctx, a.session, a.types)
	if err != nil {
		a.logger.Err(err).Str("mode", summary.Mode.String()).Msg("sync failed")
	}

	if a.interval > 0 {
		a.logger.Info().Dur("interval", a.interval).Msg("periodic sync started")
		<-ctx.Done()
		// the job keeps retrying; a failed first run is not fatal here
		err = nil
	}

	// the job stops before the sink drains
	ws.Stop()

	summary.Duration = time.Since(start)
	summary.Degraded = a.sink.Degraded()
	summary.Err = err
	summary.Stats = a.stats()

	fmt.Fprintln(a.out, report.RenderSummary(summary))
	return err
}

func (a *App) workers(ctx context.Context) *workers.Workers {
	if a.interval <= 0 {
		return workers.NewWorkers(a.sink)
	}
	return workers.NewWorkers(a.sink, workers.NewJobWorker(ctx, a.services.SyncJob, a.interval))
}

func (a *App) stats() *models.MirrorStats {
	ctx, cancel := context.WithTimeout(context.Background(), statsTimeout)
	defer cancel()

	stats, err := a.repo.Stats(ctx)
	if err != nil {
		a.logger.Err(err).Msg("read mirror stats")
		return nil
	}
	return &stats
}
