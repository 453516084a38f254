package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

const defaultSyncInterval = 5 * time.Minute

type clientSyncJob struct {
	coordinator SyncCoordinator
	session     *models.SyncSession
	types       models.SyncableTypes
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a job that brings session up to date on a ticker.
// The job is idle until Start is called.
func NewClientSyncJob(coordinator SyncCoordinator, session *models.SyncSession, types models.SyncableTypes, log *logger.Logger) ClientSyncJob {
	return &clientSyncJob{
		coordinator: coordinator,
		session:     session,
		types:       types,
		logger:      log,
	}
}

// Start implements ClientSyncJob. The goroutine exits when ctx is cancelled or
// Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = defaultSyncInterval
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.coordinator.SyncBlocking(jobCtx, j.session, j.types); err != nil && jobCtx.Err() == nil {
					// the session keeps its last merged token; the next tick resumes from it
					j.logger.Err(err).Str("mode", j.session.Mode().String()).Msg("periodic sync failed")
				}
			}
		}
	}()
}

// Stop implements ClientSyncJob. Safe to call when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
