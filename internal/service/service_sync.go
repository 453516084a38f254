// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"maps"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-content-mirror/internal/adapter"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/store"
	"github.com/MKhiriev/go-content-mirror/internal/utils"
	"github.com/MKhiriev/go-content-mirror/models"
)

// CancelHandle stops a chain started by [SyncCoordinator.Sync].
// A nil handle is valid and does nothing.
type CancelHandle struct {
	cancel    context.CancelFunc
	cancelled atomic.Bool
	done      chan struct{}
}

// Cancel aborts the in-flight request. The page being fetched is not merged
// and the chain's completion is not invoked.
func (h *CancelHandle) Cancel() {
	if h == nil {
		return
	}
	h.cancelled.Store(true)
	h.cancel()
}

// Done is closed once the chain's goroutine has exited.
func (h *CancelHandle) Done() <-chan struct{} {
	if h == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return h.done
}

type syncCoordinator struct {
	transport adapter.Transport
	policy    adapter.EndpointPolicy
	sink      store.PersistenceSink
	ids       *utils.UUIDGenerator
	logger    *logger.Logger
}

// NewSyncCoordinator builds a [SyncCoordinator]. Every merged page is handed
// to sink; a nil sink discards pages.
func NewSyncCoordinator(transport adapter.Transport, policy adapter.EndpointPolicy, sink store.PersistenceSink, log *logger.Logger) SyncCoordinator {
	if sink == nil {
		sink = discardSink{}
	}
	return &syncCoordinator{
		transport: transport,
		policy:    policy,
		sink:      sink,
		ids:       utils.NewUUIDGenerator(),
		logger:    log,
	}
}

func (c *syncCoordinator) Sync(ctx context.Context, session *models.SyncSession, types models.SyncableTypes, completion Completion) *CancelHandle {
	if completion == nil {
		completion = func(*models.SyncSession, error) {}
	}

	if err := c.begin(session); err != nil {
		completion(session, err)
		return nil
	}

	chainCtx, cancel := context.WithCancel(ctx)
	handle := &CancelHandle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(handle.done)
		defer cancel()

		err := c.run(chainCtx, session, types, handle.cancelled.Load)
		session.Release()

		if errors.Is(err, errChainCancelled) {
			return
		}
		completion(session, err)
	}()

	return handle
}

func (c *syncCoordinator) SyncBlocking(ctx context.Context, session *models.SyncSession, types models.SyncableTypes) error {
	if err := c.begin(session); err != nil {
		return err
	}
	defer session.Release()

	return c.run(ctx, session, types, func() bool { return false })
}

// begin marks session as busy and applies the preview guard. The session
// state is only read once the session is held.
func (c *syncCoordinator) begin(session *models.SyncSession) error {
	if !session.Acquire() {
		return ErrConcurrentSyncInProgress
	}
	if session.SyncToken() != "" && !session.HasMorePages() && c.policy != nil && c.policy.IsPreview() {
		session.Release()
		return ErrUnsupportedOperation
	}
	return nil
}

// run fetches and merges pages until the server reports the chain complete.
func (c *syncCoordinator) run(ctx context.Context, session *models.SyncSession, types models.SyncableTypes, cancelled func() bool) error {
	chainID := c.ids.Generate()
	log := c.logger.With().
		Str("chain_id", chainID).
		Str("types", types.String()).
		Str("mode", session.Mode().String()).
		Logger()
	ctx = log.WithContext(utils.WithChainID(ctx, chainID))

	log.Info().Msg("sync chain started")

	var items int
	for page := 1; ; page++ {
		params := requestParameters(session, types)

		result, err := c.transport.FetchPage(ctx, params)
		if cancelled() {
			log.Info().Int("page", page).Msg("sync chain cancelled")
			return errChainCancelled
		}
		if err != nil {
			log.Err(err).Int("page", page).Msg("sync chain failed")
			return err
		}

		session.MergeDiffs(result)
		c.sink.Notify(result)
		items += len(result.Items)

		logPage(log, page, result)

		if !session.HasMorePages() {
			log.Info().Int("pages", page).Int("items", items).Msg("sync chain completed")
			return nil
		}
	}
}

// requestParameters builds the query of the next request. Type selection is
// only sent on the first request of a chain.
func requestParameters(session *models.SyncSession, types models.SyncableTypes) map[string]string {
	if session.HasMorePages() {
		return session.RequestParameters()
	}

	params := make(map[string]string)
	maps.Copy(params, types.Parameters())
	maps.Copy(params, session.RequestParameters())
	return params
}

func logPage(log zerolog.Logger, page int, result models.SyncPage) {
	var deletions int
	for _, item := range result.Items {
		if item.Sys.Type.IsDeletion() {
			deletions++
		}
	}

	log.Debug().
		Int("page", page).
		Int("items", len(result.Items)).
		Int("deletions", deletions).
		Bool("more_pages", result.HasMorePages()).
		Msg("sync page merged")
}

type discardSink struct{}

func (discardSink) Notify(models.SyncPage) {}
