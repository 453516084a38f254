// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

const defaultPageWriteTimeout = 30 * time.Second

// AsyncSink is a [PersistenceSink] that applies pages to a [MirrorRepository]
// on a single background goroutine, in the order they were notified.
//
// Notify never blocks: when the queue is full the page is dropped and the sink
// turns degraded. A degraded sink keeps writing pages but stops committing sync
// tokens, so the next process start resumes from the last token whose pages
// are all known to be stored.
type AsyncSink struct {
	repo       MirrorRepository
	classifier ErrorClassificator
	pages      chan models.SyncPage
	logger     *logger.Logger

	writeTimeout time.Duration

	mu     sync.RWMutex
	closed bool

	degraded  atomic.Bool
	startOnce sync.Once
	closeOnce sync.Once
	done      chan struct{}
}

// NewAsyncSink builds a sink with a queue of buffer pages.
func NewAsyncSink(repo MirrorRepository, classifier ErrorClassificator, buffer int, log *logger.Logger) *AsyncSink {
	if buffer < 1 {
		buffer = 1
	}
	if classifier == nil {
		classifier = NewSQLiteErrorClassifier()
	}

	return &AsyncSink{
		repo:         repo,
		classifier:   classifier,
		pages:        make(chan models.SyncPage, buffer),
		logger:       log,
		writeTimeout: defaultPageWriteTimeout,
		done:         make(chan struct{}),
	}
}

// Notify queues page for persistence.
func (s *AsyncSink) Notify(page models.SyncPage) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.logger.Warn().Err(ErrSinkClosed).Int("items", len(page.Items)).Msg("page dropped")
		return
	}

	select {
	case s.pages <- page:
	default:
		s.degraded.Store(true)
		s.logger.Warn().
			Int("items", len(page.Items)).
			Int("buffer", cap(s.pages)).
			Msg("persistence queue is full, page dropped; sync token will not be committed")
	}
}

// Run starts the writer goroutine. Calling it more than once has no effect.
func (s *AsyncSink) Run() {
	s.startOnce.Do(func() {
		go s.loop()
	})
}

// Close stops accepting pages, writes everything already queued and waits for
// the writer to finish.
func (s *AsyncSink) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.pages)
		s.mu.Unlock()
	})
	s.Run()
	<-s.done
}

// Degraded reports whether a page was lost since the sink was created.
func (s *AsyncSink) Degraded() bool {
	return s.degraded.Load()
}

func (s *AsyncSink) loop() {
	defer close(s.done)

	for page := range s.pages {
		if err := s.apply(page); err != nil {
			s.degraded.Store(true)
			s.logger.Err(err).
				Int("items", len(page.Items)).
				Msg("failed to persist page; sync token will not be committed")
		}
	}
}

func (s *AsyncSink) apply(page models.SyncPage) error {
	commit := !s.degraded.Load()

	err := s.write(page, commit)
	if err == nil {
		return nil
	}
	if s.classifier.Classify(err) != Retryable {
		return err
	}

	s.logger.Warn().Err(err).Msg("retrying page write")
	return s.write(page, commit)
}

func (s *AsyncSink) write(page models.SyncPage, commitToken bool) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()

	return s.repo.ApplyPage(s.logger.WithContext(ctx), page, commitToken)
}

// Stop is Close; it lets the sink run as a background worker.
func (s *AsyncSink) Stop() {
	s.Close()
}
