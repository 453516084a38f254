// Package service holds the client's sync logic: the coordinator that drives
// paged sync chains against the transport and the periodic job built on it.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-mirror/models"
)

// Completion is invoked once when a sync chain ends, with a nil error on
// success. It is not invoked for chains cancelled through their
// [CancelHandle].
type Completion func(session *models.SyncSession, err error)

// SyncCoordinator runs sync chains: the request or sequence of paged requests
// that brings a session up to date with the server.
type SyncCoordinator interface {
	// Sync starts a chain in the background and returns a handle to cancel it.
	//
	// Guard failures are reported synchronously through completion and yield a
	// nil handle: [ErrUnsupportedOperation] when an incremental sync is asked
	// of a preview endpoint, [ErrConcurrentSyncInProgress] when session is
	// already in a chain.
	Sync(ctx context.Context, session *models.SyncSession, types models.SyncableTypes, completion Completion) *CancelHandle

	// SyncBlocking runs a chain on the calling goroutine and returns its
	// result. The chain stops when ctx is cancelled.
	SyncBlocking(ctx context.Context, session *models.SyncSession, types models.SyncableTypes) error
}

// ClientSyncJob defines the contract for a background worker that keeps a
// session up to date by running a chain every interval.
type ClientSyncJob interface {
	// Start launches the background goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
