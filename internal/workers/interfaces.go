// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops a group of workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: implementations spawn their goroutines and return.
// Stop blocks until the worker has finished its outstanding work.
type Worker interface {
	Run()
	Stop()
}

// Job is a periodic task started with a context and an interval.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
