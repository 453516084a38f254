package service

import "errors"

var (
	// ErrUnsupportedOperation is reported when an incremental sync is
	// requested from a preview endpoint, which only serves full syncs.
	ErrUnsupportedOperation = errors.New("incremental sync is not supported by preview endpoints")

	// ErrConcurrentSyncInProgress is reported when a chain is started on a
	// session that is already in a chain.
	ErrConcurrentSyncInProgress = errors.New("another sync is already in progress for this session")

	errChainCancelled = errors.New("sync chain cancelled")
)
