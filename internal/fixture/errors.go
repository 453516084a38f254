package fixture

import "errors"

var (
	// ErrInvalidSyncRequest is returned for a request that is neither an
	// initial sync nor carries a sync token, or that is both.
	ErrInvalidSyncRequest = errors.New("exactly one of initial=true and sync_token is required")

	// ErrUnknownSyncToken is returned for a token this server never issued.
	ErrUnknownSyncToken = errors.New("unknown sync token")

	// ErrInvalidFilter is returned for an unknown type or a content_type
	// without type=Entry.
	ErrInvalidFilter = errors.New("invalid type selection")

	// ErrInvalidResource is returned when a resource cannot be stored.
	ErrInvalidResource = errors.New("invalid resource")

	// ErrResourceNotFound is returned when deleting a resource that does not
	// exist.
	ErrResourceNotFound = errors.New("resource not found")
)
