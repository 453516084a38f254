package store

import (
	"context"

	"github.com/MKhiriev/go-content-mirror/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PersistenceSink receives every sync page merged by the coordinator.
//
// Notify must not block and must not report errors back to the caller: the
// sync chain's outcome never depends on persistence.
type PersistenceSink interface {
	Notify(page models.SyncPage)
}

// MirrorRepository is the local mirror of the remote content store.
type MirrorRepository interface {
	// ApplyPage writes the page's resources and deletions in one transaction.
	// When commitToken is true and the page is the last page of its chain,
	// the page's sync token is stored as the new resumption point.
	ApplyPage(ctx context.Context, page models.SyncPage, commitToken bool) error

	// LoadSyncToken returns the stored resumption token, or "" if the mirror
	// has never completed a sync.
	LoadSyncToken(ctx context.Context) (string, error)

	// Stats counts the mirrored resources and tombstones.
	Stats(ctx context.Context) (models.MirrorStats, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
