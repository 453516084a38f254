package service

import (
	"github.com/MKhiriev/go-content-mirror/internal/adapter"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/store"
	"github.com/MKhiriev/go-content-mirror/models"
)

// ClientServices bundles the services the mirror client runs.
type ClientServices struct {
	Coordinator SyncCoordinator
	SyncJob     ClientSyncJob
}

// NewClientServices wires a coordinator and a periodic job that keeps session
// up to date for types.
func NewClientServices(
	transport adapter.Transport,
	policy adapter.EndpointPolicy,
	sink store.PersistenceSink,
	session *models.SyncSession,
	types models.SyncableTypes,
	log *logger.Logger,
) *ClientServices {
	coordinator := NewSyncCoordinator(transport, policy, sink, log)

	return &ClientServices{
		Coordinator: coordinator,
		SyncJob:     NewClientSyncJob(coordinator, session, types, log),
	}
}
