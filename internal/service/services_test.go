package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/mock"
	"github.com/MKhiriev/go-content-mirror/models"
)

func TestNewClientServices(t *testing.T) {
	ctrl := gomock.NewController(t)

	services := NewClientServices(
		mock.NewMockTransport(ctrl),
		mock.NewMockEndpointPolicy(ctrl),
		mock.NewMockPersistenceSink(ctrl),
		models.NewSyncSession(),
		models.AllTypes,
		logger.Nop(),
	)

	assert.NotNil(t, services.Coordinator)
	assert.NotNil(t, services.SyncJob)
}
