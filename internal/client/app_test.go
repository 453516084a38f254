package client

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/mock"
	"github.com/MKhiriev/go-content-mirror/models"
)

var errBoom = errors.New("boom")

func testConfig() *config.ClientConfig {
	return &config.ClientConfig{
		App:     config.ClientApp{SpaceID: "space", Environment: "master"},
		Adapter: config.ClientAdapter{HTTPAddress: "http://localhost"},
		Workers: config.ClientWorkers{SinkBuffer: 8},
	}
}

func lastPage(token string, items ...models.Resource) models.SyncPage {
	return models.SyncPage{Items: items, NextSyncURL: "http://localhost/sync?sync_token=" + token}
}

func newTestApp(t *testing.T, cfg *config.ClientConfig, transport *mock.MockTransport, repo *mock.MockMirrorRepository) (*App, *bytes.Buffer) {
	t.Helper()
	app, err := NewApp(context.Background(), cfg, transport, repo, nil, logger.Nop())
	require.NoError(t, err)

	var out bytes.Buffer
	app.out = &out
	return app, &out
}

func TestNewApp_RestoresSessionFromStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMirrorRepository(ctrl)
	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("tok-1", nil)

	app, _ := newTestApp(t, testConfig(), mock.NewMockTransport(ctrl), repo)

	assert.Equal(t, "tok-1", app.session.SyncToken())
	assert.Equal(t, models.ModeIncremental, app.session.Mode())
	assert.Equal(t, models.AllTypes, app.types)
}

func TestNewApp_PreviewIgnoresStoredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMirrorRepository(ctrl)
	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("tok-1", nil)

	cfg := testConfig()
	cfg.Adapter.Preview = true
	app, _ := newTestApp(t, cfg, mock.NewMockTransport(ctrl), repo)

	assert.Equal(t, models.ModeFull, app.session.Mode())
}

func TestNewApp_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockMirrorRepository(ctrl)
	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("", errBoom)

	_, err := NewApp(context.Background(), testConfig(), mock.NewMockTransport(ctrl), repo, nil, logger.Nop())
	require.ErrorIs(t, err, errBoom)

	cfg := testConfig()
	cfg.App.SyncType = "spaces"
	_, err = NewApp(context.Background(), cfg, mock.NewMockTransport(ctrl), repo, nil, logger.Nop())
	require.ErrorIs(t, err, models.ErrUnknownSyncKind)
}

func TestApp_RunOnceStoresPagesAndPrintsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	repo := mock.NewMockMirrorRepository(ctrl)

	page := lastPage("tok-2", models.Resource{Sys: models.Sys{ID: "e1", Type: models.KindEntry}})

	gomock.InOrder(
		repo.EXPECT().LoadSyncToken(gomock.Any()).Return("", nil),
		transport.EXPECT().
			FetchPage(gomock.Any(), map[string]string{models.ParamInitial: "true"}).
			Return(page, nil),
		repo.EXPECT().ApplyPage(gomock.Any(), page, true).Return(nil),
		repo.EXPECT().Stats(gomock.Any()).Return(models.MirrorStats{Entries: 1, SyncToken: "tok-2"}, nil),
	)

	app, out := newTestApp(t, testConfig(), transport, repo)
	require.NoError(t, app.run(context.Background()))

	assert.Equal(t, "tok-2", app.session.SyncToken())
	assert.Contains(t, out.String(), "full")
	assert.Contains(t, out.String(), "Mirror entries")
	assert.Contains(t, out.String(), "tok-2")
}

func TestApp_RunOnceReportsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	repo := mock.NewMockMirrorRepository(ctrl)

	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("tok-1", nil)
	transport.EXPECT().
		FetchPage(gomock.Any(), map[string]string{models.ParamSyncToken: "tok-1"}).
		Return(models.SyncPage{}, errBoom)
	repo.EXPECT().Stats(gomock.Any()).Return(models.MirrorStats{}, errBoom)

	app, out := newTestApp(t, testConfig(), transport, repo)
	err := app.run(context.Background())

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, "tok-1", app.session.SyncToken())
	assert.Contains(t, out.String(), "failed")
	assert.NotContains(t, out.String(), "Mirror entries")
}

func TestApp_RunPeriodicUntilCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	repo := mock.NewMockMirrorRepository(ctrl)

	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("", nil)
	transport.EXPECT().FetchPage(gomock.Any(), gomock.Any()).Return(lastPage("tok-2"), nil).MinTimes(1)
	repo.EXPECT().ApplyPage(gomock.Any(), gomock.Any(), true).Return(nil).MinTimes(1)
	repo.EXPECT().Stats(gomock.Any()).Return(models.MirrorStats{SyncToken: "tok-2"}, nil)

	cfg := testConfig()
	cfg.Workers.SyncInterval = 10 * time.Millisecond
	app, out := newTestApp(t, cfg, transport, repo)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, app.run(ctx))
	assert.Equal(t, models.ModeIncremental, app.session.Mode())
	assert.Contains(t, out.String(), "ok")
}

func TestApp_RunPeriodicToleratesFirstFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	transport := mock.NewMockTransport(ctrl)
	repo := mock.NewMockMirrorRepository(ctrl)

	repo.EXPECT().LoadSyncToken(gomock.Any()).Return("", nil)
	transport.EXPECT().FetchPage(gomock.Any(), gomock.Any()).Return(models.SyncPage{}, errBoom).MinTimes(1)
	repo.EXPECT().Stats(gomock.Any()).Return(models.MirrorStats{}, nil)

	cfg := testConfig()
	cfg.Workers.SyncInterval = time.Hour
	app, _ := newTestApp(t, cfg, transport, repo)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	assert.NoError(t, app.run(ctx))
}
