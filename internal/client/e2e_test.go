package client

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-mirror/internal/adapter"
	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/fixture"
	fixturehttp "github.com/MKhiriev/go-content-mirror/internal/handler/http"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/internal/store"
	"github.com/MKhiriev/go-content-mirror/models"
)

func fixtureEntry(id, contentType string) models.Resource {
	r := models.Resource{Sys: models.Sys{ID: id, Type: models.KindEntry}, Fields: json.RawMessage(`{"title":"` + id + `"}`)}
	r.Sys.ContentType = &models.Link{}
	r.Sys.ContentType.Sys.ID = contentType
	return r
}

// newMirror builds an App against the fixture server at url on the SQLite
// mirror at dsn, the way cmd/mirror does.
func newMirror(t *testing.T, url, dsn string) (*App, store.MirrorRepository) {
	t.Helper()
	cfg := newTestClientConfig(url, dsn)

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, logger.Nop())
	require.NoError(t, err)

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	app, err := NewApp(context.Background(), cfg, transport, storages.MirrorRepository, storages.Classifier(), logger.Nop())
	require.NoError(t, err)
	app.out = &testWriter{t: t}
	return app, storages.MirrorRepository
}

func newTestClientConfig(url, dsn string) *config.ClientConfig {
	return config.NewClientConfig(&config.StructuredConfig{
		App: config.App{
			SpaceID:     "space1",
			AccessToken: "secret",
			Environment: "master",
		},
		Adapter: config.Adapter{
			HTTPAddress:    url,
			RequestTimeout: 5 * time.Second,
		},
		Storage: config.Storage{DB: config.DB{DSN: dsn}},
	})
}

type testWriter struct{ t *testing.T }

func (w *testWriter) Write(p []byte) (int, error) {
	w.t.Log(string(p))
	return len(p), nil
}

func TestEndToEnd_FullThenIncrementalSync(t *testing.T) {
	content := fixture.NewContentStore(2)
	require.NoError(t, content.Seed([]models.Resource{
		fixtureEntry("e1", "post"),
		fixtureEntry("e2", "post"),
		fixtureEntry("e3", "author"),
		{Sys: models.Sys{ID: "a1", Type: models.KindAsset}, Fields: json.RawMessage(`{"file":"a.png"}`)},
	}))

	fixtureCfg := config.FixtureConfig{SpaceID: "space1", Environment: "master", AccessToken: "secret"}
	srv := httptest.NewServer(fixturehttp.NewHandler(content, fixtureCfg, models.AppBuildInfo{}, logger.Nop()).Init())
	defer srv.Close()

	dsn := filepath.Join(t.TempDir(), "mirror.db")
	ctx := context.Background()

	// full sync over two pages
	app, repo := newMirror(t, srv.URL, dsn)
	require.Equal(t, models.ModeFull, app.session.Mode())
	require.NoError(t, app.run(ctx))

	assert.Len(t, app.session.Entries(), 3)
	assert.Len(t, app.session.Assets(), 1)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, 1, stats.Assets)
	require.NotEmpty(t, stats.SyncToken)
	firstToken := stats.SyncToken

	// remote changes between runs
	require.NoError(t, content.Delete(models.KindEntry, "e1"))
	_, err = content.Put(fixtureEntry("e4", "post"))
	require.NoError(t, err)

	// a new process resumes incrementally from the stored token
	app, repo = newMirror(t, srv.URL, dsn)
	require.Equal(t, models.ModeIncremental, app.session.Mode())
	require.Equal(t, firstToken, app.session.SyncToken())
	require.NoError(t, app.run(ctx))

	_, ok := app.session.Entry("e4")
	assert.True(t, ok)
	assert.Equal(t, []string{"e1"}, app.session.DeletedEntryIDs())

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Entries)
	assert.Equal(t, 1, stats.DeletedEntries)
	assert.NotEqual(t, firstToken, stats.SyncToken)

	// nothing changed: an incremental sync returns an empty page
	app, repo = newMirror(t, srv.URL, dsn)
	require.NoError(t, app.run(ctx))
	assert.Empty(t, app.session.Entries())

	after, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, stats.Entries, after.Entries)
}

func TestEndToEnd_ContentTypeSelection(t *testing.T) {
	content := fixture.NewContentStore(10)
	require.NoError(t, content.Seed([]models.Resource{
		fixtureEntry("e1", "post"),
		fixtureEntry("e2", "author"),
	}))

	fixtureCfg := config.FixtureConfig{SpaceID: "space1", Environment: "master", AccessToken: "secret"}
	srv := httptest.NewServer(fixturehttp.NewHandler(content, fixtureCfg, models.AppBuildInfo{}, logger.Nop()).Init())
	defer srv.Close()

	app, repo := newMirror(t, srv.URL, filepath.Join(t.TempDir(), "mirror.db"))
	app.types = models.EntriesOfContentType("author")
	require.NoError(t, app.run(context.Background()))

	_, ok := app.session.Entry("e2")
	assert.True(t, ok)
	assert.Len(t, app.session.Entries(), 1)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Entries)
}

func TestEndToEnd_WrongAccessTokenFails(t *testing.T) {
	fixtureCfg := config.FixtureConfig{SpaceID: "space1", Environment: "master", AccessToken: "other"}
	srv := httptest.NewServer(fixturehttp.NewHandler(fixture.NewContentStore(1), fixtureCfg, models.AppBuildInfo{}, logger.Nop()).Init())
	defer srv.Close()

	app, repo := newMirror(t, srv.URL, filepath.Join(t.TempDir(), "mirror.db"))
	err := app.run(context.Background())
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	stats, err := repo.Stats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, stats.SyncToken)
}
