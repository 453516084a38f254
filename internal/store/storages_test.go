package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-mirror/internal/config"
	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

func newSQLiteStorages(t *testing.T) *ClientStorages {
	t.Helper()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "mirror.db")}}

	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func TestClientStorages_SQLiteRoundTrip(t *testing.T) {
	storages := newSQLiteStorages(t)
	repo := storages.MirrorRepository
	ctx := context.Background()
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	token, err := repo.LoadSyncToken(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)

	post := &models.Link{}
	post.Sys.ID = "post"
	first := models.SyncPage{
		Items: []models.Resource{
			{Sys: models.Sys{ID: "e1", Type: models.KindEntry, Revision: 1, UpdatedAt: &now, ContentType: post}, Fields: json.RawMessage(`{"t":1}`)},
			{Sys: models.Sys{ID: "e2", Type: models.KindEntry, Revision: 1, UpdatedAt: &now, ContentType: post}},
			{Sys: models.Sys{ID: "a1", Type: models.KindAsset, Revision: 1, UpdatedAt: &now}},
		},
		NextSyncURL: "https://cdn.example.com/sync?sync_token=tok-1",
	}
	require.NoError(t, repo.ApplyPage(ctx, first, true))
	// re-applying a page is a no-op
	require.NoError(t, repo.ApplyPage(ctx, first, true))

	second := models.SyncPage{
		Items: []models.Resource{
			{Sys: models.Sys{ID: "e1", Type: models.KindDeletedEntry, DeletedAt: &now}},
			{Sys: models.Sys{ID: "e2", Type: models.KindEntry, Revision: 2, UpdatedAt: &now, ContentType: post}},
		},
		NextSyncURL: "https://cdn.example.com/sync?sync_token=tok-2",
	}
	require.NoError(t, repo.ApplyPage(ctx, second, false))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.MirrorStats{Entries: 1, Assets: 1, DeletedEntries: 1, SyncToken: "tok-1"}, stats)

	require.NoError(t, repo.ApplyPage(ctx, second, true))
	token, err = repo.LoadSyncToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-2", token)
}

func TestClientStorages_RecreatedEntryDropsTombstone(t *testing.T) {
	repo := newSQLiteStorages(t).MirrorRepository
	ctx := context.Background()

	require.NoError(t, repo.ApplyPage(ctx, models.SyncPage{
		Items: []models.Resource{{Sys: models.Sys{ID: "a1", Type: models.KindDeletedAsset}}},
	}, true))
	require.NoError(t, repo.ApplyPage(ctx, models.SyncPage{
		Items: []models.Resource{{Sys: models.Sys{ID: "a1", Type: models.KindAsset, Revision: 3}}},
	}, true))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Assets)
	assert.Zero(t, stats.DeletedAssets)
}

func TestClientStorages_ClassifierIsSQLite(t *testing.T) {
	storages := newSQLiteStorages(t)
	assert.IsType(t, &SQLiteErrorClassifier{}, storages.Classifier())
}
