// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-content-mirror/models"
)

var (
	sqliteBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Question)
	postgresBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
)

func Test_buildUpsertResourceQuery_Placeholders(t *testing.T) {
	r := entry("e1", "post", 4)

	query, args, err := buildUpsertResourceQuery(postgresBuilder, r)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6)")
	assert.Contains(t, query, "ON CONFLICT (id, kind) DO UPDATE")
	require.Len(t, args, 6)
	assert.Equal(t, "e1", args[0])
	assert.Equal(t, "Entry", args[1])
	assert.Equal(t, "post", args[2])
	assert.Equal(t, int64(4), args[3])

	query, _, err = buildUpsertResourceQuery(sqliteBuilder, r)
	require.NoError(t, err)
	assert.Contains(t, query, "VALUES (?,?,?,?,?,?)")
	assert.NotContains(t, query, "$1")
}

func Test_buildUpsertResourceQuery_AssetHasNoContentType(t *testing.T) {
	r := models.Resource{Sys: models.Sys{ID: "a1", Type: models.KindAsset}}

	_, args, err := buildUpsertResourceQuery(sqliteBuilder, r)
	require.NoError(t, err)
	assert.Equal(t, "", args[2])
}

func Test_buildUpsertDeletionQuery(t *testing.T) {
	at := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	query, args, err := buildUpsertDeletionQuery(postgresBuilder, "e1", models.KindEntry, &at)
	require.NoError(t, err)

	lower := strings.ToLower(query)
	assert.Contains(t, lower, "insert into deletions")
	assert.Contains(t, lower, "on conflict (id, kind) do update set deleted_at = excluded.deleted_at")
	assert.Equal(t, []any{"e1", "Entry", &at}, args)
}

func Test_buildDeleteQueries(t *testing.T) {
	query, args, err := buildDeleteResourceQuery(postgresBuilder, "a1", models.KindAsset)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM resources WHERE id = $1 AND kind = $2", query)
	assert.Equal(t, []any{"a1", "Asset"}, args)

	query, _, err = buildDeleteDeletionQuery(sqliteBuilder, "a1", models.KindAsset)
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM deletions WHERE id = ? AND kind = ?", query)
}

func Test_buildSyncTokenQueries(t *testing.T) {
	now := time.Now()

	query, args, err := buildSaveSyncTokenQuery(postgresBuilder, "tok", now)
	require.NoError(t, err)
	assert.Contains(t, query, "INSERT INTO sync_state (id,sync_token,updated_at) VALUES ($1,$2,$3)")
	assert.Contains(t, query, "ON CONFLICT (id)")
	assert.Equal(t, []any{syncStateRowID, "tok", now}, args)

	query, args, err = buildLoadSyncTokenQuery(postgresBuilder)
	require.NoError(t, err)
	assert.Equal(t, "SELECT sync_token FROM sync_state WHERE id = $1", query)
	assert.Equal(t, []any{syncStateRowID}, args)
}

func Test_baseKind(t *testing.T) {
	assert.Equal(t, models.KindEntry, baseKind(models.KindDeletedEntry))
	assert.Equal(t, models.KindAsset, baseKind(models.KindDeletedAsset))
	assert.Equal(t, models.KindEntry, baseKind(models.KindEntry))
}
