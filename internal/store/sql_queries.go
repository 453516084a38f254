package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-content-mirror/models"
)

const (
	tableResources = "resources"
	tableDeletions = "deletions"
	tableSyncState = "sync_state"

	// sync_state holds a single row
	syncStateRowID = 1
)

func buildUpsertResourceQuery(b sq.StatementBuilderType, r models.Resource) (string, []any, error) {
	return b.Insert(tableResources).
		Columns("id", "kind", "content_type", "revision", "fields", "updated_at").
		Values(r.ID(), string(r.Sys.Type), r.ContentTypeID(), r.Sys.Revision, string(r.Fields), r.Sys.UpdatedAt).
		Suffix(`ON CONFLICT (id, kind) DO UPDATE SET
			content_type = excluded.content_type,
			revision     = excluded.revision,
			fields       = excluded.fields,
			updated_at   = excluded.updated_at`).
		ToSql()
}

func buildDeleteResourceQuery(b sq.StatementBuilderType, id string, kind models.ResourceKind) (string, []any, error) {
	return b.Delete(tableResources).
		Where(sq.Eq{"id": id, "kind": string(kind)}).
		ToSql()
}

func buildUpsertDeletionQuery(b sq.StatementBuilderType, id string, kind models.ResourceKind, deletedAt *time.Time) (string, []any, error) {
	return b.Insert(tableDeletions).
		Columns("id", "kind", "deleted_at").
		Values(id, string(kind), deletedAt).
		Suffix("ON CONFLICT (id, kind) DO UPDATE SET deleted_at = excluded.deleted_at").
		ToSql()
}

func buildDeleteDeletionQuery(b sq.StatementBuilderType, id string, kind models.ResourceKind) (string, []any, error) {
	return b.Delete(tableDeletions).
		Where(sq.Eq{"id": id, "kind": string(kind)}).
		ToSql()
}

func buildSaveSyncTokenQuery(b sq.StatementBuilderType, token string, now time.Time) (string, []any, error) {
	return b.Insert(tableSyncState).
		Columns("id", "sync_token", "updated_at").
		Values(syncStateRowID, token, now).
		Suffix("ON CONFLICT (id) DO UPDATE SET sync_token = excluded.sync_token, updated_at = excluded.updated_at").
		ToSql()
}

func buildLoadSyncTokenQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select("sync_token").
		From(tableSyncState).
		Where(sq.Eq{"id": syncStateRowID}).
		ToSql()
}

func buildCountByKindQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("kind", "COUNT(*)").
		From(table).
		GroupBy("kind").
		ToSql()
}

// baseKind maps a tombstone kind to the kind of the resource it removes.
func baseKind(kind models.ResourceKind) models.ResourceKind {
	switch kind {
	case models.KindDeletedEntry:
		return models.KindEntry
	case models.KindDeletedAsset:
		return models.KindAsset
	default:
		return kind
	}
}
