package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-content-mirror/internal/logger"
	"github.com/MKhiriev/go-content-mirror/models"
)

type mirrorRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewMirrorRepository returns a [MirrorRepository] backed by db.
func NewMirrorRepository(db *DB, logger *logger.Logger) MirrorRepository {
	return &mirrorRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

// ApplyPage folds one sync page into the mirror.
//
// Live items are upserted and their tombstones cleared; deletions remove the
// resource and record a tombstone. Everything, including the token, is
// written in a single transaction so a failed page leaves no partial state.
func (r *mirrorRepository) ApplyPage(ctx context.Context, page models.SyncPage, commitToken bool) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "mirrorRepository.ApplyPage").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, item := range page.Items {
		if err = r.applyItem(ctx, tx, item); err != nil {
			log.Err(err).
				Str("func", "mirrorRepository.ApplyPage").
				Str("id", item.ID()).
				Str("type", string(item.Sys.Type)).
				Msg("failed to apply item")
			return err
		}
	}

	token := page.SyncToken()
	if commitToken && !page.HasMorePages() && token != "" {
		if err = r.exec(ctx, tx, func() (string, []any, error) {
			return buildSaveSyncTokenQuery(r.builder, token, r.now().UTC())
		}); err != nil {
			log.Err(err).Str("func", "mirrorRepository.ApplyPage").Msg("failed to save sync token")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "mirrorRepository.ApplyPage").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	log.Debug().
		Str("func", "mirrorRepository.ApplyPage").
		Int("items", len(page.Items)).
		Bool("token_saved", commitToken && !page.HasMorePages() && token != "").
		Msg("page applied")

	return nil
}

func (r *mirrorRepository) applyItem(ctx context.Context, tx *sql.Tx, item models.Resource) error {
	kind := item.Sys.Type

	switch kind {
	case models.KindEntry, models.KindAsset:
		if err := r.exec(ctx, tx, func() (string, []any, error) {
			return buildUpsertResourceQuery(r.builder, item)
		}); err != nil {
			return err
		}
		return r.exec(ctx, tx, func() (string, []any, error) {
			return buildDeleteDeletionQuery(r.builder, item.ID(), kind)
		})

	case models.KindDeletedEntry, models.KindDeletedAsset:
		base := baseKind(kind)
		if err := r.exec(ctx, tx, func() (string, []any, error) {
			return buildDeleteResourceQuery(r.builder, item.ID(), base)
		}); err != nil {
			return err
		}
		return r.exec(ctx, tx, func() (string, []any, error) {
			return buildUpsertDeletionQuery(r.builder, item.ID(), base, item.Sys.DeletedAt)
		})
	}

	return fmt.Errorf("%w: %q", ErrUnsupportedResource, kind)
}

func (r *mirrorRepository) exec(ctx context.Context, tx *sql.Tx, build func() (string, []any, error)) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// LoadSyncToken returns the last committed sync token.
func (r *mirrorRepository) LoadSyncToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLoadSyncTokenQuery(r.builder)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var token string
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		log.Err(err).Str("func", "mirrorRepository.LoadSyncToken").Msg("failed to load sync token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

// Stats counts mirrored resources and tombstones per kind.
func (r *mirrorRepository) Stats(ctx context.Context) (models.MirrorStats, error) {
	var stats models.MirrorStats

	live, err := r.countByKind(ctx, tableResources)
	if err != nil {
		return stats, err
	}
	deleted, err := r.countByKind(ctx, tableDeletions)
	if err != nil {
		return stats, err
	}
	token, err := r.LoadSyncToken(ctx)
	if err != nil {
		return stats, err
	}

	stats.Entries = live[models.KindEntry]
	stats.Assets = live[models.KindAsset]
	stats.DeletedEntries = deleted[models.KindEntry]
	stats.DeletedAssets = deleted[models.KindAsset]
	stats.SyncToken = token

	return stats, nil
}

func (r *mirrorRepository) countByKind(ctx context.Context, table string) (map[models.ResourceKind]int, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountByKindQuery(r.builder, table)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "mirrorRepository.countByKind").Str("table", table).Msg("failed to count rows")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.ResourceKind]int, 2)
	for rows.Next() {
		var (
			kind  string
			count int
		)
		if err = rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		counts[models.ResourceKind(kind)] = count
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}
