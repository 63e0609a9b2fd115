package state

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-notion-export/internal/identity"
	"github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	"github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

const recordResource = "export_record"

func newRecordRepository(db *bun.DB) repository.Repository[*ExportRecord] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*ExportRecord]{
		NewRecord:          func() *ExportRecord { return &ExportRecord{} },
		GetID:              func(r *ExportRecord) uuid.UUID { return r.ID },
		SetID:              func(r *ExportRecord, id uuid.UUID) { r.ID = id },
		GetIdentifier:      func() string { return "page_id" },
		GetIdentifierValue: func(r *ExportRecord) string { return r.PageID },
	})
}

// BunStore implements Store against a bun database with optional read-through
// caching.
type BunStore struct {
	repo repository.Repository[*ExportRecord]
}

// NewBunStore creates a ledger store without caching.
func NewBunStore(db *bun.DB) *BunStore {
	return NewBunStoreWithCache(db, nil, nil)
}

// NewBunStoreWithCache creates a ledger store, wrapping reads in the
// repository cache when both services are supplied.
func NewBunStoreWithCache(db *bun.DB, cacheService cache.CacheService, serializer cache.KeySerializer) *BunStore {
	base := newRecordRepository(db)
	if cacheService != nil && serializer != nil {
		base = repositorycache.New(base, cacheService, serializer)
	}
	return &BunStore{repo: base}
}

func (s *BunStore) GetByPageID(ctx context.Context, pageID string) (*ExportRecord, error) {
	records, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Where("?TableAlias.page_id = ?", pageID)
		}),
		repository.SelectPaginate(1, 0),
	)
	if err != nil {
		return nil, mapRepositoryError(err, pageID)
	}
	if len(records) == 0 {
		return nil, &NotFoundError{Resource: recordResource, Key: pageID}
	}
	return records[0], nil
}

// Upsert inserts or rewrites the record for its page ID. Record IDs derive
// deterministically from the page ID so re-exports update in place.
func (s *BunStore) Upsert(ctx context.Context, record *ExportRecord) (*ExportRecord, error) {
	if record.ID == uuid.Nil {
		record.ID = identity.RecordID(record.PageID)
	}
	record.UpdatedAt = time.Now().UTC()

	existing, err := s.GetByPageID(ctx, record.PageID)
	switch {
	case err == nil:
		record.ID = existing.ID
		record.CreatedAt = existing.CreatedAt
		updated, err := s.repo.Update(ctx, record,
			repository.UpdateByID(record.ID.String()),
			repository.UpdateColumns(
				"slug",
				"title",
				"path",
				"checksum",
				"block_count",
				"status",
				"last_exported_at",
				"updated_at",
			),
		)
		if err != nil {
			return nil, mapRepositoryError(err, record.PageID)
		}
		return updated, nil
	case IsNotFound(err):
		created, err := s.repo.Create(ctx, record)
		if err != nil {
			return nil, mapRepositoryError(err, record.PageID)
		}
		return created, nil
	default:
		return nil, err
	}
}

func (s *BunStore) List(ctx context.Context) ([]*ExportRecord, error) {
	records, _, err := s.repo.List(ctx,
		repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.Order("page_id ASC")
		}),
	)
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func (s *BunStore) Delete(ctx context.Context, pageID string) error {
	record, err := s.GetByPageID(ctx, pageID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, record); err != nil {
		return mapRepositoryError(err, pageID)
	}
	return nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if errors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Resource: recordResource, Key: key}
	}
	if strings.TrimSpace(key) == "" {
		return fmt.Errorf("%s repository error: %w", recordResource, err)
	}
	return fmt.Errorf("%s repository error for %q: %w", recordResource, key, err)
}
