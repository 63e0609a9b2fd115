package state

import (
	"context"
	"testing"

	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/pkg/testsupport"
)

func newTestStore(t *testing.T) *BunStore {
	t.Helper()

	sqldb, err := testsupport.NewSQLiteMemoryDB("state_" + t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	db := testsupport.NewBunDB(sqldb)
	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	return NewBunStore(db)
}

func TestBunStoreUpsertGetRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Upsert(ctx, testRecord("page-1"))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	fetched, err := store.GetByPageID(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.ID != created.ID {
		t.Fatalf("ID mismatch: %s vs %s", fetched.ID, created.ID)
	}
	if fetched.Checksum != "abc123" || fetched.BlockCount != 4 {
		t.Fatalf("unexpected record: %+v", fetched)
	}
}

func TestBunStoreUpsertRewritesExisting(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.Upsert(ctx, testRecord("page-1"))
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	update := testRecord("page-1")
	update.Checksum = "def456"
	update.Status = export.StatusSkipped
	if _, err := store.Upsert(ctx, update); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected upsert to rewrite in place, got %d records", len(records))
	}
	if records[0].ID != created.ID {
		t.Fatalf("rewrite changed ID: %s -> %s", created.ID, records[0].ID)
	}
	if records[0].Checksum != "def456" || records[0].Status != export.StatusSkipped {
		t.Fatalf("unexpected record after rewrite: %+v", records[0])
	}
}

func TestBunStoreGetMissingMapsNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetByPageID(context.Background(), "absent")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBunStoreDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Upsert(ctx, testRecord("page-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Delete(ctx, "page-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByPageID(ctx, "page-1"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError after delete, got %v", err)
	}
}
