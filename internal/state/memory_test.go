package state

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-notion-export/export"
	"github.com/google/uuid"
)

func testRecord(pageID string) *ExportRecord {
	now := time.Now().UTC()
	return &ExportRecord{
		PageID:         pageID,
		Slug:           "hello-world",
		Title:          "Hello World",
		Path:           "export/hello-world.md",
		Checksum:       "abc123",
		BlockCount:     4,
		Status:         export.StatusExported,
		LastExportedAt: &now,
	}
}

func TestMemoryStoreUpsertGetRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	created, err := store.Upsert(ctx, testRecord("page-1"))
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected deterministic ID to be assigned")
	}

	fetched, err := store.GetByPageID(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Checksum != "abc123" || fetched.Status != export.StatusExported {
		t.Fatalf("unexpected record: %+v", fetched)
	}

	// Second upsert keeps the identity and creation time.
	update := testRecord("page-1")
	update.Checksum = "def456"
	updated, err := store.Upsert(ctx, update)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("upsert changed ID: %s -> %s", created.ID, updated.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("upsert changed CreatedAt")
	}
	if updated.Checksum != "def456" {
		t.Fatalf("checksum not updated: %q", updated.Checksum)
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetByPageID(context.Background(), "absent")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestMemoryStoreListOrdersByPageID(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	for _, id := range []string{"page-c", "page-a", "page-b"} {
		if _, err := store.Upsert(ctx, testRecord(id)); err != nil {
			t.Fatalf("upsert %s: %v", id, err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
	for i, want := range []string{"page-a", "page-b", "page-c"} {
		if records[i].PageID != want {
			t.Fatalf("records[%d].PageID = %q, want %q", i, records[i].PageID, want)
		}
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	if _, err := store.Upsert(ctx, testRecord("page-1")); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if err := store.Delete(ctx, "page-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "page-1"); !IsNotFound(err) {
		t.Fatalf("expected NotFoundError on second delete, got %v", err)
	}
}

func TestMemoryStoreClonesRecords(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	original := testRecord("page-1")
	if _, err := store.Upsert(ctx, original); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	original.Checksum = "mutated"

	fetched, err := store.GetByPageID(ctx, "page-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Checksum != "abc123" {
		t.Fatalf("store shared caller memory: checksum = %q", fetched.Checksum)
	}
}
