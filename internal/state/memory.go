package state

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/goliatone/go-notion-export/internal/identity"
	"github.com/google/uuid"
)

// NewMemoryStore constructs an in-memory ledger, the default when no
// database is configured and the fixture store for tests.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		byPageID: make(map[string]*ExportRecord),
	}
}

// MemoryStore keeps export records in a map guarded by a RWMutex. All reads
// and writes exchange defensive clones so callers never share state.
type MemoryStore struct {
	mu       sync.RWMutex
	byPageID map[string]*ExportRecord
}

func (m *MemoryStore) GetByPageID(_ context.Context, pageID string) (*ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byPageID[pageID]
	if !ok {
		return nil, &NotFoundError{Resource: recordResource, Key: pageID}
	}
	return cloneRecord(record), nil
}

func (m *MemoryStore) Upsert(_ context.Context, record *ExportRecord) (*ExportRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneRecord(record)
	if cloned.ID == uuid.Nil {
		cloned.ID = identity.RecordID(cloned.PageID)
	}

	now := time.Now().UTC()
	if existing, ok := m.byPageID[cloned.PageID]; ok {
		cloned.ID = existing.ID
		cloned.CreatedAt = existing.CreatedAt
	} else if cloned.CreatedAt.IsZero() {
		cloned.CreatedAt = now
	}
	cloned.UpdatedAt = now

	m.byPageID[cloned.PageID] = cloned
	return cloneRecord(cloned), nil
}

func (m *MemoryStore) List(_ context.Context) ([]*ExportRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := make([]*ExportRecord, 0, len(m.byPageID))
	for _, record := range m.byPageID {
		records = append(records, cloneRecord(record))
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].PageID < records[j].PageID
	})
	return records, nil
}

func (m *MemoryStore) Delete(_ context.Context, pageID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.byPageID[pageID]; !ok {
		return &NotFoundError{Resource: recordResource, Key: pageID}
	}
	delete(m.byPageID, pageID)
	return nil
}

func cloneRecord(record *ExportRecord) *ExportRecord {
	if record == nil {
		return nil
	}
	cloned := *record
	if record.LastExportedAt != nil {
		ts := *record.LastExportedAt
		cloned.LastExportedAt = &ts
	}
	return &cloned
}
