package state

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the ledger table when it does not exist yet. Intended
// for sqlite-backed runs where the exporter owns its own database file;
// hosts with managed migrations can skip it.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if db == nil {
		return fmt.Errorf("state: ensure schema requires a database")
	}
	if _, err := db.NewCreateTable().
		Model((*ExportRecord)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("state: create export_records table: %w", err)
	}
	return nil
}
