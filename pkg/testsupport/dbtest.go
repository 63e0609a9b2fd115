package testsupport

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// NewSQLiteMemoryDB opens a named, shared in-memory sqlite database. Naming
// the DSN keeps concurrent test packages isolated from each other.
func NewSQLiteMemoryDB(name string) (*sql.DB, error) {
	if name == "" {
		name = "notion_export_test"
	}
	return sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=memory&cache=shared&_fk=1", name))
}

// NewBunDB wraps a sqlite handle with the bun sqlite dialect.
func NewBunDB(sqldb *sql.DB) *bun.DB {
	return bun.NewDB(sqldb, sqlitedialect.New())
}
