package export

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Status values recorded on ledger entries.
const (
	// StatusExported marks a record whose document was written this run or
	// a previous one.
	StatusExported = "exported"
	// StatusSkipped marks a record re-exported with an unchanged checksum.
	StatusSkipped = "skipped"
	// StatusFailed marks a record whose last export attempt errored.
	StatusFailed = "failed"
)

// ManifestVersion is the current manifest schema revision.
const ManifestVersion = 1

// ExportRecord is one ledger entry: the persisted outcome of exporting a
// single page. Records are keyed by page ID; slugs may collide across pages
// and the last write wins on disk.
type ExportRecord struct {
	bun.BaseModel `bun:"table:export_records,alias:er"`

	ID             uuid.UUID  `bun:",pk,type:uuid" json:"id"`
	PageID         string     `bun:"page_id,notnull,unique" json:"page_id"`
	Slug           string     `bun:"slug,notnull" json:"slug"`
	Title          string     `bun:"title" json:"title,omitempty"`
	Path           string     `bun:"path,notnull" json:"path"`
	Checksum       string     `bun:"checksum,notnull" json:"checksum"`
	BlockCount     int        `bun:"block_count,notnull,default:0" json:"block_count"`
	Status         string     `bun:"status,notnull" json:"status"`
	LastExportedAt *time.Time `bun:"last_exported_at,nullzero" json:"last_exported_at,omitempty"`
	CreatedAt      time.Time  `bun:"created_at,nullzero,default:current_timestamp" json:"created_at"`
	UpdatedAt      time.Time  `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at"`
}

// ManifestPage is one manifest entry describing an exported document.
type ManifestPage struct {
	PageID     string    `json:"page_id"`
	Slug       string    `json:"slug"`
	Title      string    `json:"title,omitempty"`
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum"`
	BlockCount int       `json:"block_count"`
	ExportedAt time.Time `json:"exported_at"`
}

// Manifest describes the exported set. Pages are ordered by slug so repeated
// builds produce byte-stable output.
type Manifest struct {
	Version     int            `json:"version"`
	GeneratedAt time.Time      `json:"generated_at"`
	Pages       []ManifestPage `json:"pages"`
}

// Result is the outcome of exporting one page.
type Result struct {
	PageID     string `json:"page_id"`
	Slug       string `json:"slug"`
	Title      string `json:"title,omitempty"`
	Path       string `json:"path,omitempty"`
	Checksum   string `json:"checksum"`
	BlockCount int    `json:"block_count"`
	Skipped    bool   `json:"skipped"`
	Markdown   string `json:"-"`
}

// Summary aggregates a batch export run. Per-page failures are collected
// rather than aborting the batch.
type Summary struct {
	Exported    int           `json:"exported"`
	Skipped     int           `json:"skipped"`
	Failed      int           `json:"failed"`
	Results     []*Result     `json:"results,omitempty"`
	FailedPages []PageFailure `json:"failed_pages,omitempty"`
}

// PageFailure records one page that could not be exported during a batch run.
type PageFailure struct {
	PageID string `json:"page_id"`
	Err    error  `json:"-"`
}

// PreviewResult carries both renditions of a page for operator inspection.
type PreviewResult struct {
	PageID   string `json:"page_id"`
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown"`
	HTML     string `json:"html"`
}
