package export

import "context"

// ExportPageInput selects one page for export.
type ExportPageInput struct {
	// PageID is the source page identifier. Required.
	PageID string
	// Force rewrites the document even when the ledger checksum matches.
	Force bool
}

// ExportPagesInput selects a batch of pages for sequential export.
type ExportPagesInput struct {
	PageIDs []string
	Force   bool
}

// SyncInput re-exports every page already present in the ledger.
type SyncInput struct {
	// Prune removes ledger records whose page the API no longer returns.
	Prune bool
	Force bool
}

// SyncSummary extends the batch summary with prune accounting.
type SyncSummary struct {
	Summary
	Pruned []string `json:"pruned,omitempty"`
}

// Service is the export pipeline: fetch, render, persist, track.
type Service interface {
	// ExportPage renders one page and writes it under the output directory,
	// skipping the write when the ledger carries an identical checksum.
	ExportPage(ctx context.Context, input ExportPageInput) (*Result, error)
	// ExportPages exports pages sequentially, collecting per-page failures
	// into the summary instead of aborting the batch.
	ExportPages(ctx context.Context, input ExportPagesInput) (*Summary, error)
	// Preview renders a page to Markdown and HTML without touching disk or
	// the ledger.
	Preview(ctx context.Context, pageID string) (*PreviewResult, error)
	// Sync re-exports the ledger set, optionally pruning records for pages
	// the API no longer returns.
	Sync(ctx context.Context, input SyncInput) (*SyncSummary, error)
	// BuildManifest assembles and validates the manifest from ledger records.
	BuildManifest(ctx context.Context) (*Manifest, error)
	// WriteManifest builds the manifest and persists it atomically.
	WriteManifest(ctx context.Context) (*Manifest, error)
}
