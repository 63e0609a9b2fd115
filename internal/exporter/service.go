package exporter

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/internal/markdown"
	"github.com/goliatone/go-notion-export/internal/state"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
	renderpkg "github.com/goliatone/go-notion-export/render"
	slug "github.com/goliatone/go-slug"
)

// Config carries the exporter's filesystem settings.
type Config struct {
	OutputDir    string
	ManifestName string
}

// service implements export.Service: fetch, render, persist, track.
type service struct {
	client   notion.Client
	renderer renderpkg.Service
	markdown interfaces.MarkdownRenderer
	store    state.Store
	logger   interfaces.Logger
	now      func() time.Time

	outputDir    string
	manifestName string
}

// ServiceOption customises exporter construction.
type ServiceOption func(*service)

// WithLogger attaches the exporter module logger.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source for deterministic tests.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService constructs the export pipeline.
func NewService(cfg Config, client notion.Client, renderer renderpkg.Service, md interfaces.MarkdownRenderer, store state.Store, opts ...ServiceOption) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("exporter: notion client is required")
	}
	if renderer == nil {
		return nil, fmt.Errorf("exporter: render service is required")
	}
	if store == nil {
		return nil, fmt.Errorf("exporter: state store is required")
	}

	outputDir := strings.TrimSpace(cfg.OutputDir)
	if outputDir == "" {
		outputDir = "export"
	}
	manifestName := strings.TrimSpace(cfg.ManifestName)
	if manifestName == "" {
		manifestName = "manifest.json"
	}

	svc := &service{
		client:       client,
		renderer:     renderer,
		markdown:     md,
		store:        store,
		logger:       logging.NoOp(),
		now:          func() time.Time { return time.Now().UTC() },
		outputDir:    outputDir,
		manifestName: manifestName,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc, nil
}

// ExportPage renders one page and writes it under the output directory. When
// the ledger already carries the same checksum and Force is unset, the write
// is skipped and the prior path reported.
func (s *service) ExportPage(ctx context.Context, input export.ExportPageInput) (*Result, error) {
	pageID := strings.TrimSpace(input.PageID)
	if pageID == "" {
		return nil, export.ErrPageIDRequired
	}

	logger := logging.WithPageContext(s.logger, pageID, "", "")

	page, doc, err := s.renderPage(ctx, pageID)
	if err != nil {
		s.recordFailure(ctx, pageID)
		return nil, err
	}

	pageSlug := s.slugFor(page)
	envelope := markdown.Envelope{
		Title:      page.Title(),
		Slug:       pageSlug,
		NotionID:   pageID,
		NotionURL:  page.URL,
		ExportedAt: s.now(),
		Checksum:   checksum(doc.markdown),
		BlockCount: doc.blockCount,
	}

	result := &Result{
		PageID:     pageID,
		Slug:       pageSlug,
		Title:      envelope.Title,
		Checksum:   envelope.Checksum,
		BlockCount: envelope.BlockCount,
		Markdown:   doc.markdown,
	}

	if !input.Force {
		if existing, err := s.store.GetByPageID(ctx, pageID); err == nil && existing.Checksum == envelope.Checksum {
			result.Path = existing.Path
			result.Skipped = true
			s.recordOutcome(ctx, result, export.StatusSkipped)
			logger.Info("export.page.skipped", "slug", pageSlug, "checksum", envelope.Checksum)
			return result, nil
		}
	}

	document, err := markdown.ComposeDocument(envelope, doc.markdown)
	if err != nil {
		s.recordFailure(ctx, pageID)
		return nil, &export.PageError{PageID: pageID, Stage: "compose", Err: err}
	}

	path := filepath.Join(s.outputDir, pageSlug+".md")
	if err := writeFileAtomic(path, document); err != nil {
		s.recordFailure(ctx, pageID)
		return nil, &export.PageError{PageID: pageID, Stage: "write", Err: err}
	}

	result.Path = path
	s.recordOutcome(ctx, result, export.StatusExported)
	logger.Info("export.page.written",
		"slug", pageSlug,
		"path", path,
		"blocks", envelope.BlockCount,
	)
	return result, nil
}

// ExportPages exports sequentially in input order, collecting per-page
// failures instead of aborting the batch.
func (s *service) ExportPages(ctx context.Context, input export.ExportPagesInput) (*Summary, error) {
	if len(input.PageIDs) == 0 {
		return nil, export.ErrNoPages
	}

	summary := &Summary{}
	for _, pageID := range input.PageIDs {
		result, err := s.ExportPage(ctx, export.ExportPageInput{PageID: pageID, Force: input.Force})
		if err != nil {
			summary.Failed++
			summary.FailedPages = append(summary.FailedPages, PageFailure{PageID: pageID, Err: err})
			s.logger.Error("export.page.failed", "page_id", pageID, "error", err)
			continue
		}
		summary.Results = append(summary.Results, result)
		if result.Skipped {
			summary.Skipped++
		} else {
			summary.Exported++
		}
	}
	return summary, nil
}

// Preview renders a page to Markdown and HTML without touching disk or the
// ledger.
func (s *service) Preview(ctx context.Context, pageID string) (*PreviewResult, error) {
	pageID = strings.TrimSpace(pageID)
	if pageID == "" {
		return nil, export.ErrPageIDRequired
	}
	if s.markdown == nil {
		return nil, fmt.Errorf("exporter: preview requires a markdown renderer")
	}

	page, doc, err := s.renderPage(ctx, pageID)
	if err != nil {
		return nil, err
	}

	html, err := s.markdown.Render([]byte(doc.markdown))
	if err != nil {
		return nil, &export.PageError{PageID: pageID, Stage: "preview", Err: err}
	}

	return &PreviewResult{
		PageID:   pageID,
		Title:    page.Title(),
		Markdown: doc.markdown,
		HTML:     string(html),
	}, nil
}

// Sync re-exports every ledger page. With Prune, records whose page the API
// no longer returns are dropped from the ledger instead of failing the run.
func (s *service) Sync(ctx context.Context, input export.SyncInput) (*SyncSummary, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporter: list ledger: %w", err)
	}

	summary := &SyncSummary{}
	for _, record := range records {
		result, err := s.ExportPage(ctx, export.ExportPageInput{PageID: record.PageID, Force: input.Force})
		if err != nil {
			if input.Prune && notion.IsNotFound(err) {
				if deleteErr := s.store.Delete(ctx, record.PageID); deleteErr != nil && !state.IsNotFound(deleteErr) {
					s.logger.Error("export.sync.prune_failed", "page_id", record.PageID, "error", deleteErr)
				} else {
					summary.Pruned = append(summary.Pruned, record.PageID)
					s.logger.Info("export.sync.pruned", "page_id", record.PageID)
				}
				continue
			}
			summary.Failed++
			summary.FailedPages = append(summary.FailedPages, PageFailure{PageID: record.PageID, Err: err})
			continue
		}
		summary.Results = append(summary.Results, result)
		if result.Skipped {
			summary.Skipped++
		} else {
			summary.Exported++
		}
	}
	return summary, nil
}

type renderedPage struct {
	markdown   string
	blockCount int
}

// renderPage runs the fetch-and-render half of the pipeline. The client
// doubles as the child fetcher, so column lists expand through the same
// connection and credentials.
func (s *service) renderPage(ctx context.Context, pageID string) (*notion.Page, *renderedPage, error) {
	page, err := s.client.GetPage(ctx, pageID)
	if err != nil {
		return nil, nil, &export.PageError{PageID: pageID, Stage: "fetch_page", Err: err}
	}

	blocks, err := s.client.ListChildren(ctx, pageID)
	if err != nil {
		return nil, nil, &export.PageError{PageID: pageID, Stage: "fetch_blocks", Err: err}
	}

	body, err := s.renderer.RenderBlocks(ctx, s.client, blocks)
	if err != nil {
		return nil, nil, &export.PageError{PageID: pageID, Stage: "render", Err: err}
	}

	return page, &renderedPage{markdown: body, blockCount: len(blocks)}, nil
}

// slugFor derives the output filename slug from the page title, falling back
// to the page ID when the title normalizes to nothing.
func (s *service) slugFor(page *notion.Page) string {
	title := page.Title()
	if title != "" {
		if normalized, err := slug.Normalize(title); err == nil && normalized != "" {
			return normalized
		}
	}
	if normalized, err := slug.Normalize(page.ID); err == nil && normalized != "" {
		return normalized
	}
	return page.ID
}

func (s *service) recordOutcome(ctx context.Context, result *Result, status string) {
	now := s.now()
	record := &ExportRecord{
		PageID:         result.PageID,
		Slug:           result.Slug,
		Title:          result.Title,
		Path:           result.Path,
		Checksum:       result.Checksum,
		BlockCount:     result.BlockCount,
		Status:         status,
		LastExportedAt: &now,
	}
	if _, err := s.store.Upsert(ctx, record); err != nil {
		s.logger.Error("export.ledger.upsert_failed", "page_id", result.PageID, "error", err)
	}
}

// recordFailure marks the ledger entry failed while keeping the prior
// checksum and path for operators to inspect. A page that never exported
// successfully gets no record.
func (s *service) recordFailure(ctx context.Context, pageID string) {
	existing, err := s.store.GetByPageID(ctx, pageID)
	if err != nil {
		return
	}
	existing.Status = export.StatusFailed
	if _, err := s.store.Upsert(ctx, existing); err != nil {
		s.logger.Error("export.ledger.upsert_failed", "page_id", pageID, "error", err)
	}
}

func checksum(body string) string {
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])
}
