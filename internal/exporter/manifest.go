package exporter

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/validation"
)

// BuildManifest assembles the manifest from ledger records, ordered by slug
// for byte-stable output, and validates it against the embedded schema.
// Failed records are excluded; they have no current document on disk.
func (s *service) BuildManifest(ctx context.Context) (*Manifest, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("exporter: list ledger: %w", err)
	}

	manifest := &Manifest{
		Version:     export.ManifestVersion,
		GeneratedAt: s.now(),
		Pages:       make([]ManifestPage, 0, len(records)),
	}

	for _, record := range records {
		if record.Status == export.StatusFailed {
			continue
		}
		page := ManifestPage{
			PageID:     record.PageID,
			Slug:       record.Slug,
			Title:      record.Title,
			Path:       record.Path,
			Checksum:   record.Checksum,
			BlockCount: record.BlockCount,
		}
		if record.LastExportedAt != nil {
			page.ExportedAt = *record.LastExportedAt
		}
		manifest.Pages = append(manifest.Pages, page)
	}

	sort.Slice(manifest.Pages, func(i, j int) bool {
		return manifest.Pages[i].Slug < manifest.Pages[j].Slug
	})

	if err := validation.ValidateManifest(manifest); err != nil {
		return nil, fmt.Errorf("exporter: manifest validation: %w", err)
	}
	return manifest, nil
}

// WriteManifest builds the manifest and persists it atomically under the
// output directory.
func (s *service) WriteManifest(ctx context.Context) (*Manifest, error) {
	manifest, err := s.BuildManifest(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("exporter: marshal manifest: %w", err)
	}
	encoded = append(encoded, '\n')

	path := filepath.Join(s.outputDir, s.manifestName)
	if err := writeFileAtomic(path, encoded); err != nil {
		return nil, fmt.Errorf("exporter: write manifest: %w", err)
	}

	s.logger.Info("export.manifest.written", "path", path, "pages", len(manifest.Pages))
	return manifest, nil
}
