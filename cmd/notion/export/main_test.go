package main

import (
	"context"
	"testing"

	"github.com/goliatone/go-notion-export/cmd/notion/internal/bootstrap"
	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/logging"
)

type stubExportService struct {
	pageCalls     []export.ExportPageInput
	batchCalls    []export.ExportPagesInput
	manifestCalls int
}

func (s *stubExportService) ExportPage(_ context.Context, input export.ExportPageInput) (*export.Result, error) {
	s.pageCalls = append(s.pageCalls, input)
	return &export.Result{PageID: input.PageID, Slug: "stub"}, nil
}

func (s *stubExportService) ExportPages(_ context.Context, input export.ExportPagesInput) (*export.Summary, error) {
	s.batchCalls = append(s.batchCalls, input)
	return &export.Summary{Exported: len(input.PageIDs)}, nil
}

func (s *stubExportService) Preview(context.Context, string) (*export.PreviewResult, error) {
	return &export.PreviewResult{}, nil
}

func (s *stubExportService) Sync(context.Context, export.SyncInput) (*export.SyncSummary, error) {
	return &export.SyncSummary{}, nil
}

func (s *stubExportService) BuildManifest(context.Context) (*export.Manifest, error) {
	return &export.Manifest{Version: export.ManifestVersion}, nil
}

func (s *stubExportService) WriteManifest(context.Context) (*export.Manifest, error) {
	s.manifestCalls++
	return &export.Manifest{Version: export.ManifestVersion}, nil
}

func TestRunExportUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubExportService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runExport([]string{
		"-page", "page-1",
		"-force",
	}); err != nil {
		t.Fatalf("runExport returned error: %v", err)
	}
	if len(svc.pageCalls) != 1 {
		t.Fatalf("expected one page export, got %d", len(svc.pageCalls))
	}
	if svc.pageCalls[0].PageID != "page-1" || !svc.pageCalls[0].Force {
		t.Fatalf("unexpected export input: %+v", svc.pageCalls[0])
	}
	if svc.manifestCalls != 1 {
		t.Fatalf("expected manifest written once, got %d", svc.manifestCalls)
	}
}

func TestRunExportBatchSkipsManifestWhenDisabled(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	svc := &stubExportService{}
	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{
			Service: svc,
			Logger:  logging.NoOp(),
		}, nil
	}

	if err := runExport([]string{
		"-pages", "a, b ,c",
		"-manifest=false",
	}); err != nil {
		t.Fatalf("runExport returned error: %v", err)
	}
	if len(svc.batchCalls) != 1 {
		t.Fatalf("expected one batch export, got %d", len(svc.batchCalls))
	}
	if got := svc.batchCalls[0].PageIDs; len(got) != 3 || got[1] != "b" {
		t.Fatalf("expected trimmed page ids, got %v", got)
	}
	if svc.manifestCalls != 0 {
		t.Fatalf("expected manifest skipped, got %d writes", svc.manifestCalls)
	}
}

func TestRunExportRequiresPageSelection(t *testing.T) {
	if err := runExport(nil); err == nil {
		t.Fatal("expected error when no page is selected")
	}
}
