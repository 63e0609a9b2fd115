package exporter

import "github.com/goliatone/go-notion-export/export"

type (
	ExportRecord     = export.ExportRecord
	Manifest         = export.Manifest
	ManifestPage     = export.ManifestPage
	Result           = export.Result
	Summary          = export.Summary
	PageFailure      = export.PageFailure
	PreviewResult    = export.PreviewResult
	Service          = export.Service
	ExportPageInput  = export.ExportPageInput
	ExportPagesInput = export.ExportPagesInput
	SyncInput        = export.SyncInput
	SyncSummary      = export.SyncSummary
)
