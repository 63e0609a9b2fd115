package state

import "github.com/goliatone/go-notion-export/export"

type ExportRecord = export.ExportRecord
