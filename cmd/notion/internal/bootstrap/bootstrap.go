package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	notionexport "github.com/goliatone/go-notion-export"
	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/di"
	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/internal/state"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
)

// Options captures configuration for export CLI bootstraps.
type Options struct {
	Token          string
	BaseURL        string
	OutputDir      string
	ManifestName   string
	DBPath         string
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the export module and the configured service/logger.
type Module struct {
	Module  *notionexport.Module
	Service export.Service
	Logger  interfaces.Logger
}

// BuildModule constructs an export module configured for CLI operations.
func BuildModule(opts Options) (*Module, error) {
	cfg := notionexport.DefaultConfig()
	cfg.Notion.Token = strings.TrimSpace(opts.Token)
	if trimmed := strings.TrimSpace(opts.BaseURL); trimmed != "" {
		cfg.Notion.BaseURL = trimmed
	}
	if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
		cfg.Export.OutputDir = trimmed
	}
	if trimmed := strings.TrimSpace(opts.ManifestName); trimmed != "" {
		cfg.Export.ManifestName = trimmed
	}

	cfg.Features.Logger = true
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	if dbPath := strings.TrimSpace(opts.DBPath); dbPath != "" {
		cfg.Storage.Driver = notionexport.StorageDriverSQLite
		cfg.Storage.DSN = fmt.Sprintf("file:%s?_fk=1", dbPath)

		db, err := openLedger(cfg.Storage.DSN)
		if err != nil {
			return nil, err
		}
		diOpts = append(diOpts, di.WithBunDB(db))
	}

	module, err := notionexport.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise export module: %w", err)
	}

	service := module.Export()
	if service == nil {
		return nil, fmt.Errorf("export service not configured")
	}

	logger := logging.ExporterLogger(module.Container().LoggerProvider())

	return &Module{
		Module:  module,
		Service: service,
		Logger:  logger,
	}, nil
}

func openLedger(dsn string) (*bun.DB, error) {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open ledger database: %w", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	if err := state.EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure ledger schema: %w", err)
	}
	return db, nil
}

// SplitPageIDs parses a comma separated page ID list into a trimmed slice.
func SplitPageIDs(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		ids = append(ids, trimmed)
	}
	return ids
}
