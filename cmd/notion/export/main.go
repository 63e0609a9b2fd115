package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-notion-export/cmd/notion/internal/bootstrap"
	exportcmd "github.com/goliatone/go-notion-export/internal/commands/export"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runExport(os.Args[1:]); err != nil {
		log.Fatalf("notion export: %v", err)
	}
}

func runExport(args []string) error {
	fs := flag.NewFlagSet("notion-export", flag.ExitOnError)
	page := fs.String("page", "", "Page ID to export")
	pages := fs.String("pages", "", "Comma separated list of page IDs to export")
	out := fs.String("out", "export", "Directory that receives rendered documents")
	manifestName := fs.String("manifest-name", "manifest.json", "File name for the export manifest")
	force := fs.Bool("force", false, "Rewrite documents even when checksums match")
	writeManifest := fs.Bool("manifest", true, "Write the manifest after exporting")
	token := fs.String("token", os.Getenv("NOTION_TOKEN"), "Integration token (defaults to NOTION_TOKEN)")
	baseURL := fs.String("base-url", "", "Override the content API base URL")
	dbPath := fs.String("db", "", "Path to a sqlite ledger database (defaults to in-memory)")
	logLevel := fs.String("log-level", "info", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	pageIDs := bootstrap.SplitPageIDs(*pages)
	if *page == "" && len(pageIDs) == 0 {
		return fmt.Errorf("--page or --pages is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		Token:        *token,
		BaseURL:      *baseURL,
		OutputDir:    *out,
		ManifestName: *manifestName,
		DBPath:       *dbPath,
		LogLevel:     *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("export service not configured")
	}

	ctx := context.Background()
	gates := exportcmd.FeatureGates{}

	if *page != "" {
		handler := exportcmd.NewExportPageHandler(module.Service, module.Logger, gates)
		if err := handler.Execute(ctx, exportcmd.ExportPageMessage{PageID: *page, Force: *force}); err != nil {
			return fmt.Errorf("execute export command: %w", err)
		}
	}

	if len(pageIDs) > 0 {
		handler := exportcmd.NewExportPagesHandler(module.Service, module.Logger, gates)
		if err := handler.Execute(ctx, exportcmd.ExportPagesMessage{PageIDs: pageIDs, Force: *force}); err != nil {
			return fmt.Errorf("execute batch export command: %w", err)
		}
	}

	if *writeManifest {
		handler := exportcmd.NewWriteManifestHandler(module.Service, module.Logger, gates)
		if err := handler.Execute(ctx, exportcmd.WriteManifestMessage{}); err != nil {
			return fmt.Errorf("execute manifest command: %w", err)
		}
	}

	fmt.Fprintln(os.Stdout, "export completed successfully")
	return nil
}
