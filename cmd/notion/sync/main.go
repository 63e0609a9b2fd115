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
	if err := runSync(os.Args[1:]); err != nil {
		log.Fatalf("notion sync: %v", err)
	}
}

func runSync(args []string) error {
	fs := flag.NewFlagSet("notion-sync", flag.ExitOnError)
	prune := fs.Bool("prune", false, "Drop ledger records for pages the API no longer returns")
	force := fs.Bool("force", false, "Rewrite documents even when checksums match")
	writeManifest := fs.Bool("manifest", true, "Write the manifest after syncing")
	out := fs.String("out", "export", "Directory that receives rendered documents")
	manifestName := fs.String("manifest-name", "manifest.json", "File name for the export manifest")
	token := fs.String("token", os.Getenv("NOTION_TOKEN"), "Integration token (defaults to NOTION_TOKEN)")
	baseURL := fs.String("base-url", "", "Override the content API base URL")
	dbPath := fs.String("db", "", "Path to a sqlite ledger database (defaults to in-memory)")
	logLevel := fs.String("log-level", "info", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return err
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

	handler := exportcmd.NewSyncHandler(module.Service, module.Logger, gates)
	if err := handler.Execute(ctx, exportcmd.SyncMessage{Prune: *prune, Force: *force}); err != nil {
		return fmt.Errorf("execute sync command: %w", err)
	}

	if *writeManifest {
		manifestHandler := exportcmd.NewWriteManifestHandler(module.Service, module.Logger, gates)
		if err := manifestHandler.Execute(ctx, exportcmd.WriteManifestMessage{}); err != nil {
			return fmt.Errorf("execute manifest command: %w", err)
		}
	}

	fmt.Fprintln(os.Stdout, "sync completed successfully")
	return nil
}
