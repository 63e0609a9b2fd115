package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-notion-export/cmd/notion/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runPreview(os.Args[1:]); err != nil {
		log.Fatalf("notion preview: %v", err)
	}
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("notion-preview", flag.ExitOnError)
	page := fs.String("page", "", "Page ID to preview")
	renderHTML := fs.Bool("html", false, "Print the HTML rendition instead of Markdown")
	token := fs.String("token", os.Getenv("NOTION_TOKEN"), "Integration token (defaults to NOTION_TOKEN)")
	baseURL := fs.String("base-url", "", "Override the content API base URL")
	logLevel := fs.String("log-level", "warn", "Minimum log level")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *page == "" {
		return fmt.Errorf("--page is required")
	}

	module, err := moduleBuilder(bootstrap.Options{
		Token:    *token,
		BaseURL:  *baseURL,
		LogLevel: *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Service == nil {
		return fmt.Errorf("export service not configured")
	}

	result, err := module.Service.Preview(context.Background(), *page)
	if err != nil {
		return fmt.Errorf("preview page: %w", err)
	}

	if *renderHTML {
		fmt.Fprintln(os.Stdout, result.HTML)
		return nil
	}
	fmt.Fprintln(os.Stdout, result.Markdown)
	return nil
}
