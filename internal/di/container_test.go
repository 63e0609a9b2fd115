package di_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/di"
	"github.com/goliatone/go-notion-export/internal/runtimeconfig"
	"github.com/goliatone/go-notion-export/internal/state"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/testsupport"
)

func testConfig(t *testing.T) runtimeconfig.Config {
	t.Helper()
	cfg := runtimeconfig.DefaultConfig()
	cfg.Notion.Token = "secret-token"
	cfg.Export.OutputDir = t.TempDir()
	return cfg
}

func TestNewContainerBuildsDefaults(t *testing.T) {
	c, err := di.NewContainer(testConfig(t))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if c.NotionClient() == nil {
		t.Fatal("expected API client configured")
	}
	if c.Renderer() == nil {
		t.Fatal("expected renderer configured")
	}
	if c.MarkdownRenderer() == nil {
		t.Fatal("expected markdown renderer configured")
	}
	if c.ExportService() == nil {
		t.Fatal("expected export service configured")
	}
	if _, ok := c.StateStore().(*state.MemoryStore); !ok {
		t.Fatalf("expected memory ledger by default, got %T", c.StateStore())
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Notion.Token = ""

	if _, err := di.NewContainer(cfg); !errors.Is(err, runtimeconfig.ErrNotionTokenRequired) {
		t.Fatalf("expected ErrNotionTokenRequired, got %v", err)
	}
}

func TestNewContainerWithBunDBUsesSQLLedger(t *testing.T) {
	sqldb, err := testsupport.NewSQLiteMemoryDB("di_" + t.Name())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { sqldb.Close() })

	db := testsupport.NewBunDB(sqldb)
	if err := state.EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	c, err := di.NewContainer(testConfig(t), di.WithBunDB(db))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if _, ok := c.StateStore().(*state.BunStore); !ok {
		t.Fatalf("expected bun ledger, got %T", c.StateStore())
	}

	record := &state.ExportRecord{
		PageID:     "page-di",
		Slug:       "page-di",
		Checksum:   "abc",
		BlockCount: 1,
		Status:     export.StatusExported,
	}
	if _, err := c.StateStore().Upsert(context.Background(), record); err != nil {
		t.Fatalf("upsert through container ledger: %v", err)
	}
	got, err := c.StateStore().GetByPageID(context.Background(), "page-di")
	if err != nil {
		t.Fatalf("get through container ledger: %v", err)
	}
	if got.Slug != "page-di" {
		t.Fatalf("unexpected record round-trip: %+v", got)
	}
}

type stubStore struct {
	state.Store
}

func TestNewContainerHonoursOverrides(t *testing.T) {
	store := &stubStore{Store: state.NewMemoryStore()}
	c, err := di.NewContainer(testConfig(t), di.WithStateStore(store))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if c.StateStore() != store {
		t.Fatalf("expected injected ledger, got %T", c.StateStore())
	}
}

type stubClient struct{}

func (stubClient) GetPage(context.Context, string) (*notion.Page, error) { return nil, nil }
func (stubClient) ListChildren(context.Context, string) ([]notion.Block, error) {
	return nil, nil
}

func TestNewContainerHonoursClientOverride(t *testing.T) {
	client := stubClient{}
	c, err := di.NewContainer(testConfig(t), di.WithNotionClient(client))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if _, ok := c.NotionClient().(stubClient); !ok {
		t.Fatalf("expected injected client, got %T", c.NotionClient())
	}
}

func TestNewContainerMarkdownRespectsSafeMode(t *testing.T) {
	cfg := testConfig(t)
	cfg.Markdown.SafeMode = true

	c, err := di.NewContainer(cfg)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	html, err := c.MarkdownRenderer().Render([]byte("<img src=\"x\">\n\ntext"))
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(html) == 0 {
		t.Fatal("expected rendered output")
	}
	if strings.Contains(string(html), "<img") {
		t.Fatalf("expected raw HTML stripped in safe mode, got %q", html)
	}
}

func TestNewContainerRejectsUnknownMarkdownExtension(t *testing.T) {
	cfg := testConfig(t)
	cfg.Markdown.Extensions = []string{"wikilinks"}

	if _, err := di.NewContainer(cfg); err == nil {
		t.Fatal("expected error for unknown markdown extension")
	}
}
