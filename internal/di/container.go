package di

import (
	"net/http"
	"time"

	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/exporter"
	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/internal/logging/console"
	"github.com/goliatone/go-notion-export/internal/logging/gologger"
	"github.com/goliatone/go-notion-export/internal/markdown"
	notionclient "github.com/goliatone/go-notion-export/internal/notion"
	internalrender "github.com/goliatone/go-notion-export/internal/render"
	"github.com/goliatone/go-notion-export/internal/runtimeconfig"
	"github.com/goliatone/go-notion-export/internal/state"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
	repocache "github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"
)

// Container wires module dependencies from configuration, with options to
// override any binding for embedding hosts and tests.
type Container struct {
	Config runtimeconfig.Config

	loggerProvider interfaces.LoggerProvider
	httpClient     *http.Client
	clock          func() time.Time

	bunDB         *bun.DB
	cacheTTL      time.Duration
	cacheService  repocache.CacheService
	keySerializer repocache.KeySerializer

	client    notion.Client
	renderer  internalrender.Service
	markdown  interfaces.MarkdownRenderer
	store     state.Store
	exportSvc export.Service
}

// Option mutates the container before it is finalised.
type Option func(*Container)

// WithLoggerProvider overrides the default logger provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) {
		c.loggerProvider = provider
	}
}

// WithHTTPClient overrides the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Container) {
		c.httpClient = hc
	}
}

// WithClock overrides the time source used for export timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Container) {
		c.clock = now
	}
}

// WithBunDB binds a bun database and switches the ledger to sqlite-backed
// storage regardless of the configured driver.
func WithBunDB(db *bun.DB) Option {
	return func(c *Container) {
		c.bunDB = db
	}
}

// WithCache overrides the ledger read-through cache bindings.
func WithCache(service repocache.CacheService, serializer repocache.KeySerializer) Option {
	return func(c *Container) {
		c.cacheService = service
		c.keySerializer = serializer
	}
}

// WithNotionClient overrides the default API client binding.
func WithNotionClient(client notion.Client) Option {
	return func(c *Container) {
		c.client = client
	}
}

// WithRenderer overrides the default block renderer binding.
func WithRenderer(renderer internalrender.Service) Option {
	return func(c *Container) {
		c.renderer = renderer
	}
}

// WithMarkdownRenderer overrides the default Markdown renderer binding.
func WithMarkdownRenderer(md interfaces.MarkdownRenderer) Option {
	return func(c *Container) {
		c.markdown = md
	}
}

// WithStateStore overrides the default ledger binding.
func WithStateStore(store state.Store) Option {
	return func(c *Container) {
		c.store = store
	}
}

// WithExportService overrides the fully assembled export pipeline.
func WithExportService(svc export.Service) Option {
	return func(c *Container) {
		c.exportSvc = svc
	}
}

// NewContainer creates a container with the provided configuration.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cacheTTL := cfg.Cache.DefaultTTL
	if cacheTTL <= 0 {
		cacheTTL = time.Minute
	}

	c := &Container{
		Config:   cfg,
		cacheTTL: cacheTTL,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}

	if err := c.configureLogging(); err != nil {
		return nil, err
	}
	c.configureCacheDefaults()
	if err := c.configureClient(); err != nil {
		return nil, err
	}
	c.configureRenderer()
	if err := c.configureMarkdown(); err != nil {
		return nil, err
	}
	c.configureStore()
	if err := c.configureExporter(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Container) configureLogging() error {
	if c.loggerProvider != nil {
		return nil
	}

	if !c.Config.Features.Logger {
		c.loggerProvider = logging.NoOpProvider()
		return nil
	}

	switch c.Config.Logging.Provider {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     c.Config.Logging.Level,
			Format:    c.Config.Logging.Format,
			AddSource: c.Config.Logging.AddSource,
			Focus:     c.Config.Logging.Focus,
		})
		if err != nil {
			return err
		}
		c.loggerProvider = provider
	default:
		level := console.ParseLevel(c.Config.Logging.Level)
		c.loggerProvider = console.NewProvider(console.Options{
			MinLevel: &level,
		})
	}
	return nil
}

func (c *Container) configureCacheDefaults() {
	if !c.Config.Cache.Enabled {
		return
	}

	if c.cacheService == nil {
		cfg := repocache.DefaultConfig()
		if c.cacheTTL > 0 {
			cfg.TTL = c.cacheTTL
		}
		service, err := repocache.NewCacheService(cfg)
		if err == nil {
			c.cacheService = service
		}
	}

	if c.cacheService != nil && c.keySerializer == nil {
		c.keySerializer = repocache.NewDefaultKeySerializer()
	}
}

func (c *Container) configureClient() error {
	if c.client != nil {
		return nil
	}

	clientOpts := []notionclient.Option{
		notionclient.WithLogger(logging.ClientLogger(c.loggerProvider)),
	}
	if c.httpClient != nil {
		clientOpts = append(clientOpts, notionclient.WithHTTPClient(c.httpClient))
	}

	client, err := notionclient.NewClient(notionclient.Config{
		Token:    c.Config.Notion.Token,
		BaseURL:  c.Config.Notion.BaseURL,
		Version:  c.Config.Notion.Version,
		PageSize: c.Config.Notion.PageSize,
	}, clientOpts...)
	if err != nil {
		return err
	}
	c.client = client
	return nil
}

func (c *Container) configureRenderer() {
	if c.renderer != nil {
		return
	}
	c.renderer = internalrender.NewService(
		internalrender.WithLogger(logging.RenderLogger(c.loggerProvider)),
	)
}

func (c *Container) configureMarkdown() error {
	if c.markdown != nil {
		return nil
	}

	opts := markdown.DefaultOptions()
	if len(c.Config.Markdown.Extensions) > 0 {
		opts.Extensions = c.Config.Markdown.Extensions
	}
	opts.HardWraps = c.Config.Markdown.HardWraps
	if c.Config.Markdown.SafeMode {
		opts.Unsafe = false
	}

	renderer, err := markdown.NewRenderer(opts)
	if err != nil {
		return err
	}
	c.markdown = renderer
	return nil
}

func (c *Container) configureStore() {
	if c.store != nil {
		return
	}

	if c.bunDB != nil {
		if c.cacheService != nil && c.keySerializer != nil {
			c.store = state.NewBunStoreWithCache(c.bunDB, c.cacheService, c.keySerializer)
		} else {
			c.store = state.NewBunStore(c.bunDB)
		}
		return
	}

	c.store = state.NewMemoryStore()
}

func (c *Container) configureExporter() error {
	if c.exportSvc != nil {
		return nil
	}

	svcOpts := []exporter.ServiceOption{
		exporter.WithLogger(logging.ExporterLogger(c.loggerProvider)),
	}
	if c.clock != nil {
		svcOpts = append(svcOpts, exporter.WithClock(c.clock))
	}

	svc, err := exporter.NewService(exporter.Config{
		OutputDir:    c.Config.Export.OutputDir,
		ManifestName: c.Config.Export.ManifestName,
	}, c.client, c.renderer, c.markdown, c.store, svcOpts...)
	if err != nil {
		return err
	}
	c.exportSvc = svc
	return nil
}

// LoggerProvider exposes the configured logger provider.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

// NotionClient exposes the configured API client.
func (c *Container) NotionClient() notion.Client {
	return c.client
}

// Renderer exposes the configured block renderer.
func (c *Container) Renderer() internalrender.Service {
	return c.renderer
}

// MarkdownRenderer exposes the configured Markdown renderer.
func (c *Container) MarkdownRenderer() interfaces.MarkdownRenderer {
	return c.markdown
}

// StateStore exposes the configured export ledger.
func (c *Container) StateStore() state.Store {
	return c.store
}

// ExportService exposes the assembled export pipeline.
func (c *Container) ExportService() export.Service {
	return c.exportSvc
}
