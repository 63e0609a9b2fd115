package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrNotionTokenRequired indicates the integration token is missing.
var ErrNotionTokenRequired = errors.New("export config: notion token is required")

// ErrNotionPageSizeInvalid bounds the pagination size to what the API accepts.
var ErrNotionPageSizeInvalid = errors.New("export config: notion page size must be between 1 and 100")

// ErrOutputDirRequired indicates an empty export destination.
var ErrOutputDirRequired = errors.New("export config: output directory is required")

// ErrManifestNameRequired indicates an empty manifest file name.
var ErrManifestNameRequired = errors.New("export config: manifest name is required")

// ErrStorageDriverUnknown indicates an unsupported ledger driver.
var ErrStorageDriverUnknown = errors.New("export config: storage driver is invalid")

// ErrStorageDSNRequired indicates a sqlite driver without a data source.
var ErrStorageDSNRequired = errors.New("export config: storage dsn is required for the sqlite driver")

var ErrLoggingProviderRequired = errors.New("export config: logging provider is required when logging feature is enabled")
var ErrLoggingProviderUnknown = errors.New("export config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("export config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("export config: logging format is invalid")
var ErrMarkdownExtensionInvalid = errors.New("export config: markdown extension is invalid")

// Storage driver identifiers accepted by Config.Storage.Driver.
const (
	StorageDriverMemory = "memory"
	StorageDriverSQLite = "sqlite"
)

// Config aggregates runtime settings for the export module. Fields
// intentionally use simple types so host applications can extend them later.
type Config struct {
	Enabled  bool
	Notion   NotionConfig
	Export   ExportConfig
	Storage  StorageConfig
	Cache    CacheConfig
	Markdown MarkdownConfig
	Commands CommandsConfig
	Features Features
	Logging  LoggingConfig
}

// NotionConfig captures API client settings.
type NotionConfig struct {
	Token    string
	BaseURL  string
	Version  string
	PageSize int
}

// ExportConfig captures filesystem destinations for rendered documents.
type ExportConfig struct {
	OutputDir    string
	ManifestName string
}

// StorageConfig selects the ledger backend.
type StorageConfig struct {
	Driver string
	DSN    string
}

// CacheConfig captures read-through cache behaviour for the ledger.
type CacheConfig struct {
	Enabled    bool
	DefaultTTL time.Duration
}

// MarkdownConfig mirrors interfaces.ParseOptions for runtime configuration.
type MarkdownConfig struct {
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// CommandsConfig captures optional command-layer behaviour.
type CommandsConfig struct {
	Enabled                bool
	AutoRegisterDispatcher bool
	SyncCron               string
}

// Features toggles module functionality.
type Features struct {
	Preview     bool
	Persistence bool
	Logger      bool
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string
	Level     string
	Format    string
	AddSource bool
	Focus     []string
}

// DefaultConfig returns opinionated defaults for a local export run.
func DefaultConfig() Config {
	return Config{
		Enabled: true,
		Notion: NotionConfig{
			BaseURL:  "https://api.notion.com",
			Version:  "2022-06-28",
			PageSize: 100,
		},
		Export: ExportConfig{
			OutputDir:    "export",
			ManifestName: "manifest.json",
		},
		Storage: StorageConfig{
			Driver: StorageDriverMemory,
		},
		Cache: CacheConfig{
			Enabled:    false,
			DefaultTTL: time.Minute,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm", "linkify", "tasklist"},
		},
		Commands: CommandsConfig{},
		Features: Features{
			Preview:     true,
			Persistence: true,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
			Format:   "",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Notion.Token) == "" {
		return ErrNotionTokenRequired
	}
	if cfg.Notion.PageSize < 0 || cfg.Notion.PageSize > 100 {
		return fmt.Errorf("%w: %d", ErrNotionPageSizeInvalid, cfg.Notion.PageSize)
	}
	if strings.TrimSpace(cfg.Export.OutputDir) == "" {
		return ErrOutputDirRequired
	}
	if strings.TrimSpace(cfg.Export.ManifestName) == "" {
		return ErrManifestNameRequired
	}
	switch normalizeDriver(cfg.Storage.Driver) {
	case StorageDriverMemory:
	case StorageDriverSQLite:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return ErrStorageDSNRequired
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, cfg.Storage.Driver)
	}
	for _, ext := range cfg.Markdown.Extensions {
		if strings.TrimSpace(ext) == "" {
			return fmt.Errorf("%w: blank name", ErrMarkdownExtensionInvalid)
		}
	}
	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

func normalizeDriver(driver string) string {
	d := strings.ToLower(strings.TrimSpace(driver))
	if d == "" {
		return StorageDriverMemory
	}
	return d
}

// NormalizedStorageDriver reports the effective ledger driver after trimming
// and defaulting.
func (cfg Config) NormalizedStorageDriver() string {
	return normalizeDriver(cfg.Storage.Driver)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
