package notionexport

import "github.com/goliatone/go-notion-export/internal/runtimeconfig"

var (
	ErrNotionTokenRequired      = runtimeconfig.ErrNotionTokenRequired
	ErrNotionPageSizeInvalid    = runtimeconfig.ErrNotionPageSizeInvalid
	ErrOutputDirRequired        = runtimeconfig.ErrOutputDirRequired
	ErrManifestNameRequired     = runtimeconfig.ErrManifestNameRequired
	ErrStorageDriverUnknown     = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired       = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
	ErrMarkdownExtensionInvalid = runtimeconfig.ErrMarkdownExtensionInvalid
)

type (
	Config         = runtimeconfig.Config
	NotionConfig   = runtimeconfig.NotionConfig
	ExportConfig   = runtimeconfig.ExportConfig
	StorageConfig  = runtimeconfig.StorageConfig
	CacheConfig    = runtimeconfig.CacheConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	CommandsConfig = runtimeconfig.CommandsConfig
	Features       = runtimeconfig.Features
	LoggingConfig  = runtimeconfig.LoggingConfig
)

// Storage driver identifiers accepted by Config.Storage.Driver.
const (
	StorageDriverMemory = runtimeconfig.StorageDriverMemory
	StorageDriverSQLite = runtimeconfig.StorageDriverSQLite
)

// DefaultConfig returns opinionated defaults for a local export run.
func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
