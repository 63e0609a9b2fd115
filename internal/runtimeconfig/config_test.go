package runtimeconfig_test

import (
	"errors"
	"testing"

	"github.com/goliatone/go-notion-export/internal/runtimeconfig"
)

func validConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Notion.Token = "secret-token"
	return cfg
}

func TestConfigValidate_AcceptsDefaultsWithToken(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("Validate() returned unexpected error: %v", err)
	}
}

func TestConfigValidate_RequiresNotionToken(t *testing.T) {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Notion.Token = "   "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrNotionTokenRequired) {
		t.Fatalf("expected ErrNotionTokenRequired, got %v", err)
	}
}

func TestConfigValidate_BoundsPageSize(t *testing.T) {
	cfg := validConfig()
	cfg.Notion.PageSize = 250

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrNotionPageSizeInvalid) {
		t.Fatalf("expected ErrNotionPageSizeInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresOutputDir(t *testing.T) {
	cfg := validConfig()
	cfg.Export.OutputDir = " "

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrOutputDirRequired) {
		t.Fatalf("expected ErrOutputDirRequired, got %v", err)
	}
}

func TestConfigValidate_RequiresManifestName(t *testing.T) {
	cfg := validConfig()
	cfg.Export.ManifestName = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrManifestNameRequired) {
		t.Fatalf("expected ErrManifestNameRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = "postgres"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDriverUnknown) {
		t.Fatalf("expected ErrStorageDriverUnknown, got %v", err)
	}
}

func TestConfigValidate_SQLiteRequiresDSN(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = runtimeconfig.StorageDriverSQLite
	cfg.Storage.DSN = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrStorageDSNRequired) {
		t.Fatalf("expected ErrStorageDSNRequired, got %v", err)
	}

	cfg.Storage.DSN = "file:ledger.db?_fk=1"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected sqlite config with DSN to validate, got %v", err)
	}
}

func TestConfigValidate_BlankDriverDefaultsToMemory(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Driver = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected blank driver to default, got %v", err)
	}
	if got := cfg.NormalizedStorageDriver(); got != runtimeconfig.StorageDriverMemory {
		t.Fatalf("expected memory driver, got %q", got)
	}
}

func TestConfigValidate_RejectsBlankMarkdownExtension(t *testing.T) {
	cfg := validConfig()
	cfg.Markdown.Extensions = []string{"gfm", "  "}

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrMarkdownExtensionInvalid) {
		t.Fatalf("expected ErrMarkdownExtensionInvalid, got %v", err)
	}
}

func TestConfigValidate_RequiresLoggingProviderWhenFeatureEnabled(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = ""

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderRequired) {
		t.Fatalf("expected ErrLoggingProviderRequired, got %v", err)
	}
}

func TestConfigValidate_RejectsUnknownLoggingProvider(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "syslog"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingProviderUnknown) {
		t.Fatalf("expected ErrLoggingProviderUnknown, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingLevel(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingLevelInvalid) {
		t.Fatalf("expected ErrLoggingLevelInvalid, got %v", err)
	}
}

func TestConfigValidate_RejectsInvalidLoggingFormat(t *testing.T) {
	cfg := validConfig()
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "xml"

	err := cfg.Validate()
	if !errors.Is(err, runtimeconfig.ErrLoggingFormatInvalid) {
		t.Fatalf("expected ErrLoggingFormatInvalid, got %v", err)
	}
}
