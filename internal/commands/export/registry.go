package exportcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/commands"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
)

// CommandRegistry is the minimal registration contract expected when wiring command handlers.
type CommandRegistry interface {
	RegisterCommand(handler any) error
}

// CronRegistrar matches the function signature used by go-command registries.
type CronRegistrar func(command.HandlerConfig, any) error

// HandlerSet groups the export command handlers produced by RegisterExportCommands.
type HandlerSet struct {
	ExportPage  *ExportPageHandler
	ExportPages *ExportPagesHandler
	Preview     *PreviewPageHandler
	Manifest    *WriteManifestHandler
	Sync        *SyncHandler
}

// Option customises handler wiring during registration.
type Option func(*options)

type options struct {
	exportPageOpts  []commands.HandlerOption[ExportPageMessage]
	exportPagesOpts []commands.HandlerOption[ExportPagesMessage]
	previewOpts     []commands.HandlerOption[PreviewPageMessage]
	manifestOpts    []commands.HandlerOption[WriteManifestMessage]
	syncOpts        []commands.HandlerOption[SyncMessage]
}

// WithExportPageOptions forwards options to the ExportPageHandler constructor.
func WithExportPageOptions(opts ...commands.HandlerOption[ExportPageMessage]) Option {
	return func(cfg *options) {
		cfg.exportPageOpts = append(cfg.exportPageOpts, opts...)
	}
}

// WithExportPagesOptions forwards options to the ExportPagesHandler constructor.
func WithExportPagesOptions(opts ...commands.HandlerOption[ExportPagesMessage]) Option {
	return func(cfg *options) {
		cfg.exportPagesOpts = append(cfg.exportPagesOpts, opts...)
	}
}

// WithPreviewOptions forwards options to the PreviewPageHandler constructor.
func WithPreviewOptions(opts ...commands.HandlerOption[PreviewPageMessage]) Option {
	return func(cfg *options) {
		cfg.previewOpts = append(cfg.previewOpts, opts...)
	}
}

// WithManifestOptions forwards options to the WriteManifestHandler constructor.
func WithManifestOptions(opts ...commands.HandlerOption[WriteManifestMessage]) Option {
	return func(cfg *options) {
		cfg.manifestOpts = append(cfg.manifestOpts, opts...)
	}
}

// WithSyncOptions forwards options to the SyncHandler constructor.
func WithSyncOptions(opts ...commands.HandlerOption[SyncMessage]) Option {
	return func(cfg *options) {
		cfg.syncOpts = append(cfg.syncOpts, opts...)
	}
}

// RegisterExportCommands builds export command handlers and registers them with the
// provided registry. The returned HandlerSet lets callers wire additional
// integrations (dispatcher, cron) as needed.
func RegisterExportCommands(reg CommandRegistry, service export.Service, provider interfaces.LoggerProvider, gates FeatureGates, opts ...Option) (*HandlerSet, error) {
	if service == nil {
		return nil, errors.New("export command registration: service is nil")
	}

	cfg := options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	logger := commands.CommandLogger(provider, "export")

	set := &HandlerSet{
		ExportPage:  NewExportPageHandler(service, logger, gates, cfg.exportPageOpts...),
		ExportPages: NewExportPagesHandler(service, logger, gates, cfg.exportPagesOpts...),
		Preview:     NewPreviewPageHandler(service, logger, gates, cfg.previewOpts...),
		Manifest:    NewWriteManifestHandler(service, logger, gates, cfg.manifestOpts...),
		Sync:        NewSyncHandler(service, logger, gates, cfg.syncOpts...),
	}

	if reg != nil {
		for _, handler := range []any{set.ExportPage, set.ExportPages, set.Preview, set.Manifest, set.Sync} {
			if err := reg.RegisterCommand(handler); err != nil {
				return nil, err
			}
		}
	}

	return set, nil
}

// RegisterSyncCron wires the provided sync handler into a cron registrar using the
// supplied command configuration and message payload. The handler is executed with
// a background context.
func RegisterSyncCron(reg CronRegistrar, handler *SyncHandler, cfg command.HandlerConfig, msg SyncMessage) error {
	if reg == nil || handler == nil {
		return nil
	}
	return reg(cfg, func() error {
		return handler.Execute(context.Background(), msg)
	})
}
