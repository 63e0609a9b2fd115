package notionexport

import (
	"github.com/goliatone/go-notion-export/export"
	exportcmd "github.com/goliatone/go-notion-export/internal/commands/export"
	"github.com/goliatone/go-notion-export/internal/di"
	"github.com/goliatone/go-notion-export/internal/render"
	"github.com/goliatone/go-notion-export/internal/state"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
)

// ExportService exports the pipeline contract for consumers of the module.
type ExportService = export.Service

// RenderService exports the block renderer contract.
type RenderService = render.Service

// Client exports the content API client contract.
type Client = notion.Client

// StateStore exports the ledger contract.
type StateStore = state.Store

// MarkdownRenderer exports the Markdown renderer contract.
type MarkdownRenderer = interfaces.MarkdownRenderer

// CommandRegistry exports the registration contract for command handlers.
type CommandRegistry = exportcmd.CommandRegistry

// CronRegistrar exports the cron registration contract.
type CronRegistrar = exportcmd.CronRegistrar

// CommandHandlers exports the handler set produced by command registration.
type CommandHandlers = exportcmd.HandlerSet

// Module represents the top level export runtime façade.
type Module struct {
	container *di.Container
}

// New constructs an export module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Export returns the assembled export pipeline.
func (m *Module) Export() ExportService {
	return m.container.ExportService()
}

// Renderer returns the configured block renderer.
func (m *Module) Renderer() RenderService {
	return m.container.Renderer()
}

// Markdown returns the configured Markdown renderer.
func (m *Module) Markdown() MarkdownRenderer {
	return m.container.MarkdownRenderer()
}

// Client returns the configured content API client.
func (m *Module) Client() Client {
	return m.container.NotionClient()
}

// Store returns the configured export ledger.
func (m *Module) Store() StateStore {
	return m.container.StateStore()
}

// RegisterCommands builds the export command handlers and registers them
// with the supplied registry. Feature gates follow the module configuration.
func (m *Module) RegisterCommands(reg CommandRegistry, opts ...exportcmd.Option) (*CommandHandlers, error) {
	if m == nil || m.container == nil {
		return nil, nil
	}
	features := m.container.Config.Features
	gates := exportcmd.FeatureGates{
		Preview:     func() bool { return features.Preview },
		Persistence: func() bool { return features.Persistence },
	}
	return exportcmd.RegisterExportCommands(reg, m.Export(), m.container.LoggerProvider(), gates, opts...)
}
