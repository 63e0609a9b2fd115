package exportcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-notion-export/export"
	"github.com/goliatone/go-notion-export/internal/commands"
	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
)

const (
	exportPageOperation  = "export.page"
	exportPagesOperation = "export.pages"
	previewOperation     = "export.preview"
	manifestOperation    = "export.manifest"
	syncOperation        = "export.sync"
)

var (
	// ErrPreviewDisabled is returned when the preview feature flag is disabled at runtime.
	ErrPreviewDisabled = errors.New("export command: preview disabled")
	// ErrPersistenceDisabled is returned when persistence is disabled at runtime.
	ErrPersistenceDisabled = errors.New("export command: persistence disabled")
)

var (
	_ command.Commander[ExportPageMessage]    = (*ExportPageHandler)(nil)
	_ command.Commander[ExportPagesMessage]   = (*ExportPagesHandler)(nil)
	_ command.Commander[PreviewPageMessage]   = (*PreviewPageHandler)(nil)
	_ command.Commander[WriteManifestMessage] = (*WriteManifestHandler)(nil)
	_ command.Commander[SyncMessage]          = (*SyncHandler)(nil)
)

// ExportPageHandler exports a single page via the shared command handler foundation.
type ExportPageHandler struct {
	inner *commands.Handler[ExportPageMessage]
}

// NewExportPageHandler creates a handler bound to the supplied export service.
func NewExportPageHandler(service export.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ExportPageMessage]) *ExportPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExportPageMessage) error {
		if !gates.persistenceEnabled() {
			return ErrPersistenceDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.ExportPage(ctx, export.ExportPageInput{
			PageID: msg.PageID,
			Force:  msg.Force,
		})
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"page_id":     result.PageID,
				"slug":        result.Slug,
				"path":        result.Path,
				"skipped":     result.Skipped,
				"block_count": result.BlockCount,
			}).Info("export.command.page.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportPageMessage]{
		commands.WithLogger[ExportPageMessage](baseLogger),
		commands.WithOperation[ExportPageMessage](exportPageOperation),
		commands.WithMessageFields(func(msg ExportPageMessage) map[string]any {
			fields := map[string]any{
				"page_id": msg.PageID,
			}
			if msg.Force {
				fields["force"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportPageMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportPageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportPageMessage].
func (h *ExportPageHandler) Execute(ctx context.Context, msg ExportPageMessage) error {
	return h.inner.Execute(ctx, msg)
}

// ExportPagesHandler runs a batch export via the shared command handler foundation.
type ExportPagesHandler struct {
	inner *commands.Handler[ExportPagesMessage]
}

// NewExportPagesHandler creates a handler bound to the supplied export service.
func NewExportPagesHandler(service export.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[ExportPagesMessage]) *ExportPagesHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ExportPagesMessage) error {
		if !gates.persistenceEnabled() {
			return ErrPersistenceDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		summary, err := service.ExportPages(ctx, export.ExportPagesInput{
			PageIDs: msg.PageIDs,
			Force:   msg.Force,
		})
		if err != nil {
			return err
		}
		if summary != nil {
			logging.WithFields(baseLogger, map[string]any{
				"exported_count": summary.Exported,
				"skipped_count":  summary.Skipped,
				"failed_count":   summary.Failed,
			}).Info("export.command.pages.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ExportPagesMessage]{
		commands.WithLogger[ExportPagesMessage](baseLogger),
		commands.WithOperation[ExportPagesMessage](exportPagesOperation),
		commands.WithMessageFields(func(msg ExportPagesMessage) map[string]any {
			fields := map[string]any{
				"page_count": len(msg.PageIDs),
			}
			if msg.Force {
				fields["force"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[ExportPagesMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ExportPagesHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[ExportPagesMessage].
func (h *ExportPagesHandler) Execute(ctx context.Context, msg ExportPagesMessage) error {
	return h.inner.Execute(ctx, msg)
}

// PreviewPageHandler renders a page in memory via the shared command handler foundation.
type PreviewPageHandler struct {
	inner *commands.Handler[PreviewPageMessage]
}

// NewPreviewPageHandler creates a handler bound to the supplied export service.
func NewPreviewPageHandler(service export.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[PreviewPageMessage]) *PreviewPageHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg PreviewPageMessage) error {
		if !gates.previewEnabled() {
			return ErrPreviewDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := service.Preview(ctx, msg.PageID)
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"page_id":       result.PageID,
				"title":         result.Title,
				"markdown_size": len(result.Markdown),
			}).Info("export.command.preview.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[PreviewPageMessage]{
		commands.WithLogger[PreviewPageMessage](baseLogger),
		commands.WithOperation[PreviewPageMessage](previewOperation),
		commands.WithMessageFields(func(msg PreviewPageMessage) map[string]any {
			return map[string]any{"page_id": msg.PageID}
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[PreviewPageMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &PreviewPageHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[PreviewPageMessage].
func (h *PreviewPageHandler) Execute(ctx context.Context, msg PreviewPageMessage) error {
	return h.inner.Execute(ctx, msg)
}

// WriteManifestHandler rebuilds and persists the manifest via the shared command handler foundation.
type WriteManifestHandler struct {
	inner *commands.Handler[WriteManifestMessage]
}

// NewWriteManifestHandler creates a handler bound to the supplied export service.
func NewWriteManifestHandler(service export.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[WriteManifestMessage]) *WriteManifestHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg WriteManifestMessage) error {
		if !gates.persistenceEnabled() {
			return ErrPersistenceDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		manifest, err := service.WriteManifest(ctx)
		if err != nil {
			return err
		}
		if manifest != nil {
			logging.WithFields(baseLogger, map[string]any{
				"page_count": len(manifest.Pages),
				"version":    manifest.Version,
			}).Info("export.command.manifest.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[WriteManifestMessage]{
		commands.WithLogger[WriteManifestMessage](baseLogger),
		commands.WithOperation[WriteManifestMessage](manifestOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[WriteManifestMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &WriteManifestHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[WriteManifestMessage].
func (h *WriteManifestHandler) Execute(ctx context.Context, msg WriteManifestMessage) error {
	return h.inner.Execute(ctx, msg)
}

// SyncHandler re-exports the ledger set via the shared command handler foundation.
type SyncHandler struct {
	inner *commands.Handler[SyncMessage]
}

// NewSyncHandler creates a handler bound to the supplied export service.
func NewSyncHandler(service export.Service, logger interfaces.Logger, gates FeatureGates, opts ...commands.HandlerOption[SyncMessage]) *SyncHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg SyncMessage) error {
		if !gates.persistenceEnabled() {
			return ErrPersistenceDisabled
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		summary, err := service.Sync(ctx, export.SyncInput{
			Prune: msg.Prune,
			Force: msg.Force,
		})
		if err != nil {
			return err
		}
		if summary != nil {
			logging.WithFields(baseLogger, map[string]any{
				"exported_count": summary.Exported,
				"skipped_count":  summary.Skipped,
				"failed_count":   summary.Failed,
				"pruned_count":   len(summary.Pruned),
			}).Info("export.command.sync.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SyncMessage]{
		commands.WithLogger[SyncMessage](baseLogger),
		commands.WithOperation[SyncMessage](syncOperation),
		commands.WithMessageFields(func(msg SyncMessage) map[string]any {
			fields := map[string]any{}
			if msg.Prune {
				fields["prune"] = true
			}
			if msg.Force {
				fields["force"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[SyncMessage](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SyncHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[SyncMessage].
func (h *SyncHandler) Execute(ctx context.Context, msg SyncMessage) error {
	return h.inner.Execute(ctx, msg)
}
