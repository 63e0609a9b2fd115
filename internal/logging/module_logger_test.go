package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-notion-export/pkg/interfaces"
)

type recordingLogger struct {
	fields   []map[string]any
	contexts []context.Context
}

func (r *recordingLogger) Trace(string, ...any) {}
func (r *recordingLogger) Debug(string, ...any) {}
func (r *recordingLogger) Info(string, ...any)  {}
func (r *recordingLogger) Warn(string, ...any)  {}
func (r *recordingLogger) Error(string, ...any) {}
func (r *recordingLogger) Fatal(string, ...any) {}

func (r *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	r.fields = append(r.fields, copied)
	return r
}

func (r *recordingLogger) WithContext(ctx context.Context) interfaces.Logger {
	r.contexts = append(r.contexts, ctx)
	return r
}

type stubProvider struct {
	requested []string
	logger    interfaces.Logger
}

func (s *stubProvider) GetLogger(name string) interfaces.Logger {
	s.requested = append(s.requested, name)
	return s.logger
}

func TestModuleLoggerFallsBackToNoOp(t *testing.T) {
	logger := ModuleLogger(nil, "notion-export.test")
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
	// Ensure WithContext/WithFields do not panic.
	logger = logger.WithContext(context.Background())
	logger = WithFields(logger, map[string]any{"foo": "bar"})
	logger.Debug("noop")
}

func TestModuleLoggerUsesProviderAndAnnotatesFields(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	logger := ModuleLogger(provider, renderModule)

	if len(provider.requested) != 1 || provider.requested[0] != renderModule {
		t.Fatalf("expected module %s, got %v", renderModule, provider.requested)
	}

	if len(rec.fields) != 1 {
		t.Fatalf("expected module fields to be applied once, got %d", len(rec.fields))
	}

	if got, ok := rec.fields[0]["module"]; !ok || got != renderModule {
		t.Fatalf("expected module field %s, got %v", renderModule, rec.fields[0]["module"])
	}

	logger.Info("with provider")
}

func TestModuleLoggerDefaultsToRootModule(t *testing.T) {
	rec := &recordingLogger{}
	provider := &stubProvider{logger: rec}

	_ = ModuleLogger(provider, "")

	if len(provider.requested) != 1 || provider.requested[0] != rootModule {
		t.Fatalf("expected default module %s, got %v", rootModule, provider.requested)
	}
	if rec.fields[0]["module"] != rootModule {
		t.Fatalf("expected module field %s, got %v", rootModule, rec.fields[0]["module"])
	}
}

func TestScopedLoggersRequestTheirModules(t *testing.T) {
	cases := []struct {
		name   string
		scoped func(interfaces.LoggerProvider) interfaces.Logger
		module string
	}{
		{"client", ClientLogger, clientModule},
		{"render", RenderLogger, renderModule},
		{"exporter", ExporterLogger, exporterModule},
		{"state", StateLogger, stateModule},
		{"markdown", MarkdownLogger, markdownModule},
		{"commands", CommandsLogger, commandsModule},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			provider := &stubProvider{logger: &recordingLogger{}}
			_ = tc.scoped(provider)
			if len(provider.requested) == 0 || provider.requested[0] != tc.module {
				t.Fatalf("expected %s module request, got %v", tc.module, provider.requested)
			}
		})
	}
}

func TestWithPageContextSkipsEmptyValues(t *testing.T) {
	rec := &recordingLogger{}

	_ = WithPageContext(rec, "page-123", "", "  ")

	if len(rec.fields) != 1 {
		t.Fatalf("expected one fields application, got %d", len(rec.fields))
	}
	fields := rec.fields[0]
	if fields[fieldPageID] != "page-123" {
		t.Fatalf("expected page id field, got %v", fields)
	}
	if _, ok := fields[fieldSlug]; ok {
		t.Fatalf("expected empty slug to be skipped, got %v", fields)
	}
	if _, ok := fields[fieldPagePath]; ok {
		t.Fatalf("expected blank path to be skipped, got %v", fields)
	}
}

func TestWithBlockContextIgnoresBlankID(t *testing.T) {
	rec := &recordingLogger{}

	if got := WithBlockContext(rec, "   "); got != interfaces.Logger(rec) {
		t.Fatalf("expected logger passthrough for blank id, got %T", got)
	}
	if len(rec.fields) != 0 {
		t.Fatalf("expected no fields for blank id, got %v", rec.fields)
	}

	_ = WithBlockContext(rec, "block-9")
	if len(rec.fields) != 1 || rec.fields[0][fieldBlockID] != "block-9" {
		t.Fatalf("expected block id field, got %v", rec.fields)
	}
}
