package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-notion-export/pkg/interfaces"
)

// Renderer implements interfaces.MarkdownRenderer using the goldmark engine.
// The renderer is stateless so callers can share a single instance without
// locking.
type Renderer struct {
	defaults interfaces.ParseOptions
}

// DefaultOptions returns the preview defaults: GFM extensions and unsafe
// HTML enabled. Unsafe stays on because exported documents embed raw img,
// video and div fragments that safe mode would strip.
func DefaultOptions() interfaces.ParseOptions {
	return interfaces.ParseOptions{
		Extensions: []string{"gfm", "linkify", "tasklist"},
		Unsafe:     true,
	}
}

// NewRenderer constructs a renderer, validating the default extension names
// up front so configuration typos fail at startup rather than per render.
func NewRenderer(defaults interfaces.ParseOptions) (*Renderer, error) {
	if _, err := collectExtensions(defaults.Extensions); err != nil {
		return nil, err
	}
	return &Renderer{defaults: defaults}, nil
}

// Render satisfies interfaces.MarkdownRenderer using the default options.
func (r *Renderer) Render(markdown []byte) ([]byte, error) {
	return r.RenderWithOptions(markdown, r.defaults)
}

// RenderWithOptions converts Markdown into HTML using the provided options.
func (r *Renderer) RenderWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	engine, err := newGoldmarkEngine(opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

func newGoldmarkEngine(opts interfaces.ParseOptions) (goldmark.Markdown, error) {
	exts, err := collectExtensions(opts.Extensions)
	if err != nil {
		return nil, err
	}

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if opts.Unsafe {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}
	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}
	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...), nil
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

// collectExtensions resolves extension names to goldmark extenders. Unknown
// names are rejected rather than ignored so misconfiguration surfaces early.
func collectExtensions(names []string) ([]goldmark.Extender, error) {
	if len(names) == 0 {
		return nil, nil
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		ext, ok := extensionRegistry[key]
		if !ok {
			return nil, fmt.Errorf("markdown: unknown extension %q", name)
		}
		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders, nil
}
