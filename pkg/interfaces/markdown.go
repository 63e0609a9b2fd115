package interfaces

// MarkdownRenderer converts Markdown bytes into HTML. The exporter's preview
// path depends on this contract rather than a concrete engine so hosts can
// substitute their own renderer.
type MarkdownRenderer interface {
	// Render converts Markdown into HTML using the renderer's defaults.
	Render(markdown []byte) ([]byte, error)
	// RenderWithOptions converts Markdown into HTML using the supplied overrides.
	RenderWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
//
// Unsafe must stay enabled for exporter output: rendered documents embed raw
// <img>, <video> and <div> fragments that a safe-mode engine would strip.
type ParseOptions struct {
	Extensions []string
	HardWraps  bool
	Unsafe     bool
}
