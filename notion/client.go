package notion

import "context"

// Client is the content API surface consumed by the renderer and exporter.
type Client interface {
	// GetPage retrieves page metadata, including the title property.
	GetPage(ctx context.Context, pageID string) (*Page, error)
	// ListChildren returns the ordered direct children of a block or page.
	// Implementations aggregate cursor pagination internally so callers
	// always receive the complete child list in API order.
	ListChildren(ctx context.Context, blockID string) ([]Block, error)
}
