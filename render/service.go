package render

import (
	"context"

	"github.com/goliatone/go-notion-export/notion"
)

// ChildFetcher supplies the ordered direct children of a block by identifier.
// The content API client satisfies it; tests inject fakes. The renderer is
// handed the fetcher per call and never reaches for an ambient client.
type ChildFetcher interface {
	ListChildren(ctx context.Context, blockID string) ([]notion.Block, error)
}

// FetcherFunc adapts a plain function to the ChildFetcher contract.
type FetcherFunc func(ctx context.Context, blockID string) ([]notion.Block, error)

// ListChildren calls fn.
func (fn FetcherFunc) ListChildren(ctx context.Context, blockID string) ([]notion.Block, error) {
	return fn(ctx, blockID)
}

// Service converts ordered block sequences into Markdown with embedded HTML.
//
// Rendering is a pure transformation of its inputs except for the child
// fetches issued while expanding column list containers; those run
// sequentially, one column at a time, so output order always matches API
// order. A failed fetch aborts the call with a *FetchError rather than
// returning a partial document.
type Service interface {
	RenderBlocks(ctx context.Context, fetch ChildFetcher, blocks []notion.Block) (string, error)
}
