package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
	renderpkg "github.com/goliatone/go-notion-export/render"
)

// service walks ordered block sequences, dispatching per block type and
// expanding column list containers through the injected fetcher.
type service struct {
	logger interfaces.Logger
}

// ServiceOption customises renderer behaviour.
type ServiceOption func(*service)

// WithLogger attaches the diagnostics logger used to report unsupported
// block types. Diagnostics are observational only and never change output.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService constructs the block tree renderer.
func NewService(opts ...ServiceOption) Service {
	svc := &service{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// RenderBlocks renders the sequence into one document: per-block fragments
// joined with a blank line, in input order. Blocks that produce no output
// contribute nothing, so skipped blocks never leave blank-line artifacts.
func (s *service) RenderBlocks(ctx context.Context, fetch ChildFetcher, blocks []notion.Block) (string, error) {
	fragments := make([]string, 0, len(blocks))

	for _, block := range blocks {
		fragment, ok, err := s.renderBlock(ctx, fetch, block)
		if err != nil {
			return "", err
		}
		if ok {
			fragments = append(fragments, fragment)
		}
	}

	return strings.Join(fragments, "\n\n"), nil
}

// renderBlock maps one block to its optional fragment. The switch enumerates
// every known block type; unknown tags fall through to the unsupported path
// so new upstream variants surface in diagnostics instead of vanishing.
func (s *service) renderBlock(ctx context.Context, fetch ChildFetcher, block notion.Block) (string, bool, error) {
	switch block.Type {
	case notion.BlockTypeHeading1:
		return "# " + headingContent(block.Heading1), true, nil

	case notion.BlockTypeHeading2:
		return "## " + headingContent(block.Heading2), true, nil

	case notion.BlockTypeHeading3:
		return "### " + headingContent(block.Heading3), true, nil

	case notion.BlockTypeParagraph:
		return textContent(block.Paragraph), true, nil

	case notion.BlockTypeCode:
		return renderCode(block.Code), true, nil

	case notion.BlockTypeBulletedListItem:
		return "* " + textContent(block.BulletedListItem), true, nil

	case notion.BlockTypeNumberedListItem:
		// Numbering is always the literal "1."; sibling counter state is
		// intentionally not tracked.
		return "1. " + textContent(block.NumberedListItem), true, nil

	case notion.BlockTypeToDo:
		return renderToDo(block.ToDo), true, nil

	case notion.BlockTypeQuote:
		return "> " + textContent(block.Quote), true, nil

	case notion.BlockTypeCallout:
		return renderCallout(block.Callout), true, nil

	case notion.BlockTypeImage:
		if url, ok := block.Image.ExternalURL(); ok {
			return fmt.Sprintf(`<img style="margin: 0 auto" src="%s">`, url), true, nil
		}
		// Hosted assets sit behind expiring URLs; re-upload is out of scope.
		return "", false, nil

	case notion.BlockTypeVideo:
		if url, ok := block.Video.ExternalURL(); ok {
			return fmt.Sprintf(`<video controls src="%s" />`, url), true, nil
		}
		return "", false, nil

	case notion.BlockTypeDivider:
		return "---", true, nil

	case notion.BlockTypeColumnList:
		return s.renderColumnList(ctx, fetch, block)

	case notion.BlockTypeColumn,
		notion.BlockTypeTable,
		notion.BlockTypeTableRow,
		notion.BlockTypeBookmark,
		notion.BlockTypeFile,
		notion.BlockTypePDF,
		notion.BlockTypeTableOfContents,
		notion.BlockTypeChildPage,
		notion.BlockTypeChildDatabase,
		notion.BlockTypeSyncedBlock,
		notion.BlockTypeTemplate,
		notion.BlockTypeToggle,
		notion.BlockTypeBreadcrumb,
		notion.BlockTypeEmbed,
		notion.BlockTypeEquation,
		notion.BlockTypeLinkPreview,
		notion.BlockTypeLinkToPage:
		return "", false, nil

	default:
		s.logger.Warn("render.block.unsupported",
			"block_id", block.ID,
			"type", string(block.Type),
		)
		return "", false, nil
	}
}

// renderColumnList expands a column list container: list its columns, then
// each column's children, rendering one column at a time so output order
// matches API order. Both fetch rounds run sequentially and a failure in
// either aborts the render.
func (s *service) renderColumnList(ctx context.Context, fetch ChildFetcher, block notion.Block) (string, bool, error) {
	if !block.HasChildren {
		return "", false, nil
	}

	if fetch == nil {
		return "", false, &FetchError{BlockID: block.ID, Err: ErrFetcherRequired}
	}

	columns, err := fetch.ListChildren(ctx, block.ID)
	if err != nil {
		return "", false, &FetchError{BlockID: block.ID, Err: err}
	}

	wrapped := make([]string, 0, len(columns))
	for _, column := range columns {
		children, err := fetch.ListChildren(ctx, column.ID)
		if err != nil {
			return "", false, &FetchError{BlockID: column.ID, Err: err}
		}

		content, err := s.RenderBlocks(ctx, fetch, children)
		if err != nil {
			return "", false, err
		}

		wrapped = append(wrapped, `<div style="margin: 0 16px">`+content+`</div>`)
	}

	return `<div style="display: flex;">` + strings.Join(wrapped, "\n") + `</div>`, true, nil
}

func textContent(payload *notion.RichTextBlock) string {
	if payload == nil {
		return ""
	}
	return renderpkg.InlineTexts(payload.RichText)
}

func headingContent(payload *notion.HeadingBlock) string {
	if payload == nil {
		return ""
	}
	return renderpkg.InlineTexts(payload.RichText)
}

func renderCode(payload *notion.CodeBlock) string {
	if payload == nil {
		return "```\n\n```"
	}
	return fmt.Sprintf("```%s\n%s\n```", payload.Language, renderpkg.InlineTexts(payload.RichText))
}

func renderToDo(payload *notion.ToDoBlock) string {
	marker := "[ ] "
	if payload.Done() {
		marker = "[x] "
	}
	var content string
	if payload != nil {
		content = renderpkg.InlineTexts(payload.RichText)
	}
	return marker + content
}

// renderCallout prefixes the quoted text with the emoji icon when present;
// non-emoji icons contribute nothing, leaving the double space intact.
func renderCallout(payload *notion.CalloutBlock) string {
	if payload == nil {
		return ">  "
	}

	icon := ""
	if payload.Icon != nil && payload.Icon.Type == notion.IconKindEmoji {
		icon = payload.Icon.Emoji
	}

	return "> " + icon + " " + renderpkg.InlineTexts(payload.RichText)
}
