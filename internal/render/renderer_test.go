package render

import (
	"context"
	"errors"
	"testing"

	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/testsupport"
	renderpkg "github.com/goliatone/go-notion-export/render"
)

// staticFetcher maps parent IDs to child lists and counts calls.
type staticFetcher struct {
	children map[string][]notion.Block
	calls    []string
	err      error
}

func (f *staticFetcher) ListChildren(_ context.Context, blockID string) ([]notion.Block, error) {
	f.calls = append(f.calls, blockID)
	if f.err != nil {
		return nil, f.err
	}
	return f.children[blockID], nil
}

func renderAll(t *testing.T, fetch renderpkg.ChildFetcher, blocks ...notion.Block) string {
	t.Helper()
	out, err := NewService().RenderBlocks(context.Background(), fetch, blocks)
	if err != nil {
		t.Fatalf("RenderBlocks: %v", err)
	}
	return out
}

func TestRenderBlocksEmptySequence(t *testing.T) {
	if out := renderAll(t, nil); out != "" {
		t.Fatalf("empty sequence rendered %q", out)
	}
}

func TestRenderBlocksJoinsParagraphs(t *testing.T) {
	out := renderAll(t, nil,
		testsupport.Paragraph("b1", "A"),
		testsupport.Paragraph("b2", "B"),
	)
	if out != "A\n\nB" {
		t.Fatalf("got %q, want %q", out, "A\n\nB")
	}
}

func TestRenderBlocksPerType(t *testing.T) {
	cases := []struct {
		name  string
		block notion.Block
		want  string
	}{
		{"heading_1", testsupport.Heading("b", 1, "Title"), "# Title"},
		{"heading_2", testsupport.Heading("b", 2, "Title"), "## Title"},
		{"heading_3", testsupport.Heading("b", 3, "Title"), "### Title"},
		{"paragraph", testsupport.Paragraph("b", "Text"), "Text"},
		{"code", testsupport.Code("b", "go", "fmt.Println()"), "```go\nfmt.Println()\n```"},
		{"bulleted", testsupport.BulletedItem("b", "item"), "* item"},
		{"numbered", testsupport.NumberedItem("b", "item"), "1. item"},
		{"todo_unchecked", testsupport.ToDo("b", "task", nil), "[ ] task"},
		{"todo_checked", testsupport.ToDo("b", "task", testsupport.Bool(true)), "[x] task"},
		{"quote", testsupport.Quote("b", "wisdom"), "> wisdom"},
		{"callout_emoji", testsupport.Callout("b", "note", testsupport.EmojiIcon("💡")), "> 💡 note"},
		{"callout_no_icon", testsupport.Callout("b", "note", nil), ">  note"},
		{"divider", testsupport.Divider("b"), "---"},
		{"image_external", testsupport.ExternalImage("b", "http://x/y.png"), `<img style="margin: 0 auto" src="http://x/y.png">`},
		{"video_external", testsupport.ExternalVideo("b", "http://x/v.mp4"), `<video controls src="http://x/v.mp4" />`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if out := renderAll(t, nil, tc.block); out != tc.want {
				t.Fatalf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestRenderBlocksHostedMediaSilent(t *testing.T) {
	out := renderAll(t, nil,
		testsupport.Paragraph("b1", "A"),
		testsupport.HostedImage("b2", "https://files.notion.example/y.png"),
		testsupport.HostedVideo("b3", "https://files.notion.example/v.mp4"),
		testsupport.Paragraph("b4", "B"),
	)
	if out != "A\n\nB" {
		t.Fatalf("hosted media leaked into output: %q", out)
	}
}

func TestRenderBlocksNoOutputTail(t *testing.T) {
	tail := []notion.BlockType{
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
		notion.BlockTypeLinkToPage,
		notion.BlockTypeColumn,
	}

	blocks := []notion.Block{testsupport.Paragraph("lead", "A")}
	for i, bt := range tail {
		blocks = append(blocks, testsupport.TypedBlock(string(rune('a'+i)), bt))
	}
	blocks = append(blocks, testsupport.Paragraph("trail", "B"))

	// Skipped blocks contribute nothing, not even blank-line artifacts.
	if out := renderAll(t, nil, blocks...); out != "A\n\nB" {
		t.Fatalf("no-output tail leaked: %q", out)
	}
}

func TestRenderBlocksUnknownTypeSkipped(t *testing.T) {
	out := renderAll(t, nil,
		testsupport.Paragraph("b1", "A"),
		testsupport.TypedBlock("b2", notion.BlockType("ai_block")),
		testsupport.TypedBlock("b3", notion.BlockTypeUnsupported),
	)
	if out != "A" {
		t.Fatalf("unknown types leaked: %q", out)
	}
}

func TestRenderColumnListWithoutChildren(t *testing.T) {
	fetch := &staticFetcher{}

	out := renderAll(t, fetch, testsupport.ColumnList("cl", false))
	if out != "" {
		t.Fatalf("childless column list rendered %q", out)
	}
	if len(fetch.calls) != 0 {
		t.Fatalf("expected no fetch calls, got %v", fetch.calls)
	}
}

func TestRenderColumnListTwoColumns(t *testing.T) {
	fetch := &staticFetcher{
		children: map[string][]notion.Block{
			"cl":   {testsupport.Column("c1"), testsupport.Column("c2")},
			"c1":   {testsupport.Paragraph("p1", "X")},
			"c2":   {testsupport.Paragraph("p2", "Y")},
		},
	}

	out := renderAll(t, fetch, testsupport.ColumnList("cl", true))

	want := `<div style="display: flex;">` +
		`<div style="margin: 0 16px">X</div>` + "\n" +
		`<div style="margin: 0 16px">Y</div>` +
		`</div>`
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}

	// Fetch order pins left-to-right output: the list, then each column.
	wantCalls := []string{"cl", "c1", "c2"}
	if len(fetch.calls) != len(wantCalls) {
		t.Fatalf("calls = %v", fetch.calls)
	}
	for i, call := range wantCalls {
		if fetch.calls[i] != call {
			t.Fatalf("calls[%d] = %q, want %q", i, fetch.calls[i], call)
		}
	}
}

func TestRenderColumnListFetchFailure(t *testing.T) {
	cause := errors.New("network down")
	fetch := &staticFetcher{err: cause}

	_, err := NewService().RenderBlocks(context.Background(), fetch, []notion.Block{
		testsupport.ColumnList("cl", true),
	})
	if err == nil {
		t.Fatal("expected fetch failure to propagate")
	}

	var fetchErr *renderpkg.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %T: %v", err, err)
	}
	if fetchErr.BlockID != "cl" {
		t.Fatalf("BlockID = %q", fetchErr.BlockID)
	}
	if !errors.Is(err, renderpkg.ErrFetchFailed) {
		t.Fatalf("sentinel not matched: %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable: %v", err)
	}
}

func TestRenderColumnListColumnFetchFailure(t *testing.T) {
	cause := errors.New("rate limited")
	fetch := &columnFailFetcher{cause: cause}

	_, err := NewService().RenderBlocks(context.Background(), fetch, []notion.Block{
		testsupport.ColumnList("cl", true),
	})

	var fetchErr *renderpkg.FetchError
	if !errors.As(err, &fetchErr) {
		t.Fatalf("expected *FetchError, got %v", err)
	}
	if fetchErr.BlockID != "c1" {
		t.Fatalf("BlockID = %q, want the failing column", fetchErr.BlockID)
	}
}

// columnFailFetcher lists the columns but fails on the first column's
// children.
type columnFailFetcher struct {
	cause error
}

func (f *columnFailFetcher) ListChildren(_ context.Context, blockID string) ([]notion.Block, error) {
	if blockID == "cl" {
		return []notion.Block{testsupport.Column("c1")}, nil
	}
	return nil, f.cause
}

func TestRenderColumnListNilFetcher(t *testing.T) {
	_, err := NewService().RenderBlocks(context.Background(), nil, []notion.Block{
		testsupport.ColumnList("cl", true),
	})
	if !errors.Is(err, renderpkg.ErrFetcherRequired) {
		t.Fatalf("expected ErrFetcherRequired, got %v", err)
	}
}

func TestRenderBlocksCodeEmptyLanguage(t *testing.T) {
	out := renderAll(t, nil, testsupport.Code("b", "", "x = 1"))
	if out != "```\nx = 1\n```" {
		t.Fatalf("got %q", out)
	}
}
