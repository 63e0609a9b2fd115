package notion

import (
	"strings"
	"time"
)

// BlockType identifies the concrete payload carried by a Block.
type BlockType string

const (
	// BlockTypeParagraph is a plain rich text run
	BlockTypeParagraph BlockType = "paragraph"
	// BlockTypeHeading1 is a top level heading
	BlockTypeHeading1 BlockType = "heading_1"
	// BlockTypeHeading2 is a second level heading
	BlockTypeHeading2 BlockType = "heading_2"
	// BlockTypeHeading3 is a third level heading
	BlockTypeHeading3 BlockType = "heading_3"
	// BlockTypeCode is a fenced code listing with a language tag
	BlockTypeCode BlockType = "code"
	// BlockTypeBulletedListItem is a single bulleted list entry
	BlockTypeBulletedListItem BlockType = "bulleted_list_item"
	// BlockTypeNumberedListItem is a single numbered list entry
	BlockTypeNumberedListItem BlockType = "numbered_list_item"
	// BlockTypeToDo is a checklist entry with an optional checked flag
	BlockTypeToDo BlockType = "to_do"
	// BlockTypeQuote is a block quotation
	BlockTypeQuote BlockType = "quote"
	// BlockTypeCallout is a highlighted aside with an optional icon
	BlockTypeCallout BlockType = "callout"
	// BlockTypeImage is an image asset, hosted or external
	BlockTypeImage BlockType = "image"
	// BlockTypeVideo is a video asset, hosted or external
	BlockTypeVideo BlockType = "video"
	// BlockTypeDivider is a horizontal rule
	BlockTypeDivider BlockType = "divider"
	// BlockTypeColumnList is the container whose children are column blocks
	BlockTypeColumnList BlockType = "column_list"
	// BlockTypeColumn is one column inside a column list
	BlockTypeColumn BlockType = "column"

	BlockTypeTable           BlockType = "table"
	BlockTypeTableRow        BlockType = "table_row"
	BlockTypeBookmark        BlockType = "bookmark"
	BlockTypeFile            BlockType = "file"
	BlockTypePDF             BlockType = "pdf"
	BlockTypeTableOfContents BlockType = "table_of_contents"
	BlockTypeChildPage       BlockType = "child_page"
	BlockTypeChildDatabase   BlockType = "child_database"
	BlockTypeSyncedBlock     BlockType = "synced_block"
	BlockTypeTemplate        BlockType = "template"
	BlockTypeToggle          BlockType = "toggle"
	BlockTypeBreadcrumb      BlockType = "breadcrumb"
	BlockTypeEmbed           BlockType = "embed"
	BlockTypeEquation        BlockType = "equation"
	BlockTypeLinkPreview     BlockType = "link_preview"
	BlockTypeLinkToPage      BlockType = "link_to_page"

	// BlockTypeUnsupported is the API's catch-all for blocks it cannot serialize
	BlockTypeUnsupported BlockType = "unsupported"
)

// RichTextKind discriminates the inline content variants of a RichText span.
type RichTextKind string

const (
	// RichTextKindText is authored inline text; the only variant that renders
	RichTextKindText RichTextKind = "text"
	// RichTextKindMention references a user, page, date or database
	RichTextKindMention RichTextKind = "mention"
	// RichTextKindEquation is an inline math expression
	RichTextKindEquation RichTextKind = "equation"
)

// Annotations are the independent style flags attached to a rich text span.
// Bold, Italic and Code drive Markdown emphasis; the remaining fields are
// carried through for round-tripping but not consulted when rendering.
type Annotations struct {
	Bold          bool   `json:"bold"`
	Italic        bool   `json:"italic"`
	Strikethrough bool   `json:"strikethrough"`
	Underline     bool   `json:"underline"`
	Code          bool   `json:"code"`
	Color         string `json:"color,omitempty"`
}

// TextLink is an optional hyperlink attached to a text span.
type TextLink struct {
	URL string `json:"url"`
}

// Text is the payload of the "text" rich text variant.
type Text struct {
	Content string    `json:"content"`
	Link    *TextLink `json:"link,omitempty"`
}

// Mention is the payload of the "mention" variant. Only the discriminator is
// retained; mentions render to nothing.
type Mention struct {
	Type string `json:"type,omitempty"`
}

// Equation is the payload of the "equation" variant.
type Equation struct {
	Expression string `json:"expression"`
}

// RichText is one unit of inline annotated content. Exactly one payload
// pointer matches Type on a well-formed span.
type RichText struct {
	Type        RichTextKind `json:"type"`
	Annotations Annotations  `json:"annotations"`
	PlainText   string       `json:"plain_text,omitempty"`
	Href        *string      `json:"href,omitempty"`

	Text     *Text     `json:"text,omitempty"`
	Mention  *Mention  `json:"mention,omitempty"`
	Equation *Equation `json:"equation,omitempty"`
}

// FileKind discriminates how a media asset is stored.
type FileKind string

const (
	// FileKindExternal is a URL authored outside the service
	FileKindExternal FileKind = "external"
	// FileKindHosted is service-managed storage behind an expiring URL
	FileKindHosted FileKind = "file"
)

// ExternalFile is a caller-provided asset URL.
type ExternalFile struct {
	URL string `json:"url"`
}

// HostedFile is a service-managed asset; its URL expires.
type HostedFile struct {
	URL        string     `json:"url"`
	ExpiryTime *time.Time `json:"expiry_time,omitempty"`
}

// FileRef is the storage union used by image, video and file payloads.
type FileRef struct {
	Caption  []RichText    `json:"caption,omitempty"`
	Type     FileKind      `json:"type"`
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
}

// ExternalURL returns the asset URL when the reference is externally hosted.
func (f *FileRef) ExternalURL() (string, bool) {
	if f == nil || f.Type != FileKindExternal || f.External == nil {
		return "", false
	}
	return f.External.URL, true
}

// IconKind discriminates callout icon variants.
type IconKind string

const (
	IconKindEmoji    IconKind = "emoji"
	IconKindExternal IconKind = "external"
	IconKindHosted   IconKind = "file"
)

// Icon decorates a callout. Only the emoji variant contributes to rendered
// output.
type Icon struct {
	Type     IconKind      `json:"type"`
	Emoji    string        `json:"emoji,omitempty"`
	External *ExternalFile `json:"external,omitempty"`
	File     *HostedFile   `json:"file,omitempty"`
}

// RichTextBlock is the shared payload for block types whose content is a
// single rich text run (paragraph, list items, quote).
type RichTextBlock struct {
	RichText []RichText `json:"rich_text"`
	Color    string     `json:"color,omitempty"`
}

// HeadingBlock is the payload for heading_1 through heading_3.
type HeadingBlock struct {
	RichText     []RichText `json:"rich_text"`
	Color        string     `json:"color,omitempty"`
	IsToggleable bool       `json:"is_toggleable,omitempty"`
}

// CodeBlock is the payload for fenced code listings. Language carries the
// wire tag verbatim and is emitted unchanged after the opening fence.
type CodeBlock struct {
	RichText []RichText `json:"rich_text"`
	Caption  []RichText `json:"caption,omitempty"`
	Language string     `json:"language"`
}

// ToDoBlock is the payload for checklist entries. A nil Checked means
// unchecked.
type ToDoBlock struct {
	RichText []RichText `json:"rich_text"`
	Checked  *bool      `json:"checked,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// Done reports the checked state, treating an absent flag as unchecked.
func (t *ToDoBlock) Done() bool {
	return t != nil && t.Checked != nil && *t.Checked
}

// CalloutBlock is the payload for highlighted asides.
type CalloutBlock struct {
	RichText []RichText `json:"rich_text"`
	Icon     *Icon      `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
}

// ColumnListBlock is the container payload; its columns are never embedded
// inline and must be fetched by identifier.
type ColumnListBlock struct{}

// ColumnBlock is one column's payload; content arrives via child fetch.
type ColumnBlock struct{}

// DividerBlock is the horizontal rule payload.
type DividerBlock struct{}

// Block is one node of the content tree. Type discriminates which payload
// pointer is populated; payload fields mirror the wire layout so blocks
// round-trip through encoding/json without custom marshaling. Types in the
// no-output tail carry no payload mapping because their contents are never
// consulted.
type Block struct {
	Object         string     `json:"object,omitempty"`
	ID             string     `json:"id"`
	Type           BlockType  `json:"type"`
	HasChildren    bool       `json:"has_children"`
	Archived       bool       `json:"archived,omitempty"`
	CreatedTime    *time.Time `json:"created_time,omitempty"`
	LastEditedTime *time.Time `json:"last_edited_time,omitempty"`

	Paragraph        *RichTextBlock   `json:"paragraph,omitempty"`
	Heading1         *HeadingBlock    `json:"heading_1,omitempty"`
	Heading2         *HeadingBlock    `json:"heading_2,omitempty"`
	Heading3         *HeadingBlock    `json:"heading_3,omitempty"`
	Code             *CodeBlock       `json:"code,omitempty"`
	BulletedListItem *RichTextBlock   `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBlock   `json:"numbered_list_item,omitempty"`
	ToDo             *ToDoBlock       `json:"to_do,omitempty"`
	Quote            *RichTextBlock   `json:"quote,omitempty"`
	Callout          *CalloutBlock    `json:"callout,omitempty"`
	Image            *FileRef         `json:"image,omitempty"`
	Video            *FileRef         `json:"video,omitempty"`
	Divider          *DividerBlock    `json:"divider,omitempty"`
	ColumnList       *ColumnListBlock `json:"column_list,omitempty"`
	Column           *ColumnBlock     `json:"column,omitempty"`
}

// PageProperty is one entry of a page's property map. Only the title
// property is consulted by the exporter.
type PageProperty struct {
	ID    string     `json:"id,omitempty"`
	Type  string     `json:"type"`
	Title []RichText `json:"title,omitempty"`
}

// Page is the exporter's unit of work.
type Page struct {
	Object         string                  `json:"object,omitempty"`
	ID             string                  `json:"id"`
	URL            string                  `json:"url,omitempty"`
	Archived       bool                    `json:"archived,omitempty"`
	CreatedTime    time.Time               `json:"created_time"`
	LastEditedTime time.Time               `json:"last_edited_time"`
	Properties     map[string]PageProperty `json:"properties,omitempty"`
}

// Title assembles the page title from the title property's spans. Returns an
// empty string when the page carries no title property.
func (p *Page) Title() string {
	if p == nil {
		return ""
	}
	for _, prop := range p.Properties {
		if prop.Type != "title" {
			continue
		}
		var b strings.Builder
		for _, span := range prop.Title {
			if span.PlainText != "" {
				b.WriteString(span.PlainText)
				continue
			}
			if span.Text != nil {
				b.WriteString(span.Text.Content)
			}
		}
		return strings.TrimSpace(b.String())
	}
	return ""
}
