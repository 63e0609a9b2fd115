package testsupport

import "github.com/goliatone/go-notion-export/notion"

// Span builds a plain text rich text span.
func Span(content string) notion.RichText {
	return notion.RichText{
		Type: notion.RichTextKindText,
		Text: &notion.Text{Content: content},
	}
}

// StyledSpan builds a text span with the supplied annotation flags.
func StyledSpan(content string, bold, italic, code bool) notion.RichText {
	span := Span(content)
	span.Annotations.Bold = bold
	span.Annotations.Italic = italic
	span.Annotations.Code = code
	return span
}

// Paragraph builds a paragraph block with one plain span.
func Paragraph(id, content string) notion.Block {
	return notion.Block{
		ID:        id,
		Type:      notion.BlockTypeParagraph,
		Paragraph: &notion.RichTextBlock{RichText: []notion.RichText{Span(content)}},
	}
}

// Heading builds a heading block at the given level (1 through 3).
func Heading(id string, level int, content string) notion.Block {
	payload := &notion.HeadingBlock{RichText: []notion.RichText{Span(content)}}
	block := notion.Block{ID: id}
	switch level {
	case 1:
		block.Type = notion.BlockTypeHeading1
		block.Heading1 = payload
	case 2:
		block.Type = notion.BlockTypeHeading2
		block.Heading2 = payload
	default:
		block.Type = notion.BlockTypeHeading3
		block.Heading3 = payload
	}
	return block
}

// Code builds a fenced code block.
func Code(id, language, content string) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeCode,
		Code: &notion.CodeBlock{
			RichText: []notion.RichText{Span(content)},
			Language: language,
		},
	}
}

// BulletedItem builds one bulleted list entry.
func BulletedItem(id, content string) notion.Block {
	return notion.Block{
		ID:               id,
		Type:             notion.BlockTypeBulletedListItem,
		BulletedListItem: &notion.RichTextBlock{RichText: []notion.RichText{Span(content)}},
	}
}

// NumberedItem builds one numbered list entry.
func NumberedItem(id, content string) notion.Block {
	return notion.Block{
		ID:               id,
		Type:             notion.BlockTypeNumberedListItem,
		NumberedListItem: &notion.RichTextBlock{RichText: []notion.RichText{Span(content)}},
	}
}

// ToDo builds a checklist entry; pass nil for an absent checked flag.
func ToDo(id, content string, checked *bool) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeToDo,
		ToDo: &notion.ToDoBlock{
			RichText: []notion.RichText{Span(content)},
			Checked:  checked,
		},
	}
}

// Quote builds a block quotation.
func Quote(id, content string) notion.Block {
	return notion.Block{
		ID:    id,
		Type:  notion.BlockTypeQuote,
		Quote: &notion.RichTextBlock{RichText: []notion.RichText{Span(content)}},
	}
}

// Callout builds a callout block; icon may be nil.
func Callout(id, content string, icon *notion.Icon) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeCallout,
		Callout: &notion.CalloutBlock{
			RichText: []notion.RichText{Span(content)},
			Icon:     icon,
		},
	}
}

// EmojiIcon builds the emoji icon variant.
func EmojiIcon(emoji string) *notion.Icon {
	return &notion.Icon{Type: notion.IconKindEmoji, Emoji: emoji}
}

// ExternalImage builds an image block backed by an external URL.
func ExternalImage(id, url string) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeImage,
		Image: &notion.FileRef{
			Type:     notion.FileKindExternal,
			External: &notion.ExternalFile{URL: url},
		},
	}
}

// HostedImage builds an image block backed by service-hosted storage.
func HostedImage(id, url string) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeImage,
		Image: &notion.FileRef{
			Type: notion.FileKindHosted,
			File: &notion.HostedFile{URL: url},
		},
	}
}

// ExternalVideo builds a video block backed by an external URL.
func ExternalVideo(id, url string) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeVideo,
		Video: &notion.FileRef{
			Type:     notion.FileKindExternal,
			External: &notion.ExternalFile{URL: url},
		},
	}
}

// HostedVideo builds a video block backed by service-hosted storage.
func HostedVideo(id, url string) notion.Block {
	return notion.Block{
		ID:   id,
		Type: notion.BlockTypeVideo,
		Video: &notion.FileRef{
			Type: notion.FileKindHosted,
			File: &notion.HostedFile{URL: url},
		},
	}
}

// Divider builds a horizontal rule block.
func Divider(id string) notion.Block {
	return notion.Block{
		ID:      id,
		Type:    notion.BlockTypeDivider,
		Divider: &notion.DividerBlock{},
	}
}

// ColumnList builds a column list container.
func ColumnList(id string, hasChildren bool) notion.Block {
	return notion.Block{
		ID:          id,
		Type:        notion.BlockTypeColumnList,
		HasChildren: hasChildren,
		ColumnList:  &notion.ColumnListBlock{},
	}
}

// Column builds one column child of a column list.
func Column(id string) notion.Block {
	return notion.Block{
		ID:          id,
		Type:        notion.BlockTypeColumn,
		HasChildren: true,
		Column:      &notion.ColumnBlock{},
	}
}

// TypedBlock builds a bare block of an arbitrary type, useful for exercising
// the no-output tail and unknown tags.
func TypedBlock(id string, blockType notion.BlockType) notion.Block {
	return notion.Block{ID: id, Type: blockType}
}

// Bool returns a pointer to b, for optional wire flags.
func Bool(b bool) *bool {
	return &b
}

// TitledPage builds a page whose title property carries one plain span.
func TitledPage(id, title string) *notion.Page {
	return &notion.Page{
		ID:  id,
		URL: "https://notion.example/" + id,
		Properties: map[string]notion.PageProperty{
			"title": {
				Type:  "title",
				Title: []notion.RichText{Span(title)},
			},
		},
	}
}
