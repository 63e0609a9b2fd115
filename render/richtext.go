package render

import (
	"strings"

	"github.com/goliatone/go-notion-export/notion"
)

// InlineText converts one rich text span into its Markdown form.
//
// Annotation wrapping composes in a fixed order: bold first, italic second,
// code third, each applied around the already wrapped result of the previous
// step. A span flagged bold and code therefore renders as `**content**` with
// the code ticks outermost. Non-text variants (mentions, equations) yield an
// empty string; dropping them is deliberate, not an error.
func InlineText(text notion.RichText) string {
	if text.Type != notion.RichTextKindText || text.Text == nil {
		return ""
	}

	value := text.Text.Content

	if text.Annotations.Bold {
		value = "**" + value + "**"
	}
	if text.Annotations.Italic {
		value = "*" + value + "*"
	}
	if text.Annotations.Code {
		value = "`" + value + "`"
	}

	return value
}

// InlineTexts renders a run of spans and concatenates the results with no
// separator, forming one block's text content.
func InlineTexts(texts []notion.RichText) string {
	if len(texts) == 0 {
		return ""
	}

	var b strings.Builder
	for _, text := range texts {
		b.WriteString(InlineText(text))
	}
	return b.String()
}
