package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	yaml "gopkg.in/yaml.v3"
)

const frontMatterDelimiter = "---"

// Envelope is the YAML front matter preceding every exported document body.
type Envelope struct {
	Title      string    `yaml:"title,omitempty"`
	Slug       string    `yaml:"slug"`
	NotionID   string    `yaml:"notion_id"`
	NotionURL  string    `yaml:"notion_url,omitempty"`
	ExportedAt time.Time `yaml:"exported_at"`
	Checksum   string    `yaml:"checksum"`
	BlockCount int       `yaml:"block_count"`
}

// ComposeDocument assembles the on-disk document: YAML envelope between
// delimiters, a blank line, then the rendered Markdown body.
func ComposeDocument(env Envelope, body string) ([]byte, error) {
	encoded, err := yaml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("markdown: marshal front matter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(encoded)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteString("\n\n")
	buf.WriteString(body)
	if len(body) > 0 && body[len(body)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// ParseDocument splits a previously exported document back into its envelope
// and Markdown body. Documents without an envelope are rejected; the sync
// path only reads files this module wrote.
func ParseDocument(source []byte) (Envelope, []byte, error) {
	var env Envelope
	body, err := frontmatter.MustParse(bytes.NewReader(source), &env)
	if err != nil {
		return Envelope{}, nil, fmt.Errorf("markdown: parse front matter: %w", err)
	}
	return env, body, nil
}
