package exportcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ExportPageMessage requests a single-page export.
type ExportPageMessage struct {
	PageID string `json:"page_id"`
	Force  bool   `json:"force"`
}

func (ExportPageMessage) Type() string { return "notion.export.page" }

func (m ExportPageMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.PageID, validation.By(requireTrimmed("notion.export.page.page_id_required", "page_id is required"))),
	)
}

// ExportPagesMessage requests a batch export.
type ExportPagesMessage struct {
	PageIDs []string `json:"page_ids"`
	Force   bool     `json:"force"`
}

func (ExportPagesMessage) Type() string { return "notion.export.pages" }

func (m ExportPagesMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.PageIDs,
			validation.Required.Error("at least one page id is required"),
			validation.By(func(value interface{}) error {
				ids, _ := value.([]string)
				for _, id := range ids {
					if strings.TrimSpace(id) == "" {
						return validation.NewError("notion.export.pages.page_id_blank", "page ids must not be blank")
					}
				}
				return nil
			}),
		),
	)
}

// PreviewPageMessage requests an in-memory render of a single page.
type PreviewPageMessage struct {
	PageID string `json:"page_id"`
}

func (PreviewPageMessage) Type() string { return "notion.export.preview" }

func (m PreviewPageMessage) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.PageID, validation.By(requireTrimmed("notion.export.preview.page_id_required", "page_id is required"))),
	)
}

// WriteManifestMessage requests a manifest rebuild and write.
type WriteManifestMessage struct{}

func (WriteManifestMessage) Type() string { return "notion.export.manifest" }

func (WriteManifestMessage) Validate() error { return nil }

// SyncMessage requests a re-export of every page in the ledger.
type SyncMessage struct {
	Prune bool `json:"prune"`
	Force bool `json:"force"`
}

func (SyncMessage) Type() string { return "notion.export.sync" }

func (SyncMessage) Validate() error { return nil }

func requireTrimmed(code, message string) func(interface{}) error {
	return func(value interface{}) error {
		s, _ := value.(string)
		if strings.TrimSpace(s) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
