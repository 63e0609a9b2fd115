package state

import (
	"context"
	"errors"
	"fmt"
)

// Store persists export records keyed by page ID.
type Store interface {
	GetByPageID(ctx context.Context, pageID string) (*ExportRecord, error)
	Upsert(ctx context.Context, record *ExportRecord) (*ExportRecord, error)
	List(ctx context.Context) ([]*ExportRecord, error)
	Delete(ctx context.Context, pageID string) error
}

// NotFoundError is returned when a ledger record cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}

// IsNotFound reports whether err is a ledger miss.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
