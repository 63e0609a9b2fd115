package export

import (
	"errors"
	"fmt"
)

var (
	ErrPageIDRequired = errors.New("export: page id required")
	ErrNoPages        = errors.New("export: at least one page id required")
)

// PageError wraps a pipeline failure with the page it belongs to.
type PageError struct {
	PageID string
	Stage  string
	Err    error
}

func (e *PageError) Error() string {
	if e == nil {
		return "export: page failed"
	}
	return fmt.Sprintf("export page %s: %s: %v", e.PageID, e.Stage, e.Err)
}

func (e *PageError) Unwrap() error {
	return e.Err
}
