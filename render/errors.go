package render

import (
	"errors"
	"fmt"
)

var (
	ErrFetchFailed     = errors.New("render: child fetch failed")
	ErrFetcherRequired = errors.New("render: child fetcher required")
)

// FetchError reports a failed child fetch while expanding a container block.
// The enclosing render call aborts with this error; partial documents are
// never returned silently.
type FetchError struct {
	BlockID string
	Err     error
}

func (e *FetchError) Error() string {
	if e == nil {
		return ErrFetchFailed.Error()
	}
	return fmt.Sprintf("%s: block=%s: %v", ErrFetchFailed.Error(), e.BlockID, e.Err)
}

// Unwrap exposes the fetch cause so callers can match the client's typed
// errors through the chain.
func (e *FetchError) Unwrap() error {
	return e.Err
}

// Is matches the package sentinel alongside the wrapped cause.
func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}
