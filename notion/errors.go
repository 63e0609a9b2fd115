package notion

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrTokenRequired   = errors.New("notion: integration token required")
	ErrPageIDRequired  = errors.New("notion: page id required")
	ErrBlockIDRequired = errors.New("notion: block id required")
	ErrRequestFailed   = errors.New("notion: api request failed")
)

// APIError carries the error envelope returned by the content API for non-2xx
// responses.
type APIError struct {
	StatusCode int    `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	if e == nil {
		return ErrRequestFailed.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: status=%d code=%s message=%s", ErrRequestFailed.Error(), e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: status=%d message=%s", ErrRequestFailed.Error(), e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}

// IsNotFound reports whether err is an API error for a missing page or block.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is an API error for a rejected token.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// IsRateLimited reports whether err is an API error for request throttling.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests
}
