package render

import renderpkg "github.com/goliatone/go-notion-export/render"

type (
	ChildFetcher = renderpkg.ChildFetcher
	FetcherFunc  = renderpkg.FetcherFunc
	Service      = renderpkg.Service
	FetchError   = renderpkg.FetchError
)

var (
	ErrFetchFailed     = renderpkg.ErrFetchFailed
	ErrFetcherRequired = renderpkg.ErrFetcherRequired
)
