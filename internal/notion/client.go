package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goliatone/go-notion-export/internal/logging"
	"github.com/goliatone/go-notion-export/notion"
	"github.com/goliatone/go-notion-export/pkg/interfaces"
	urlkit "github.com/goliatone/go-urlkit"
)

const (
	// DefaultBaseURL is the public content API origin.
	DefaultBaseURL = "https://api.notion.com"
	// DefaultVersion pins the API revision sent on every request.
	DefaultVersion = "2022-06-28"
	// DefaultPageSize is the child-listing page size; the API caps at 100.
	DefaultPageSize = 100

	apiGroup           = "api"
	routeBlockChildren = "blocks.children"
	routePageGet       = "pages.get"
)

// Config carries the settings required to reach the content API.
type Config struct {
	Token    string
	BaseURL  string
	Version  string
	PageSize int
}

// Client implements notion.Client over HTTP. Child listings aggregate cursor
// pagination internally so callers always receive the complete ordered list.
type Client struct {
	httpClient *http.Client
	routes     *urlkit.RouteManager
	logger     interfaces.Logger

	token    string
	version  string
	pageSize int
}

// Option customises client construction.
type Option func(*Client)

// WithHTTPClient overrides the transport. Retry, backoff and timeout policy
// belong to the supplied client, not this layer.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger attaches the module logger used for request diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds an API client from the supplied configuration.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	token := strings.TrimSpace(cfg.Token)
	if token == "" {
		return nil, notion.ErrTokenRequired
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		version = DefaultVersion
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 || pageSize > DefaultPageSize {
		pageSize = DefaultPageSize
	}

	client := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		routes:     newRouteManager(baseURL),
		logger:     logging.NoOp(),
		token:      token,
		version:    version,
		pageSize:   pageSize,
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

func newRouteManager(baseURL string) *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    apiGroup,
				BaseURL: baseURL,
				Paths: map[string]string{
					routeBlockChildren: "/v1/blocks/:block_id/children",
					routePageGet:       "/v1/pages/:page_id",
				},
			},
		},
	})
}

// GetPage retrieves page metadata, including the title property.
func (c *Client) GetPage(ctx context.Context, pageID string) (*notion.Page, error) {
	if strings.TrimSpace(pageID) == "" {
		return nil, notion.ErrPageIDRequired
	}

	url, err := c.routes.Group(apiGroup).
		Builder(routePageGet).
		WithParam("page_id", pageID).
		Build()
	if err != nil {
		return nil, fmt.Errorf("notion: build page url: %w", err)
	}

	var page notion.Page
	if err := c.get(ctx, url, &page); err != nil {
		return nil, fmt.Errorf("notion: get page %s: %w", pageID, err)
	}

	c.logger.Debug("notion.page.fetched", "page_id", pageID)
	return &page, nil
}

// childListEnvelope is the wire shape of a block-children listing response.
type childListEnvelope struct {
	Object     string         `json:"object"`
	Results    []notion.Block `json:"results"`
	NextCursor *string        `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}

// ListChildren returns the ordered direct children of a block or page,
// following pagination cursors until the API reports no more results.
func (c *Client) ListChildren(ctx context.Context, blockID string) ([]notion.Block, error) {
	if strings.TrimSpace(blockID) == "" {
		return nil, notion.ErrBlockIDRequired
	}

	var (
		children []notion.Block
		cursor   string
		requests int
	)

	for {
		builder := c.routes.Group(apiGroup).
			Builder(routeBlockChildren).
			WithParam("block_id", blockID).
			WithQuery("page_size", fmt.Sprintf("%d", c.pageSize))
		if cursor != "" {
			builder.WithQuery("start_cursor", cursor)
		}

		url, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("notion: build children url: %w", err)
		}

		var envelope childListEnvelope
		if err := c.get(ctx, url, &envelope); err != nil {
			return nil, fmt.Errorf("notion: list children of %s: %w", blockID, err)
		}

		children = append(children, envelope.Results...)
		requests++

		if !envelope.HasMore || envelope.NextCursor == nil || *envelope.NextCursor == "" {
			break
		}
		cursor = *envelope.NextCursor
	}

	c.logger.Debug("notion.children.listed",
		"block_id", blockID,
		"count", len(children),
		"requests", requests,
	)
	return children, nil
}

func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Notion-Version", c.version)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("perform request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// decodeAPIError maps a non-2xx response onto the typed API error, keeping
// the status code even when the error envelope itself fails to parse.
func decodeAPIError(status int, body []byte) error {
	apiErr := &notion.APIError{StatusCode: status}
	if len(body) > 0 {
		var envelope struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil {
			apiErr.Code = envelope.Code
			apiErr.Message = envelope.Message
		}
	}
	return apiErr
}
