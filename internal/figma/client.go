package figma

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/uistudio/figgen/internal/design"
)

// DefaultBaseURL is the Figma REST API endpoint.
const DefaultBaseURL = "https://api.figma.com"

// DefaultCacheEntries bounds the simplified-document cache.
const DefaultCacheEntries = 32

// defaultTimeout is the HTTP client timeout when none is supplied.
const defaultTimeout = 30 * time.Second

// tokenHeader carries the personal access token on every request.
const tokenHeader = "X-Figma-Token"

// Sentinel errors for fetch failures.
var (
	// ErrMissingToken indicates no access token was configured.
	ErrMissingToken = errors.New("figma access token is required (set FIGMA_TOKEN or config token)")
	// ErrAuth indicates the API rejected the access token.
	ErrAuth = errors.New("figma rejected the access token")
	// ErrNotFound indicates the file key does not resolve to a file.
	ErrNotFound = errors.New("figma file not found")
	// ErrAPIStatus indicates an unexpected API response status.
	ErrAPIStatus = errors.New("unexpected figma api status")
)

// Client fetches and simplifies Figma files. Simplified documents are
// read-only, so the cache can hand out shared pointers safely.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
	cache      *lru.Cache[string, *design.Document]
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL points the client at a different API endpoint. Used by
// tests and API-compatible proxies.
func WithBaseURL(base string) ClientOption {
	return func(c *Client) { c.baseURL = strings.TrimRight(base, "/") }
}

// WithLogger sets the structured logger. Nil silences the client.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient builds a client with the given access token and an LRU cache
// of cacheEntries simplified documents.
func NewClient(token string, cacheEntries int, opts ...ClientOption) (*Client, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	if cacheEntries <= 0 {
		cacheEntries = DefaultCacheEntries
	}

	cache, err := lru.New[string, *design.Document](cacheEntries)
	if err != nil {
		return nil, fmt.Errorf("create document cache: %w", err)
	}

	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
		token:      token,
		cache:      cache,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}

	return c, nil
}

// FetchDocument fetches a file (or only the given node subtrees) and
// returns the simplified document. Results are cached by file key and
// node-id set.
func (c *Client) FetchDocument(ctx context.Context, key string, nodeIDs []string) (*design.Document, error) {
	cacheKey := key + "?" + strings.Join(nodeIDs, ",")

	if doc, ok := c.cache.Get(cacheKey); ok {
		c.logger.DebugContext(ctx, "document cache hit", "file", key, "nodes", len(nodeIDs))

		return doc, nil
	}

	var (
		doc *design.Document
		err error
	)

	if len(nodeIDs) == 0 {
		doc, err = c.fetchFile(ctx, key)
	} else {
		doc, err = c.fetchNodes(ctx, key, nodeIDs)
	}

	if err != nil {
		return nil, err
	}

	c.cache.Add(cacheKey, doc)

	return doc, nil
}

// fetchFile retrieves the whole file; the simplified top-level nodes are
// the document root's pages.
func (c *Client) fetchFile(ctx context.Context, key string) (*design.Document, error) {
	body, err := c.getJSON(ctx, "/v1/files/"+url.PathEscape(key))
	if err != nil {
		return nil, err
	}

	var file apiFile

	if unmarshalErr := json.Unmarshal(body, &file); unmarshalErr != nil {
		return nil, fmt.Errorf("decode file %s: %w", key, unmarshalErr)
	}

	doc := &design.Document{
		Name:       file.Name,
		GlobalVars: simplifyStyles(file.Styles),
	}

	if root := simplifyNode(file.Document); root != nil {
		doc.Nodes = root.Children
	}

	return doc, nil
}

// fetchNodes retrieves only the requested node subtrees, preserving the
// requested id order in the simplified output.
func (c *Client) fetchNodes(ctx context.Context, key string, nodeIDs []string) (*design.Document, error) {
	path := fmt.Sprintf("/v1/files/%s/nodes?ids=%s",
		url.PathEscape(key), url.QueryEscape(strings.Join(nodeIDs, ",")))

	body, err := c.getJSON(ctx, path)
	if err != nil {
		return nil, err
	}

	var resp apiNodesResponse

	if unmarshalErr := json.Unmarshal(body, &resp); unmarshalErr != nil {
		return nil, fmt.Errorf("decode nodes of %s: %w", key, unmarshalErr)
	}

	doc := &design.Document{Name: resp.Name, GlobalVars: design.GlobalVars{}}

	for _, id := range nodeIDs {
		entry, ok := resp.Nodes[id]
		if !ok {
			continue
		}

		if n := simplifyNode(entry.Document); n != nil {
			doc.Nodes = append(doc.Nodes, n)
		}

		for varID, variable := range simplifyStyles(entry.Styles) {
			doc.GlobalVars[varID] = variable
		}
	}

	if len(doc.GlobalVars) == 0 {
		doc.GlobalVars = nil
	}

	return doc, nil
}

// getJSON performs an authenticated GET and returns the response body.
func (c *Client) getJSON(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set(tokenHeader, c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("figma api request: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, ErrAuth
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("%w: %d", ErrAPIStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	c.logger.DebugContext(ctx, "figma api response",
		"path", path, "size", humanize.Bytes(uint64(len(body))))

	return body, nil
}
