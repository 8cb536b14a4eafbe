package figma_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/internal/design"
	"github.com/uistudio/figgen/internal/figma"
)

const fileResponse = `{
	"name": "Landing",
	"document": {
		"id": "0:0",
		"name": "Document",
		"type": "DOCUMENT",
		"children": [
			{
				"id": "0:1",
				"name": "Page 1",
				"type": "CANVAS",
				"children": [
					{"id": "1:1", "name": "Primary Button", "type": "FRAME"}
				]
			}
		]
	},
	"styles": {
		"S:1": {"name": "Brand/600", "styleType": "FILL"}
	}
}`

const nodesResponse = `{
	"name": "Landing",
	"nodes": {
		"1:1": {
			"document": {"id": "1:1", "name": "Primary Button", "type": "FRAME"},
			"styles": {"S:1": {"name": "Brand/600", "styleType": "FILL"}}
		},
		"2:2": {
			"document": {"id": "2:2", "name": "Status Badge", "type": "FRAME"}
		}
	}
}`

func newTestClient(t *testing.T, handler http.Handler) (*figma.Client, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := figma.NewClient("test-token", 4,
		figma.WithBaseURL(srv.URL),
		figma.WithHTTPClient(srv.Client()),
	)
	require.NoError(t, err)

	return client, srv
}

func TestNewClient_RequiresToken(t *testing.T) {
	t.Parallel()

	_, err := figma.NewClient("", 4)
	require.Error(t, err)
	assert.ErrorIs(t, err, figma.ErrMissingToken)
}

func TestFetchDocument_File(t *testing.T) {
	t.Parallel()

	var gotToken atomic.Value

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotToken.Store(r.Header.Get("X-Figma-Token"))

		assert.Equal(t, "/v1/files/abc123", r.URL.Path)
		_, _ = w.Write([]byte(fileResponse))
	}))

	doc, err := client.FetchDocument(context.Background(), "abc123", nil)
	require.NoError(t, err)

	assert.Equal(t, "test-token", gotToken.Load())
	assert.Equal(t, "Landing", doc.Name)

	// Top-level nodes are the document root's pages.
	require.Len(t, doc.Nodes, 1)
	assert.Equal(t, "Page 1", doc.Nodes[0].Name)
	require.Len(t, doc.Nodes[0].Children, 1)
	assert.Equal(t, design.KindFrame, doc.Nodes[0].Children[0].Kind)

	assert.Equal(t, "Brand/600", doc.GlobalVars["S:1"].Name)
}

func TestFetchDocument_Nodes(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/files/abc123/nodes", r.URL.Path)
		assert.Equal(t, "2:2,1:1", r.URL.Query().Get("ids"))
		_, _ = w.Write([]byte(nodesResponse))
	}))

	doc, err := client.FetchDocument(context.Background(), "abc123", []string{"2:2", "1:1"})
	require.NoError(t, err)

	// Requested order is preserved regardless of the response map order.
	require.Len(t, doc.Nodes, 2)
	assert.Equal(t, "Status Badge", doc.Nodes[0].Name)
	assert.Equal(t, "Primary Button", doc.Nodes[1].Name)

	assert.Equal(t, "Brand/600", doc.GlobalVars["S:1"].Name)
}

func TestFetchDocument_CacheHit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(fileResponse))
	}))

	first, err := client.FetchDocument(context.Background(), "abc123", nil)
	require.NoError(t, err)

	second, err := client.FetchDocument(context.Background(), "abc123", nil)
	require.NoError(t, err)

	assert.Equal(t, int32(1), calls.Load())
	assert.Same(t, first, second)
}

func TestFetchDocument_CacheKeyIncludesNodeIDs(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		if r.URL.Query().Get("ids") != "" {
			_, _ = w.Write([]byte(nodesResponse))

			return
		}

		_, _ = w.Write([]byte(fileResponse))
	}))

	_, err := client.FetchDocument(context.Background(), "abc123", nil)
	require.NoError(t, err)

	_, err = client.FetchDocument(context.Background(), "abc123", []string{"1:1"})
	require.NoError(t, err)

	assert.Equal(t, int32(2), calls.Load())
}

func TestFetchDocument_ErrorStatuses(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"unauthorized", http.StatusUnauthorized, figma.ErrAuth},
		{"forbidden", http.StatusForbidden, figma.ErrAuth},
		{"not found", http.StatusNotFound, figma.ErrNotFound},
		{"rate limited", http.StatusTooManyRequests, figma.ErrAPIStatus},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
			}))

			_, err := client.FetchDocument(context.Background(), "abc123", nil)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestFetchDocument_MalformedBody(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"document": `))
	}))

	_, err := client.FetchDocument(context.Background(), "abc123", nil)
	require.Error(t, err)
}
