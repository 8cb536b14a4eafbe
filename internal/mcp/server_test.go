package mcp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/uistudio/figgen/internal/figma"
	"github.com/uistudio/figgen/internal/generate"
	"github.com/uistudio/figgen/internal/mcp"
)

func connect(t *testing.T, srv *mcp.Server) *mcpsdk.ClientSession {
	t.Helper()

	clientTransport, serverTransport := mcpsdk.NewInMemoryTransports()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	serverDone := make(chan error, 1)

	go func() {
		serverDone <- srv.RunWithTransport(ctx, serverTransport)
	}()

	client := mcpsdk.NewClient(&mcpsdk.Implementation{
		Name:    "test-client",
		Version: "1.0.0",
	}, nil)

	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-serverDone
	})

	return session
}

func TestServer_ListToolNames(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})

	assert.Equal(t, []string{
		"figgen_components",
		"figgen_generate",
		"figgen_inspect",
	}, srv.ListToolNames())
}

func TestServer_ToolsList(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	session := connect(t, srv)

	ctx := context.Background()

	toolsResult, err := session.ListTools(ctx, nil)
	require.NoError(t, err)
	require.NotNil(t, toolsResult)

	toolNames := make([]string, 0, len(toolsResult.Tools))
	for _, tool := range toolsResult.Tools {
		toolNames = append(toolNames, tool.Name)

		assert.NotNil(t, tool.InputSchema, "tool %s missing input schema", tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %s missing description", tool.Name)
	}

	assert.Contains(t, toolNames, "figgen_generate")
	assert.Contains(t, toolNames, "figgen_inspect")
	assert.Contains(t, toolNames, "figgen_components")
	assert.Len(t, toolNames, 3)
}

func TestServer_CallComponents(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_components",
		Arguments: map[string]any{},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Button")
	assert.Contains(t, text.Text, "@uistudio/components")
}

func TestServer_CallGenerate_EmptyFile(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_generate",
		Arguments: map[string]any{"file": ""},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}

func TestServer_CallGenerate_NoClient(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_generate",
		Arguments: map[string]any{"file": "abc123"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "not configured")
}

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
	}
}`

func newTestFigmaClient(t *testing.T) *figma.Client {
	t.Helper()

	apiSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(fileResponse))
	}))
	t.Cleanup(apiSrv.Close)

	client, err := figma.NewClient("test-token", 4,
		figma.WithBaseURL(apiSrv.URL),
		figma.WithHTTPClient(apiSrv.Client()),
	)
	require.NoError(t, err)

	return client
}

func TestServer_CallGenerate(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{
		Client:   newTestFigmaClient(t),
		Defaults: generate.DefaultOptions(),
	})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_generate",
		Arguments: map[string]any{"file": "abc123"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)
	require.NotEmpty(t, result.Content)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "btn btn-primary")
	assert.Contains(t, text.Text, "figgen_root")
}

func TestServer_CallGenerate_Overrides(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{
		Client:   newTestFigmaClient(t),
		Defaults: generate.DefaultOptions(),
	})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name: "figgen_generate",
		Arguments: map[string]any{
			"file":           "abc123",
			"wrap_root":      false,
			"include_styles": false,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.NotContains(t, text.Text, "figgen_root")
	assert.NotContains(t, text.Text, "<style>")
}

func TestServer_CallInspect(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{Client: newTestFigmaClient(t)})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_inspect",
		Arguments: map[string]any{"file": "abc123"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.False(t, result.IsError)

	text, ok := result.Content[0].(*mcpsdk.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, `"Primary Button"`)
	assert.Contains(t, text.Text, `"FRAME"`)
}

func TestServer_CallInspect_BadFileRef(t *testing.T) {
	t.Parallel()

	srv := mcp.NewServer(mcp.ServerDeps{Client: newTestFigmaClient(t)})
	session := connect(t, srv)

	result, err := session.CallTool(context.Background(), &mcpsdk.CallToolParams{
		Name:      "figgen_inspect",
		Arguments: map[string]any{"file": "https://example.com/not/figma"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
