package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Tool name constants.
const (
	ToolNameGenerate   = "figgen_generate"
	ToolNameInspect    = "figgen_inspect"
	ToolNameComponents = "figgen_components"
)

// Sentinel errors for tool input validation.
var (
	// ErrEmptyFile indicates the file parameter is empty.
	ErrEmptyFile = errors.New("file parameter is required and must not be empty")
	// ErrNoClient indicates no Figma client is configured (missing token).
	ErrNoClient = errors.New("figma access is not configured; set FIGMA_TOKEN or the config token")
)

// Input types (auto-generate JSON schemas via struct tags).

// GenerateInput is the input schema for the figgen_generate tool.
type GenerateInput struct {
	File           string   `json:"file"                      jsonschema:"figma file URL or bare file key"`
	NodeIDs        []string `json:"node_ids,omitempty"        jsonschema:"optional node ids to restrict generation to"`
	IncludeStyles  *bool    `json:"include_styles,omitempty"  jsonschema:"attach base style text (default true)"`
	DebugComments  *bool    `json:"debug_comments,omitempty"  jsonschema:"prefix fragments with origin comments (default true)"`
	NormalizedIDs  *bool    `json:"normalized_ids,omitempty"  jsonschema:"derive element ids from node names (default true)"`
	SuggestImports *bool    `json:"suggest_imports,omitempty" jsonschema:"append import suggestions (default true)"`
	WrapRoot       *bool    `json:"wrap_root,omitempty"       jsonschema:"wrap output in one container (default true)"`
}

// InspectInput is the input schema for the figgen_inspect tool.
type InspectInput struct {
	File    string   `json:"file"               jsonschema:"figma file URL or bare file key"`
	NodeIDs []string `json:"node_ids,omitempty" jsonschema:"optional node ids to restrict the tree to"`
}

// ComponentsInput is the (empty) input schema for the figgen_components tool.
type ComponentsInput struct{}

// Output type (used as structured output for generic AddTool).

// ToolOutput is a generic wrapper for tool results.
type ToolOutput struct {
	Data any `json:"data"`
}

// Result helpers.

// errorResult builds a CallToolResult with isError set.
func errorResult(err error) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: err.Error()},
		},
		IsError: true,
	}, ToolOutput{}, nil
}

// textResult builds a CallToolResult with plain text content.
func textResult(text string, value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: text},
		},
	}, ToolOutput{Data: value}, nil
}

// jsonResult builds a CallToolResult with JSON-encoded content.
func jsonResult(value any) (*mcpsdk.CallToolResult, ToolOutput, error) {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errorResult(fmt.Errorf("encode result: %w", err))
	}

	return &mcpsdk.CallToolResult{
		Content: []mcpsdk.Content{
			&mcpsdk.TextContent{Text: string(data)},
		},
	}, ToolOutput{Data: value}, nil
}
