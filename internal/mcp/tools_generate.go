package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/uistudio/figgen/internal/classify"
	"github.com/uistudio/figgen/internal/design"
	"github.com/uistudio/figgen/internal/figma"
	"github.com/uistudio/figgen/internal/generate"
)

// handleGenerate processes figgen_generate tool calls: fetch, classify,
// render, and return the assembled markup. Upstream fetch failures come
// back as labeled tool errors, never as protocol failures.
func (s *Server) handleGenerate(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input GenerateInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	doc, err := s.fetchInput(ctx, input.File, input.NodeIDs)
	if err != nil {
		return errorResult(err)
	}

	opts := input.options(s.defaults)
	result := s.generator.Generate(doc.Nodes, doc.GlobalVars, opts)

	return textResult(result.Assemble(opts), result)
}

// handleInspect processes figgen_inspect tool calls.
func (s *Server) handleInspect(
	ctx context.Context,
	_ *mcpsdk.CallToolRequest,
	input InspectInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	doc, err := s.fetchInput(ctx, input.File, input.NodeIDs)
	if err != nil {
		return errorResult(err)
	}

	return jsonResult(doc)
}

// componentEntry is one row of the figgen_components listing.
type componentEntry struct {
	Kind   string `json:"kind"`
	Import string `json:"import"`
}

// handleComponents processes figgen_components tool calls.
func (s *Server) handleComponents(
	_ context.Context,
	_ *mcpsdk.CallToolRequest,
	_ ComponentsInput,
) (*mcpsdk.CallToolResult, ToolOutput, error) {
	entries := make([]componentEntry, 0, len(classify.AllKinds))

	for _, kind := range classify.AllKinds {
		entries = append(entries, componentEntry{
			Kind:   string(kind),
			Import: generate.ImportLine(kind),
		})
	}

	return jsonResult(entries)
}

// fetchInput validates the file reference and fetches the simplified
// document, merging node ids from the URL with explicitly passed ones.
func (s *Server) fetchInput(ctx context.Context, fileRef string, nodeIDs []string) (*design.Document, error) {
	if fileRef == "" {
		return nil, ErrEmptyFile
	}

	if s.client == nil {
		return nil, ErrNoClient
	}

	key, urlNodeIDs, err := figma.ParseFileRef(fileRef)
	if err != nil {
		return nil, err
	}

	ids := append(urlNodeIDs, nodeIDs...)

	doc, err := s.client.FetchDocument(ctx, key, ids)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}

	return doc, nil
}

// options applies the call's overrides on top of the server defaults.
func (in GenerateInput) options(defaults generate.Options) generate.Options {
	opts := defaults

	applyOverride(&opts.IncludeStyles, in.IncludeStyles)
	applyOverride(&opts.DebugComments, in.DebugComments)
	applyOverride(&opts.NormalizedIDs, in.NormalizedIDs)
	applyOverride(&opts.SuggestImports, in.SuggestImports)
	applyOverride(&opts.WrapRoot, in.WrapRoot)

	return opts
}

func applyOverride(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
