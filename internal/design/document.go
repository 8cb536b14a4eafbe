package design

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema/design_tree.schema.json
var treeSchema string

// ErrInvalidTree indicates a document that does not conform to the
// simplified design-tree schema.
var ErrInvalidTree = errors.New("invalid design tree")

// Document is a full simplified design file: the top-level node list plus
// the shared variable table.
type Document struct {
	Name       string     `json:"name,omitempty"`
	Nodes      []*Node    `json:"nodes"`
	GlobalVars GlobalVars `json:"globalVars,omitempty"`
}

// DecodeDocument validates raw JSON against the design-tree schema and
// decodes it into a Document. Schema violations are joined into a single
// ErrInvalidTree so callers can report every problem at once.
func DecodeDocument(data []byte) (*Document, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(treeSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validate design tree: %w", err)
	}

	if !result.Valid() {
		details := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			details = append(details, desc.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrInvalidTree, strings.Join(details, "; "))
	}

	var doc Document

	unmarshalErr := json.Unmarshal(data, &doc)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("decode design tree: %w", unmarshalErr)
	}

	normalizeKinds(doc.Nodes)

	return &doc, nil
}

// normalizeKinds maps any unrecognized node kind to KindOther so the
// enumeration invariant holds for every decoded tree.
func normalizeKinds(nodes []*Node) {
	for _, n := range nodes {
		if !KnownKind(n.Kind) {
			n.Kind = KindOther
		}

		normalizeKinds(n.Children)
	}
}
