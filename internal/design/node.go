// Package design defines the simplified design-node tree consumed by the
// generation pipeline. Trees are produced by the Figma fetch layer (or read
// from a local JSON export) and are read-only once constructed.
package design

// NodeKind identifies the shape of a design node.
type NodeKind string

// Supported node kinds. Anything the extractor cannot map lands on KindOther.
const (
	KindText      NodeKind = "TEXT"
	KindFrame     NodeKind = "FRAME"
	KindGroup     NodeKind = "GROUP"
	KindRectangle NodeKind = "RECTANGLE"
	KindEllipse   NodeKind = "ELLIPSE"
	KindImage     NodeKind = "IMAGE"
	KindInstance  NodeKind = "INSTANCE"
	KindComponent NodeKind = "COMPONENT"
	KindLine      NodeKind = "LINE"
	KindOther     NodeKind = "OTHER"
)

// knownKinds is the membership set for KnownKind.
var knownKinds = map[NodeKind]bool{
	KindText:      true,
	KindFrame:     true,
	KindGroup:     true,
	KindRectangle: true,
	KindEllipse:   true,
	KindImage:     true,
	KindInstance:  true,
	KindComponent: true,
	KindLine:      true,
	KindOther:     true,
}

// KnownKind reports whether k is one of the enumerated node kinds.
func KnownKind(k NodeKind) bool {
	return knownKinds[k]
}

// Box is a node's layout box in absolute canvas coordinates.
type Box struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Node is one node in the simplified design tree. Children preserve the
// source document order, which is also the render order. All optional
// fields may be absent; consumers must treat missing values as defaults
// and never fail on a sparsely populated node.
type Node struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Kind         NodeKind `json:"type"`
	Text         string   `json:"text,omitempty"`
	Box          *Box     `json:"box,omitempty"`
	Opacity      *float64 `json:"opacity,omitempty"`
	CornerRadius *float64 `json:"cornerRadius,omitempty"`
	Children     []*Node  `json:"children,omitempty"`
}

// HasChildren reports whether the node has at least one child.
func (n *Node) HasChildren() bool {
	return len(n.Children) > 0
}

// Variable is one shared style or variable definition from the design file.
type Variable struct {
	Name  string `json:"name"`
	Type  string `json:"type,omitempty"`
	Value any    `json:"value,omitempty"`
}

// GlobalVars is the side table of shared style/variable definitions keyed
// by their design-file identifier. The pipeline passes it through without
// deep inspection.
type GlobalVars map[string]Variable
