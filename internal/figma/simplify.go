package figma

import (
	"github.com/uistudio/figgen/internal/design"
)

// nodeKindByType maps raw Figma node types onto the simplified enumeration.
// Types not listed here land on KindOther.
var nodeKindByType = map[string]design.NodeKind{
	"TEXT":          design.KindText,
	"FRAME":         design.KindFrame,
	"GROUP":         design.KindGroup,
	"SECTION":       design.KindGroup,
	"RECTANGLE":     design.KindRectangle,
	"ELLIPSE":       design.KindEllipse,
	"INSTANCE":      design.KindInstance,
	"COMPONENT":     design.KindComponent,
	"COMPONENT_SET": design.KindComponent,
	"LINE":          design.KindLine,
}

// imageFill is the paint type marking a raster image fill.
const imageFill = "IMAGE"

// simplifyNode flattens one raw API node into the simplified model.
// Invisible nodes are dropped entirely (nil return), matching what the
// design tool would render.
func simplifyNode(raw *apiNode) *design.Node {
	if raw == nil || (raw.Visible != nil && !*raw.Visible) {
		return nil
	}

	n := &design.Node{
		ID:           raw.ID,
		Name:         raw.Name,
		Kind:         simplifyKind(raw),
		Text:         raw.Characters,
		Opacity:      raw.Opacity,
		CornerRadius: raw.CornerRadius,
	}

	if raw.AbsoluteBoundingBox != nil {
		n.Box = &design.Box{
			X:      raw.AbsoluteBoundingBox.X,
			Y:      raw.AbsoluteBoundingBox.Y,
			Width:  raw.AbsoluteBoundingBox.Width,
			Height: raw.AbsoluteBoundingBox.Height,
		}
	}

	for _, child := range raw.Children {
		if simplified := simplifyNode(child); simplified != nil {
			n.Children = append(n.Children, simplified)
		}
	}

	return n
}

// simplifyKind resolves a raw node's simplified kind. A shape with a
// visible image fill counts as an image regardless of its declared type.
func simplifyKind(raw *apiNode) design.NodeKind {
	if hasImageFill(raw) {
		return design.KindImage
	}

	if kind, ok := nodeKindByType[raw.Type]; ok {
		return kind
	}

	return design.KindOther
}

func hasImageFill(raw *apiNode) bool {
	for _, fill := range raw.Fills {
		if fill.Type == imageFill && (fill.Visible == nil || *fill.Visible) {
			return true
		}
	}

	return false
}

// simplifyStyles converts the file's style table into the global-vars
// side table.
func simplifyStyles(styles map[string]apiStyle) design.GlobalVars {
	if len(styles) == 0 {
		return nil
	}

	vars := make(design.GlobalVars, len(styles))
	for id, style := range styles {
		vars[id] = design.Variable{
			Name:  style.Name,
			Type:  style.StyleType,
			Value: style.Description,
		}
	}

	return vars
}
