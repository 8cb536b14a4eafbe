package generate

import (
	"fmt"
	"strings"

	"github.com/uistudio/figgen/internal/design"
)

// fullyOpaque is the opacity above which no inline style is emitted.
const fullyOpaque = 1.0

// renderGeneric emits structural markup for a node no rule recognized:
// an element chosen by node kind, a structural class derived from the
// kind, inline styles from opacity and corner radius, and the node's
// text followed by its recursively rendered children.
func (em *emitter) renderGeneric(n *design.Node) string {
	id := em.nodeID(n)
	class := "node node-" + strings.ToLower(string(n.Kind))
	style := styleAttr(inlineStyles(n))

	if n.Kind == design.KindImage {
		img := fmt.Sprintf("<img id=%q class=%q alt=%q%s/>", id, class, n.Name, style)
		if !n.HasChildren() {
			return img
		}

		return img + "\n" + em.renderNodes(n.Children)
	}

	tag := genericTag(n.Kind)

	content := n.Text
	if n.HasChildren() {
		children := em.renderNodes(n.Children)
		if children != "" {
			if content != "" {
				content += "\n"
			}

			content += children
		}
	}

	return fmt.Sprintf("<%s id=%q class=%q%s>%s</%s>", tag, id, class, style, content, tag)
}

// genericTag chooses the fallback element for a node kind: text renders
// inline, everything else as a block container.
func genericTag(kind design.NodeKind) string {
	if kind == design.KindText {
		return "span"
	}

	return "div"
}

// inlineStyles derives inline style declarations from the node's visual
// attributes: opacity only when not fully opaque, corner radius only when
// present and positive.
func inlineStyles(n *design.Node) []string {
	var styles []string

	if n.Opacity != nil && *n.Opacity < fullyOpaque {
		styles = append(styles, fmt.Sprintf("opacity: %.2f", *n.Opacity))
	}

	if n.CornerRadius != nil && *n.CornerRadius > 0 {
		styles = append(styles, fmt.Sprintf("border-radius: %.0fpx", *n.CornerRadius))
	}

	return styles
}

// styleAttr renders a style attribute from declarations, empty when none.
func styleAttr(styles []string) string {
	if len(styles) == 0 {
		return ""
	}

	return fmt.Sprintf(" style=%q", strings.Join(styles, "; "))
}
