package generate

import (
	"fmt"
	"strings"

	"github.com/uistudio/figgen/internal/classify"
	"github.com/uistudio/figgen/internal/design"
)

// rootID is the element id of the outer wrapper container.
const rootID = "figgen_root"

// Generator turns design trees into markup. It holds no per-call state:
// usage accounting lives in a call-scoped emitter, so one Generator is
// safe for concurrent Generate calls.
type Generator struct {
	engine *classify.Engine
}

// New builds a Generator over the default rule engine.
func New(opts ...classify.Option) *Generator {
	return &Generator{engine: classify.NewEngine(opts...)}
}

// Generate renders the top-level nodes in document order and returns the
// markup plus usage accounting. vars is carried for template access to
// shared style definitions; the current templates do not inspect it.
func (g *Generator) Generate(nodes []*design.Node, vars design.GlobalVars, opts Options) Result {
	em := &emitter{
		engine: g.engine,
		vars:   vars,
		opts:   opts,
		counts: make(map[classify.Kind]int),
	}

	markup := em.renderNodes(nodes)

	if opts.WrapRoot {
		markup = fmt.Sprintf("<div id=%q class=\"figgen-root\">\n%s\n</div>", rootID, markup)
	}

	res := Result{
		Markup:      markup,
		UsageCounts: em.counts,
	}

	if opts.IncludeStyles {
		res.Styles = stylesFor(em.used)
	}

	if opts.SuggestImports {
		res.UsedKinds = em.used
	}

	return res
}

// emitter holds the mutable state of one generation call: options, the
// used-kind order, and per-kind counts. It is created at Generate entry
// and discarded at return, which keeps runs independent.
type emitter struct {
	engine *classify.Engine
	vars   design.GlobalVars
	opts   Options
	used   []classify.Kind
	counts map[classify.Kind]int
}

// renderNodes renders siblings in document order, drops fragments that
// are empty once trimmed, and joins the rest with newlines.
func (em *emitter) renderNodes(nodes []*design.Node) string {
	fragments := make([]string, 0, len(nodes))

	for _, n := range nodes {
		fragment := em.renderNode(n)
		if strings.TrimSpace(fragment) == "" {
			continue
		}

		fragments = append(fragments, fragment)
	}

	return strings.Join(fragments, "\n")
}

// renderNode classifies one node and dispatches to its widget template,
// or falls back to generic structural markup on a miss or an invalid
// mapping. An invalid mapping is deliberately not an error: one bad rule
// must not abort a whole tree render.
func (em *emitter) renderNode(n *design.Node) string {
	mapping := em.engine.Classify(n)
	if mapping == nil || !classify.ValidKind(mapping.Kind) {
		return em.renderGeneric(n)
	}

	em.recordUse(mapping.Kind)

	fragment := em.renderWidget(n, mapping)

	if em.opts.DebugComments {
		fragment = fmt.Sprintf("<!-- %s: %s -->\n%s", mapping.Kind, n.Name, fragment)
	}

	return fragment
}

// recordUse tracks a widget kind in first-use order and bumps its count.
func (em *emitter) recordUse(kind classify.Kind) {
	if em.counts[kind] == 0 {
		em.used = append(em.used, kind)
	}

	em.counts[kind]++
}

// nodeID returns the element id for a node according to the id option.
func (em *emitter) nodeID(n *design.Node) string {
	if em.opts.NormalizedIDs {
		if id := design.NormalizeID(n.Name); id != "" {
			return id
		}
	}

	return n.ID
}
