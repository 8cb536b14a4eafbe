package generate

import (
	"fmt"
	"strings"

	"github.com/uistudio/figgen/internal/classify"
)

// importModule is the component-library module the suggestions point at.
const importModule = "@uistudio/components"

// ImportLine returns the component-library import statement for one kind.
func ImportLine(kind classify.Kind) string {
	return fmt.Sprintf("import { %s } from %q;", kind, importModule)
}

// ImportSuggestions returns one import line per used widget kind, in
// first-use order.
func (r Result) ImportSuggestions() []string {
	lines := make([]string, 0, len(r.UsedKinds))
	for _, kind := range r.UsedKinds {
		lines = append(lines, ImportLine(kind))
	}

	return lines
}

// UsageReport renders a human-readable summary of which widget kinds were
// used and how often, in first-use order. Empty when nothing was
// recognized.
func (r Result) UsageReport() string {
	if len(r.UsedKinds) == 0 {
		return ""
	}

	var b strings.Builder

	b.WriteString("Components used:\n")

	for _, kind := range r.UsedKinds {
		fmt.Fprintf(&b, "  %s x%d\n", kind, r.UsageCounts[kind])
	}

	return strings.TrimRight(b.String(), "\n")
}

// Assemble combines a result into one presentable text block: the markup,
// an optional style element, and an optional import-suggestion comment.
// This is the caller-facing glue used by the CLI and the MCP tools.
func (r Result) Assemble(opts Options) string {
	parts := []string{r.Markup}

	if opts.IncludeStyles && r.Styles != "" {
		parts = append(parts, fmt.Sprintf("<style>\n%s\n</style>", r.Styles))
	}

	if opts.SuggestImports && len(r.UsedKinds) > 0 {
		suggestion := "<!--\n" + r.UsageReport() + "\n\nSuggested imports:\n"
		for _, line := range r.ImportSuggestions() {
			suggestion += "  " + line + "\n"
		}

		suggestion += "-->"
		parts = append(parts, suggestion)
	}

	return strings.Join(parts, "\n\n")
}
