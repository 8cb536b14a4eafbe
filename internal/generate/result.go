package generate

import "github.com/uistudio/figgen/internal/classify"

// Result is the output of one full-tree generation run. Usage accounting
// is scoped to the run that produced it.
type Result struct {
	// Markup is the rendered markup for the whole tree.
	Markup string `json:"markup"`

	// Styles is the base style text for the used widgets. Empty when
	// Options.IncludeStyles is off or no widget was recognized.
	Styles string `json:"styles,omitempty"`

	// UsedKinds lists the distinct widget kinds used, in first-use order.
	// Nil when Options.SuggestImports is off.
	UsedKinds []classify.Kind `json:"usedKinds,omitempty"`

	// UsageCounts maps each used widget kind to its occurrence count.
	UsageCounts map[classify.Kind]int `json:"usageCounts"`
}
