// Package generate renders simplified design trees into component-library
// markup. Each call classifies nodes through the rule engine, dispatches
// recognized widgets to their templates, falls back to generic structural
// markup for everything else, and accounts which widget kinds were used.
package generate

// Options controls one generation run.
type Options struct {
	// IncludeStyles attaches the base style text for used widgets.
	IncludeStyles bool `mapstructure:"include_styles"`

	// DebugComments prefixes each widget fragment with an HTML comment
	// naming the widget kind and the originating node.
	DebugComments bool `mapstructure:"debug_comments"`

	// NormalizedIDs derives element ids from normalized node names instead
	// of the design tool's raw identifiers.
	NormalizedIDs bool `mapstructure:"normalized_ids"`

	// SuggestImports collects the distinct widget kinds used, in first-use
	// order, for import suggestions.
	SuggestImports bool `mapstructure:"suggest_imports"`

	// WrapRoot wraps the rendered fragments in one outer container.
	WrapRoot bool `mapstructure:"wrap_root"`
}

// DefaultOptions returns the default generation options: everything on.
func DefaultOptions() Options {
	return Options{
		IncludeStyles:  true,
		DebugComments:  true,
		NormalizedIDs:  true,
		SuggestImports: true,
		WrapRoot:       true,
	}
}
