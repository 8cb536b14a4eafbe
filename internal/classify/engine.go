package classify

import "github.com/uistudio/figgen/internal/design"

// Engine evaluates the ordered rule table against single nodes. Engines
// are immutable after construction and safe for concurrent use.
type Engine struct {
	rules []Rule
}

// Option configures an Engine.
type Option func(*engineConfig)

type engineConfig struct {
	instanceAsButton bool
	rules            []Rule
}

// WithInstanceRule controls whether INSTANCE nodes always classify as
// Button regardless of name. Enabled by default.
func WithInstanceRule(enabled bool) Option {
	return func(cfg *engineConfig) {
		cfg.instanceAsButton = enabled
	}
}

// WithRules replaces the rule table entirely. The caller owns ordering.
func WithRules(rules []Rule) Option {
	return func(cfg *engineConfig) {
		cfg.rules = rules
	}
}

// NewEngine builds an engine over the default rule table.
func NewEngine(opts ...Option) *Engine {
	cfg := engineConfig{instanceAsButton: true}

	for _, opt := range opts {
		opt(&cfg)
	}

	rules := cfg.rules
	if rules == nil {
		rules = DefaultRules(cfg.instanceAsButton)
	}

	return &Engine{rules: rules}
}

// Classify returns the component mapping for the first rule whose
// predicate matches the node, or nil when no rule applies. A nil result
// is the expected path for plain structural nodes, not an error.
func (e *Engine) Classify(n *design.Node) *Mapping {
	if n == nil {
		return nil
	}

	for _, rule := range e.rules {
		if rule.Match(n) {
			return rule.Extract(n)
		}
	}

	return nil
}

// Rules exposes the engine's rule table for inspection.
func (e *Engine) Rules() []Rule {
	return e.rules
}
