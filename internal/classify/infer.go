package classify

import (
	"strings"

	"github.com/uistudio/figgen/internal/design"
)

// Inferencers are pure, total functions over a node's name, text, and
// children. They always return a value (falling back to the documented
// defaults) and never fail on absent optional fields.

// DefaultSize is the size inferred when a name carries no size token.
const DefaultSize = "md"

// sizeTokens maps name substrings to sizes. Scan order is a contract:
// longer tokens come before their own substrings ("2xl" before "xl",
// "xxs" before "xs", "small" before "sm"), so the first hit is the most
// specific one.
var sizeTokens = []struct {
	token string
	size  string
}{
	{"xxlarge", "2xl"},
	{"2xl", "2xl"},
	{"xlarge", "xl"},
	{"xl", "xl"},
	{"large", "lg"},
	{"lg", "lg"},
	{"xxs", "xxs"},
	{"tiny", "xxs"},
	{"xs", "xs"},
	{"small", "xs"},
	{"sm", "sm"},
	{"medium", "md"},
	{"md", "md"},
}

// inferSize scans the name for a size token, first match wins, default md.
func inferSize(name string) string {
	lower := strings.ToLower(name)

	for _, st := range sizeTokens {
		if strings.Contains(lower, st.token) {
			return st.size
		}
	}

	return DefaultSize
}

// DefaultTheme is the button hierarchy inferred when no theme token matches.
const DefaultTheme = "primary"

// themeTokens maps name substrings to button hierarchies. "gray" precedes
// "secondary" so "Secondary Gray" resolves to secondary-gray.
var themeTokens = []struct {
	token string
	theme string
}{
	{"gray", "secondary-gray"},
	{"secondary", "secondary"},
	{"tertiary", "tertiary"},
	{"destructive", "destructive"},
	{"danger", "destructive"},
	{"delete", "destructive"},
	{"link", "link"},
	{"primary", "primary"},
}

// inferTheme scans the name for a button hierarchy token, default primary.
func inferTheme(name string) string {
	lower := strings.ToLower(name)

	for _, tt := range themeTokens {
		if strings.Contains(lower, tt.token) {
			return tt.theme
		}
	}

	return DefaultTheme
}

// colorTokens maps name substrings (semantic terms and their color aliases)
// to the component-library color names.
var colorTokens = []struct {
	token string
	color string
}{
	{"success", "success"},
	{"green", "success"},
	{"warning", "warning"},
	{"yellow", "warning"},
	{"error", "error"},
	{"red", "error"},
	{"info", "info"},
	{"blue", "info"},
}

// inferColor scans the name for a semantic color token. The default varies
// by call site ("gray" for badges and icons, "info" for notifications).
func inferColor(name, fallback string) string {
	lower := strings.ToLower(name)

	for _, ct := range colorTokens {
		if strings.Contains(lower, ct.token) {
			return ct.color
		}
	}

	return fallback
}

// hasFlag reports whether the name contains any of the given substrings,
// case-insensitively. Used for boolean props such as disabled, required,
// checked, selected, active, and on.
func hasFlag(name string, terms ...string) bool {
	lower := strings.ToLower(name)

	for _, term := range terms {
		if strings.Contains(lower, term) {
			return true
		}
	}

	return false
}

// textOf returns the node's literal text, or the first immediate child's
// text when the node itself carries none.
func textOf(n *design.Node) string {
	if n.Text != "" {
		return n.Text
	}

	for _, c := range n.Children {
		if c.Text != "" {
			return c.Text
		}
	}

	return ""
}

// childText searches the immediate children for one whose name contains
// substr (case-insensitively) and returns that child's text. The boolean
// reports whether such a child was found.
func childText(n *design.Node, substr string) (string, bool) {
	for _, c := range n.Children {
		if strings.Contains(strings.ToLower(c.Name), substr) {
			return textOf(c), true
		}
	}

	return "", false
}
