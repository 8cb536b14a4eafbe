package classify

import (
	"strconv"
	"strings"

	"github.com/uistudio/figgen/internal/design"
)

// TabItem is one entry of a tab set.
type TabItem struct {
	Label  string
	Active bool
}

// Item is one labeled entry of a list widget (dropdown menu, select).
type Item struct {
	Label string
	Value string
}

// activeTerm marks a tab item as active when present in the child's name.
const activeTerm = "active"

// tabItems maps each text-bearing immediate child to a tab label plus an
// active flag taken from the child's own name. When no child is
// text-bearing it falls back to a fixed two-item set with the first tab
// active, keeping the inference total.
func tabItems(n *design.Node) []TabItem {
	var items []TabItem

	for _, c := range n.Children {
		label := textOf(c)
		if label == "" {
			continue
		}

		items = append(items, TabItem{
			Label:  label,
			Active: strings.Contains(strings.ToLower(c.Name), activeTerm),
		})
	}

	if len(items) == 0 {
		return []TabItem{
			{Label: "Tab 1", Active: true},
			{Label: "Tab 2"},
		}
	}

	return items
}

// dropdownItems maps each text-bearing immediate child to a label/value
// pair, the value being the item's 1-based position. A fixed two-item
// default covers nodes with no text-bearing children.
func dropdownItems(n *design.Node) []Item {
	var items []Item

	for _, c := range n.Children {
		label := textOf(c)
		if label == "" {
			continue
		}

		items = append(items, Item{
			Label: label,
			Value: strconv.Itoa(len(items) + 1),
		})
	}

	if len(items) == 0 {
		return []Item{
			{Label: "Option 1", Value: "1"},
			{Label: "Option 2", Value: "2"},
		}
	}

	return items
}

// crumbItems collects breadcrumb labels from text-bearing immediate
// children, defaulting to a two-level trail.
func crumbItems(n *design.Node) []string {
	var items []string

	for _, c := range n.Children {
		if label := textOf(c); label != "" {
			items = append(items, label)
		}
	}

	if len(items) == 0 {
		return []string{"Home", "Current"}
	}

	return items
}

// inferPercent extracts the first integer found in the node's text, then
// its name, clamped into [0, 100]. Default 50 when neither carries one.
func inferPercent(n *design.Node) float64 {
	if v, ok := firstInt(n.Text); ok {
		return clampPercent(v)
	}

	if v, ok := firstInt(n.Name); ok {
		return clampPercent(v)
	}

	return 50
}

func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// firstInt scans s for the first run of ASCII digits, honoring an
// immediately preceding minus sign.
func firstInt(s string) (float64, bool) {
	start := -1

	for i, r := range s {
		if r >= '0' && r <= '9' {
			if start == -1 {
				start = i
			}

			continue
		}

		if start != -1 {
			return parseRun(s, start, i)
		}
	}

	if start != -1 {
		return parseRun(s, start, len(s))
	}

	return 0, false
}

func parseRun(s string, start, end int) (float64, bool) {
	run := s[start:end]
	if start > 0 && s[start-1] == '-' {
		run = "-" + run
	}

	v, err := strconv.ParseFloat(run, 64)
	if err != nil {
		return 0, false
	}

	return v, true
}
