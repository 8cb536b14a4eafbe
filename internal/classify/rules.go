package classify

import (
	"github.com/uistudio/figgen/internal/design"
)

// Rule pairs a node predicate with a property extractor. The engine
// evaluates predicates in table order and returns the first match's
// extraction; order is therefore part of the behavioral contract (the
// Select rule precedes the Dropdown rule, the tab rule rejects "table",
// and so on). Reordering the table changes classification results.
type Rule struct {
	// Name identifies the rule in tests and debug output.
	Name string

	// Match reports whether the rule applies to the node.
	Match func(n *design.Node) bool

	// Extract builds the component mapping for a matched node.
	Extract func(n *design.Node) *Mapping
}

// nameHas reports whether the node name contains any of the terms,
// case-insensitively.
func nameHas(n *design.Node, terms ...string) bool {
	return hasFlag(n.Name, terms...)
}

// DefaultRules returns the ordered rule table. instanceAsButton controls
// the convention that an INSTANCE node always classifies as a Button
// regardless of name; it reflects a common authoring pattern where
// component instances are pre-built buttons, and callers working against
// other conventions can turn it off via WithInstanceRule.
func DefaultRules(instanceAsButton bool) []Rule {
	return []Rule{
		{
			Name: "button",
			Match: func(n *design.Node) bool {
				if instanceAsButton && n.Kind == design.KindInstance {
					return true
				}

				return nameHas(n, "button", "btn")
			},
			Extract: extractButton,
		},
		{
			Name:    "input",
			Match:   func(n *design.Node) bool { return nameHas(n, "input", "field") },
			Extract: extractInput,
		},
		{
			Name:    "checkbox",
			Match:   func(n *design.Node) bool { return nameHas(n, "checkbox", "check") },
			Extract: extractCheckbox,
		},
		{
			Name:    "radio",
			Match:   func(n *design.Node) bool { return nameHas(n, "radio") },
			Extract: extractRadio,
		},
		{
			Name:    "select",
			Match:   func(n *design.Node) bool { return nameHas(n, "select", "combo") },
			Extract: extractSelect,
		},
		{
			Name:    "badge",
			Match:   func(n *design.Node) bool { return nameHas(n, "badge") },
			Extract: extractBadge,
		},
		{
			Name:    "tag",
			Match:   func(n *design.Node) bool { return nameHas(n, "tag", "chip") },
			Extract: extractTag,
		},
		{
			Name:    "modal",
			Match:   func(n *design.Node) bool { return nameHas(n, "modal", "dialog", "popup") },
			Extract: extractModal,
		},
		{
			Name: "tab",
			Match: func(n *design.Node) bool {
				return nameHas(n, "tab") && !nameHas(n, "table")
			},
			Extract: extractTab,
		},
		{
			Name:    "pagination",
			Match:   func(n *design.Node) bool { return nameHas(n, "pagination", "pager") },
			Extract: extractPagination,
		},
		{
			Name: "progress-circle",
			Match: func(n *design.Node) bool {
				return nameHas(n, "progress") && nameHas(n, "circle", "circular")
			},
			Extract: extractProgressCircle,
		},
		{
			Name: "progress-bar",
			Match: func(n *design.Node) bool {
				return nameHas(n, "progress") && nameHas(n, "bar")
			},
			Extract: extractProgressBar,
		},
		{
			Name:    "notification",
			Match:   func(n *design.Node) bool { return nameHas(n, "notification", "alert", "toast") },
			Extract: extractNotification,
		},
		{
			Name:    "spinner",
			Match:   func(n *design.Node) bool { return nameHas(n, "spinner", "loading", "loader") },
			Extract: extractSpinner,
		},
		{
			Name:    "toggle",
			Match:   func(n *design.Node) bool { return nameHas(n, "toggle", "switch") },
			Extract: extractToggle,
		},
		{
			Name:    "tooltip",
			Match:   func(n *design.Node) bool { return nameHas(n, "tooltip") },
			Extract: extractTooltip,
		},
		{
			Name:    "slider",
			Match:   func(n *design.Node) bool { return nameHas(n, "slider", "range") },
			Extract: extractSlider,
		},
		{
			Name:    "breadcrumb",
			Match:   func(n *design.Node) bool { return nameHas(n, "breadcrumb", "bread") },
			Extract: extractBreadCrumb,
		},
		{
			Name: "divider",
			Match: func(n *design.Node) bool {
				return n.Kind == design.KindLine || nameHas(n, "divider", "separator", "line")
			},
			Extract: extractDivider,
		},
		{
			Name: "dropdown",
			Match: func(n *design.Node) bool {
				return nameHas(n, "dropdown") && !nameHas(n, "select")
			},
			Extract: extractDropdown,
		},
		{
			Name:    "empty-state",
			Match:   func(n *design.Node) bool { return nameHas(n, "empty", "no-data", "no-result") },
			Extract: extractEmptyState,
		},
		{
			Name:    "featured-icon",
			Match:   func(n *design.Node) bool { return nameHas(n, "icon", "featured") },
			Extract: extractFeaturedIcon,
		},
	}
}

func extractButton(n *design.Node) *Mapping {
	props := map[string]any{
		"hierarchy": inferTheme(n.Name),
		"size":      inferSize(n.Name),
		"disabled":  hasFlag(n.Name, "disabled"),
	}

	if label := textOf(n); label != "" {
		props["label"] = label
	}

	m := newMapping(KindButton, props)
	m.Tag = "button"

	return m
}

func extractInput(n *design.Node) *Mapping {
	props := map[string]any{
		"size":     inferSize(n.Name),
		"disabled": hasFlag(n.Name, "disabled"),
		"required": hasFlag(n.Name, "required"),
		"type":     inferInputType(n.Name),
	}

	if label, ok := childText(n, "label"); ok {
		props["label"] = label
	}

	if placeholder, ok := childText(n, "placeholder"); ok {
		props["placeholder"] = placeholder
	} else if text := textOf(n); text != "" {
		props["placeholder"] = text
	}

	return newMapping(KindInputBase, props)
}

// inferInputType picks an input type from the node name, default "text".
func inferInputType(name string) string {
	switch {
	case hasFlag(name, "email"):
		return "email"
	case hasFlag(name, "password"):
		return "password"
	case hasFlag(name, "number", "numeric"):
		return "number"
	case hasFlag(name, "search"):
		return "search"
	default:
		return "text"
	}
}

func extractCheckbox(n *design.Node) *Mapping {
	label := textOf(n)
	if label == "" {
		label = n.Name
	}

	return newMapping(KindCheckbox, map[string]any{
		"label":    label,
		"size":     inferSize(n.Name),
		"checked":  hasFlag(n.Name, "checked", "selected", "active"),
		"disabled": hasFlag(n.Name, "disabled"),
	})
}

func extractRadio(n *design.Node) *Mapping {
	label := textOf(n)
	if label == "" {
		label = n.Name
	}

	return newMapping(KindRadio, map[string]any{
		"label":    label,
		"size":     inferSize(n.Name),
		"selected": hasFlag(n.Name, "checked", "selected", "active"),
		"disabled": hasFlag(n.Name, "disabled"),
	})
}

func extractSelect(n *design.Node) *Mapping {
	props := map[string]any{
		"size":     inferSize(n.Name),
		"disabled": hasFlag(n.Name, "disabled"),
		"items":    dropdownItems(n),
	}

	if label, ok := childText(n, "label"); ok {
		props["label"] = label
	}

	if text := textOf(n); text != "" {
		props["placeholder"] = text
	}

	return newMapping(KindSelect, props)
}

func extractBadge(n *design.Node) *Mapping {
	label := textOf(n)
	if label == "" {
		label = n.Name
	}

	return newMapping(KindBadge, map[string]any{
		"label": label,
		"size":  inferSize(n.Name),
		"color": inferColor(n.Name, "gray"),
	})
}

func extractTag(n *design.Node) *Mapping {
	label := textOf(n)
	if label == "" {
		label = n.Name
	}

	return newMapping(KindTag, map[string]any{
		"label":     label,
		"size":      inferSize(n.Name),
		"color":     inferColor(n.Name, "gray"),
		"removable": hasFlag(n.Name, "close", "removable", "dismiss"),
	})
}

func extractModal(n *design.Node) *Mapping {
	props := map[string]any{
		"size": inferSize(n.Name),
	}

	if title, ok := childText(n, "title"); ok {
		props["title"] = title
	}

	if description, ok := childText(n, "description"); ok {
		props["description"] = description
	}

	return newMapping(KindModal, props)
}

func extractTab(n *design.Node) *Mapping {
	kind := KindHorizontalTab
	if hasFlag(n.Name, "vertical") {
		kind = KindVerticalTab
	}

	return newMapping(kind, map[string]any{
		"size":  inferSize(n.Name),
		"items": tabItems(n),
	})
}

// defaultPageCount is the page count emitted when none can be inferred.
const defaultPageCount = 5

func extractPagination(n *design.Node) *Mapping {
	pages := 0

	for _, c := range n.Children {
		if textOf(c) != "" {
			pages++
		}
	}

	if pages == 0 {
		pages = defaultPageCount
	}

	current := 1
	if v, ok := firstInt(n.Name); ok && v >= 1 && v <= float64(pages) {
		current = int(v)
	}

	return newMapping(KindPagination, map[string]any{
		"pages":   pages,
		"current": current,
		"size":    inferSize(n.Name),
	})
}

func extractProgressBar(n *design.Node) *Mapping {
	return newMapping(KindProgressBar, map[string]any{
		"progress": inferPercent(n),
		"size":     inferSize(n.Name),
	})
}

func extractProgressCircle(n *design.Node) *Mapping {
	return newMapping(KindProgressCircle, map[string]any{
		"progress": inferPercent(n),
		"size":     inferSize(n.Name),
	})
}

func extractNotification(n *design.Node) *Mapping {
	props := map[string]any{
		"severity": inferColor(n.Name, "info"),
	}

	if title, ok := childText(n, "title"); ok {
		props["title"] = title
	} else if text := textOf(n); text != "" {
		props["title"] = text
	}

	if description, ok := childText(n, "description"); ok {
		props["description"] = description
	}

	return newMapping(KindNotification, props)
}

func extractSpinner(n *design.Node) *Mapping {
	return newMapping(KindSpinner, map[string]any{
		"size": inferSize(n.Name),
	})
}

func extractToggle(n *design.Node) *Mapping {
	return newMapping(KindToggle, map[string]any{
		"size":     inferSize(n.Name),
		"on":       hasFlag(n.Name, "on", "checked", "active"),
		"disabled": hasFlag(n.Name, "disabled"),
	})
}

// tooltipPositions is scanned in order; default "top".
var tooltipPositions = []string{"bottom", "left", "right", "top"}

func extractTooltip(n *design.Node) *Mapping {
	position := "top"

	for _, p := range tooltipPositions {
		if hasFlag(n.Name, p) {
			position = p

			break
		}
	}

	props := map[string]any{
		"position": position,
	}

	if text := textOf(n); text != "" {
		props["text"] = text
	}

	return newMapping(KindTooltip, props)
}

func extractSlider(n *design.Node) *Mapping {
	return newMapping(KindSlider, map[string]any{
		"value":    inferPercent(n),
		"disabled": hasFlag(n.Name, "disabled"),
	})
}

func extractBreadCrumb(n *design.Node) *Mapping {
	return newMapping(KindBreadCrumb, map[string]any{
		"items": crumbItems(n),
	})
}

func extractDivider(n *design.Node) *Mapping {
	orientation := "horizontal"
	if hasFlag(n.Name, "vertical") || isTallBox(n) {
		orientation = "vertical"
	}

	return newMapping(KindDivider, map[string]any{
		"orientation": orientation,
	})
}

// isTallBox reports whether the node's layout box is taller than wide.
func isTallBox(n *design.Node) bool {
	return n.Box != nil && n.Box.Height > n.Box.Width
}

func extractDropdown(n *design.Node) *Mapping {
	label := "Options"
	if text := textOf(n); text != "" {
		label = text
	}

	return newMapping(KindDropdown, map[string]any{
		"label": label,
		"items": dropdownItems(n),
	})
}

func extractEmptyState(n *design.Node) *Mapping {
	title := "No data"

	if t, ok := childText(n, "title"); ok {
		title = t
	} else if text := textOf(n); text != "" {
		title = text
	}

	props := map[string]any{
		"title": title,
	}

	if description, ok := childText(n, "description"); ok {
		props["description"] = description
	}

	return newMapping(KindEmptyState, props)
}

func extractFeaturedIcon(n *design.Node) *Mapping {
	theme := "light"
	if hasFlag(n.Name, "dark") {
		theme = "dark"
	}

	return newMapping(KindFeaturedIcon, map[string]any{
		"size":  inferSize(n.Name),
		"color": inferColor(n.Name, "gray"),
		"theme": theme,
	})
}
