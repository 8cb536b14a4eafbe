package classify

// defaultTag is the element emitted for a mapping without a bespoke template.
const defaultTag = "div"

// Mapping is the rule engine's output for a single node: the recognized
// widget kind plus the properties inferred from the node's name, text, and
// children. Mappings are created fresh per node per generation call and
// never cached.
type Mapping struct {
	// Kind is the recognized widget kind. Must pass ValidKind before the
	// generator dispatches on it.
	Kind Kind

	// Props holds inferred property values: strings, bools, numbers, or
	// item lists ([]TabItem, []Item, []string).
	Props map[string]any

	// Tag is the HTML element used when no specialized template exists.
	Tag string

	// BaseClass is the widget's base style-class name.
	BaseClass string

	// Children carries pre-resolved child mappings. Unused by the current
	// templates; reserved for composite widgets.
	Children []*Mapping
}

// newMapping builds a Mapping with the kind's conventional tag and base
// class filled in.
func newMapping(kind Kind, props map[string]any) *Mapping {
	return &Mapping{
		Kind:      kind,
		Props:     props,
		Tag:       defaultTag,
		BaseClass: baseClassFor(kind),
	}
}

// kindBaseClasses overrides the derived base class for kinds whose
// conventional class name is not a plain lower-casing.
var kindBaseClasses = map[Kind]string{
	KindButton:         "btn",
	KindInputBase:      "input-field",
	KindCheckbox:       "checkbox",
	KindRadio:          "radio",
	KindSelect:         "select",
	KindBadge:          "badge",
	KindModal:          "modal",
	KindHorizontalTab:  "tabs",
	KindVerticalTab:    "tabs",
	KindPagination:     "pagination",
	KindProgressBar:    "progress",
	KindProgressCircle: "progress-circle",
	KindNotification:   "notification",
	KindSpinner:        "spinner",
	KindTag:            "tag",
	KindTooltip:        "tooltip",
	KindSlider:         "slider",
	KindToggle:         "toggle",
	KindBreadCrumb:     "breadcrumb",
	KindDivider:        "divider",
	KindDropdown:       "dropdown",
	KindEmptyState:     "empty-state",
	KindFeaturedIcon:   "featured-icon",
}

func baseClassFor(kind Kind) string {
	if class, ok := kindBaseClasses[kind]; ok {
		return class
	}

	return defaultTag
}

// String returns a prop as a string, or fallback when absent or not a string.
func (m *Mapping) String(key, fallback string) string {
	if v, ok := m.Props[key].(string); ok && v != "" {
		return v
	}

	return fallback
}

// Bool returns a prop as a bool, or false when absent.
func (m *Mapping) Bool(key string) bool {
	v, _ := m.Props[key].(bool)

	return v
}

// Float returns a prop as a float64, or fallback when absent.
func (m *Mapping) Float(key string, fallback float64) float64 {
	if v, ok := m.Props[key].(float64); ok {
		return v
	}

	return fallback
}
