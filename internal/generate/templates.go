package generate

import (
	"fmt"
	"strings"

	"github.com/uistudio/figgen/internal/classify"
	"github.com/uistudio/figgen/internal/design"
)

// widgetArgs carries everything a widget template may use: the element id,
// the originating node, the validated mapping, and — for container-like
// widgets only — the already-rendered markup of the node's children.
type widgetArgs struct {
	id       string
	node     *design.Node
	mapping  *classify.Mapping
	children string
}

// templateFunc renders one widget kind. Templates are deterministic:
// the same args always produce the same fragment.
type templateFunc func(a widgetArgs) string

// containerKinds are the widgets that interpolate rendered child markup
// as inner content.
var containerKinds = map[classify.Kind]bool{
	classify.KindModal:      true,
	classify.KindDropdown:   true,
	classify.KindTooltip:    true,
	classify.KindEmptyState: true,
}

// widgetTemplates dispatches rendering by widget kind. Adding a widget
// kind means adding one entry here plus its template function; kinds
// missing from the table fall back to renderFallbackWidget.
var widgetTemplates = map[classify.Kind]templateFunc{
	classify.KindButton:         renderButton,
	classify.KindInputBase:      renderInput,
	classify.KindCheckbox:       renderCheckbox,
	classify.KindRadio:          renderRadio,
	classify.KindSelect:         renderSelect,
	classify.KindBadge:          renderBadge,
	classify.KindModal:          renderModal,
	classify.KindHorizontalTab:  renderTabs,
	classify.KindVerticalTab:    renderTabs,
	classify.KindPagination:     renderPagination,
	classify.KindProgressBar:    renderProgressBar,
	classify.KindProgressCircle: renderProgressCircle,
	classify.KindNotification:   renderNotification,
	classify.KindSpinner:        renderSpinner,
	classify.KindTag:            renderTag,
	classify.KindTooltip:        renderTooltip,
	classify.KindSlider:         renderSlider,
	classify.KindToggle:         renderToggle,
	classify.KindBreadCrumb:     renderBreadCrumb,
	classify.KindDivider:        renderDivider,
	classify.KindDropdown:       renderDropdown,
	classify.KindEmptyState:     renderEmptyState,
	classify.KindFeaturedIcon:   renderFeaturedIcon,
}

// renderWidget dispatches a validated mapping to its template. Child
// markup is rendered only for container-like widgets; list widgets build
// their sub-fragments from the mapping's item props instead.
func (em *emitter) renderWidget(n *design.Node, m *classify.Mapping) string {
	args := widgetArgs{
		id:      em.nodeID(n),
		node:    n,
		mapping: m,
	}

	if containerKinds[m.Kind] {
		args.children = em.renderNodes(n.Children)
	}

	tmpl, ok := widgetTemplates[m.Kind]
	if !ok {
		return renderFallbackWidget(args)
	}

	return tmpl(args)
}

// renderFallbackWidget covers any validated mapping without a bespoke
// template: the mapping's declared tag with the base class and
// pass-through children. Not reachable while widgetTemplates stays
// exhaustive, but kept as the defensive default.
func renderFallbackWidget(a widgetArgs) string {
	tag := a.mapping.Tag
	if tag == "" {
		tag = "div"
	}

	return fmt.Sprintf("<%s id=%q class=%q>%s</%s>", tag, a.id, a.mapping.BaseClass, a.children, tag)
}

func renderButton(a widgetArgs) string {
	m := a.mapping
	label := m.String("label", "Button")
	class := fmt.Sprintf("btn btn-%s btn-%s", m.String("hierarchy", "primary"), m.String("size", "xs"))

	disabled := ""
	if m.Bool("disabled") {
		class += " btn-disabled"
		disabled = " disabled"
	}

	return fmt.Sprintf("<button id=%q type=%q class=%q%s>\n  <span class=\"btn-label\">%s</span>\n</button>",
		a.id, m.String("type", "button"), class, disabled, label)
}

func renderInput(a widgetArgs) string {
	m := a.mapping
	class := "input-field input-field-" + m.String("size", "md")

	if m.Bool("disabled") {
		class += " input-field-disabled"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=%q>\n", a.id, class)

	if label := m.String("label", ""); label != "" {
		fmt.Fprintf(&b, "  <label class=\"input-label\">%s</label>\n", label)
	}

	fmt.Fprintf(&b, "  <input type=%q class=\"input-control\" placeholder=%q%s%s/>\n",
		m.String("type", "text"), m.String("placeholder", ""),
		boolAttr(m.Bool("disabled"), "disabled"), boolAttr(m.Bool("required"), "required"))
	b.WriteString("</div>")

	return b.String()
}

func renderCheckbox(a widgetArgs) string {
	return renderCheckControl(a, "checkbox", "checkbox", a.mapping.Bool("checked"))
}

func renderRadio(a widgetArgs) string {
	return renderCheckControl(a, "radio", "radio", a.mapping.Bool("selected"))
}

// renderCheckControl is the shared skeleton for checkbox and radio: a
// label wrapper whose class carries size and disabled state, the native
// input, and the label text.
func renderCheckControl(a widgetArgs, base, inputType string, checked bool) string {
	m := a.mapping
	class := fmt.Sprintf("%s %s-%s", base, base, m.String("size", "md"))

	if m.Bool("disabled") {
		class += fmt.Sprintf(" %s-disabled", base)
	}

	return fmt.Sprintf("<label id=%q class=%q>\n  <input type=%q class=\"%s-input\"%s%s/>\n  <span class=\"%s-label\">%s</span>\n</label>",
		a.id, class, inputType, base,
		boolAttr(checked, "checked"), boolAttr(m.Bool("disabled"), "disabled"),
		base, m.String("label", ""))
}

// defaultSelectPlaceholder is the placeholder used when none was inferred.
const defaultSelectPlaceholder = "Select an option"

func renderSelect(a widgetArgs) string {
	m := a.mapping
	class := "select select-" + m.String("size", "md")

	if m.Bool("disabled") {
		class += " select-disabled"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=%q>\n", a.id, class)

	if label := m.String("label", ""); label != "" {
		fmt.Fprintf(&b, "  <label class=\"select-label\">%s</label>\n", label)
	}

	fmt.Fprintf(&b, "  <select class=\"select-control\"%s>\n", boolAttr(m.Bool("disabled"), "disabled"))
	fmt.Fprintf(&b, "    <option value=\"\" disabled selected>%s</option>\n",
		m.String("placeholder", defaultSelectPlaceholder))

	for _, item := range itemsProp(m) {
		fmt.Fprintf(&b, "    <option value=%q>%s</option>\n", item.Value, item.Label)
	}

	b.WriteString("  </select>\n</div>")

	return b.String()
}

func renderBadge(a widgetArgs) string {
	m := a.mapping

	return fmt.Sprintf("<span id=%q class=\"badge badge-%s badge-%s\">%s</span>",
		a.id, m.String("color", "gray"), m.String("size", "md"), m.String("label", "Badge"))
}

func renderModal(a widgetArgs) string {
	m := a.mapping

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"modal modal-%s\">\n", a.id, m.String("size", "md"))

	if title := m.String("title", ""); title != "" {
		fmt.Fprintf(&b, "  <div class=\"modal-header\">\n    <h3 class=\"modal-title\">%s</h3>\n  </div>\n", title)
	}

	b.WriteString("  <div class=\"modal-body\">\n")

	if description := m.String("description", ""); description != "" {
		fmt.Fprintf(&b, "    <p class=\"modal-description\">%s</p>\n", description)
	}

	if a.children != "" {
		b.WriteString(indent(a.children, "    "))
		b.WriteString("\n")
	}

	b.WriteString("  </div>\n</div>")

	return b.String()
}

func renderTabs(a widgetArgs) string {
	m := a.mapping

	orientation := "horizontal"
	if m.Kind == classify.KindVerticalTab {
		orientation = "vertical"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"tabs tabs-%s tabs-%s\">\n", a.id, orientation, m.String("size", "md"))

	for _, item := range tabItemsProp(m) {
		class := "tab-item"
		if item.Active {
			class += " tab-item-active"
		}

		fmt.Fprintf(&b, "  <button class=%q>%s</button>\n", class, item.Label)
	}

	b.WriteString("</div>")

	return b.String()
}

func renderPagination(a widgetArgs) string {
	m := a.mapping

	pages := intProp(m, "pages", 1)
	current := intProp(m, "current", 1)

	var b strings.Builder

	fmt.Fprintf(&b, "<nav id=%q class=\"pagination pagination-%s\">\n", a.id, m.String("size", "md"))
	b.WriteString("  <button class=\"pagination-prev\">Previous</button>\n")

	for page := 1; page <= pages; page++ {
		class := "pagination-page"
		if page == current {
			class += " pagination-page-active"
		}

		fmt.Fprintf(&b, "  <button class=%q>%d</button>\n", class, page)
	}

	b.WriteString("  <button class=\"pagination-next\">Next</button>\n</nav>")

	return b.String()
}

func renderProgressBar(a widgetArgs) string {
	m := a.mapping
	progress := clampPercent(m.Float("progress", 50))

	return fmt.Sprintf("<div id=%q class=\"progress progress-%s\">\n"+
		"  <div class=\"progress-track\">\n"+
		"    <div class=\"progress-fill\" style=\"width: %.0f%%\"></div>\n"+
		"  </div>\n"+
		"  <span class=\"progress-value\">%.0f%%</span>\n"+
		"</div>",
		a.id, m.String("size", "md"), progress, progress)
}

func renderProgressCircle(a widgetArgs) string {
	m := a.mapping
	progress := clampPercent(m.Float("progress", 50))

	return fmt.Sprintf("<div id=%q class=\"progress-circle progress-circle-%s\" data-progress=\"%.0f\">\n"+
		"  <span class=\"progress-circle-value\">%.0f%%</span>\n"+
		"</div>",
		a.id, m.String("size", "md"), progress, progress)
}

func renderNotification(a widgetArgs) string {
	m := a.mapping

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"notification notification-%s\">\n", a.id, m.String("severity", "info"))
	b.WriteString("  <div class=\"notification-content\">\n")
	fmt.Fprintf(&b, "    <p class=\"notification-title\">%s</p>\n", m.String("title", "Notification"))

	if description := m.String("description", ""); description != "" {
		fmt.Fprintf(&b, "    <p class=\"notification-description\">%s</p>\n", description)
	}

	b.WriteString("  </div>\n  <button class=\"notification-close\">&times;</button>\n</div>")

	return b.String()
}

func renderSpinner(a widgetArgs) string {
	return fmt.Sprintf("<div id=%q class=\"spinner spinner-%s\"></div>", a.id, a.mapping.String("size", "md"))
}

func renderTag(a widgetArgs) string {
	m := a.mapping

	remove := ""
	if m.Bool("removable") {
		remove = "<button class=\"tag-remove\">&times;</button>"
	}

	return fmt.Sprintf("<span id=%q class=\"tag tag-%s tag-%s\">%s%s</span>",
		a.id, m.String("color", "gray"), m.String("size", "md"), m.String("label", "Tag"), remove)
}

func renderTooltip(a widgetArgs) string {
	m := a.mapping

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"tooltip-wrapper\">\n", a.id)

	if a.children != "" {
		b.WriteString(indent(a.children, "  "))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "  <span class=\"tooltip tooltip-%s\">%s</span>\n</div>",
		m.String("position", "top"), m.String("text", ""))

	return b.String()
}

func renderSlider(a widgetArgs) string {
	m := a.mapping
	value := clampPercent(m.Float("value", 50))

	return fmt.Sprintf("<div id=%q class=\"slider\">\n"+
		"  <input type=\"range\" class=\"slider-input\" min=\"0\" max=\"100\" value=\"%.0f\"%s/>\n"+
		"</div>",
		a.id, value, boolAttr(m.Bool("disabled"), "disabled"))
}

func renderToggle(a widgetArgs) string {
	m := a.mapping
	class := "toggle toggle-" + m.String("size", "md")

	if m.Bool("on") {
		class += " toggle-on"
	}

	if m.Bool("disabled") {
		class += " toggle-disabled"
	}

	return fmt.Sprintf("<label id=%q class=%q>\n"+
		"  <input type=\"checkbox\" class=\"toggle-input\"%s%s/>\n"+
		"  <span class=\"toggle-track\"><span class=\"toggle-thumb\"></span></span>\n"+
		"</label>",
		a.id, class, boolAttr(m.Bool("on"), "checked"), boolAttr(m.Bool("disabled"), "disabled"))
}

func renderBreadCrumb(a widgetArgs) string {
	items := stringsProp(a.mapping, "items")

	var b strings.Builder

	fmt.Fprintf(&b, "<nav id=%q class=\"breadcrumb\">\n", a.id)

	for i, label := range items {
		class := "breadcrumb-item"
		if i == len(items)-1 {
			class += " breadcrumb-item-current"
		}

		fmt.Fprintf(&b, "  <span class=%q>%s</span>\n", class, label)

		if i < len(items)-1 {
			b.WriteString("  <span class=\"breadcrumb-separator\">/</span>\n")
		}
	}

	b.WriteString("</nav>")

	return b.String()
}

func renderDivider(a widgetArgs) string {
	return fmt.Sprintf("<hr id=%q class=\"divider divider-%s\"/>",
		a.id, a.mapping.String("orientation", "horizontal"))
}

func renderDropdown(a widgetArgs) string {
	m := a.mapping

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"dropdown\">\n", a.id)
	fmt.Fprintf(&b, "  <button class=\"dropdown-trigger\">%s</button>\n", m.String("label", "Options"))
	b.WriteString("  <ul class=\"dropdown-menu\">\n")

	for _, item := range itemsProp(m) {
		fmt.Fprintf(&b, "    <li class=\"dropdown-item\" data-value=%q>%s</li>\n", item.Value, item.Label)
	}

	b.WriteString("  </ul>\n")

	if a.children != "" {
		fmt.Fprintf(&b, "  <div class=\"dropdown-content\">\n%s\n  </div>\n", indent(a.children, "    "))
	}

	b.WriteString("</div>")

	return b.String()
}

func renderEmptyState(a widgetArgs) string {
	m := a.mapping

	var b strings.Builder

	fmt.Fprintf(&b, "<div id=%q class=\"empty-state\">\n", a.id)
	fmt.Fprintf(&b, "  <h4 class=\"empty-state-title\">%s</h4>\n", m.String("title", "No data"))

	if description := m.String("description", ""); description != "" {
		fmt.Fprintf(&b, "  <p class=\"empty-state-description\">%s</p>\n", description)
	}

	if a.children != "" {
		b.WriteString(indent(a.children, "  "))
		b.WriteString("\n")
	}

	b.WriteString("</div>")

	return b.String()
}

func renderFeaturedIcon(a widgetArgs) string {
	m := a.mapping

	return fmt.Sprintf("<span id=%q class=\"featured-icon featured-icon-%s featured-icon-%s featured-icon-%s\"></span>",
		a.id, m.String("theme", "light"), m.String("color", "gray"), m.String("size", "md"))
}

// boolAttr renders a bare boolean attribute (" disabled") when on.
func boolAttr(on bool, name string) string {
	if on {
		return " " + name
	}

	return ""
}

// clampPercent bounds a progress value into [0, 100].
func clampPercent(v float64) float64 {
	if v < 0 {
		return 0
	}

	if v > 100 {
		return 100
	}

	return v
}

// indent prefixes every non-empty line of s with the given prefix.
func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines[i] = prefix + line
	}

	return strings.Join(lines, "\n")
}

// itemsProp returns the mapping's item list, or nil when absent.
func itemsProp(m *classify.Mapping) []classify.Item {
	items, _ := m.Props["items"].([]classify.Item)

	return items
}

// tabItemsProp returns the mapping's tab item list, or nil when absent.
func tabItemsProp(m *classify.Mapping) []classify.TabItem {
	items, _ := m.Props["items"].([]classify.TabItem)

	return items
}

// stringsProp returns a string-list prop, or nil when absent.
func stringsProp(m *classify.Mapping, key string) []string {
	items, _ := m.Props[key].([]string)

	return items
}

// intProp returns an int prop, or fallback when absent.
func intProp(m *classify.Mapping, key string, fallback int) int {
	if v, ok := m.Props[key].(int); ok {
		return v
	}

	return fallback
}
