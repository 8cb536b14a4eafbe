// Package classify maps design nodes to component-library widgets. An
// ordered rule table pairs name/kind predicates with property extractors;
// the first matching rule wins and produces a Mapping, or classification
// misses and the caller falls back to generic structural markup.
package classify

// Kind identifies a supported component-library widget.
type Kind string

// The supported widget kinds. The set is closed: ValidKind gates every
// mapping before the generator trusts it.
const (
	KindButton         Kind = "Button"
	KindInputBase      Kind = "InputBase"
	KindCheckbox       Kind = "Checkbox"
	KindRadio          Kind = "Radio"
	KindSelect         Kind = "Select"
	KindBadge          Kind = "Badge"
	KindModal          Kind = "Modal"
	KindHorizontalTab  Kind = "HorizontalTab"
	KindVerticalTab    Kind = "VerticalTab"
	KindPagination     Kind = "Pagination"
	KindProgressBar    Kind = "ProgressBar"
	KindProgressCircle Kind = "ProgressCircle"
	KindNotification   Kind = "Notification"
	KindSpinner        Kind = "Spinner"
	KindTag            Kind = "Tag"
	KindTooltip        Kind = "Tooltip"
	KindSlider         Kind = "Slider"
	KindToggle         Kind = "Toggle"
	KindBreadCrumb     Kind = "BreadCrumb"
	KindDivider        Kind = "Divider"
	KindDropdown       Kind = "Dropdown"
	KindEmptyState     Kind = "EmptyState"
	KindFeaturedIcon   Kind = "FeaturedIcon"
)

// AllKinds lists every supported widget kind in a stable order.
var AllKinds = []Kind{
	KindButton,
	KindInputBase,
	KindCheckbox,
	KindRadio,
	KindSelect,
	KindBadge,
	KindModal,
	KindHorizontalTab,
	KindVerticalTab,
	KindPagination,
	KindProgressBar,
	KindProgressCircle,
	KindNotification,
	KindSpinner,
	KindTag,
	KindTooltip,
	KindSlider,
	KindToggle,
	KindBreadCrumb,
	KindDivider,
	KindDropdown,
	KindEmptyState,
	KindFeaturedIcon,
}

// validKinds is the membership set backing ValidKind.
var validKinds = buildValidKinds()

func buildValidKinds() map[Kind]bool {
	set := make(map[Kind]bool, len(AllKinds))
	for _, k := range AllKinds {
		set[k] = true
	}

	return set
}

// ValidKind reports whether k belongs to the supported widget enumeration.
// It is the sole gate between the rule engine and the markup generator:
// a mapping whose kind fails this check must be treated as a miss.
func ValidKind(k Kind) bool {
	return validKinds[k]
}
