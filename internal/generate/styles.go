package generate

import (
	"strings"

	"github.com/uistudio/figgen/internal/classify"
)

// baseStyles covers the generic structural elements every render can emit.
const baseStyles = `.figgen-root { font-family: Inter, sans-serif; }
.node { box-sizing: border-box; }
.node-text { display: inline; }`

// kindStyles holds the base style text per widget kind, attached to the
// result in first-use order when IncludeStyles is on. These are starting
// points for hand tuning, not a design-system reproduction.
var kindStyles = map[classify.Kind]string{
	classify.KindButton: `.btn { display: inline-flex; align-items: center; border-radius: 8px; cursor: pointer; }
.btn-primary { background: #7f56d9; color: #fff; }
.btn-disabled { opacity: 0.5; pointer-events: none; }`,
	classify.KindInputBase: `.input-field { display: flex; flex-direction: column; gap: 6px; }
.input-control { border: 1px solid #d0d5dd; border-radius: 8px; padding: 10px 14px; }`,
	classify.KindCheckbox: `.checkbox { display: inline-flex; align-items: center; gap: 8px; }
.checkbox-disabled { opacity: 0.5; pointer-events: none; }`,
	classify.KindRadio: `.radio { display: inline-flex; align-items: center; gap: 8px; }
.radio-disabled { opacity: 0.5; pointer-events: none; }`,
	classify.KindSelect: `.select-control { border: 1px solid #d0d5dd; border-radius: 8px; padding: 10px 14px; }`,
	classify.KindBadge: `.badge { display: inline-block; border-radius: 16px; padding: 2px 8px; font-size: 12px; }
.badge-success { background: #ecfdf3; color: #027a48; }
.badge-error { background: #fef3f2; color: #b42318; }`,
	classify.KindModal: `.modal { background: #fff; border-radius: 12px; box-shadow: 0 20px 24px -4px rgba(16,24,40,0.08); }
.modal-body { padding: 24px; }`,
	classify.KindHorizontalTab: `.tabs-horizontal { display: flex; gap: 4px; border-bottom: 1px solid #eaecf0; }
.tab-item-active { border-bottom: 2px solid #7f56d9; color: #6941c6; }`,
	classify.KindVerticalTab: `.tabs-vertical { display: flex; flex-direction: column; gap: 4px; }
.tab-item-active { border-left: 2px solid #7f56d9; color: #6941c6; }`,
	classify.KindPagination: `.pagination { display: flex; align-items: center; gap: 2px; }
.pagination-page-active { background: #f9f5ff; color: #7f56d9; }`,
	classify.KindProgressBar: `.progress-track { background: #eaecf0; border-radius: 4px; height: 8px; }
.progress-fill { background: #7f56d9; border-radius: 4px; height: 8px; }`,
	classify.KindProgressCircle: `.progress-circle { display: inline-flex; align-items: center; justify-content: center; border-radius: 50%; }`,
	classify.KindNotification: `.notification { display: flex; border: 1px solid #eaecf0; border-radius: 8px; padding: 16px; }
.notification-error { border-color: #fda29b; }`,
	classify.KindSpinner: `.spinner { border: 2px solid #eaecf0; border-top-color: #7f56d9; border-radius: 50%; animation: figgen-spin 0.8s linear infinite; }
@keyframes figgen-spin { to { transform: rotate(360deg); } }`,
	classify.KindTag: `.tag { display: inline-flex; align-items: center; gap: 4px; border: 1px solid #d0d5dd; border-radius: 6px; padding: 2px 8px; }`,
	classify.KindTooltip: `.tooltip-wrapper { position: relative; display: inline-block; }
.tooltip { position: absolute; background: #101828; color: #fff; border-radius: 8px; padding: 8px 12px; }`,
	classify.KindSlider: `.slider-input { width: 100%; accent-color: #7f56d9; }`,
	classify.KindToggle: `.toggle-track { display: inline-block; width: 36px; height: 20px; background: #f2f4f7; border-radius: 12px; }
.toggle-on .toggle-track { background: #7f56d9; }`,
	classify.KindBreadCrumb: `.breadcrumb { display: flex; align-items: center; gap: 8px; }
.breadcrumb-item-current { color: #6941c6; font-weight: 600; }`,
	classify.KindDivider: `.divider { border: none; border-top: 1px solid #eaecf0; }
.divider-vertical { border-top: none; border-left: 1px solid #eaecf0; height: 100%; }`,
	classify.KindDropdown: `.dropdown { position: relative; display: inline-block; }
.dropdown-menu { background: #fff; border: 1px solid #eaecf0; border-radius: 8px; list-style: none; padding: 4px; }`,
	classify.KindEmptyState: `.empty-state { display: flex; flex-direction: column; align-items: center; text-align: center; padding: 32px; }`,
	classify.KindFeaturedIcon: `.featured-icon { display: inline-flex; align-items: center; justify-content: center; border-radius: 50%; width: 40px; height: 40px; }`,
}

// stylesFor concatenates the base style text with the snippets for the
// used widget kinds, in first-use order.
func stylesFor(used []classify.Kind) string {
	parts := []string{baseStyles}

	for _, kind := range used {
		if css, ok := kindStyles[kind]; ok {
			parts = append(parts, css)
		}
	}

	return strings.Join(parts, "\n")
}
