package figma

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uistudio/figgen/internal/design"
)

func boolPtr(v bool) *bool { return &v }

func TestSimplifyNode(t *testing.T) {
	t.Parallel()

	raw := &apiNode{
		ID:   "1:1",
		Name: "Card",
		Type: "FRAME",
		AbsoluteBoundingBox: &apiBox{
			X: 10, Y: 20, Width: 320, Height: 200,
		},
		Children: []*apiNode{
			{ID: "1:2", Name: "Heading", Type: "TEXT", Characters: "Hello"},
			{ID: "1:3", Name: "Hidden", Type: "TEXT", Visible: boolPtr(false)},
		},
	}

	n := simplifyNode(raw)
	require.NotNil(t, n)

	assert.Equal(t, design.KindFrame, n.Kind)
	require.NotNil(t, n.Box)
	assert.InDelta(t, 320.0, n.Box.Width, 0.001)

	require.Len(t, n.Children, 1, "invisible children are dropped")
	assert.Equal(t, "Hello", n.Children[0].Text)
}

func TestSimplifyNode_InvisibleRoot(t *testing.T) {
	t.Parallel()

	assert.Nil(t, simplifyNode(nil))
	assert.Nil(t, simplifyNode(&apiNode{ID: "1:1", Visible: boolPtr(false)}))
}

func TestSimplifyKind(t *testing.T) {
	t.Parallel()

	cases := []struct {
		rawType string
		want    design.NodeKind
	}{
		{"TEXT", design.KindText},
		{"FRAME", design.KindFrame},
		{"GROUP", design.KindGroup},
		{"SECTION", design.KindGroup},
		{"RECTANGLE", design.KindRectangle},
		{"ELLIPSE", design.KindEllipse},
		{"INSTANCE", design.KindInstance},
		{"COMPONENT", design.KindComponent},
		{"COMPONENT_SET", design.KindComponent},
		{"LINE", design.KindLine},
		{"VECTOR", design.KindOther},
		{"BOOLEAN_OPERATION", design.KindOther},
	}

	for _, tc := range cases {
		got := simplifyKind(&apiNode{Type: tc.rawType})
		assert.Equal(t, tc.want, got, "type %s", tc.rawType)
	}
}

func TestSimplifyKind_ImageFillWins(t *testing.T) {
	t.Parallel()

	withFill := &apiNode{
		Type:  "RECTANGLE",
		Fills: []apiPaint{{Type: "IMAGE"}},
	}
	assert.Equal(t, design.KindImage, simplifyKind(withFill))

	hiddenFill := &apiNode{
		Type:  "RECTANGLE",
		Fills: []apiPaint{{Type: "IMAGE", Visible: boolPtr(false)}},
	}
	assert.Equal(t, design.KindRectangle, simplifyKind(hiddenFill))

	solidFill := &apiNode{
		Type:  "RECTANGLE",
		Fills: []apiPaint{{Type: "SOLID"}},
	}
	assert.Equal(t, design.KindRectangle, simplifyKind(solidFill))
}

func TestSimplifyStyles(t *testing.T) {
	t.Parallel()

	vars := simplifyStyles(map[string]apiStyle{
		"S:1": {Name: "Brand/600", StyleType: "FILL", Description: "primary purple"},
	})

	require.Len(t, vars, 1)
	assert.Equal(t, "Brand/600", vars["S:1"].Name)
	assert.Equal(t, "FILL", vars["S:1"].Type)

	assert.Nil(t, simplifyStyles(nil))
}
