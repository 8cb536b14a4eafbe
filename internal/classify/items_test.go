package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/uistudio/figgen/internal/design"
)

func TestTabItems(t *testing.T) {
	t.Parallel()

	n := &design.Node{Children: []*design.Node{
		{Name: "Tab active", Text: "Overview"},
		{Name: "Tab", Text: "Settings"},
		{Name: "Icon"},
	}}

	items := tabItems(n)
	assert.Equal(t, []TabItem{
		{Label: "Overview", Active: true},
		{Label: "Settings"},
	}, items)
}

func TestTabItems_Default(t *testing.T) {
	t.Parallel()

	items := tabItems(&design.Node{})
	assert.Equal(t, []TabItem{
		{Label: "Tab 1", Active: true},
		{Label: "Tab 2"},
	}, items)
}

func TestDropdownItems(t *testing.T) {
	t.Parallel()

	n := &design.Node{Children: []*design.Node{
		{Name: "Item", Text: "Edit"},
		{Name: "Spacer"},
		{Name: "Item", Text: "Delete"},
	}}

	items := dropdownItems(n)
	assert.Equal(t, []Item{
		{Label: "Edit", Value: "1"},
		{Label: "Delete", Value: "2"},
	}, items)
}

func TestDropdownItems_Default(t *testing.T) {
	t.Parallel()

	items := dropdownItems(&design.Node{})
	assert.Equal(t, []Item{
		{Label: "Option 1", Value: "1"},
		{Label: "Option 2", Value: "2"},
	}, items)
}

func TestCrumbItems(t *testing.T) {
	t.Parallel()

	n := &design.Node{Children: []*design.Node{
		{Name: "Crumb", Text: "Home"},
		{Name: "Crumb", Text: "Projects"},
		{Name: "Crumb", Text: "Figgen"},
	}}

	assert.Equal(t, []string{"Home", "Projects", "Figgen"}, crumbItems(n))
	assert.Equal(t, []string{"Home", "Current"}, crumbItems(&design.Node{}))
}

func TestInferPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node *design.Node
		want float64
	}{
		{"from text", &design.Node{Text: "75%"}, 75},
		{"text wins over name", &design.Node{Name: "Progress 30", Text: "60%"}, 60},
		{"from name", &design.Node{Name: "Progress Bar 40"}, 40},
		{"clamped high", &design.Node{Text: "150"}, 100},
		{"clamped low", &design.Node{Text: "level -20"}, 0},
		{"default", &design.Node{Name: "Progress Bar"}, 50},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tc.want, inferPercent(tc.node), 0.001)
		})
	}
}

func TestFirstInt(t *testing.T) {
	t.Parallel()

	v, ok := firstInt("Progress 42 of 100")
	assert.True(t, ok)
	assert.InDelta(t, 42.0, v, 0.001)

	v, ok = firstInt("offset -15px")
	assert.True(t, ok)
	assert.InDelta(t, -15.0, v, 0.001)

	_, ok = firstInt("no digits here")
	assert.False(t, ok)

	_, ok = firstInt("")
	assert.False(t, ok)
}
