// Package figma fetches design files from the Figma REST API and
// simplifies them into the design-node trees the generation pipeline
// consumes. Fetched trees are cached per file key so repeated tool calls
// against the same file skip the network.
package figma

// Raw Figma API shapes, reduced to the fields the simplifier reads.

type apiFile struct {
	Name     string              `json:"name"`
	Document *apiNode            `json:"document"`
	Styles   map[string]apiStyle `json:"styles,omitempty"`
}

type apiStyle struct {
	Name        string `json:"name"`
	StyleType   string `json:"styleType"`
	Description string `json:"description,omitempty"`
}

type apiNode struct {
	ID                  string     `json:"id"`
	Name                string     `json:"name"`
	Type                string     `json:"type"`
	Visible             *bool      `json:"visible,omitempty"`
	Characters          string     `json:"characters,omitempty"`
	AbsoluteBoundingBox *apiBox    `json:"absoluteBoundingBox,omitempty"`
	Opacity             *float64   `json:"opacity,omitempty"`
	CornerRadius        *float64   `json:"cornerRadius,omitempty"`
	Fills               []apiPaint `json:"fills,omitempty"`
	Children            []*apiNode `json:"children,omitempty"`
}

type apiBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type apiPaint struct {
	Type    string `json:"type"`
	Visible *bool  `json:"visible,omitempty"`
}

type apiNodesResponse struct {
	Name  string `json:"name"`
	Nodes map[string]struct {
		Document *apiNode            `json:"document"`
		Styles   map[string]apiStyle `json:"styles,omitempty"`
	} `json:"nodes"`
}
