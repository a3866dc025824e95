// Package builtin provides the stock layer-type implementations: solid
// shapes, basic text, alignment guides, and the pixel filters, under
// their category:variant type tags.
//
// Hosts that need only the stock set call NewRegistry; hosts with their
// own types start from an empty composite.NewRegistry and register a
// subset.
package builtin

import "github.com/gogpu/overlay/composite"

// Layer type categories.
const (
	CategoryShapes  = "shapes"
	CategoryText    = "text"
	CategoryGuides  = composite.CategoryGuide
	CategoryFilters = "filters"
)

// NewRegistry returns a registry populated with every built-in layer
// type.
func NewRegistry() *composite.Registry {
	reg := composite.NewRegistry()

	reg.Register("shapes:rect", composite.LayerType{Category: CategoryShapes, Render: renderRect})
	reg.Register("shapes:ellipse", composite.LayerType{Category: CategoryShapes, Render: renderEllipse})
	reg.Register("shapes:line", composite.LayerType{Category: CategoryShapes, Render: renderLine})
	reg.Register("shapes:polygon", composite.LayerType{Category: CategoryShapes, Render: renderPolygon})

	reg.Register("text:basic", composite.LayerType{Category: CategoryText, Render: renderText})

	reg.Register("guides:grid", composite.LayerType{Category: CategoryGuides, Render: renderGridGuide})
	reg.Register("guides:thirds", composite.LayerType{Category: CategoryGuides, Render: renderThirdsGuide})
	reg.Register("guides:diagonal", composite.LayerType{Category: CategoryGuides, Render: renderDiagonalGuide})
	reg.Register("guides:golden", composite.LayerType{Category: CategoryGuides, Render: renderGoldenGuide})
	reg.Register("guides:custom", composite.LayerType{Category: CategoryGuides, Render: renderCustomGuide})

	registerFilters(reg)

	return reg
}
