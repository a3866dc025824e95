package builtin

import (
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/filter"
	"github.com/gogpu/overlay/surface"
)

// Filter layer types run the pixel pipeline over the layer's bounds.
// Execution depends on the canvas capability: canvases with pixel access
// run the filter in place, command-stream canvases record it for the
// replay side, and pure vector canvases drop it.
func registerFilters(reg *composite.Registry) {
	for _, name := range []string{
		filter.Vignette,
		filter.Blur,
		filter.Grain,
		filter.Duotone,
		filter.Aberration,
	} {
		reg.Register("filters:"+name, composite.LayerType{
			Category: CategoryFilters,
			Render:   filterRender(name),
		})
	}
}

func filterRender(name string) composite.RenderFunc {
	return func(ctx *composite.RenderContext) {
		switch canvas := ctx.Canvas.(type) {
		case surface.PixelReadWriter:
			filter.ApplyTo(canvas, name, ctx.Props, ctx.Bounds)
		case surface.FilterSink:
			canvas.ApplyFilter(name, ctx.Props, ctx.Bounds)
		default:
			overlay.Logger().Debug("filter layer dropped, canvas has no pixel access", "filter", name)
		}
	}
}
