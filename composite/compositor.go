// Package composite implements the layer-tree compositing walk.
//
// The walk is written once against the surface.Canvas capability; the
// host raster path, the sandboxed command stream, and the vector exporter
// all run this same code with a different canvas, which is what keeps the
// three execution contexts from drifting apart.
package composite

import (
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/surface"
)

// Options control one compositing pass.
type Options struct {
	// IncludeGuides paints guide-category layers, which are excluded by
	// default as editor-only aids.
	IncludeGuides bool
}

// Composite draws base (when non-nil) onto the canvas at the origin,
// unscaled, then paints the layers over it in back-to-front array order.
//
// The walk is synchronous and runs to completion: every render call,
// including filter read/modify/write, finishes before the next sibling
// begins, because all renderers share the canvas and its scope stack.
func Composite(base *overlay.Pixmap, layers []*overlay.Layer, reg *Registry, res *Resources, canvas surface.Canvas, opts Options) {
	if base != nil {
		canvas.Push(surface.State{Transform: overlay.Identity(), Opacity: 1})
		canvas.DrawImage(base, 0, 0)
		canvas.Pop()
	}
	for _, l := range layers {
		compositeLayer(l, reg, res, canvas, opts)
	}
}

// compositeLayer paints one layer and, for groups, its subtree.
func compositeLayer(l *overlay.Layer, reg *Registry, res *Resources, canvas surface.Canvas, opts Options) {
	if !l.Visible {
		return
	}

	lt, resolved := reg.Resolve(l.Type)
	if resolved && lt.Category == CategoryGuide && !opts.IncludeGuides {
		return
	}

	if l.IsGroup() {
		// Groups contribute only an opacity/blend scope; their own type
		// and properties never render.
		canvas.Push(surface.State{
			Transform: overlay.Identity(),
			Opacity:   l.Opacity,
			Blend:     l.BlendMode,
		})
		for _, child := range l.Children {
			compositeLayer(child, reg, res, canvas, opts)
		}
		canvas.Pop()
		return
	}

	if !resolved {
		// Forward compatibility: a type tag with no implementation in
		// this host is not an error.
		overlay.Logger().Debug("unresolved layer type skipped", "type", l.Type, "id", l.ID)
		return
	}

	canvas.Push(surface.State{
		Transform: l.Transform.Matrix(),
		Opacity:   l.Opacity,
		Blend:     l.BlendMode,
	})
	lt.Render(&RenderContext{
		Canvas:    canvas,
		Props:     l.Properties,
		Bounds:    l.Transform.Bounds(),
		Resources: res,
	})
	canvas.Pop()
}
