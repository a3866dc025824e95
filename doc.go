// Package overlay implements a design-layer compositing engine.
//
// # Overview
//
// overlay paints an editable tree of parametric design layers (shapes, text,
// pixel filters, alignment guides, groups) on top of an existing image, such
// as the output of a generative algorithm. The same layer tree produces the
// same visual result on every rendering context: a raster surface in the host
// process, a serialized command stream replayed in an isolated renderer, and
// an SVG markup accumulator.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/overlay"
//	    "github.com/gogpu/overlay/builtin"
//	    "github.com/gogpu/overlay/composite"
//	    "github.com/gogpu/overlay/surface"
//	)
//
//	stack := overlay.NewStack(nil)
//	stack.Add(&overlay.Layer{
//	    ID:         overlay.NewID(),
//	    Type:       "shapes:rect",
//	    Name:       "Backdrop",
//	    Visible:    true,
//	    Opacity:    0.8,
//	    Transform:  overlay.DefaultTransform(40, 40, 200, 120),
//	    Properties: overlay.Properties{"fill": "#ff6600"},
//	})
//
//	canvas := surface.NewImageSurface(512, 512)
//	composite.Composite(base, stack.Layers(), builtin.NewRegistry(), nil, canvas, composite.Options{})
//
// # Architecture
//
// The compositing walk is implemented once, in package composite, against the
// abstract surface.Canvas capability. The three execution contexts differ
// only in which Canvas they supply:
//   - surface.ImageSurface: CPU raster target backed by a Pixmap
//   - surface.ScriptSurface: serializable command log for sandboxed replay
//   - surface.SVGSurface: vector accumulator with markup injection
//
// Layer types are resolved through a composite.Registry; package builtin
// provides the standard shape, text, guide, and filter types. Package filter
// holds the pixel operators (vignette, blur, grain, duotone, chromatic
// aberration), including the deterministic noise source the grain filter
// relies on for cross-context reproducibility.
//
// # Coordinate System
//
// Origin (0,0) at top-left, X increases right, Y increases down. Rotation is
// given in degrees and pivots, together with scale, around the layer's
// anchor point (a fraction of the layer's own bounds).
package overlay

// Version is the current version of the library.
const Version = "0.1.0"
