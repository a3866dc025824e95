package filter

import (
	"image"
	"math"

	"github.com/gogpu/overlay"
)

// RegionAccess is the pixel capability a drawing target must expose for
// the filter pipeline to run against it. surface.PixelReadWriter
// satisfies it; the indirection keeps this package free of a dependency
// on the canvas layer.
type RegionAccess interface {
	ReadRegion(r image.Rectangle) *overlay.Pixmap
	WriteRegion(x, y int, px *overlay.Pixmap)
}

// ApplyTo runs the named filter over the device-space bounds of a pixel
// target: the region is read, filtered in place, and written back.
// Degenerate bounds no-op.
func ApplyTo(target RegionAccess, name string, params overlay.Properties, bounds overlay.Rect) {
	x := int(math.Round(bounds.X))
	y := int(math.Round(bounds.Y))
	w := int(math.Round(bounds.W))
	h := int(math.Round(bounds.H))
	if w <= 0 || h <= 0 {
		return
	}
	px := target.ReadRegion(image.Rect(x, y, x+w, y+h))
	if px == nil {
		return
	}
	Apply(name, params, px, overlay.Rect{W: float64(px.Width()), H: float64(px.Height())})
	target.WriteRegion(maxI(x, 0), maxI(y, 0), px)
}

func maxI(a, b int) int {
	if a > b {
		return a
	}
	return b
}
