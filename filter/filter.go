// Package filter implements the pixel-space operators of the overlay
// engine: vignette, blur, grain, duotone, and chromatic aberration.
//
// Each filter reads a rectangular region of a Pixmap and writes it back in
// place. Filters never reject parameters: out-of-range values are clamped
// inside each operator. Every filter no-ops when its dominant intensity
// parameter is zero or below, or when the rounded region is empty.
package filter

import (
	"image"
	"math"

	"github.com/gogpu/overlay"
)

// Filter short names, matching the variant half of the layer type tags.
const (
	Vignette   = "vignette"
	Blur       = "blur"
	Grain      = "grain"
	Duotone    = "duotone"
	Aberration = "aberration"
)

// Apply runs the named filter over the region of pm bounded by r.
// Unknown names are ignored, keeping documents from newer hosts renderable.
func Apply(name string, params overlay.Properties, pm *overlay.Pixmap, r overlay.Rect) {
	switch name {
	case Vignette:
		ApplyVignette(pm, r, params)
	case Blur:
		ApplyBlur(pm, r, params)
	case Grain:
		ApplyGrain(pm, r, params)
	case Duotone:
		ApplyDuotone(pm, r, params)
	case Aberration:
		ApplyAberration(pm, r, params)
	default:
		overlay.Logger().Debug("unknown filter skipped", "name", name)
	}
}

// region rounds r and clamps it to the pixmap. The second return value is
// false when the rounded region has no area.
func region(pm *overlay.Pixmap, r overlay.Rect) (image.Rectangle, bool) {
	x := int(math.Round(r.X))
	y := int(math.Round(r.Y))
	w := int(math.Round(r.W))
	h := int(math.Round(r.H))
	if w <= 0 || h <= 0 {
		return image.Rectangle{}, false
	}
	rect := image.Rect(x, y, x+w, y+h).Intersect(image.Rect(0, 0, pm.Width(), pm.Height()))
	if rect.Empty() {
		return image.Rectangle{}, false
	}
	return rect, true
}

// clampByte clamps an integer to the [0, 255] byte range.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// clamp01 clamps a float to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// clampInt clamps v into [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
