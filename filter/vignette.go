package filter

import (
	"math"

	"github.com/gogpu/overlay"
)

// ApplyVignette darkens the region toward its edges with a radial falloff.
//
// Parameters: intensity (0.5), radius (0.7), softness (0.5), color
// ("#000000"). The falloff runs from fully transparent at
// maxDim*radius*(1-softness) to color at alpha=intensity at maxDim*radius,
// painted over the region with plain over-compositing.
func ApplyVignette(pm *overlay.Pixmap, r overlay.Rect, params overlay.Properties) {
	intensity := clamp01(params.Float("intensity", 0.5))
	if intensity <= 0 {
		return
	}
	rect, ok := region(pm, r)
	if !ok {
		return
	}

	radius := clamp01(params.Float("radius", 0.7))
	softness := clamp01(params.Float("softness", 0.5))
	col := params.Color("color", overlay.Black)

	// Gradient geometry follows the layer bounds, not the clamped region,
	// so partial off-canvas layers keep their falloff centered.
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	maxDim := math.Max(r.W, r.H)
	outer := maxDim * radius
	inner := outer * (1 - softness)

	cr := uint8(col.R*255 + 0.5)
	cg := uint8(col.G*255 + 0.5)
	cb := uint8(col.B*255 + 0.5)

	data := pm.Data()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dx := float64(x) + 0.5 - cx
			dy := float64(y) + 0.5 - cy
			d := math.Hypot(dx, dy)

			var t float64
			switch {
			case d <= inner:
				continue
			case outer <= inner:
				t = 1
			default:
				t = clamp01((d - inner) / (outer - inner))
			}
			a := t * intensity * col.A
			if a <= 0 {
				continue
			}

			i := (y*pm.Width() + x) * 4
			data[i+0] = lerpByte(data[i+0], cr, a)
			data[i+1] = lerpByte(data[i+1], cg, a)
			data[i+2] = lerpByte(data[i+2], cb, a)
			da := float64(data[i+3]) / 255
			data[i+3] = uint8(clamp01(a+da*(1-a))*255 + 0.5)
		}
	}
}

// lerpByte mixes src into dst by t in [0, 1].
func lerpByte(dst, src uint8, t float64) uint8 {
	return uint8(float64(dst)*(1-t) + float64(src)*t + 0.5)
}
