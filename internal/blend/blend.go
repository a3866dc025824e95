// Package blend implements per-pixel compositing for the overlay engine.
//
// The default mode is Porter-Duff source-over; the remaining modes follow
// the W3C Compositing and Blending Level 1 specification. All operators
// take and return straight (non-premultiplied) alpha, matching the Pixmap
// storage format.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode identifies a pixel blend operator. The values match the wire order
// used by the public BlendMode enum; the conversion lives with the caller.
type Mode uint8

// Blend mode constants.
const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	Darken
	Lighten
	ColorDodge
	ColorBurn
	HardLight
	SoftLight
	Difference
	Exclusion
	Hue
	Saturation
	Color
	Luminosity
)

// Pixel composites a straight-alpha source pixel over a straight-alpha
// destination pixel using the given mode and returns the straight-alpha
// result. Channel values are bytes in [0, 255].
func Pixel(mode Mode, sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	if sa == 0 {
		return dr, dg, db, da
	}

	csr := float64(sr) / 255
	csg := float64(sg) / 255
	csb := float64(sb) / 255
	alphaS := float64(sa) / 255
	cdr := float64(dr) / 255
	cdg := float64(dg) / 255
	cdb := float64(db) / 255
	alphaD := float64(da) / 255

	// Mix the blended color with the raw source by destination coverage:
	// Cs' = (1 - ab)*Cs + ab*B(Cb, Cs). With ab = 0 this reduces to the
	// plain source color, so Normal needs no special case beyond B = Cs.
	if mode != Normal && alphaD > 0 {
		br, bg, bb := blendColor(mode, cdr, cdg, cdb, csr, csg, csb)
		csr = (1-alphaD)*csr + alphaD*br
		csg = (1-alphaD)*csg + alphaD*bg
		csb = (1-alphaD)*csb + alphaD*bb
	}

	outA := alphaS + alphaD*(1-alphaS)
	if outA <= 0 {
		return 0, 0, 0, 0
	}
	outR := (csr*alphaS + cdr*alphaD*(1-alphaS)) / outA
	outG := (csg*alphaS + cdg*alphaD*(1-alphaS)) / outA
	outB := (csb*alphaS + cdb*alphaD*(1-alphaS)) / outA

	return toByte(outR), toByte(outG), toByte(outB), toByte(outA)
}

// blendColor evaluates B(Cb, Cs) for the backdrop and source colors, both
// unmultiplied and normalized to [0, 1].
func blendColor(mode Mode, br, bg, bb, sr, sg, sb float64) (float64, float64, float64) {
	switch mode {
	case Hue, Saturation, Color, Luminosity:
		return blendNonSeparable(mode, br, bg, bb, sr, sg, sb)
	default:
		fn := separableFunc(mode)
		return fn(br, sr), fn(bg, sg), fn(bb, sb)
	}
}

func toByte(v float64) uint8 {
	v *= 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
