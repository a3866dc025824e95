package blend

import "math"

// blendNonSeparable evaluates the non-separable modes, which operate on
// the whole RGB triplet via luminosity and saturation transfer.
func blendNonSeparable(mode Mode, br, bg, bb, sr, sg, sb float64) (float64, float64, float64) {
	switch mode {
	case Hue:
		r, g, b := setSat(sr, sg, sb, sat(br, bg, bb))
		return setLum(r, g, b, lum(br, bg, bb))
	case Saturation:
		r, g, b := setSat(br, bg, bb, sat(sr, sg, sb))
		return setLum(r, g, b, lum(br, bg, bb))
	case Color:
		return setLum(sr, sg, sb, lum(br, bg, bb))
	case Luminosity:
		return setLum(br, bg, bb, lum(sr, sg, sb))
	default:
		return sr, sg, sb
	}
}

// lum returns the luminosity of a color per the W3C blending spec.
func lum(r, g, b float64) float64 {
	return 0.3*r + 0.59*g + 0.11*b
}

// sat returns the saturation (max - min) of a color.
func sat(r, g, b float64) float64 {
	return max3(r, g, b) - min3(r, g, b)
}

// clipColor clips components to [0, 1] while preserving luminosity.
func clipColor(r, g, b float64) (float64, float64, float64) {
	l := lum(r, g, b)
	n := min3(r, g, b)
	x := max3(r, g, b)
	if n < 0 {
		r = l + (r-l)*l/(l-n)
		g = l + (g-l)*l/(l-n)
		b = l + (b-l)*l/(l-n)
	}
	if x > 1 {
		r = l + (r-l)*(1-l)/(x-l)
		g = l + (g-l)*(1-l)/(x-l)
		b = l + (b-l)*(1-l)/(x-l)
	}
	return r, g, b
}

// setLum shifts a color to the target luminosity, then clips.
func setLum(r, g, b, l float64) (float64, float64, float64) {
	d := l - lum(r, g, b)
	return clipColor(r+d, g+d, b+d)
}

// setSat rescales a color to the target saturation, preserving the
// ordering of its components.
func setSat(r, g, b, s float64) (float64, float64, float64) {
	comp := []float64{r, g, b}
	idx := []int{0, 1, 2}
	// Sort indices by component value.
	for i := 0; i < 2; i++ {
		for j := i + 1; j < 3; j++ {
			if comp[idx[j]] < comp[idx[i]] {
				idx[i], idx[j] = idx[j], idx[i]
			}
		}
	}
	lo, mid, hi := idx[0], idx[1], idx[2]
	if comp[hi] > comp[lo] {
		comp[mid] = (comp[mid] - comp[lo]) * s / (comp[hi] - comp[lo])
		comp[hi] = s
	} else {
		comp[mid] = 0
		comp[hi] = 0
	}
	comp[lo] = 0
	return comp[0], comp[1], comp[2]
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }
