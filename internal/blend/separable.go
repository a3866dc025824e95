package blend

import "math"

// separableFunc returns the per-channel blend function B(Cb, Cs) for a
// separable mode. Inputs and outputs are in [0, 1].
func separableFunc(mode Mode) func(b, s float64) float64 {
	switch mode {
	case Multiply:
		return func(b, s float64) float64 { return b * s }
	case Screen:
		return func(b, s float64) float64 { return b + s - b*s }
	case Overlay:
		// HardLight with the operands swapped.
		return func(b, s float64) float64 { return hardLight(s, b) }
	case Darken:
		return math.Min
	case Lighten:
		return math.Max
	case ColorDodge:
		return func(b, s float64) float64 {
			if b == 0 {
				return 0
			}
			if s == 1 {
				return 1
			}
			return math.Min(1, b/(1-s))
		}
	case ColorBurn:
		return func(b, s float64) float64 {
			if b == 1 {
				return 1
			}
			if s == 0 {
				return 0
			}
			return 1 - math.Min(1, (1-b)/s)
		}
	case HardLight:
		return hardLight
	case SoftLight:
		return softLight
	case Difference:
		return func(b, s float64) float64 { return math.Abs(b - s) }
	case Exclusion:
		return func(b, s float64) float64 { return b + s - 2*b*s }
	default: // Normal
		return func(_, s float64) float64 { return s }
	}
}

// hardLight multiplies or screens depending on the source value.
func hardLight(b, s float64) float64 {
	if s <= 0.5 {
		return b * (2 * s)
	}
	d := 2*s - 1
	return b + d - b*d
}

// softLight is the W3C soft-light curve.
func softLight(b, s float64) float64 {
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*s-1)*(d-b)
}
