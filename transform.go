package overlay

import "math"

// Transform describes a layer's placement: position and size, rotation in
// degrees, non-uniform scale, and an anchor expressed as a fraction of the
// layer's own bounds. The anchor is the pivot for both rotation and scale
// and is never given in absolute coordinates.
type Transform struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	ScaleX   float64 `json:"scaleX"`
	ScaleY   float64 `json:"scaleY"`
	AnchorX  float64 `json:"anchorX"`
	AnchorY  float64 `json:"anchorY"`
}

// DefaultTransform creates a transform for the given bounds with no
// rotation, unit scale, and a centered anchor.
func DefaultTransform(x, y, w, h float64) Transform {
	return Transform{
		X: x, Y: y, Width: w, Height: h,
		ScaleX: 1, ScaleY: 1,
		AnchorX: 0.5, AnchorY: 0.5,
	}
}

// Bounds returns the layer's untransformed bounds. Renderers draw into
// these bounds; the placement matrix is applied by the canvas.
func (t Transform) Bounds() Rect {
	return Rect{X: t.X, Y: t.Y, W: t.Width, H: t.Height}
}

// Matrix returns the placement matrix: translate to the anchor point,
// rotate, apply non-uniform scale, translate back. This order guarantees
// rotation and scale pivot around the anchor regardless of x/y.
func (t Transform) Matrix() Matrix {
	px := t.X + t.AnchorX*t.Width
	py := t.Y + t.AnchorY*t.Height

	m := Translation(px, py)
	if t.Rotation != 0 {
		m = m.Multiply(Rotation(t.Rotation * math.Pi / 180))
	}
	if t.ScaleX != 1 || t.ScaleY != 1 {
		m = m.Multiply(Scaling(t.ScaleX, t.ScaleY))
	}
	return m.Multiply(Translation(-px, -py))
}

// TransformPatch is a partial transform update. Nil fields are left
// unchanged by Stack.UpdateTransform.
type TransformPatch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	ScaleX   *float64
	ScaleY   *float64
	AnchorX  *float64
	AnchorY  *float64
}

// apply merges the patch into t.
func (p TransformPatch) apply(t *Transform) {
	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}
	set(&t.X, p.X)
	set(&t.Y, p.Y)
	set(&t.Width, p.Width)
	set(&t.Height, p.Height)
	set(&t.Rotation, p.Rotation)
	set(&t.ScaleX, p.ScaleX)
	set(&t.ScaleY, p.ScaleY)
	set(&t.AnchorX, p.AnchorX)
	set(&t.AnchorY, p.AnchorY)
}
