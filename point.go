package overlay

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an axis-aligned rectangle given by origin and size.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from origin and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// MaxDim returns the larger of width and height.
func (r Rect) MaxDim() float64 {
	if r.W > r.H {
		return r.W
	}
	return r.H
}

// IsEmpty reports whether the rectangle has no area after rounding to
// whole pixels.
func (r Rect) IsEmpty() bool {
	return int(r.W+0.5) <= 0 || int(r.H+0.5) <= 0
}
