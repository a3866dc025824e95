// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"math"

	"github.com/gogpu/overlay"
)

// PathKind records how a path was constructed. Vector backends use it to
// emit the matching markup element instead of a generic path.
type PathKind uint8

// Path kind constants.
const (
	KindFreeform PathKind = iota
	KindRect
	KindEllipse
	KindLine
	KindPolygon
)

// Path is a vector path built from one of the engine's closed set of
// primitives. Raster backends consume the flattened point form; vector
// backends consume the kind and its parameters.
type Path struct {
	kind   PathKind
	rect   overlay.Rect
	points []overlay.Point
	closed bool
}

// ellipseSegments is the flattening resolution for ellipse outlines.
const ellipseSegments = 64

// RectPath creates an axis-aligned rectangle path.
func RectPath(r overlay.Rect) *Path {
	return &Path{
		kind: KindRect,
		rect: r,
		points: []overlay.Point{
			{X: r.X, Y: r.Y},
			{X: r.X + r.W, Y: r.Y},
			{X: r.X + r.W, Y: r.Y + r.H},
			{X: r.X, Y: r.Y + r.H},
		},
		closed: true,
	}
}

// EllipsePath creates an ellipse path inscribed in r.
func EllipsePath(r overlay.Rect) *Path {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	rx, ry := r.W/2, r.H/2
	pts := make([]overlay.Point, 0, ellipseSegments)
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		pts = append(pts, overlay.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)})
	}
	return &Path{kind: KindEllipse, rect: r, points: pts, closed: true}
}

// LinePath creates a single line segment path.
func LinePath(a, b overlay.Point) *Path {
	return &Path{kind: KindLine, points: []overlay.Point{a, b}}
}

// PolygonPath creates a closed polygon path from at least three vertices.
// Fewer vertices yield an empty path.
func PolygonPath(pts []overlay.Point) *Path {
	if len(pts) < 3 {
		return &Path{kind: KindPolygon}
	}
	cp := make([]overlay.Point, len(pts))
	copy(cp, pts)
	return &Path{kind: KindPolygon, points: cp, closed: true}
}

// PolylinePath creates an open polyline path from at least two vertices.
func PolylinePath(pts []overlay.Point) *Path {
	if len(pts) < 2 {
		return &Path{}
	}
	cp := make([]overlay.Point, len(pts))
	copy(cp, pts)
	return &Path{kind: KindFreeform, points: cp}
}

// Kind returns how the path was constructed.
func (p *Path) Kind() PathKind {
	return p.kind
}

// Rect returns the defining rectangle for KindRect and KindEllipse paths.
func (p *Path) Rect() overlay.Rect {
	return p.rect
}

// Points returns the flattened outline vertices.
func (p *Path) Points() []overlay.Point {
	return p.points
}

// Closed reports whether the outline is a closed loop.
func (p *Path) Closed() bool {
	return p.closed
}

// IsEmpty reports whether the path has no usable geometry.
func (p *Path) IsEmpty() bool {
	if p == nil {
		return true
	}
	if p.closed {
		return len(p.points) < 3
	}
	return len(p.points) < 2
}

// rebuildPath reconstructs a path from its serialized form. Rect and
// ellipse kinds are rebuilt from their rectangle so the flattened outline
// matches a directly constructed path exactly.
func rebuildPath(kind PathKind, rect overlay.Rect, pts []overlay.Point, closed bool) *Path {
	switch kind {
	case KindRect:
		return RectPath(rect)
	case KindEllipse:
		return EllipsePath(rect)
	case KindLine:
		if len(pts) == 2 {
			return LinePath(pts[0], pts[1])
		}
		return &Path{kind: KindLine}
	case KindPolygon:
		return PolygonPath(pts)
	default:
		p := PolylinePath(pts)
		p.closed = closed
		return p
	}
}

// transformed returns the outline vertices mapped through m.
func (p *Path) transformed(m overlay.Matrix) []overlay.Point {
	if m.IsIdentity() {
		return p.points
	}
	out := make([]overlay.Point, len(p.points))
	for i, pt := range p.points {
		out[i] = m.Apply(pt)
	}
	return out
}
