package builtin

import (
	"math"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/surface"
)

// Shape properties: "fill" (color, default black; the string "none"
// disables filling), "stroke" (color; its presence enables stroking),
// "strokeWidth" (default 1), "dash" (comma-separated pattern).
// Polygons additionally take "points" (explicit vertices) or "sides"
// (regular polygon inscribed in the bounds, default 5). Lines take
// "points" (two endpoints, default the bounds diagonal) and stroke even
// when no stroke color is declared.

func renderRect(ctx *composite.RenderContext) {
	paintShape(ctx, surface.RectPath(ctx.Bounds))
}

func renderEllipse(ctx *composite.RenderContext) {
	paintShape(ctx, surface.EllipsePath(ctx.Bounds))
}

func renderLine(ctx *composite.RenderContext) {
	b := ctx.Bounds
	a := overlay.Point{X: b.X, Y: b.Y}
	z := overlay.Point{X: b.X + b.W, Y: b.Y + b.H}
	if pts := ctx.Props.Points("points"); len(pts) == 2 {
		a, z = pts[0], pts[1]
	}
	ctx.Canvas.StrokePath(surface.LinePath(a, z), lineStroke(ctx.Props))
}

func renderPolygon(ctx *composite.RenderContext) {
	pts := ctx.Props.Points("points")
	if len(pts) < 3 {
		pts = regularPolygon(ctx.Bounds, ctx.Props.Int("sides", 5))
	}
	paintShape(ctx, surface.PolygonPath(pts))
}

// paintShape fills then strokes a closed shape per the shared property
// conventions.
func paintShape(ctx *composite.RenderContext, p *surface.Path) {
	if fill, ok := fillColor(ctx.Props); ok {
		ctx.Canvas.FillPath(p, fill)
	}
	if st, ok := strokeStyle(ctx.Props); ok {
		ctx.Canvas.StrokePath(p, st)
	}
}

// fillColor resolves the fill paint. Absent fills default to opaque
// black; "none" disables filling.
func fillColor(props overlay.Properties) (overlay.RGBA, bool) {
	if s, ok := props["fill"].(string); ok && s == "none" {
		return overlay.RGBA{}, false
	}
	return props.Color("fill", overlay.RGBA{A: 1}), true
}

// strokeStyle resolves the stroke paint. Stroking is opt-in: it runs
// only when a "stroke" color is declared.
func strokeStyle(props overlay.Properties) (surface.Stroke, bool) {
	if _, ok := props["stroke"]; !ok {
		return surface.Stroke{}, false
	}
	st := surface.Stroke{
		Color: props.Color("stroke", overlay.RGBA{A: 1}),
		Width: props.Float("strokeWidth", 1),
	}
	if s, ok := props["dash"].(string); ok {
		st.Dash = overlay.ParseDash(s)
	}
	return st, true
}

// lineStroke is strokeStyle without the opt-in: lines are stroke-only,
// so a missing stroke color falls back to black instead of skipping.
func lineStroke(props overlay.Properties) surface.Stroke {
	st := surface.Stroke{
		Color: props.Color("stroke", overlay.RGBA{A: 1}),
		Width: props.Float("strokeWidth", 1),
	}
	if s, ok := props["dash"].(string); ok {
		st.Dash = overlay.ParseDash(s)
	}
	return st
}

// regularPolygon returns n vertices inscribed in the bounds, first
// vertex at the top.
func regularPolygon(b overlay.Rect, n int) []overlay.Point {
	if n < 3 {
		n = 3
	}
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	rx, ry := b.W/2, b.H/2
	pts := make([]overlay.Point, n)
	for i := 0; i < n; i++ {
		a := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		pts[i] = overlay.Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
