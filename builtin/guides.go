package builtin

import (
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/surface"
)

// Guides are stroke-only overlays. They share the style properties
// "color" (default magenta), "width" (default 1), and "dash"
// (comma-separated pattern, default 6,4). They never touch pixel data.

// goldenRatio positions the golden-section guides: 1/phi of the span.
const goldenRatio = 0.6180339887498949

// defaultGridSpacing is the grid cell size in user units.
const defaultGridSpacing = 20.0

func guideStroke(props overlay.Properties) surface.Stroke {
	st := surface.Stroke{
		Color: props.Color("color", overlay.Hex("#ff00ff")),
		Width: props.Float("width", 1),
		Dash:  append([]float64(nil), overlay.DefaultDash...),
	}
	if s, ok := props["dash"].(string); ok {
		st.Dash = overlay.ParseDash(s)
	}
	return st
}

// strokeLines strokes each consecutive point pair as one segment.
func strokeLines(canvas surface.Canvas, st surface.Stroke, pts []overlay.Point) {
	for i := 0; i+1 < len(pts); i += 2 {
		canvas.StrokePath(surface.LinePath(pts[i], pts[i+1]), st)
	}
}

func renderGridGuide(ctx *composite.RenderContext) {
	b := ctx.Bounds
	spacing := ctx.Props.Float("spacing", defaultGridSpacing)
	if spacing <= 0 {
		spacing = defaultGridSpacing
	}
	st := guideStroke(ctx.Props)
	var pts []overlay.Point
	for x := b.X + spacing; x < b.X+b.W; x += spacing {
		pts = append(pts, overlay.Point{X: x, Y: b.Y}, overlay.Point{X: x, Y: b.Y + b.H})
	}
	for y := b.Y + spacing; y < b.Y+b.H; y += spacing {
		pts = append(pts, overlay.Point{X: b.X, Y: y}, overlay.Point{X: b.X + b.W, Y: y})
	}
	strokeLines(ctx.Canvas, st, pts)
}

func renderThirdsGuide(ctx *composite.RenderContext) {
	renderSectionGuide(ctx, 1.0/3.0, 2.0/3.0)
}

func renderGoldenGuide(ctx *composite.RenderContext) {
	renderSectionGuide(ctx, 1-goldenRatio, goldenRatio)
}

// renderSectionGuide strokes two vertical and two horizontal lines at
// the given fractions of the bounds.
func renderSectionGuide(ctx *composite.RenderContext, fa, fb float64) {
	b := ctx.Bounds
	st := guideStroke(ctx.Props)
	pts := make([]overlay.Point, 0, 8)
	for _, f := range []float64{fa, fb} {
		x := b.X + f*b.W
		y := b.Y + f*b.H
		pts = append(pts,
			overlay.Point{X: x, Y: b.Y}, overlay.Point{X: x, Y: b.Y + b.H},
			overlay.Point{X: b.X, Y: y}, overlay.Point{X: b.X + b.W, Y: y},
		)
	}
	strokeLines(ctx.Canvas, st, pts)
}

func renderDiagonalGuide(ctx *composite.RenderContext) {
	b := ctx.Bounds
	st := guideStroke(ctx.Props)
	strokeLines(ctx.Canvas, st, []overlay.Point{
		{X: b.X, Y: b.Y}, {X: b.X + b.W, Y: b.Y + b.H},
		{X: b.X + b.W, Y: b.Y}, {X: b.X, Y: b.Y + b.H},
	})
}

// renderCustomGuide strokes caller-declared segments: "points" is
// consumed pairwise, each pair one segment. A trailing unpaired point is
// ignored; fewer than two points draw nothing.
func renderCustomGuide(ctx *composite.RenderContext) {
	pts := ctx.Props.Points("points")
	if len(pts) < 2 {
		return
	}
	strokeLines(ctx.Canvas, guideStroke(ctx.Props), pts)
}
