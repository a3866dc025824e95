// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"strings"

	"github.com/gogpu/overlay"
)

// SVGSurface is the vector-accumulator canvas. Every scope becomes a
// wrapped <g> element carrying transform and opacity attributes; shape
// primitives become their matching SVG elements. Pixel blits and filters
// have no vector equivalent and are silently omitted.
type SVGSurface struct {
	width  int
	height int
	buf    strings.Builder
	depth  int
}

// NewSVGSurface creates a vector canvas with the given nominal size.
func NewSVGSurface(width, height int) *SVGSurface {
	return &SVGSurface{width: width, height: height}
}

// Size returns the nominal canvas dimensions.
func (s *SVGSurface) Size() (int, int) {
	return s.width, s.height
}

// Push opens a <g> element mirroring the scope's transform, opacity, and
// blend mode.
func (s *SVGSurface) Push(st State) {
	s.buf.WriteString("<g")
	if !st.Transform.IsIdentity() {
		m := st.Transform
		// SVG matrix(a b c d e f) maps x' = a*x + c*y + e.
		fmt.Fprintf(&s.buf, ` transform="matrix(%s %s %s %s %s %s)"`,
			fnum(m.A), fnum(m.D), fnum(m.B), fnum(m.E), fnum(m.C), fnum(m.F))
	}
	if st.Opacity < 1 {
		fmt.Fprintf(&s.buf, ` opacity="%s"`, fnum(clamp01(st.Opacity)))
	}
	if st.Blend != overlay.BlendNormal {
		fmt.Fprintf(&s.buf, ` style="mix-blend-mode:%s"`, st.Blend)
	}
	s.buf.WriteString(">")
	s.depth++
}

// Pop closes the innermost <g> element.
func (s *SVGSurface) Pop() {
	if s.depth == 0 {
		return
	}
	s.buf.WriteString("</g>")
	s.depth--
}

// FillPath emits the filled form of the path's shape element.
func (s *SVGSurface) FillPath(p *Path, c overlay.RGBA) {
	if p.IsEmpty() || !p.Closed() {
		return
	}
	s.writeShape(p, fmt.Sprintf(` fill="%s"%s`, c.Hex(), alphaAttr("fill-opacity", c.A)))
}

// StrokePath emits the stroked form of the path's shape element.
func (s *SVGSurface) StrokePath(p *Path, st Stroke) {
	if p.IsEmpty() || st.Width <= 0 || st.Color.A <= 0 {
		return
	}
	attrs := fmt.Sprintf(` fill="none" stroke="%s" stroke-width="%s"%s`,
		st.Color.Hex(), fnum(st.Width), alphaAttr("stroke-opacity", st.Color.A))
	if len(st.Dash) > 0 {
		parts := make([]string, len(st.Dash))
		for i, d := range st.Dash {
			parts[i] = fnum(d)
		}
		attrs += fmt.Sprintf(` stroke-dasharray="%s"`, strings.Join(parts, " "))
	}
	s.writeShape(p, attrs)
}

// DrawText emits a <text> element at the run's baseline origin.
func (s *SVGSurface) DrawText(r TextRun) {
	if r.Text == "" || r.Color.A <= 0 {
		return
	}
	family := r.Family
	if family == "" {
		family = "sans-serif"
	}
	fmt.Fprintf(&s.buf,
		`<text x="%s" y="%s" font-family="%s" font-size="%s" fill="%s"%s>%s</text>`,
		fnum(r.X), fnum(r.Y), escapeText(family), fnum(r.Size), r.Color.Hex(),
		alphaAttr("fill-opacity", r.Color.A), escapeText(r.Text))
}

// DrawImage is a no-op: raster blits are omitted from vector output.
func (s *SVGSurface) DrawImage(img *overlay.Pixmap, x, y float64) {
	overlay.Logger().Debug("svg surface: raster blit omitted")
}

// Markup returns the accumulated elements, closing any scopes still open.
func (s *SVGSurface) Markup() string {
	out := s.buf.String()
	for i := 0; i < s.depth; i++ {
		out += "</g>"
	}
	return out
}

// Document returns a complete standalone SVG document.
func (s *SVGSurface) Document() string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">%s</svg>`,
		s.width, s.height, s.width, s.height, s.Markup())
}

// InjectInto inserts the accumulated elements into existing SVG markup,
// immediately before the closing </svg> tag. When the markup has no
// closing tag the elements are appended.
func (s *SVGSurface) InjectInto(markup string) string {
	content := s.Markup()
	if i := strings.LastIndex(markup, "</svg>"); i >= 0 {
		return markup[:i] + content + markup[i:]
	}
	return markup + content
}

// writeShape emits the element matching the path's construction kind.
func (s *SVGSurface) writeShape(p *Path, attrs string) {
	switch p.Kind() {
	case KindRect:
		r := p.Rect()
		fmt.Fprintf(&s.buf, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`,
			fnum(r.X), fnum(r.Y), fnum(r.W), fnum(r.H), attrs)
	case KindEllipse:
		r := p.Rect()
		fmt.Fprintf(&s.buf, `<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s/>`,
			fnum(r.X+r.W/2), fnum(r.Y+r.H/2), fnum(r.W/2), fnum(r.H/2), attrs)
	case KindLine:
		pts := p.Points()
		fmt.Fprintf(&s.buf, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
			fnum(pts[0].X), fnum(pts[0].Y), fnum(pts[1].X), fnum(pts[1].Y), attrs)
	case KindPolygon:
		fmt.Fprintf(&s.buf, `<polygon points="%s"%s/>`, pointList(p.Points()), attrs)
	default:
		if p.Closed() {
			fmt.Fprintf(&s.buf, `<polygon points="%s"%s/>`, pointList(p.Points()), attrs)
		} else {
			fmt.Fprintf(&s.buf, `<polyline points="%s"%s/>`, pointList(p.Points()), attrs)
		}
	}
}

// pointList formats points as an SVG points attribute value.
func pointList(pts []overlay.Point) string {
	var b strings.Builder
	for i, pt := range pts {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(fnum(pt.X))
		b.WriteByte(',')
		b.WriteString(fnum(pt.Y))
	}
	return b.String()
}

// alphaAttr renders an opacity attribute, omitted when fully opaque.
func alphaAttr(name string, a float64) string {
	if a >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%s"`, name, fnum(clamp01(a)))
}

// fnum formats a float compactly, trimming trailing zeros.
func fnum(v float64) string {
	out := strings.TrimRight(fmt.Sprintf("%.4f", v), "0")
	return strings.TrimSuffix(out, ".")
}

// escapeText escapes the XML special characters in text content.
func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
