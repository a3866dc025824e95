// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"math"
	"sort"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/internal/blend"
)

// ImageSurface is the CPU raster canvas backed by a Pixmap. It is the
// host-process execution context and the replay target for the sandboxed
// command stream.
type ImageSurface struct {
	pm     *overlay.Pixmap
	states []scopeState
}

// scopeState is the accumulated drawing state for one scope level.
type scopeState struct {
	transform overlay.Matrix
	opacity   float64
	mode      blend.Mode
}

// NewImageSurface creates a transparent raster canvas of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	return NewImageSurfaceFrom(overlay.NewPixmap(width, height))
}

// NewImageSurfaceFrom creates a raster canvas drawing into an existing
// pixmap.
func NewImageSurfaceFrom(pm *overlay.Pixmap) *ImageSurface {
	return &ImageSurface{
		pm: pm,
		states: []scopeState{{
			transform: overlay.Identity(),
			opacity:   1,
			mode:      blend.Normal,
		}},
	}
}

// Pixmap returns the pixmap the canvas draws into.
func (s *ImageSurface) Pixmap() *overlay.Pixmap {
	return s.pm
}

// Size returns the canvas dimensions in pixels.
func (s *ImageSurface) Size() (int, int) {
	return s.pm.Width(), s.pm.Height()
}

// top returns the current scope state.
func (s *ImageSurface) top() scopeState {
	return s.states[len(s.states)-1]
}

// Push opens a new drawing scope.
func (s *ImageSurface) Push(st State) {
	cur := s.top()
	s.states = append(s.states, scopeState{
		transform: cur.transform.Multiply(st.Transform),
		opacity:   cur.opacity * clamp01(st.Opacity),
		mode:      toBlendMode(st.Blend),
	})
}

// Pop closes the innermost scope.
func (s *ImageSurface) Pop() {
	if len(s.states) > 1 {
		s.states = s.states[:len(s.states)-1]
	}
}

// FillPath fills the path with a solid color under the current scope.
func (s *ImageSurface) FillPath(p *Path, c overlay.RGBA) {
	if p.IsEmpty() || !p.Closed() {
		return
	}
	cur := s.top()
	s.fillPolygon(p.transformed(cur.transform), c, cur)
}

// StrokePath strokes the path outline under the current scope.
func (s *ImageSurface) StrokePath(p *Path, st Stroke) {
	if p.IsEmpty() || st.Width <= 0 || st.Color.A <= 0 {
		return
	}
	cur := s.top()
	half := st.Width / 2
	for _, seg := range dashSegments(p, st.Dash) {
		dx := seg[1].X - seg[0].X
		dy := seg[1].Y - seg[0].Y
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// Perpendicular offset in user space; the quad is transformed as
		// a whole so stroke width follows the layer's scale.
		nx := -dy / length * half
		ny := dx / length * half
		quad := []overlay.Point{
			{X: seg[0].X + nx, Y: seg[0].Y + ny},
			{X: seg[1].X + nx, Y: seg[1].Y + ny},
			{X: seg[1].X - nx, Y: seg[1].Y - ny},
			{X: seg[0].X - nx, Y: seg[0].Y - ny},
		}
		for i, pt := range quad {
			quad[i] = cur.transform.Apply(pt)
		}
		s.fillPolygon(quad, st.Color, cur)
	}
}

// DrawText blits the run's pre-rasterized mask tinted with its color.
// Runs without a mask are skipped: the raster context cannot shape text
// itself.
func (s *ImageSurface) DrawText(r TextRun) {
	if r.Mask == nil || r.Color.A <= 0 {
		overlay.Logger().Debug("image surface: text run without mask skipped")
		return
	}
	cur := s.top()
	if cur.transform.IsIdentity() {
		for my := 0; my < r.Mask.Height(); my++ {
			for mx := 0; mx < r.Mask.Width(); mx++ {
				a := r.Mask.GetPixel(mx, my).A
				if a <= 0 {
					continue
				}
				x := int(math.Floor(r.MaskX)) + mx
				y := int(math.Floor(r.MaskY)) + my
				s.put(x, y, r.Color.WithAlpha(r.Color.A*a), cur)
			}
		}
		return
	}
	s.blitTransformed(r.Mask, r.MaskX, r.MaskY, cur, func(c overlay.RGBA) overlay.RGBA {
		return r.Color.WithAlpha(r.Color.A * c.A)
	})
}

// DrawImage blits a pixmap with its top-left corner at (x, y).
func (s *ImageSurface) DrawImage(img *overlay.Pixmap, x, y float64) {
	if img == nil {
		return
	}
	cur := s.top()
	if cur.transform.IsIdentity() {
		ox, oy := int(math.Floor(x)), int(math.Floor(y))
		for sy := 0; sy < img.Height(); sy++ {
			for sx := 0; sx < img.Width(); sx++ {
				c := img.GetPixel(sx, sy)
				if c.A <= 0 {
					continue
				}
				s.put(ox+sx, oy+sy, c, cur)
			}
		}
		return
	}
	s.blitTransformed(img, x, y, cur, func(c overlay.RGBA) overlay.RGBA { return c })
}

// blitTransformed draws src under an arbitrary transform using inverse
// mapping with nearest-neighbor sampling, so scaled blits have no holes.
func (s *ImageSurface) blitTransformed(src *overlay.Pixmap, x, y float64, cur scopeState, shade func(overlay.RGBA) overlay.RGBA) {
	w, h := float64(src.Width()), float64(src.Height())
	corners := []overlay.Point{
		cur.transform.Apply(overlay.Point{X: x, Y: y}),
		cur.transform.Apply(overlay.Point{X: x + w, Y: y}),
		cur.transform.Apply(overlay.Point{X: x + w, Y: y + h}),
		cur.transform.Apply(overlay.Point{X: x, Y: y + h}),
	}
	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = math.Min(minX, c.X)
		minY = math.Min(minY, c.Y)
		maxX = math.Max(maxX, c.X)
		maxY = math.Max(maxY, c.Y)
	}

	inv := cur.transform.Invert()
	for dy := int(math.Floor(minY)); dy <= int(math.Ceil(maxY)); dy++ {
		for dx := int(math.Floor(minX)); dx <= int(math.Ceil(maxX)); dx++ {
			sp := inv.Apply(overlay.Point{X: float64(dx) + 0.5, Y: float64(dy) + 0.5})
			sx := int(math.Floor(sp.X - x))
			sy := int(math.Floor(sp.Y - y))
			if sx < 0 || sy < 0 || sx >= src.Width() || sy >= src.Height() {
				continue
			}
			c := shade(src.GetPixel(sx, sy))
			if c.A <= 0 {
				continue
			}
			s.put(dx, dy, c, cur)
		}
	}
}

// ReadRegion implements PixelReadWriter. Regions are device-space and
// ignore the scope transform.
func (s *ImageSurface) ReadRegion(r image.Rectangle) *overlay.Pixmap {
	return s.pm.Region(r)
}

// WriteRegion implements PixelReadWriter.
func (s *ImageSurface) WriteRegion(x, y int, px *overlay.Pixmap) {
	s.pm.WriteRegion(x, y, px)
}

// fillPolygon rasterizes a closed polygon with even-odd scanline filling.
func (s *ImageSurface) fillPolygon(pts []overlay.Point, c overlay.RGBA, cur scopeState) {
	if len(pts) < 3 || c.A <= 0 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	y0 := int(math.Floor(minY))
	y1 := int(math.Ceil(maxY))
	if y1 < 0 || y0 >= s.pm.Height() {
		return
	}

	var xs []float64
	for y := max(y0, 0); y <= min(y1, s.pm.Height()-1); y++ {
		cy := float64(y) + 0.5
		xs = xs[:0]
		for i := range pts {
			a := pts[i]
			b := pts[(i+1)%len(pts)]
			if (a.Y <= cy && b.Y > cy) || (b.Y <= cy && a.Y > cy) {
				t := (cy - a.Y) / (b.Y - a.Y)
				xs = append(xs, a.X+t*(b.X-a.X))
			}
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			start := int(math.Ceil(xs[i] - 0.5))
			end := int(math.Floor(xs[i+1] - 0.5))
			for x := start; x <= end; x++ {
				s.put(x, y, c, cur)
			}
		}
	}
}

// put composites one straight-alpha source pixel under the scope's
// accumulated opacity and blend mode.
func (s *ImageSurface) put(x, y int, c overlay.RGBA, cur scopeState) {
	if x < 0 || y < 0 || x >= s.pm.Width() || y >= s.pm.Height() {
		return
	}
	a := c.A * cur.opacity
	if a <= 0 {
		return
	}
	data := s.pm.Data()
	i := (y*s.pm.Width() + x) * 4
	sr := uint8(clamp255f(c.R * 255))
	sg := uint8(clamp255f(c.G * 255))
	sb := uint8(clamp255f(c.B * 255))
	sa := uint8(clamp255f(a * 255))
	r, g, b, ra := blend.Pixel(cur.mode, sr, sg, sb, sa, data[i], data[i+1], data[i+2], data[i+3])
	data[i], data[i+1], data[i+2], data[i+3] = r, g, b, ra
}

// dashSegments expands a path outline into stroke segments, applying the
// dash pattern in user space. A nil pattern yields the plain segments.
func dashSegments(p *Path, dash []float64) [][2]overlay.Point {
	pts := p.Points()
	n := len(pts)
	if n < 2 {
		return nil
	}
	segCount := n - 1
	if p.Closed() {
		segCount = n
	}

	var out [][2]overlay.Point
	if len(dash) == 0 {
		for i := 0; i < segCount; i++ {
			out = append(out, [2]overlay.Point{pts[i], pts[(i+1)%n]})
		}
		return out
	}

	// Walk the outline continuously so the pattern flows across vertices.
	patIdx := 0
	patRemain := dash[0]
	drawing := true
	for i := 0; i < segCount; i++ {
		a := pts[i]
		b := pts[(i+1)%n]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for pos < segLen {
			step := math.Min(patRemain, segLen-pos)
			if drawing {
				t0 := pos / segLen
				t1 := (pos + step) / segLen
				out = append(out, [2]overlay.Point{
					{X: a.X + (b.X-a.X)*t0, Y: a.Y + (b.Y-a.Y)*t0},
					{X: a.X + (b.X-a.X)*t1, Y: a.Y + (b.Y-a.Y)*t1},
				})
			}
			pos += step
			patRemain -= step
			if patRemain <= 0 {
				patIdx = (patIdx + 1) % len(dash)
				patRemain = dash[patIdx]
				drawing = !drawing
			}
		}
	}
	return out
}

// toBlendMode converts the public blend enum to the internal operator set.
func toBlendMode(m overlay.BlendMode) blend.Mode {
	switch m {
	case overlay.BlendMultiply:
		return blend.Multiply
	case overlay.BlendScreen:
		return blend.Screen
	case overlay.BlendOverlay:
		return blend.Overlay
	case overlay.BlendDarken:
		return blend.Darken
	case overlay.BlendLighten:
		return blend.Lighten
	case overlay.BlendColorDodge:
		return blend.ColorDodge
	case overlay.BlendColorBurn:
		return blend.ColorBurn
	case overlay.BlendHardLight:
		return blend.HardLight
	case overlay.BlendSoftLight:
		return blend.SoftLight
	case overlay.BlendDifference:
		return blend.Difference
	case overlay.BlendExclusion:
		return blend.Exclusion
	case overlay.BlendHue:
		return blend.Hue
	case overlay.BlendSaturation:
		return blend.Saturation
	case overlay.BlendColor:
		return blend.Color
	case overlay.BlendLuminosity:
		return blend.Luminosity
	default:
		return blend.Normal
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clamp255f(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
