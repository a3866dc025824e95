package builtin

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/overlay"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"
)

// maskPad is the transparent margin around a rasterized run, so
// antialiased edges are never clipped by the mask bounds.
const maskPad = 1

// placedGlyph is one shaped glyph with its pen position relative to the
// run origin.
type placedGlyph struct {
	r    rune
	x, y float64
}

// shapedRun is the output of shaping one run: positioned glyphs and the
// total advance width.
type shapedRun struct {
	glyphs []placedGlyph
	width  float64
}

// shapeRun positions the glyphs of text at the given size using HarfBuzz
// shaping, so advances carry kerning and the run direction follows the
// text's bidi class.
func shapeRun(data []byte, text string, size float64) (*shapedRun, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}

	runes := []rune(text)
	dir := detectDirection(text)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: dir,
		Face:      face,
		Size:      fixed.Int26_6(size * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	var shaper shaping.HarfbuzzShaper
	output := shaper.Shape(input)

	run := &shapedRun{glyphs: make([]placedGlyph, 0, len(output.Glyphs))}
	var x, y float64
	for _, g := range output.Glyphs {
		idx := g.TextIndex()
		if idx < 0 || idx >= len(runes) {
			continue
		}
		run.glyphs = append(run.glyphs, placedGlyph{
			r: runes[idx],
			x: x + fixedToFloat(g.XOffset),
			y: y - fixedToFloat(g.YOffset),
		})
		x += fixedToFloat(g.Advance)
	}
	run.width = x
	return run, nil
}

// rasterizeRun renders a shaped run into a white-on-transparent coverage
// mask whose origin is maskPad above and left of the pen start. The
// returned ascent places the baseline relative to the run's top.
func rasterizeRun(data []byte, run *shapedRun, size float64) (*overlay.Pixmap, float64, error) {
	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, 0, fmt.Errorf("parse font: %w", err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("create face: %w", err)
	}
	defer face.Close()

	metrics := face.Metrics()
	ascent := fixedToFloat(metrics.Ascent)
	descent := fixedToFloat(metrics.Descent)

	w := int(math.Ceil(run.width)) + 2*maskPad
	h := int(math.Ceil(ascent+descent)) + 2*maskPad
	coverage := image.NewAlpha(image.Rect(0, 0, w, h))

	for _, g := range run.glyphs {
		dot := fixed.Point26_6{
			X: fixed.Int26_6((g.x + maskPad) * 64),
			Y: fixed.Int26_6((g.y + ascent + maskPad) * 64),
		}
		dr, glyphMask, maskp, _, ok := face.Glyph(dot, g.r)
		if !ok {
			continue
		}
		draw.DrawMask(coverage, dr, image.White, image.Point{}, glyphMask, maskp, draw.Over)
	}

	mask := overlay.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			a := coverage.AlphaAt(x, y).A
			if a > 0 {
				mask.SetPixel(x, y, overlay.RGBA{R: 1, G: 1, B: 1, A: float64(a) / 255})
			}
		}
	}
	return mask, ascent, nil
}

// detectDirection maps the text's bidi paragraph direction to a shaping
// direction. Mixed and neutral paragraphs shape left-to-right.
func detectDirection(text string) di.Direction {
	var p bidi.Paragraph
	if _, err := p.SetString(text); err != nil {
		return di.DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return di.DirectionLTR
	}
	if ordering.Direction() == bidi.RightToLeft {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
