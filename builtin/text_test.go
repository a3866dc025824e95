package builtin

import (
	"testing"

	"github.com/gogpu/overlay"
	"golang.org/x/image/font/gofont/goregular"
)

func TestRenderText(t *testing.T) {
	c := &recordCanvas{}
	render(t, "text:basic", overlay.Properties{
		"text":     "Hello",
		"fontSize": 24.0,
		"color":    "#0000ff",
	}, c)

	if len(c.texts) != 1 {
		t.Fatalf("drew %d text runs, want 1", len(c.texts))
	}
	run := c.texts[0]
	if run.Text != "Hello" || run.Size != 24 {
		t.Errorf("run = %+v, want text and size preserved", run)
	}
	if !near(run.Color.B, 1) {
		t.Errorf("color = %+v, want blue", run.Color)
	}
	if run.Mask == nil {
		t.Fatal("run has no coverage mask")
	}
	if run.Mask.Width() < 10 || run.Mask.Height() < 10 {
		t.Errorf("mask = %dx%d, implausibly small for 24px text", run.Mask.Width(), run.Mask.Height())
	}
	// The baseline sits below the bounds' top edge.
	if run.Y <= 10 {
		t.Errorf("baseline Y = %v, want below the bounds top", run.Y)
	}
}

func TestRenderText_EmptyIsNoop(t *testing.T) {
	c := &recordCanvas{}
	render(t, "text:basic", nil, c)
	if len(c.texts) != 0 {
		t.Errorf("drew %d runs for empty text, want 0", len(c.texts))
	}
}

func TestShapeRun(t *testing.T) {
	run, err := shapeRun(goregular.TTF, "AVA", 24)
	if err != nil {
		t.Fatalf("shapeRun: %v", err)
	}
	if len(run.glyphs) != 3 {
		t.Fatalf("shaped %d glyphs, want 3", len(run.glyphs))
	}
	if run.width <= 0 {
		t.Errorf("width = %v, want positive advance", run.width)
	}
	// Pen positions advance monotonically for LTR text.
	if !(run.glyphs[0].x < run.glyphs[1].x && run.glyphs[1].x < run.glyphs[2].x) {
		t.Errorf("glyph positions not advancing: %+v", run.glyphs)
	}
}

func TestShapeRun_BadFont(t *testing.T) {
	if _, err := shapeRun([]byte("not a font"), "x", 12); err == nil {
		t.Error("shapeRun(garbage) = nil error")
	}
}

func TestRasterizeRun(t *testing.T) {
	run, err := shapeRun(goregular.TTF, "Hg", 32)
	if err != nil {
		t.Fatalf("shapeRun: %v", err)
	}
	mask, ascent, err := rasterizeRun(goregular.TTF, run, 32)
	if err != nil {
		t.Fatalf("rasterizeRun: %v", err)
	}
	if ascent <= 0 {
		t.Errorf("ascent = %v, want positive", ascent)
	}

	// Some coverage must exist, and it must be white with varying alpha.
	var covered bool
	for y := 0; y < mask.Height() && !covered; y++ {
		for x := 0; x < mask.Width(); x++ {
			if c := mask.GetPixel(x, y); c.A > 0 {
				covered = true
				if c.R < 1 || c.G < 1 || c.B < 1 {
					t.Fatalf("covered pixel = %+v, want white", c)
				}
				break
			}
		}
	}
	if !covered {
		t.Error("mask has no coverage at all")
	}
}
