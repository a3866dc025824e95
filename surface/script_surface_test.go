// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"testing"

	"github.com/gogpu/overlay"
)

// drawScene issues the same command sequence against any canvas.
func drawScene(c Canvas) {
	c.Push(State{Transform: overlay.Translation(2, 2), Opacity: 0.8, Blend: overlay.BlendMultiply})
	c.FillPath(RectPath(overlay.Rect{X: 1, Y: 1, W: 10, H: 8}), overlay.RGBA{R: 1, A: 1})
	c.StrokePath(LinePath(overlay.Point{X: 0, Y: 0}, overlay.Point{X: 12, Y: 12}),
		Stroke{Color: overlay.RGBA{B: 1, A: 1}, Width: 2, Dash: []float64{4, 2}})
	c.Pop()

	img := overlay.NewPixmap(3, 3)
	img.Clear(overlay.RGBA{G: 1, A: 1})
	c.DrawImage(img, 14, 14)
}

func TestScriptSurface_ReplayMatchesDirect(t *testing.T) {
	direct := NewImageSurface(24, 24)
	drawScene(direct)

	script := NewScriptSurface(24, 24)
	drawScene(script)

	data, err := script.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	replayed := NewImageSurface(24, 24)
	if err := decoded.Replay(replayed); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if !bytes.Equal(direct.Pixmap().Data(), replayed.Pixmap().Data()) {
		t.Error("replayed raster differs from direct raster")
	}
}

func TestScriptSurface_RecordsFilters(t *testing.T) {
	s := NewScriptSurface(32, 32)
	s.ApplyFilter("grain", overlay.Properties{"seed": 7.0, "intensity": 0.5},
		overlay.Rect{X: 0, Y: 0, W: 32, H: 32})

	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// Replaying against a pixel canvas executes the filter.
	target := NewImageSurface(32, 32)
	target.Pixmap().Clear(overlay.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})
	before := append([]uint8(nil), target.Pixmap().Data()...)
	if err := decoded.Replay(target); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if bytes.Equal(before, target.Pixmap().Data()) {
		t.Error("replayed filter left pixels unchanged")
	}

	// Replaying against another command stream forwards the record.
	sink := NewScriptSurface(32, 32)
	if err := decoded.Replay(sink); err != nil {
		t.Fatalf("Replay onto sink: %v", err)
	}
	if sink.Len() != 1 {
		t.Errorf("forwarded sink Len() = %d, want 1", sink.Len())
	}
}

func TestScriptSurface_FilterDeterminismAcrossContexts(t *testing.T) {
	// The same grain parameters must produce byte-identical output whether
	// applied directly or replayed from the command stream.
	params := overlay.Properties{"seed": 42.0, "intensity": 0.4}
	bounds := overlay.Rect{W: 16, H: 16}

	direct := NewImageSurface(16, 16)
	direct.Pixmap().Clear(overlay.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})
	script := NewScriptSurface(16, 16)
	script.ApplyFilter("grain", params, bounds)

	replayTarget := NewImageSurface(16, 16)
	replayTarget.Pixmap().Clear(overlay.RGBA{R: 0.5, G: 0.5, B: 0.5, A: 1})

	data, _ := script.Encode()
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := decoded.Replay(replayTarget); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	directScript := NewScriptSurface(16, 16)
	directScript.ApplyFilter("grain", params, bounds)
	if err := directScript.Replay(direct); err != nil {
		t.Fatalf("Replay: %v", err)
	}

	if !bytes.Equal(direct.Pixmap().Data(), replayTarget.Pixmap().Data()) {
		t.Error("grain output drifted between direct and round-tripped replay")
	}
}

func TestScriptSurface_TextMaskRoundTrip(t *testing.T) {
	mask := overlay.NewPixmap(4, 4)
	mask.Clear(overlay.White)

	s := NewScriptSurface(16, 16)
	s.DrawText(TextRun{
		Text:  "hi",
		X:     2,
		Y:     10,
		Size:  12,
		Color: overlay.RGBA{R: 1, A: 1},
		Mask:  mask,
		MaskX: 2,
		MaskY: 2,
	})

	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	target := NewImageSurface(16, 16)
	if err := decoded.Replay(target); err != nil {
		t.Fatalf("Replay: %v", err)
	}
	if c := target.Pixmap().GetPixel(3, 3); c.R < 1 || c.A < 1 {
		t.Errorf("masked text pixel = %+v, want tint", c)
	}
}

func TestScriptSurface_UnknownCommandSkipped(t *testing.T) {
	decoded, err := Decode([]byte(`[{"op":"teleport"},{"op":"pop"}]`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if err := decoded.Replay(NewImageSurface(4, 4)); err != nil {
		t.Errorf("Replay with unknown op: %v, want nil", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte(`{not json`)); err == nil {
		t.Error("Decode(malformed) = nil error")
	}
}
