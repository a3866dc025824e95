package live

import (
	"testing"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/surface"
)

func testRegistry() *composite.Registry {
	reg := composite.NewRegistry()
	reg.Register("shapes:rect", composite.LayerType{
		Category: "shapes",
		Render: func(ctx *composite.RenderContext) {
			ctx.Canvas.FillPath(surface.RectPath(ctx.Bounds), ctx.Props.Color("fill", overlay.RGBA{A: 1}))
		},
	})
	return reg
}

func rectLayer(x, y, w, h float64, fill string) *overlay.Layer {
	return &overlay.Layer{
		ID:        overlay.NewID(),
		Type:      "shapes:rect",
		Visible:   true,
		Opacity:   1,
		Transform: overlay.DefaultTransform(x, y, w, h),
		Properties: overlay.Properties{
			"fill": fill,
		},
	}
}

func TestMessage_RoundTrip(t *testing.T) {
	msg := UpdateLayers([]*overlay.Layer{rectLayer(0, 0, 10, 10, "#ff0000")})
	data, err := msg.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Type != TypeUpdateLayers {
		t.Errorf("type = %q, want %q", got.Type, TypeUpdateLayers)
	}
	if len(got.Layers) != 1 || got.Layers[0].Type != "shapes:rect" {
		t.Fatalf("layers = %+v, want the rect back", got.Layers)
	}
	if got.Layers[0].Properties.String("fill", "") != "#ff0000" {
		t.Errorf("fill = %q, want preserved", got.Layers[0].Properties.String("fill", ""))
	}
}

func TestDecode_Malformed(t *testing.T) {
	if _, err := Decode([]byte("{not json")); err == nil {
		t.Error("Decode(malformed) = nil error")
	}
}

func TestSession_UpdateReplacesSnapshot(t *testing.T) {
	target := surface.NewImageSurface(40, 40)
	target.Pixmap().Clear(overlay.RGBA{R: 1, G: 1, B: 1, A: 1})
	s := NewSession(target, testRegistry(), nil, composite.Options{})

	// First snapshot: red rect on the left half.
	s.Composite([]*overlay.Layer{rectLayer(0, 0, 20, 40, "#ff0000")})
	if c := target.Pixmap().GetPixel(5, 20); c.R < 0.99 || c.G > 0.01 {
		t.Fatalf("after v1, left pixel = %+v, want red", c)
	}

	// Second snapshot drops the red rect and adds a blue one on the right.
	s.Composite([]*overlay.Layer{rectLayer(20, 0, 20, 40, "#0000ff")})
	if c := target.Pixmap().GetPixel(5, 20); c.R < 0.99 || c.G < 0.99 || c.B < 0.99 {
		t.Errorf("after v2, left pixel = %+v, want the clean white base restored", c)
	}
	if c := target.Pixmap().GetPixel(35, 20); c.B < 0.99 || c.R > 0.01 {
		t.Errorf("after v2, right pixel = %+v, want blue", c)
	}
	if len(s.Layers()) != 1 || s.Layers()[0].Type != "shapes:rect" {
		t.Errorf("snapshot = %+v, want the v2 layer retained", s.Layers())
	}
}

func TestSession_Handle(t *testing.T) {
	target := surface.NewImageSurface(40, 40)
	s := NewSession(target, testRegistry(), nil, composite.Options{})

	data, err := UpdateLayers([]*overlay.Layer{rectLayer(0, 0, 40, 40, "#00ff00")}).Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if err := s.Handle(data); err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if c := target.Pixmap().GetPixel(20, 20); c.G < 0.99 {
		t.Errorf("pixel = %+v, want the update rendered", c)
	}

	t.Run("unknown type is ignored", func(t *testing.T) {
		before := s.Layers()
		if err := s.Handle([]byte(`{"type":"design:unknown"}`)); err != nil {
			t.Fatalf("Handle(unknown) = %v, want nil", err)
		}
		if len(s.Layers()) != len(before) {
			t.Error("unknown message changed the snapshot")
		}
	})

	t.Run("malformed data errors", func(t *testing.T) {
		if err := s.Handle([]byte("garbage")); err == nil {
			t.Error("Handle(garbage) = nil error")
		}
	})
}
