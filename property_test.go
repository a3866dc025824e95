package overlay

import "testing"

func TestProperties_Accessors(t *testing.T) {
	p := Properties{
		"intensity": 0.5,
		"size":      3,
		"label":     "hello",
		"mono":      true,
		"color":     "#ff0000",
		"points": []any{
			map[string]any{"x": 1.0, "y": 2.0},
			map[string]any{"x": 3.0, "y": 4.0},
			"garbage",
		},
	}

	if got := p.Float("intensity", 0); got != 0.5 {
		t.Errorf("Float(intensity) = %v, want 0.5", got)
	}
	if got := p.Float("size", 0); got != 3 {
		t.Errorf("Float(size) = %v, want 3 (int widened)", got)
	}
	if got := p.Float("missing", 7); got != 7 {
		t.Errorf("Float(missing) = %v, want default 7", got)
	}
	if got := p.Float("label", 7); got != 7 {
		t.Errorf("Float(wrong type) = %v, want default 7", got)
	}
	if got := p.Int("size", 0); got != 3 {
		t.Errorf("Int(size) = %v, want 3", got)
	}
	if got := p.String("label", ""); got != "hello" {
		t.Errorf("String(label) = %q, want %q", got, "hello")
	}
	if got := p.Bool("mono", false); !got {
		t.Error("Bool(mono) = false, want true")
	}
	if got := p.Color("color", Black); !colorNear(got, RGBA{R: 1, A: 1}) {
		t.Errorf("Color(color) = %+v, want red", got)
	}
	if got := p.Color("missing", White); got != White {
		t.Errorf("Color(missing) = %+v, want default", got)
	}

	pts := p.Points("points")
	if len(pts) != 2 || pts[0] != (Point{X: 1, Y: 2}) || pts[1] != (Point{X: 3, Y: 4}) {
		t.Errorf("Points() = %v, want two decoded points", pts)
	}
}

func TestProperties_Clone(t *testing.T) {
	p := Properties{
		"nested": map[string]any{"a": 1.0},
		"list":   []any{1.0, 2.0},
	}
	c := p.Clone()

	c["nested"].(map[string]any)["a"] = 2.0
	c["list"].([]any)[0] = 9.0

	if p["nested"].(map[string]any)["a"] != 1.0 {
		t.Error("Clone shares nested map")
	}
	if p["list"].([]any)[0] != 1.0 {
		t.Error("Clone shares nested slice")
	}

	var nilProps Properties
	if nilProps.Clone() != nil {
		t.Error("Clone(nil) != nil")
	}
}

func TestProperties_MergeSkipsNil(t *testing.T) {
	p := Properties{"fill": "#fff"}
	p.merge(Properties{"fill": nil, "stroke": "#000"})

	if p["fill"] != "#fff" {
		t.Errorf("fill = %v, nil entry must never overwrite", p["fill"])
	}
	if p["stroke"] != "#000" {
		t.Errorf("stroke = %v, want merged value", p["stroke"])
	}
}
