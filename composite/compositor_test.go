package composite

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/surface"
)

// spyCanvas records the walk's calls and tracks the accumulated opacity
// product the way a real canvas would.
type spyCanvas struct {
	opacities []float64 // stack of accumulated products
	lastBlend overlay.BlendMode
	pushes    int
	pops      int
	images    int
	renders   []renderRecord
}

type renderRecord struct {
	tag     string
	opacity float64 // accumulated product at render time
	blend   overlay.BlendMode
	bounds  overlay.Rect
}

func newSpyCanvas() *spyCanvas {
	return &spyCanvas{opacities: []float64{1}}
}

func (s *spyCanvas) Size() (int, int) { return 100, 100 }

func (s *spyCanvas) Push(st surface.State) {
	s.pushes++
	top := s.opacities[len(s.opacities)-1]
	s.opacities = append(s.opacities, top*st.Opacity)
	s.lastBlend = st.Blend
}

func (s *spyCanvas) Pop() {
	s.pops++
	if len(s.opacities) > 1 {
		s.opacities = s.opacities[:len(s.opacities)-1]
	}
}

func (s *spyCanvas) FillPath(*surface.Path, overlay.RGBA)      {}
func (s *spyCanvas) StrokePath(*surface.Path, surface.Stroke)  {}
func (s *spyCanvas) DrawText(surface.TextRun)                  {}
func (s *spyCanvas) DrawImage(*overlay.Pixmap, float64, float64) {
	s.images++
}

var _ surface.Canvas = (*spyCanvas)(nil)

// spyRegistry builds a registry whose render funcs record into the spy.
func spyRegistry(spy *spyCanvas, tags map[string]string) *Registry {
	reg := NewRegistry()
	for tag, category := range tags {
		tag := tag
		reg.Register(tag, LayerType{
			Category: category,
			Render: func(ctx *RenderContext) {
				spy.renders = append(spy.renders, renderRecord{
					tag:     tag,
					opacity: spy.opacities[len(spy.opacities)-1],
					blend:   spy.lastBlend,
					bounds:  ctx.Bounds,
				})
			},
		})
	}
	return reg
}

func leaf(id, tag string, opacity float64) *overlay.Layer {
	return &overlay.Layer{
		ID:        id,
		Type:      tag,
		Visible:   true,
		Opacity:   opacity,
		Transform: overlay.DefaultTransform(10, 10, 40, 30),
	}
}

func group(id string, opacity float64, children ...*overlay.Layer) *overlay.Layer {
	return &overlay.Layer{
		ID:       id,
		Type:     "group",
		Visible:  true,
		Opacity:  opacity,
		Children: children,
	}
}

func stockTags() map[string]string {
	return map[string]string{
		"shapes:rect":    "shapes",
		"shapes:ellipse": "shapes",
		"guides:thirds":  CategoryGuide,
	}
}

func TestComposite_BaseDrawnOnceFirst(t *testing.T) {
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())
	base := overlay.NewPixmap(100, 100)

	Composite(base, []*overlay.Layer{leaf("a", "shapes:rect", 1)}, reg, nil, spy, Options{})

	if spy.images != 1 {
		t.Errorf("base drawn %d times, want 1", spy.images)
	}
	if len(spy.renders) != 1 {
		t.Errorf("%d render calls, want 1", len(spy.renders))
	}
}

func TestComposite_InvisibleSubtreeSkipped(t *testing.T) {
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())

	hidden := group("g", 1, leaf("a", "shapes:rect", 1))
	hidden.Visible = false

	Composite(nil, []*overlay.Layer{hidden, leaf("b", "shapes:ellipse", 1)}, reg, nil, spy, Options{})

	if len(spy.renders) != 1 || spy.renders[0].tag != "shapes:ellipse" {
		t.Errorf("renders = %+v, want only the visible ellipse", spy.renders)
	}
}

func TestComposite_GuideExclusion(t *testing.T) {
	layers := []*overlay.Layer{
		leaf("g", "guides:thirds", 1),
		leaf("r", "shapes:rect", 1),
	}

	t.Run("excluded by default", func(t *testing.T) {
		spy := newSpyCanvas()
		reg := spyRegistry(spy, stockTags())
		Composite(nil, layers, reg, nil, spy, Options{})
		if len(spy.renders) != 1 || spy.renders[0].tag != "shapes:rect" {
			t.Errorf("renders = %+v, want guides excluded", spy.renders)
		}
	})

	t.Run("included on request", func(t *testing.T) {
		spy := newSpyCanvas()
		reg := spyRegistry(spy, stockTags())
		Composite(nil, layers, reg, nil, spy, Options{IncludeGuides: true})
		if len(spy.renders) != 2 {
			t.Errorf("renders = %+v, want both layers", spy.renders)
		}
	})
}

func TestComposite_UnresolvedTypeSkippedSilently(t *testing.T) {
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())

	Composite(nil, []*overlay.Layer{
		leaf("u", "shapes:hologram", 1),
		leaf("r", "shapes:rect", 1),
	}, reg, nil, spy, Options{})

	if len(spy.renders) != 1 || spy.renders[0].tag != "shapes:rect" {
		t.Errorf("renders = %+v, want unresolved type skipped", spy.renders)
	}
}

func TestComposite_GroupOpacityAccumulates(t *testing.T) {
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())

	Composite(nil, []*overlay.Layer{
		group("outer", 0.5, group("inner", 0.5, leaf("e", "shapes:ellipse", 1))),
	}, reg, nil, spy, Options{})

	if len(spy.renders) != 1 {
		t.Fatalf("%d render calls, want 1", len(spy.renders))
	}
	if got := spy.renders[0].opacity; got != 0.25 {
		t.Errorf("effective opacity = %v, want 0.25", got)
	}
}

func TestComposite_EndToEndScenario(t *testing.T) {
	// [rect(opacity 0.8, multiply), group(0.5, [ellipse(1)])] with guides
	// excluded: exactly two renders, the second at effective opacity 0.5,
	// base drawn once, first, and the scope stack fully unwound.
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())
	base := overlay.NewPixmap(100, 100)

	rect := leaf("r", "shapes:rect", 0.8)
	rect.BlendMode = overlay.BlendMultiply

	Composite(base, []*overlay.Layer{
		rect,
		group("g", 0.5, leaf("e", "shapes:ellipse", 1)),
	}, reg, nil, spy, Options{})

	if spy.images != 1 {
		t.Fatalf("base drawn %d times, want 1", spy.images)
	}
	if len(spy.renders) != 2 {
		t.Fatalf("%d render calls, want 2", len(spy.renders))
	}
	if spy.renders[0].tag != "shapes:rect" || spy.renders[0].blend != overlay.BlendMultiply {
		t.Errorf("first render = %+v, want multiply rect", spy.renders[0])
	}
	if got := spy.renders[1].opacity; got != 0.5 {
		t.Errorf("second render opacity = %v, want 0.5", got)
	}
	if spy.pushes != spy.pops {
		t.Errorf("pushes (%d) != pops (%d): scope stack not restored", spy.pushes, spy.pops)
	}
}

func TestComposite_BoundsAreUntransformed(t *testing.T) {
	spy := newSpyCanvas()
	reg := spyRegistry(spy, stockTags())

	l := leaf("r", "shapes:rect", 1)
	l.Transform.Rotation = 45 // placement goes to the canvas, not bounds

	Composite(nil, []*overlay.Layer{l}, reg, nil, spy, Options{})

	want := overlay.Rect{X: 10, Y: 10, W: 40, H: 30}
	if len(spy.renders) != 1 || spy.renders[0].bounds != want {
		t.Errorf("bounds = %+v, want %+v", spy.renders[0].bounds, want)
	}
}

func TestRegistry(t *testing.T) {
	reg := NewRegistry()
	reg.Register("shapes:rect", LayerType{Category: "shapes", Render: func(*RenderContext) {}})

	if _, ok := reg.Resolve("shapes:rect"); !ok {
		t.Error("Resolve(registered) = false")
	}
	if _, ok := reg.Resolve("shapes:missing"); ok {
		t.Error("Resolve(missing) = true")
	}

	t.Run("duplicate tag panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("duplicate Register did not panic")
			}
		}()
		reg.Register("shapes:rect", LayerType{Category: "shapes", Render: func(*RenderContext) {}})
	})

	t.Run("nil render panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("nil render Register did not panic")
			}
		}()
		reg.Register("shapes:other", LayerType{Category: "shapes"})
	})
}

func TestResources_FontFallback(t *testing.T) {
	res := &Resources{Fonts: map[string][]byte{
		"":     []byte("default"),
		"mono": []byte("mono"),
	}}
	if got := string(res.Font("mono")); got != "mono" {
		t.Errorf("Font(mono) = %q", got)
	}
	if got := string(res.Font("unknown")); got != "default" {
		t.Errorf("Font(unknown) = %q, want default face", got)
	}

	var nilRes *Resources
	if nilRes.Font("any") != nil || nilRes.Image("any") != nil {
		t.Error("nil Resources must return nil")
	}
}

func TestRenderOffscreen(t *testing.T) {
	reg := NewRegistry()
	reg.Register("shapes:rect", LayerType{Category: "shapes", Render: func(ctx *RenderContext) {
		ctx.Canvas.FillPath(surface.RectPath(ctx.Bounds), overlay.RGBA{R: 1, A: 1})
	}})

	l := leaf("r", "shapes:rect", 1)
	tex := RenderOffscreen(64, 64, []*overlay.Layer{l}, reg, nil, Options{})

	if tex.Format != gputypes.TextureFormatRGBA8Unorm {
		t.Errorf("Format = %v, want RGBA8Unorm", tex.Format)
	}
	if tex.Size.Width != 64 || tex.Size.Height != 64 || tex.Size.DepthOrArrayLayers != 1 {
		t.Errorf("Size = %+v", tex.Size)
	}
	if c := tex.Pixels.GetPixel(20, 20); c.R < 1 || c.A < 1 {
		t.Errorf("pixel inside rect = %+v, want opaque red", c)
	}
	if c := tex.Pixels.GetPixel(60, 60); c.A != 0 {
		t.Errorf("pixel outside rect = %+v, want transparent", c)
	}
}

func TestInjectSVG(t *testing.T) {
	reg := NewRegistry()
	reg.Register("shapes:rect", LayerType{Category: "shapes", Render: func(ctx *RenderContext) {
		ctx.Canvas.FillPath(surface.RectPath(ctx.Bounds), overlay.RGBA{R: 1, A: 1})
	}})

	markup := `<svg width="100" height="100"><circle r="5"/></svg>`
	got := InjectSVG(markup, 100, 100, []*overlay.Layer{leaf("r", "shapes:rect", 1)}, reg, nil, Options{})

	if !containsInOrder(got, "<circle", "<rect", "</svg>") {
		t.Errorf("InjectSVG = %q, want layer elements before the closing tag", got)
	}
}

func containsInOrder(s string, subs ...string) bool {
	pos := 0
	for _, sub := range subs {
		i := indexFrom(s, sub, pos)
		if i < 0 {
			return false
		}
		pos = i + len(sub)
	}
	return true
}

func indexFrom(s, sub string, from int) int {
	for i := from; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}
