package composite

import (
	"sync"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/surface"
)

// CategoryGuide is the layer-type category for editor-only alignment
// guides. Guide layers are the only category subject to default exclusion
// from composited output.
const CategoryGuide = "guides"

// RenderContext carries everything a layer-type renderer needs for one
// draw call. Bounds are the layer's untransformed bounds: the placement
// matrix is already active on the canvas scope.
type RenderContext struct {
	Canvas    surface.Canvas
	Props     overlay.Properties
	Bounds    overlay.Rect
	Resources *Resources
}

// RenderFunc draws one layer.
type RenderFunc func(ctx *RenderContext)

// LayerType is a resolved layer-type implementation.
type LayerType struct {
	// Category is the category half of the type tags this implementation
	// serves ("shapes", "text", "guides", "filters").
	Category string

	Render RenderFunc
}

// Registry maps layer type tags to implementations. It is the resolver
// the compositor consults for every layer; hosts own their registry
// instance and pass it explicitly — there is no hidden global.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	types map[string]LayerType
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{types: make(map[string]LayerType)}
}

// Register adds a layer-type implementation under the given tag,
// following the database/sql driver pattern. Register panics when the
// render func is nil or the tag is already taken, so duplicate
// registrations surface during startup instead of silently overwriting.
func (r *Registry) Register(tag string, t LayerType) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if t.Render == nil {
		panic("composite: Register render func is nil")
	}
	if _, dup := r.types[tag]; dup {
		panic("composite: Register called twice for " + tag)
	}
	r.types[tag] = t
}

// Resolve looks up the implementation for a type tag. A missing tag is
// not an error: unresolved layers are skipped during compositing so that
// documents referencing types unavailable in this host still render.
func (r *Registry) Resolve(tag string) (LayerType, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.types[tag]
	return t, ok
}

// Tags returns the registered type tags, for diagnostics.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.types))
	for tag := range r.types {
		out = append(out, tag)
	}
	return out
}
