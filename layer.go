package overlay

import "strings"

// Layer is one node in the design overlay tree: a renderable element or,
// when it has children, a grouping scope.
//
// The struct doubles as the wire/storage format; field names and JSON tags
// match the document shape exchanged with sandboxed and embedded renderers.
type Layer struct {
	// ID is opaque and globally unique within a stack, nested children
	// included.
	ID string `json:"id"`

	// Type is the layer's type tag, namespaced as "category:variant"
	// (e.g. "shapes:rect", "guides:thirds").
	Type string `json:"type"`

	// Name is the display name shown in the editing host.
	Name string `json:"name"`

	// Visible controls whether the layer (and its whole subtree) renders.
	Visible bool `json:"visible"`

	// Locked prevents edits in the host UI. The engine itself does not
	// enforce it.
	Locked bool `json:"locked"`

	// Opacity is in [0, 1] and accumulates multiplicatively through
	// nested groups.
	Opacity float64 `json:"opacity"`

	// BlendMode sets the pixel operator for this layer's scope. It does
	// not accumulate through groups.
	BlendMode BlendMode `json:"blendMode"`

	Transform Transform `json:"transform"`

	// Properties are interpreted by the layer type's renderer; the engine
	// treats them as opaque.
	Properties Properties `json:"properties"`

	// Children, when non-empty, makes this layer a group. A group's own
	// type and properties are ignored; only opacity, blend mode, and
	// children matter.
	Children []*Layer `json:"children,omitempty"`
}

// IsGroup reports whether the layer is a group.
func (l *Layer) IsGroup() bool {
	return len(l.Children) > 0
}

// Category returns the category half of the type tag: "shapes:rect"
// yields "shapes". A tag with no namespace is its own category.
func (l *Layer) Category() string {
	if i := strings.IndexByte(l.Type, ':'); i >= 0 {
		return l.Type[:i]
	}
	return l.Type
}

// Clone deep-copies the layer and its entire subtree, assigning a fresh id
// to every cloned node.
func (l *Layer) Clone() *Layer {
	out := *l
	out.ID = NewID()
	out.Properties = l.Properties.Clone()
	if len(l.Children) > 0 {
		out.Children = make([]*Layer, len(l.Children))
		for i, child := range l.Children {
			out.Children[i] = child.Clone()
		}
	}
	return &out
}

// Walk calls fn for the layer and every descendant in depth-first order.
// Walking stops early when fn returns false.
func (l *Layer) Walk(fn func(*Layer) bool) bool {
	if !fn(l) {
		return false
	}
	for _, child := range l.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}
