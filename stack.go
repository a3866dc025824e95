package overlay

import (
	"errors"
	"fmt"
)

// ErrLayerNotFound is returned by mutating stack operations that reference
// an id absent from the tree. The stack is left unchanged in that case.
var ErrLayerNotFound = errors.New("overlay: layer not found")

// ChangeKind classifies a stack mutation for change listeners.
type ChangeKind uint8

// Change kind constants.
const (
	LayerAdded ChangeKind = iota
	LayerRemoved
	LayerUpdated
	LayerReordered
)

// String returns a human-readable name for the change kind.
func (k ChangeKind) String() string {
	switch k {
	case LayerAdded:
		return "layer-added"
	case LayerRemoved:
		return "layer-removed"
	case LayerUpdated:
		return "layer-updated"
	case LayerReordered:
		return "layer-reordered"
	default:
		return "unknown"
	}
}

// Change describes one stack mutation.
type Change struct {
	Kind ChangeKind
	ID   string
}

// Listener receives change notifications. Listeners run synchronously on
// the mutating call, in subscription order.
type Listener func(Change)

// Stack owns the authoritative mutable layer tree for one editing session.
// Top-level layers are kept in back-to-front painter's order: index 0
// paints first, the last index paints topmost.
//
// A Stack has no internal locking. It is owned by a single logical actor;
// concurrent mutation from two callers is the caller's problem to
// serialize.
type Stack struct {
	layers    []*Layer
	index     map[string]*Layer
	listeners []listenerEntry
	nextToken int
}

type listenerEntry struct {
	token int
	fn    Listener
}

// NewStack creates a stack from an initial snapshot. The snapshot is taken
// over as-is (not cloned); ids must already be unique across the tree.
func NewStack(initial []*Layer) *Stack {
	s := &Stack{
		layers: initial,
		index:  make(map[string]*Layer),
	}
	for _, l := range initial {
		s.indexTree(l)
	}
	return s
}

// indexTree adds a layer and all its descendants to the id index.
func (s *Stack) indexTree(l *Layer) {
	l.Walk(func(n *Layer) bool {
		s.index[n.ID] = n
		return true
	})
}

// unindexTree removes a layer and all its descendants from the id index.
func (s *Stack) unindexTree(l *Layer) {
	l.Walk(func(n *Layer) bool {
		delete(s.index, n.ID)
		return true
	})
}

// notify runs all listeners synchronously.
func (s *Stack) notify(kind ChangeKind, id string) {
	c := Change{Kind: kind, ID: id}
	for _, e := range s.listeners {
		e.fn(c)
	}
}

// Subscribe registers a change listener and returns a function that
// removes it again.
func (s *Stack) Subscribe(fn Listener) (unsubscribe func()) {
	s.nextToken++
	token := s.nextToken
	s.listeners = append(s.listeners, listenerEntry{token: token, fn: fn})
	return func() {
		for i, e := range s.listeners {
			if e.token == token {
				s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of top-level layers.
func (s *Stack) Len() int {
	return len(s.layers)
}

// Layers returns the top-level sequence in painter's order. The returned
// slice is a copy; the layers themselves are shared.
func (s *Stack) Layers() []*Layer {
	out := make([]*Layer, len(s.layers))
	copy(out, s.layers)
	return out
}

// Get returns the layer with the given id anywhere in the tree.
func (s *Stack) Get(id string) (*Layer, bool) {
	l, ok := s.index[id]
	return l, ok
}

// Add appends a layer to the top of the stack. The caller-supplied id is
// trusted. Notifies LayerAdded.
func (s *Stack) Add(l *Layer) {
	s.Insert(l, len(s.layers))
}

// Insert inserts a layer at the given top-level index, clamped into
// [0, Len]. Notifies LayerAdded.
func (s *Stack) Insert(l *Layer, index int) {
	if index < 0 {
		index = 0
	}
	if index > len(s.layers) {
		index = len(s.layers)
	}
	s.layers = append(s.layers, nil)
	copy(s.layers[index+1:], s.layers[index:])
	s.layers[index] = l
	s.indexTree(l)
	s.notify(LayerAdded, l.ID)
}

// Remove removes a top-level layer by id and reports whether it was found.
// Notifies LayerRemoved only on success.
func (s *Stack) Remove(id string) bool {
	for i, l := range s.layers {
		if l.ID == id {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			s.unindexTree(l)
			s.notify(LayerRemoved, id)
			return true
		}
	}
	return false
}

// UpdateProperties shallow-merges the partial property bag into the
// layer's existing properties. Keys absent from the partial stay
// unchanged; keys with nil values are dropped rather than stored.
// Notifies LayerUpdated.
func (s *Stack) UpdateProperties(id string, partial Properties) error {
	l, ok := s.index[id]
	if !ok {
		return fmt.Errorf("update properties %q: %w", id, ErrLayerNotFound)
	}
	if l.Properties == nil {
		l.Properties = make(Properties, len(partial))
	}
	l.Properties.merge(partial)
	s.notify(LayerUpdated, id)
	return nil
}

// UpdateTransform merges non-nil patch fields into the layer's transform.
// Notifies LayerUpdated.
func (s *Stack) UpdateTransform(id string, patch TransformPatch) error {
	l, ok := s.index[id]
	if !ok {
		return fmt.Errorf("update transform %q: %w", id, ErrLayerNotFound)
	}
	patch.apply(&l.Transform)
	s.notify(LayerUpdated, id)
	return nil
}

// UpdateBlend updates whichever of blend mode and opacity is supplied
// (non-nil). Notifies LayerUpdated.
func (s *Stack) UpdateBlend(id string, mode *BlendMode, opacity *float64) error {
	l, ok := s.index[id]
	if !ok {
		return fmt.Errorf("update blend %q: %w", id, ErrLayerNotFound)
	}
	if mode != nil {
		l.BlendMode = *mode
	}
	if opacity != nil {
		l.Opacity = *opacity
	}
	s.notify(LayerUpdated, id)
	return nil
}

// Reorder moves a top-level layer to newIndex, clamped into the valid
// range. When the clamped index equals the layer's current position the
// call is a no-op and no notification fires. Notifies LayerReordered
// otherwise.
func (s *Stack) Reorder(id string, newIndex int) error {
	cur := -1
	for i, l := range s.layers {
		if l.ID == id {
			cur = i
			break
		}
	}
	if cur < 0 {
		return fmt.Errorf("reorder %q: %w", id, ErrLayerNotFound)
	}
	if newIndex < 0 {
		newIndex = 0
	}
	if newIndex > len(s.layers)-1 {
		newIndex = len(s.layers) - 1
	}
	if newIndex == cur {
		return nil
	}
	l := s.layers[cur]
	s.layers = append(s.layers[:cur], s.layers[cur+1:]...)
	s.layers = append(s.layers, nil)
	copy(s.layers[newIndex+1:], s.layers[newIndex:])
	s.layers[newIndex] = l
	s.notify(LayerReordered, id)
	return nil
}

// Duplicate deep-clones the layer and its entire subtree, assigning fresh
// ids to every cloned node and appending " copy" to the clone's name. The
// clone is inserted immediately after the original. Returns the new id.
// Notifies LayerAdded.
func (s *Stack) Duplicate(id string) (string, error) {
	siblings, pos := s.locate(id)
	if pos < 0 {
		return "", fmt.Errorf("duplicate %q: %w", id, ErrLayerNotFound)
	}
	clone := (*siblings)[pos].Clone()
	clone.Name += " copy"

	*siblings = append(*siblings, nil)
	copy((*siblings)[pos+2:], (*siblings)[pos+1:])
	(*siblings)[pos+1] = clone

	s.indexTree(clone)
	s.notify(LayerAdded, clone.ID)
	return clone.ID, nil
}

// locate finds the sibling slice containing the layer with the given id
// and its position within it. Returns (nil, -1) when the id is absent.
func (s *Stack) locate(id string) (*[]*Layer, int) {
	for i, l := range s.layers {
		if l.ID == id {
			return &s.layers, i
		}
	}
	var (
		found *[]*Layer
		pos   = -1
	)
	var search func(parent *Layer) bool
	search = func(parent *Layer) bool {
		for i, child := range parent.Children {
			if child.ID == id {
				found = &parent.Children
				pos = i
				return true
			}
			if search(child) {
				return true
			}
		}
		return false
	}
	for _, l := range s.layers {
		if search(l) {
			return found, pos
		}
	}
	return nil, -1
}
