package live

import (
	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/composite"
	"github.com/gogpu/overlay/surface"
)

// Session is the receiving end of the protocol: a renderer holding a
// raster surface whose initial content is the generative base image.
//
// The clean base is captured once, at the first composite. Every update
// restores it and re-runs the full walk with the new snapshot, so filter
// layers never compound across updates.
//
// Session is not safe for concurrent use; like the layer stack, it
// belongs to a single logical actor.
type Session struct {
	target *surface.ImageSurface
	reg    *composite.Registry
	res    *composite.Resources
	opts   composite.Options

	base   *overlay.Pixmap
	layers []*overlay.Layer
}

// NewSession wraps a renderer's target surface. The surface's current
// content becomes the clean base at the first composite.
func NewSession(target *surface.ImageSurface, reg *composite.Registry, res *composite.Resources, opts composite.Options) *Session {
	return &Session{target: target, reg: reg, res: res, opts: opts}
}

// Composite renders the given snapshot over the clean base and retains
// it as the current snapshot.
func (s *Session) Composite(layers []*overlay.Layer) {
	if s.base == nil {
		s.base = s.target.Pixmap().Clone()
	} else {
		s.target.Pixmap().CopyFrom(s.base)
	}
	s.layers = layers
	composite.Composite(nil, layers, s.reg, s.res, s.target, s.opts)
}

// Handle processes one encoded protocol message. Unknown message types
// are ignored, keeping old renderers compatible with newer hosts.
func (s *Session) Handle(data []byte) error {
	msg, err := Decode(data)
	if err != nil {
		return err
	}
	switch msg.Type {
	case TypeUpdateLayers:
		s.Composite(msg.Layers)
	default:
		overlay.Logger().Debug("unknown live message ignored", "type", msg.Type)
	}
	return nil
}

// Layers returns the current snapshot.
func (s *Session) Layers() []*overlay.Layer {
	return s.layers
}

// Target returns the surface the session renders into.
func (s *Session) Target() *surface.ImageSurface {
	return s.target
}
