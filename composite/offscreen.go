package composite

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/surface"
)

// Texture is a finished offscreen composite described for GPU upload. The
// engine stops here: handing the pixels to a device is the caller's
// asynchronous boundary.
type Texture struct {
	Pixels *overlay.Pixmap
	Format gputypes.TextureFormat
	Size   gputypes.Extent3D
}

// RenderOffscreen composites the layers onto a fresh transparent surface
// of the given dimensions, with no base image, and returns it described
// as a texture for upload or export.
func RenderOffscreen(width, height int, layers []*overlay.Layer, reg *Registry, res *Resources, opts Options) *Texture {
	canvas := surface.NewImageSurface(width, height)
	Composite(nil, layers, reg, res, canvas, opts)
	pm := canvas.Pixmap()
	return &Texture{
		Pixels: pm,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Size: gputypes.Extent3D{
			Width:              uint32(pm.Width()),
			Height:             uint32(pm.Height()),
			DepthOrArrayLayers: 1,
		},
	}
}

// InjectSVG composites the layers onto a vector accumulator sized
// width x height and injects the resulting elements into the given SVG
// markup, before its closing tag. Filter layers and other categories with
// no vector form are silently omitted.
func InjectSVG(markup string, width, height int, layers []*overlay.Layer, reg *Registry, res *Resources, opts Options) string {
	canvas := surface.NewSVGSurface(width, height)
	Composite(nil, layers, reg, res, canvas, opts)
	return canvas.InjectInto(markup)
}
