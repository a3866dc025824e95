package composite

import "github.com/gogpu/overlay"

// Resources are the shared render resources handed to every layer-type
// renderer: font data and image assets referenced by layer properties.
// The compositor passes them through untouched.
type Resources struct {
	// Fonts maps family names to raw font file data. The empty family
	// name is the default face.
	Fonts map[string][]byte

	// Images maps asset names to decoded pixmaps.
	Images map[string]*overlay.Pixmap
}

// Font returns the font data for a family, falling back to the default
// face. Returns nil when neither exists.
func (r *Resources) Font(family string) []byte {
	if r == nil {
		return nil
	}
	if data, ok := r.Fonts[family]; ok {
		return data
	}
	return r.Fonts[""]
}

// Image returns the named image asset, or nil.
func (r *Resources) Image(name string) *overlay.Pixmap {
	if r == nil {
		return nil
	}
	return r.Images[name]
}
