package overlay

import (
	"image"
	"image/color"
	"image/png"
	"io"
)

// Pixmap represents a rectangular pixel buffer in straight-alpha RGBA
// format, 4 bytes per pixel, rows stored top to bottom.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
// Dimensions smaller than 1 are clamped to 1.
func NewPixmap(width, height int) *Pixmap {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel. Out-of-range coordinates are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel, or Transparent when the
// coordinates are out of range.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Clear fills the entire pixmap with a color.
func (p *Pixmap) Clear(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// Region copies the pixels inside r (clamped to the pixmap) into a new
// pixmap. Returns nil when the clamped region is empty.
func (p *Pixmap) Region(r image.Rectangle) *Pixmap {
	r = r.Intersect(image.Rect(0, 0, p.width, p.height))
	if r.Empty() {
		return nil
	}
	out := NewPixmap(r.Dx(), r.Dy())
	for y := 0; y < r.Dy(); y++ {
		srcOff := ((r.Min.Y+y)*p.width + r.Min.X) * 4
		dstOff := y * out.width * 4
		copy(out.data[dstOff:dstOff+out.width*4], p.data[srcOff:srcOff+out.width*4])
	}
	return out
}

// WriteRegion copies src into the pixmap with its top-left corner at
// (x, y), overwriting destination pixels. Pixels falling outside the
// pixmap are dropped.
func (p *Pixmap) WriteRegion(x, y int, src *Pixmap) {
	if src == nil {
		return
	}
	for sy := 0; sy < src.height; sy++ {
		dy := y + sy
		if dy < 0 || dy >= p.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			dx := x + sx
			if dx < 0 || dx >= p.width {
				continue
			}
			si := (sy*src.width + sx) * 4
			di := (dy*p.width + dx) * 4
			copy(p.data[di:di+4], src.data[si:si+4])
		}
	}
}

// CopyFrom overwrites the pixmap with the content of src. Pixmaps of
// different dimensions copy the overlapping top-left area.
func (p *Pixmap) CopyFrom(src *Pixmap) {
	if src == nil {
		return
	}
	if src.width == p.width && src.height == p.height {
		copy(p.data, src.data)
		return
	}
	p.WriteRegion(0, 0, src)
}

// ToImage converts the pixmap to an image.NRGBA. The pixel data is
// straight alpha, so the non-premultiplied image type shares its layout.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())
	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			pm.SetPixel(x, y, FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y)))
		}
	}
	return pm
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// DecodePNG reads a PNG-encoded pixmap.
func DecodePNG(r io.Reader) (*Pixmap, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, err
	}
	return FromImage(img), nil
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
