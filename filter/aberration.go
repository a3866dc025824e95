package filter

import (
	"math"

	"github.com/gogpu/overlay"
)

// ApplyAberration offsets the red and blue channels in opposite
// directions, a chromatic-aberration fringe.
//
// Parameters: offsetX (3), offsetY (0), intensity (1.0). The integer pixel
// offset per axis is round(offset*intensity). The red channel samples the
// source shifted by (+offsetX, +offsetY), blue by (-offsetX, -offsetY);
// green and alpha are unchanged. Sample coordinates clamp to the region's
// edges — no wraparound.
func ApplyAberration(pm *overlay.Pixmap, r overlay.Rect, params overlay.Properties) {
	intensity := params.Float("intensity", 1.0)
	if intensity <= 0 {
		return
	}
	rect, ok := region(pm, r)
	if !ok {
		return
	}

	ox := int(math.Round(params.Float("offsetX", 3) * intensity))
	oy := int(math.Round(params.Float("offsetY", 0) * intensity))
	if ox == 0 && oy == 0 {
		return
	}

	src := pm.Region(rect)
	if src == nil {
		return
	}
	w, h := src.Width(), src.Height()
	srcData := src.Data()
	data := pm.Data()
	width := pm.Width()

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rx := clampInt(x+ox, 0, w-1)
			ry := clampInt(y+oy, 0, h-1)
			bx := clampInt(x-ox, 0, w-1)
			by := clampInt(y-oy, 0, h-1)

			i := ((rect.Min.Y+y)*width + rect.Min.X + x) * 4
			data[i+0] = srcData[(ry*w+rx)*4+0]
			data[i+2] = srcData[(by*w+bx)*4+2]
		}
	}
}
