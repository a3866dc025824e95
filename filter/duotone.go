package filter

import "github.com/gogpu/overlay"

// ApplyDuotone remaps the region onto a two-color ramp by luminance.
//
// Parameters: darkColor ("#000033"), lightColor ("#ffcc00"),
// intensity (1.0). Per pixel: luminance = 0.299R + 0.587G + 0.114B
// normalized to [0, 1]; the target color interpolates dark->light by
// luminance; the output interpolates original->target by intensity.
func ApplyDuotone(pm *overlay.Pixmap, r overlay.Rect, params overlay.Properties) {
	intensity := clamp01(params.Float("intensity", 1.0))
	if intensity <= 0 {
		return
	}
	rect, ok := region(pm, r)
	if !ok {
		return
	}

	dark := params.Color("darkColor", overlay.Hex("#000033"))
	light := params.Color("lightColor", overlay.Hex("#ffcc00"))

	data := pm.Data()
	width := pm.Width()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			i := (y*width + x) * 4
			lum := (0.299*float64(data[i+0]) + 0.587*float64(data[i+1]) + 0.114*float64(data[i+2])) / 255

			target := dark.Lerp(light, lum)
			data[i+0] = lerpByte(data[i+0], uint8(clamp01(target.R)*255+0.5), intensity)
			data[i+1] = lerpByte(data[i+1], uint8(clamp01(target.G)*255+0.5), intensity)
			data[i+2] = lerpByte(data[i+2], uint8(clamp01(target.B)*255+0.5), intensity)
		}
	}
}
