package filter

import (
	"math"

	"github.com/gogpu/overlay"
)

// ApplyGrain adds deterministic film grain to the region.
//
// Parameters: intensity (0.3), size (1), seed (0), monochrome (true).
// Noise samples come from the counter-based generator in noise.go, drawn
// once per block in row-major order — one sample per block when
// monochrome, three otherwise. Each block is a square of side
// max(1, round(size)) pixels; the sample is scaled by intensity*255,
// added to the block's channels, and every channel is clamped to [0, 255].
//
// Identical seed, region dimensions, and parameters reproduce
// byte-identical output on every invocation and in every execution
// context.
func ApplyGrain(pm *overlay.Pixmap, r overlay.Rect, params overlay.Properties) {
	intensity := clamp01(params.Float("intensity", 0.3))
	if intensity <= 0 {
		return
	}
	rect, ok := region(pm, r)
	if !ok {
		return
	}

	block := int(math.Round(params.Float("size", 1)))
	if block < 1 {
		block = 1
	}
	seed := uint32(int64(params.Float("seed", 0)))
	mono := params.Bool("monochrome", true)

	src := newNoiseSource(seed)
	amplitude := intensity * 255
	data := pm.Data()
	width := pm.Width()

	for by := rect.Min.Y; by < rect.Max.Y; by += block {
		for bx := rect.Min.X; bx < rect.Max.X; bx += block {
			var nr, ng, nb int
			if mono {
				n := int(src.nextSigned() * amplitude)
				nr, ng, nb = n, n, n
			} else {
				nr = int(src.nextSigned() * amplitude)
				ng = int(src.nextSigned() * amplitude)
				nb = int(src.nextSigned() * amplitude)
			}

			yEnd := clampInt(by+block, 0, rect.Max.Y)
			xEnd := clampInt(bx+block, 0, rect.Max.X)
			for y := by; y < yEnd; y++ {
				for x := bx; x < xEnd; x++ {
					i := (y*width + x) * 4
					data[i+0] = clampByte(int(data[i+0]) + nr)
					data[i+1] = clampByte(int(data[i+1]) + ng)
					data[i+2] = clampByte(int(data[i+2]) + nb)
				}
			}
		}
	}
}
