package filter

import (
	"math"

	"github.com/gogpu/overlay"
)

// ApplyBlur applies a Gaussian-equivalent blur of the given pixel radius
// to the region only. The region is snapshotted, blurred with a two-pass
// separable convolution, and written back in place; pixels outside the
// region are untouched and never sampled.
//
// Parameters: radius (4).
func ApplyBlur(pm *overlay.Pixmap, r overlay.Rect, params overlay.Properties) {
	radius := params.Float("radius", 4)
	if radius <= 0 {
		return
	}
	rect, ok := region(pm, r)
	if !ok {
		return
	}

	src := pm.Region(rect)
	if src == nil {
		return
	}
	w, h := src.Width(), src.Height()
	kernel := gaussianKernel(radius)
	half := len(kernel) / 2

	// Pass 1: horizontal, src -> temp (float to avoid quantization drift
	// between the passes).
	temp := make([]float64, w*h*4)
	srcData := src.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, w-1)
				i := (y*w + kx) * 4
				acc[0] += float64(srcData[i+0]) * weight
				acc[1] += float64(srcData[i+1]) * weight
				acc[2] += float64(srcData[i+2]) * weight
				acc[3] += float64(srcData[i+3]) * weight
			}
			o := (y*w + x) * 4
			temp[o+0], temp[o+1], temp[o+2], temp[o+3] = acc[0], acc[1], acc[2], acc[3]
		}
	}

	// Pass 2: vertical, temp -> src buffer, then write back.
	out := overlay.NewPixmap(w, h)
	outData := out.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var acc [4]float64
			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, h-1)
				i := (ky*w + x) * 4
				acc[0] += temp[i+0] * weight
				acc[1] += temp[i+1] * weight
				acc[2] += temp[i+2] * weight
				acc[3] += temp[i+3] * weight
			}
			o := (y*w + x) * 4
			outData[o+0] = clampByte(int(acc[0] + 0.5))
			outData[o+1] = clampByte(int(acc[1] + 0.5))
			outData[o+2] = clampByte(int(acc[2] + 0.5))
			outData[o+3] = clampByte(int(acc[3] + 0.5))
		}
	}

	pm.WriteRegion(rect.Min.X, rect.Min.Y, out)
}

// gaussianKernel builds a normalized 1D Gaussian kernel covering three
// standard deviations, with sigma = radius/2 so the visible spread matches
// the requested pixel radius.
func gaussianKernel(radius float64) []float64 {
	sigma := radius / 2
	if sigma < 0.5 {
		sigma = 0.5
	}
	half := int(math.Ceil(sigma * 3))
	size := half*2 + 1
	kernel := make([]float64, size)

	twoSigmaSq := 2 * sigma * sigma
	sum := 0.0
	for i := range kernel {
		x := float64(i - half)
		kernel[i] = math.Exp(-(x * x) / twoSigmaSq)
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
