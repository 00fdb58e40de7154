package raster

import (
	"image"

	"github.com/Faultbox/nightyard/pkg/math"
)

// resolve converts the float colour buffer to 8-bit RGBA, applying exposure.
// Channels are written linearly; the shading programs already work in
// display space.
func (r *Renderer) resolve(exposure float32) *image.RGBA {
	if exposure <= 0 {
		exposure = 1
	}
	w, h := r.opts.Width, r.opts.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			c := r.color[y*w+x].Scale(exposure)
			idx := row + x*4
			img.Pix[idx] = toByte(c.X)
			img.Pix[idx+1] = toByte(c.Y)
			img.Pix[idx+2] = toByte(c.Z)
			img.Pix[idx+3] = 255
		}
	}
	return img
}

func toByte(v float32) uint8 {
	return uint8(math.Saturate(v) * 255.999)
}
