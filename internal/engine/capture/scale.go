package capture

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Downscale resamples img to width x height with a Catmull-Rom filter.
// Supersampled renders go through it before being written.
func Downscale(img image.Image, width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	if img.Bounds().Dx() == width && img.Bounds().Dy() == height {
		xdraw.Copy(dst, image.Point{}, img, img.Bounds(), xdraw.Src, nil)
		return dst
	}
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Src, nil)
	return dst
}
