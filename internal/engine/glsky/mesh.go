package glsky

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/internal/atmosphere"
)

// Dome tessellation.
const (
	domeWidthSegments  = 32
	domeHeightSegments = 15
)

// starStride is the number of floats per star vertex: x, y, z, size, brightness.
const starStride = 5

// SphereMesh returns a UV sphere as x,y,z positions and triangle indices.
// Rows run from the north pole (+Y) to the south pole; the pole rows emit a
// single triangle per quad.
func SphereMesh(radius float32, widthSegments, heightSegments int) ([]float32, []uint32) {
	if widthSegments < 3 {
		widthSegments = 3
	}
	if heightSegments < 2 {
		heightSegments = 2
	}

	cols := widthSegments + 1
	vertices := make([]float32, 0, cols*(heightSegments+1)*3)
	for iy := 0; iy <= heightSegments; iy++ {
		v := float32(iy) / float32(heightSegments)
		sinV, cosV := math32.Sincos(v * math32.Pi)
		for ix := 0; ix <= widthSegments; ix++ {
			u := float32(ix) / float32(widthSegments)
			sinU, cosU := math32.Sincos(u * 2 * math32.Pi)
			vertices = append(vertices,
				-radius*cosU*sinV,
				radius*cosV,
				radius*sinU*sinV,
			)
		}
	}

	index := func(ix, iy int) uint32 { return uint32(iy*cols + ix) }
	indices := make([]uint32, 0, widthSegments*(2*heightSegments-2)*3)
	for iy := 0; iy < heightSegments; iy++ {
		for ix := 0; ix < widthSegments; ix++ {
			a := index(ix+1, iy)
			b := index(ix, iy)
			c := index(ix, iy+1)
			d := index(ix+1, iy+1)
			if iy != 0 {
				indices = append(indices, a, b, d)
			}
			if iy != heightSegments-1 {
				indices = append(indices, b, c, d)
			}
		}
	}
	return vertices, indices
}

// StarVertices interleaves the star field for a single point VBO.
func StarVertices(stars []atmosphere.Star) []float32 {
	out := make([]float32, 0, len(stars)*starStride)
	for _, s := range stars {
		out = append(out, s.Position.X, s.Position.Y, s.Position.Z, s.Size, s.Brightness)
	}
	return out
}
