package world

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/internal/atmosphere"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Ground plane defaults.
const (
	DefaultGroundSize   = 500
	DefaultGroundTiling = 64
)

// Ground is a flat, square plane centred on the origin.
type Ground struct {
	Size   float32 // edge length in metres
	Level  float32 // world Y of the surface
	Tiling float32 // texture repeats across the plane
	Albedo math.Vec3
}

// DefaultGround returns the dark grass plane.
func DefaultGround() Ground {
	return Ground{
		Size:   DefaultGroundSize,
		Level:  0,
		Tiling: DefaultGroundTiling,
		Albedo: rgb(0x2a, 0x33, 0x20),
	}
}

// Vertices returns the plane as a flat x,y,z array of four corners in
// triangle-fan order (BL, BR, TR, TL) for GPU upload.
func (g Ground) Vertices() []float32 {
	h := g.Size / 2
	y := g.Level
	return []float32{
		-h, y, -h,
		h, y, -h,
		h, y, h,
		-h, y, h,
	}
}

// Intersect returns the distance along dir from origin to the plane, and
// whether the hit falls inside the plane's bounds.
func (g Ground) Intersect(origin, dir math.Vec3) (float32, bool) {
	if dir.Y >= 0 || origin.Y <= g.Level {
		return 0, false
	}
	t := (g.Level - origin.Y) / dir.Y
	hit := origin.Add(dir.Scale(t))
	h := g.Size / 2
	if math32.Abs(hit.X) > h || math32.Abs(hit.Z) > h {
		return 0, false
	}
	return t, true
}

// albedoAt returns the ground colour at a point, with per-tile grain
// standing in for the grass texture.
func (g Ground) albedoAt(p math.Vec3) math.Vec3 {
	tile := g.Size / math32.Max(g.Tiling, 1)
	cell := math.Vec2{X: math32.Floor(p.X / tile), Y: math32.Floor(p.Z / tile)}
	grain := 0.85 + 0.3*atmosphere.Hash(cell)
	return g.Albedo.Scale(grain)
}
