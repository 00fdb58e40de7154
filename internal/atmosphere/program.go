package atmosphere

import "github.com/Faultbox/nightyard/pkg/math"

// SkyProgram is a frozen sky snapshot bound for one frame. It satisfies the
// raster backdrop contract: drawn first, depth ignored, fully opaque.
type SkyProgram struct {
	u SkyUniforms
}

// SkyProgram snapshots the sky for the frame about to be drawn.
func (a *Atmosphere) SkyProgram() SkyProgram {
	return SkyProgram{u: a.sky}
}

// ShadeBackdrop returns the sky colour seen along dir.
func (p SkyProgram) ShadeBackdrop(fragCoord math.Vec2, dir math.Vec3) math.Vec3 {
	return p.u.Shade(dir, fragCoord)
}

// StarProgram is a frozen star field snapshot bound for one frame. It
// satisfies the raster point-sprite contract with additive blending.
type StarProgram struct {
	u      StarUniforms
	stars  []Star
	origin math.Vec3
}

// StarProgram snapshots the star field for the frame about to be drawn.
// A disabled field yields a program with no points.
func (a *Atmosphere) StarProgram() StarProgram {
	p := StarProgram{u: a.star, origin: a.starOrigin}
	if a.starsEnabled {
		// The slice is replaced, never edited, on regeneration.
		p.stars = a.stars
	}
	return p
}

// PointCount returns the number of stars to draw.
func (p StarProgram) PointCount() int { return len(p.stars) }

// PointPosition returns star i in world space.
func (p StarProgram) PointPosition(i int) math.Vec3 {
	return p.stars[i].Position.Add(p.origin)
}

// PointSize returns the floored and unfloored point size of star i.
func (p StarProgram) PointSize(i int, viewZ float32) (size, calculated float32) {
	return p.u.PointSize(p.stars[i], viewZ)
}

// PointColor returns the tint and alpha of star i at a sprite coordinate.
func (p StarProgram) PointColor(i int, pointCoord math.Vec2, calculated float32) (math.Vec3, float32) {
	return p.u.Tint, p.u.Alpha(p.stars[i], pointCoord, calculated)
}
