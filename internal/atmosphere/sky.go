package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Pollution holds the two light-pollution sources and their shared colour.
type Pollution struct {
	Color math.Vec3
	Near  Source // strong, close village
	Far   Source // weak, distant village
}

// SkyUniforms is the complete parameter snapshot read by the sky program.
// Shade is a pure function of the snapshot, the view direction and the
// fragment coordinate.
type SkyUniforms struct {
	Gradient  Gradient
	Pollution Pollution
	Dither    float32 // amplitude of the anti-banding noise, typically <= 0.01
	Fog       Fog
	Horror    Horror

	Time       float32   // elapsed seconds, drives the breathing term
	Resolution math.Vec2 // drawing-buffer size in device pixels

	near glowUniform
	far  glowUniform
}

// refreshSources recomputes the cached glow uniforms after a source changes.
func (u *SkyUniforms) refreshSources() {
	u.near = u.Pollution.Near.uniform()
	u.far = u.Pollution.Far.uniform()
}

// Altitude decomposes a world-space direction into its clamped altitude and
// its horizontal unit direction. Only orientation matters, never position.
func Altitude(dir math.Vec3) (altitude float32, horizontal math.Vec3) {
	d := dir.Normalize()
	altitude = math.Saturate(d.Y)
	horizontal = math.Vec3{X: d.X, Y: 0, Z: d.Z}.Normalize()
	return altitude, horizontal
}

// Hash is the per-pixel dither noise in [0, 1). It depends only on the
// fragment coordinate, so the pattern is stable from frame to frame.
func Hash(p math.Vec2) float32 {
	return math.Fract(math32.Sin(p.Dot(math.Vec2{X: 12.9898, Y: 78.233})) * 43758.5453)
}

// Shade returns the sky colour for a world-space view direction at the given
// fragment coordinate (pixel centre, origin bottom-left). Alpha is always 1.
func (u *SkyUniforms) Shade(dir math.Vec3, fragCoord math.Vec2) math.Vec3 {
	altitude, horizontal := Altitude(dir)

	col := u.Gradient.Color(altitude)

	glow := u.near.glow(horizontal, altitude) + u.far.glow(horizontal, altitude)
	col = col.Add(u.Pollution.Color.Scale(glow))

	dither := (Hash(fragCoord) - 0.5) * u.Dither
	col = col.Add(math.Splat(dither))

	col = math.MixVec3(col, u.Fog.Color, SkyFogBlend(altitude, u.Fog.Density, u.Fog.MaxOpacity))

	if u.Horror.Enabled {
		col = u.Horror.Grade(col, altitude, u.Time, u.screenUV(fragCoord))
	}
	return col
}

func (u *SkyUniforms) screenUV(fragCoord math.Vec2) math.Vec2 {
	if u.Resolution.X <= 0 || u.Resolution.Y <= 0 {
		return math.Vec2{X: 0.5, Y: 0.5}
	}
	return fragCoord.Div(u.Resolution)
}
