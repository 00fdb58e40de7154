package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Source is a light-pollution glow centred on a compass bearing.
type Source struct {
	AzimuthDeg float32 // clockwise from north (-Z), degrees
	Intensity  float32 // peak glow added at the horizon
	SpreadDeg  float32 // angular half-width of the glow, degrees
	MaxHeight  float32 // altitude at which the glow has faded to zero
}

// Direction returns the unit horizontal vector the source sits in.
// North is -Z and east is +X, so azimuth -45 points north-west.
func (s Source) Direction() math.Vec3 {
	rad := math.Radians(s.AzimuthDeg)
	return math.Vec3{X: math32.Sin(rad), Y: 0, Z: -math32.Cos(rad)}.Normalize()
}

// Glow returns the glow contribution of s for a horizontal view direction at
// the given altitude. The result lies in [0, s.Intensity].
func (s Source) Glow(horizontal math.Vec3, altitude float32) float32 {
	return s.uniform().glow(horizontal, altitude)
}

// glowUniform is a Source with its per-pixel invariants precomputed,
// the form uploaded to the sky program.
type glowUniform struct {
	dir       math.Vec3
	cosSpread float32
	intensity float32
	height    float32
}

// CosSpread returns the cosine of the spread angle, the lower smoothstep
// edge of the angular falloff.
func (s Source) CosSpread() float32 {
	return math32.Cos(math.Radians(s.SpreadDeg))
}

func (s Source) uniform() glowUniform {
	return glowUniform{
		dir:       s.Direction(),
		cosSpread: s.CosSpread(),
		intensity: s.Intensity,
		height:    s.MaxHeight,
	}
}

func (g glowUniform) glow(horizontal math.Vec3, altitude float32) float32 {
	if altitude >= g.height {
		return 0
	}
	alignment := horizontal.Dot(g.dir)
	angular := math.Smoothstep(g.cosSpread, 1, alignment) * g.intensity
	// Reversed edges: 1 at the horizon, 0 at the source's max height.
	return angular * math.Smoothstep(g.height, 0, altitude)
}

func clampSource(s Source) Source {
	s.Intensity = math32.Max(s.Intensity, 0)
	s.SpreadDeg = math.Clamp(s.SpreadDeg, 0, 180)
	s.MaxHeight = math.Saturate(s.MaxHeight)
	return s
}
