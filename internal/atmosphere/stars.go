package atmosphere

import (
	"math/rand/v2"

	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Star is one point of the star field. Samples never change after generation.
type Star struct {
	Position   math.Vec3 // on the celestial sphere, y >= 0
	Size       float32   // [0, 1), picks between the min and max point size
	Brightness float32   // [0.3, 1.0)
}

// GenerateStars scatters count stars over the upper hemisphere of a sphere
// of the given radius. Azimuth and polar angle are drawn uniformly, so stars
// bunch slightly toward the zenith, as in the sky they replace.
func GenerateStars(rng *rand.Rand, count int, radius float32) []Star {
	if count <= 0 {
		return nil
	}
	stars := make([]Star, count)
	for i := range stars {
		theta := rng.Float32() * 2 * math32.Pi
		phi := rng.Float32() * 0.5 * math32.Pi

		sinPhi := math32.Sin(phi)
		stars[i] = Star{
			Position: math.Vec3{
				X: radius * sinPhi * math32.Cos(theta),
				Y: radius * math32.Cos(phi),
				Z: radius * sinPhi * math32.Sin(theta),
			},
			Size:       rng.Float32(),
			Brightness: 0.3 + rng.Float32()*0.7,
		}
	}
	return stars
}

const (
	// MinPointPixels is the logical-pixel floor for rasterized star size.
	MinPointPixels = 2
	// sizeAttenuation is the perspective reference depth for point sizes.
	sizeAttenuation = 300
)

// StarUniforms is the parameter snapshot read by the star program.
type StarUniforms struct {
	SizeMin     float32
	SizeMax     float32
	Brightness  float32
	HorizonFade float32 // altitude band over which stars fade in
	AntiAlias   bool
	Tint        math.Vec3
	PixelRatio  float32
	FogDensity  float32
}

// PointSize returns the rasterized point size in device pixels and the size
// before the minimum-pixel floor was applied. viewZ is the camera-space depth
// of the star (negative in front of the camera).
func (u StarUniforms) PointSize(s Star, viewZ float32) (size, calculated float32) {
	starSize := math.Mix(u.SizeMin, u.SizeMax, s.Size)
	calculated = starSize * (sizeAttenuation / -viewZ)
	return math32.Max(calculated, MinPointPixels*u.PixelRatio), calculated
}

// Alpha returns the fragment alpha of a star at pointCoord (0..1 across the
// point sprite). calculated is the unfloored size from PointSize: stars that
// would be under two pixels fade out instead of snapping to the floor.
func (u StarUniforms) Alpha(s Star, pointCoord math.Vec2, calculated float32) float32 {
	dist := pointCoord.Distance(math.Vec2{X: 0.5, Y: 0.5})

	var alpha float32
	switch {
	case u.AntiAlias:
		alpha = math.Smoothstep(0.5, 0.3, dist)
	case dist < 0.5:
		alpha = 1
	}

	alpha *= s.Brightness * u.Brightness
	alpha *= math.Smoothstep(0, MinPointPixels, calculated)

	altitude := s.Position.Normalize().Y
	alpha *= math.Smoothstep(0, u.HorizonFade, altitude)
	alpha *= StarFogAlpha(altitude, u.FogDensity)
	return alpha
}

func clampStars(u StarUniforms) StarUniforms {
	u.SizeMin = math32.Max(u.SizeMin, 0)
	u.SizeMax = math32.Max(u.SizeMax, 0)
	u.Brightness = math32.Max(u.Brightness, 0)
	u.HorizonFade = math.Saturate(u.HorizonFade)
	if u.PixelRatio <= 0 {
		u.PixelRatio = 1
	}
	return u
}
