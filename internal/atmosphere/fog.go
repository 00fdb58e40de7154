package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Fog mirrors the scene fog into the atmosphere. The scene's fog owner stays
// the source of truth; the composer only keeps a copy.
type Fog struct {
	Color      math.Vec3
	Density    float32
	MaxOpacity float32 // cap on the sky blend at the horizon
}

const (
	// SkyFogScale maps typical exp2 densities (0.01-0.05) into a usable blend range.
	SkyFogScale = 35
	// StarFogScale sets how quickly stars are extinguished by fog.
	StarFogScale = 60
)

// SkyFogBlend returns how far the sky colour is pulled toward the fog colour.
// The factor is maxOpacity-capped and falls off quadratically toward the zenith.
func SkyFogBlend(altitude, density, maxOpacity float32) float32 {
	f := 1 - altitude
	return f * f * math.Clamp(density*SkyFogScale, 0, maxOpacity)
}

// StarFogAlpha returns the multiplicative extinction applied to a star's alpha.
// It is an exponential falloff, strongest at the horizon.
func StarFogAlpha(altitude, density float32) float32 {
	return math32.Exp(-density * StarFogScale * (1 - altitude))
}

// ClampFog returns f with density >= 0 and max opacity in [0, 1], the
// values the sky and stars will actually use.
func ClampFog(f Fog) Fog {
	f.Density = math32.Max(f.Density, 0)
	f.MaxOpacity = math.Saturate(f.MaxOpacity)
	return f
}
