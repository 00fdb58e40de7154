package world

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// FogType selects the distance falloff of the scene fog.
type FogType string

const (
	FogExp2   FogType = "exp2"
	FogLinear FogType = "linear"
)

// Linear fog range in metres. It is fixed; only exp2 fog is tunable.
const (
	LinearFogNear = 35
	LinearFogFar  = 90
)

// Fog is the scene fog and the source of truth for fog parameters. The
// atmosphere only holds a copy and must be told when it changes.
type Fog struct {
	Type    FogType
	Color   math.Vec3
	Density float32 // exp2 density, also drives the sky and star fog
	Near    float32 // linear start
	Far     float32 // linear end
	SkyMax  float32 // cap on the sky's horizon fog blend
}

// NewFog returns exp2 fog with the given colour and density.
func NewFog(color math.Vec3, density, skyMax float32) Fog {
	return Fog{
		Type:    FogExp2,
		Color:   color,
		Density: density,
		Near:    LinearFogNear,
		Far:     LinearFogFar,
		SkyMax:  skyMax,
	}
}

// Factor returns how much of a surface at distance d is replaced by fog.
func (f Fog) Factor(d float32) float32 {
	if f.Type == FogLinear {
		return math.Smoothstep(f.Near, f.Far, d)
	}
	dd := f.Density * d
	return 1 - math32.Exp(-dd*dd)
}

// Apply blends col toward the fog colour for a surface at distance d.
func (f Fog) Apply(col math.Vec3, d float32) math.Vec3 {
	return math.MixVec3(col, f.Color, math.Saturate(f.Factor(d)))
}
