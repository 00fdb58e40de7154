package world

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Moon is the directional key light.
type Moon struct {
	Position  math.Vec3 // light position; direction is taken toward the origin
	Color     math.Vec3
	Intensity float32
}

// Direction returns the unit vector pointing toward the moon.
func (m Moon) Direction() math.Vec3 {
	return m.Position.Normalize()
}

// Hemisphere is the sky/ground bounce light.
type Hemisphere struct {
	Sky       math.Vec3
	Ground    math.Vec3
	Intensity float32
}

// Irradiance returns the hemisphere contribution for a surface normal.
func (h Hemisphere) Irradiance(normal math.Vec3) math.Vec3 {
	t := normal.Y*0.5 + 0.5
	return math.MixVec3(h.Ground, h.Sky, t).Scale(h.Intensity)
}

// Lights groups the scene lights that shade the ground.
type Lights struct {
	Moon    Moon
	Hemi    Hemisphere
	Ambient float32
}

// DefaultLights returns the night lighting rig.
func DefaultLights() Lights {
	return Lights{
		Moon: Moon{
			Position:  math.Vec3{X: 12, Y: 30, Z: 16},
			Color:     rgb(0x9b, 0xb7, 0xff),
			Intensity: 0.8,
		},
		Hemi: Hemisphere{
			Sky:       rgb(0x20, 0x32, 0x4f),
			Ground:    rgb(0x0a, 0x0f, 0x18),
			Intensity: 0.25,
		},
		Ambient: 0.05,
	}
}

// Irradiance returns the light arriving at a surface with the given normal.
func (l Lights) Irradiance(normal math.Vec3) math.Vec3 {
	diffuse := math32.Max(normal.Dot(l.Moon.Direction()), 0)
	col := l.Moon.Color.Scale(l.Moon.Intensity * diffuse)
	col = col.Add(l.Hemi.Irradiance(normal))
	return col.Add(math.Splat(l.Ambient))
}

func rgb(r, g, b uint8) math.Vec3 {
	return math.Vec3{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255}
}
