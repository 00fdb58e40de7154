// Package world holds the physical scene around the camera: the fog that the
// atmosphere mirrors, the lights and the ground plane.
package world

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

var up = math.Vec3{Y: 1}

// World is the ground, its lighting and the scene fog.
type World struct {
	Fog    Fog
	Ground Ground
	Lights Lights
}

// New returns the default world with the given fog.
func New(fog Fog) *World {
	return &World{
		Fog:    fog,
		Ground: DefaultGround(),
		Lights: DefaultLights(),
	}
}

// SetLighting sets the moon position and the three light intensities, and
// the ground texture tiling. Intensities below zero become zero and tiling
// is at least one repeat.
func (w *World) SetLighting(moonPos math.Vec3, moon, hemi, ambient, tiling float32) {
	w.Lights.Moon.Position = moonPos
	w.Lights.Moon.Intensity = math32.Max(moon, 0)
	w.Lights.Hemi.Intensity = math32.Max(hemi, 0)
	w.Lights.Ambient = math32.Max(ambient, 0)
	w.Ground.Tiling = math32.Max(tiling, 1)
}

// ShadeSurface returns the lit, fogged colour of the first surface along the
// ray and its distance, or false if the ray leaves the world and the
// backdrop shows through.
func (w *World) ShadeSurface(origin, dir math.Vec3) (math.Vec3, float32, bool) {
	d, ok := w.Ground.Intersect(origin, dir)
	if !ok {
		return math.Vec3{}, 0, false
	}
	p := origin.Add(dir.Scale(d))
	col := w.Ground.albedoAt(p).Mul(w.Lights.Irradiance(up))
	return w.Fog.Apply(col, d), d, true
}
