// Package raster is a CPU render substrate for offline frames. It draws an
// opaque backdrop first, then opaque surfaces, then additive point sprites,
// evaluating each layer's shading program once per covered pixel.
package raster

import (
	"github.com/Faultbox/nightyard/pkg/math"
)

// Backdrop is shaded for every pixel that no surface covers. It ignores
// depth entirely and is always fully opaque.
type Backdrop interface {
	// ShadeBackdrop returns the colour for a pixel centre (origin
	// bottom-left) and the world-space view direction through it.
	ShadeBackdrop(fragCoord math.Vec2, dir math.Vec3) math.Vec3
}

// Surface is opaque geometry traced along the view ray.
type Surface interface {
	// ShadeSurface returns the colour of the first hit along the ray and its
	// distance from origin, or false when the ray misses.
	ShadeSurface(origin, dir math.Vec3) (col math.Vec3, dist float32, ok bool)
}

// PointProgram is a set of point sprites drawn with additive blending,
// depth-tested against surfaces but never writing depth.
type PointProgram interface {
	PointCount() int
	PointPosition(i int) math.Vec3
	// PointSize returns the rasterized size in device pixels and the size
	// before any minimum-size floor. viewZ is negative in front of the camera.
	PointSize(i int, viewZ float32) (size, calculated float32)
	// PointColor returns colour and alpha at a sprite coordinate in 0..1.
	PointColor(i int, pointCoord math.Vec2, calculated float32) (math.Vec3, float32)
}

// Camera is what the substrate needs from the viewpoint.
type Camera interface {
	Position() math.Vec3
	ViewMatrix() math.Mat4
	ProjectionMatrix(aspect float32) math.Mat4
	RayDirection(ndcX, ndcY, aspect float32) math.Vec3
}

// Frame is everything drawn in one Render call.
type Frame struct {
	Camera   Camera
	Backdrop Backdrop
	Surfaces []Surface
	Points   []PointProgram
	Exposure float32 // multiplier applied at resolve; 0 means 1
}
