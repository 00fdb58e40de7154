package math

import "github.com/chewxy/math32"

// DegToRad converts degrees to radians.
const DegToRad = math32.Pi / 180

// Radians converts an angle in degrees to radians.
func Radians(deg float32) float32 {
	return deg * DegToRad
}

// Clamp limits x to [lo, hi].
func Clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Saturate clamps x to [0, 1].
func Saturate(x float32) float32 {
	return Clamp(x, 0, 1)
}

// Smoothstep is the GLSL cubic Hermite step between edge0 and edge1.
// Reversed edges (edge0 > edge1) produce the mirrored curve, as on the GPU.
func Smoothstep(edge0, edge1, x float32) float32 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Saturate((x - edge0) / (edge1 - edge0))
	return t * t * (3 - 2*t)
}

// Mix linearly interpolates a and b as a*(1-t) + b*t.
// The form keeps Mix(a, b, 0) == a and Mix(a, b, 1) == b exactly.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// MixVec3 is Mix applied per component.
func MixVec3(a, b Vec3, t float32) Vec3 {
	return Vec3{Mix(a.X, b.X, t), Mix(a.Y, b.Y, t), Mix(a.Z, b.Z, t)}
}

// Fract returns the fractional part x - floor(x).
func Fract(x float32) float32 {
	return x - math32.Floor(x)
}
