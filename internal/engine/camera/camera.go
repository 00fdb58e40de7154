// Package camera provides the first-person camera used by the viewer and
// the batch renderer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Camera defaults.
const (
	DefaultFOV              = 75 // vertical, degrees
	DefaultNear             = 0.1
	DefaultFar              = 5000
	DefaultEyeHeight        = 1.7
	DefaultStartZ           = 15
	DefaultWalkSpeed        = 3.5   // metres per second
	DefaultMouseSensitivity = 0.002 // radians per pixel

	// maxPitch keeps the view just short of straight up or down.
	maxPitch = math32.Pi/2 - 0.1
)

var worldUp = math.Vec3{X: 0, Y: 1, Z: 0}

// FirstPersonCamera walks on a fixed eye height and looks around with yaw and
// pitch. Yaw 0 faces north (-Z); positive yaw turns east.
type FirstPersonCamera struct {
	Eye math.Vec3

	Yaw   float32 // radians
	Pitch float32 // radians, clamped to ±maxPitch

	FOV  float32 // vertical, degrees
	Near float32
	Far  float32

	WalkSpeed        float32
	MouseSensitivity float32
}

// NewFirstPersonCamera returns a camera at the default start position.
func NewFirstPersonCamera() *FirstPersonCamera {
	return &FirstPersonCamera{
		Eye:              math.Vec3{X: 0, Y: DefaultEyeHeight, Z: DefaultStartZ},
		FOV:              DefaultFOV,
		Near:             DefaultNear,
		Far:              DefaultFar,
		WalkSpeed:        DefaultWalkSpeed,
		MouseSensitivity: DefaultMouseSensitivity,
	}
}

// Position returns the camera position in world space.
func (c *FirstPersonCamera) Position() math.Vec3 {
	return c.Eye
}

// Forward returns the unit view direction.
func (c *FirstPersonCamera) Forward() math.Vec3 {
	cp := math32.Cos(c.Pitch)
	return math.Vec3{
		X: math32.Sin(c.Yaw) * cp,
		Y: math32.Sin(c.Pitch),
		Z: -math32.Cos(c.Yaw) * cp,
	}
}

// Right returns the unit horizontal right vector.
func (c *FirstPersonCamera) Right() math.Vec3 {
	return math.Vec3{X: math32.Cos(c.Yaw), Y: 0, Z: math32.Sin(c.Yaw)}
}

// ViewMatrix returns the view matrix for this camera.
func (c *FirstPersonCamera) ViewMatrix() math.Mat4 {
	return math.LookAt(c.Eye, c.Eye.Add(c.Forward()), worldUp)
}

// ProjectionMatrix returns the perspective projection for an aspect ratio.
func (c *FirstPersonCamera) ProjectionMatrix(aspect float32) math.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return math.Perspective(math.Radians(c.FOV), aspect, c.Near, c.Far)
}

// RayDirection returns the world-space unit direction through a point in
// normalized device coordinates (-1..1, y up).
func (c *FirstPersonCamera) RayDirection(ndcX, ndcY, aspect float32) math.Vec3 {
	tanHalf := math32.Tan(math.Radians(c.FOV) / 2)
	fwd := c.Forward()
	right := fwd.Cross(worldUp).Normalize()
	up := right.Cross(fwd)

	dir := fwd.
		Add(right.Scale(ndcX * tanHalf * aspect)).
		Add(up.Scale(ndcY * tanHalf))
	return dir.Normalize()
}

// HandleLook turns the camera by a mouse delta in pixels.
func (c *FirstPersonCamera) HandleLook(deltaX, deltaY float32) {
	c.Yaw += deltaX * c.MouseSensitivity
	c.Pitch -= deltaY * c.MouseSensitivity
	c.Pitch = math.Clamp(c.Pitch, -maxPitch, maxPitch)
}

// HandleMovement walks the camera on the ground plane. forward and right are
// input axes in -1..1; dt is the frame time in seconds. Diagonals are not
// faster than straight lines.
func (c *FirstPersonCamera) HandleMovement(forward, right, dt float32) {
	dir := math.Vec3{
		X: math32.Sin(c.Yaw)*forward + math32.Cos(c.Yaw)*right,
		Z: -math32.Cos(c.Yaw)*forward + math32.Sin(c.Yaw)*right,
	}
	if dir.Length() > 1 {
		dir = dir.Normalize()
	}
	c.Eye = c.Eye.Add(dir.Scale(c.WalkSpeed * dt))
}

// Reset returns the camera to the start position and orientation.
func (c *FirstPersonCamera) Reset() {
	c.Eye = math.Vec3{X: 0, Y: DefaultEyeHeight, Z: DefaultStartZ}
	c.Yaw = 0
	c.Pitch = 0
}
