package camera

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

func approxVec(a, b math.Vec3) bool {
	const eps = 1e-5
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestDefaults(t *testing.T) {
	c := NewFirstPersonCamera()
	if c.Position() != (math.Vec3{Y: 1.7, Z: 15}) {
		t.Errorf("Position = %v", c.Position())
	}
	if !approxVec(c.Forward(), math.Vec3{Z: -1}) {
		t.Errorf("Forward = %v, want north", c.Forward())
	}
}

func TestForwardYaw(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Yaw = math32.Pi / 2
	if !approxVec(c.Forward(), math.Vec3{X: 1}) {
		t.Errorf("Forward at yaw 90 = %v, want east", c.Forward())
	}
	if !approxVec(c.Right(), math.Vec3{Z: 1}) {
		t.Errorf("Right at yaw 90 = %v, want south", c.Right())
	}
}

func TestHandleLookClampsPitch(t *testing.T) {
	c := NewFirstPersonCamera()
	c.HandleLook(0, -100000)
	if c.Pitch != maxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, maxPitch)
	}
	c.HandleLook(0, 100000)
	if c.Pitch != -maxPitch {
		t.Errorf("Pitch = %v, want %v", c.Pitch, -maxPitch)
	}

	c.Pitch = 0
	c.HandleLook(100, 0)
	if math32.Abs(c.Yaw-0.2) > 1e-6 {
		t.Errorf("Yaw = %v, want 0.2", c.Yaw)
	}
}

func TestHandleMovement(t *testing.T) {
	c := NewFirstPersonCamera()
	c.HandleMovement(1, 0, 2)
	if !approxVec(c.Eye, math.Vec3{Y: 1.7, Z: 15 - 7}) {
		t.Errorf("Eye after walking north = %v", c.Eye)
	}

	c.Reset()
	c.HandleMovement(1, 1, 1)
	moved := c.Eye.Sub(math.Vec3{Y: 1.7, Z: 15}).Length()
	if math32.Abs(moved-c.WalkSpeed) > 1e-5 {
		t.Errorf("diagonal distance = %v, want %v", moved, c.WalkSpeed)
	}
	if c.Eye.Y != 1.7 {
		t.Errorf("walking changed eye height to %v", c.Eye.Y)
	}
}

func TestRayDirectionCentre(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Yaw = 0.7
	c.Pitch = 0.3
	if got := c.RayDirection(0, 0, 16.0/9); !approxVec(got, c.Forward()) {
		t.Errorf("centre ray = %v, want forward %v", got, c.Forward())
	}
}

func TestRayDirectionMatchesProjection(t *testing.T) {
	c := NewFirstPersonCamera()
	c.Yaw = -0.4
	aspect := float32(4.0 / 3)

	dir := c.RayDirection(0.5, -0.25, aspect)
	p := c.Eye.Add(dir.Scale(10))

	clip := c.ProjectionMatrix(aspect).Mul(c.ViewMatrix()).MulVec4(math.Point(p))
	ndcX, ndcY := clip[0]/clip[3], clip[1]/clip[3]
	if math32.Abs(ndcX-0.5) > 1e-4 || math32.Abs(ndcY+0.25) > 1e-4 {
		t.Errorf("projected ray = (%v, %v), want (0.5, -0.25)", ndcX, ndcY)
	}
}

func TestReset(t *testing.T) {
	c := NewFirstPersonCamera()
	c.HandleLook(300, 200)
	c.HandleMovement(1, 0, 5)
	c.Reset()
	if c.Eye != (math.Vec3{Y: 1.7, Z: 15}) || c.Yaw != 0 || c.Pitch != 0 {
		t.Errorf("Reset left %+v", c)
	}
}
