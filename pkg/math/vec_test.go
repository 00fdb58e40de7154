package math

import (
	"testing"
)

func TestVec2Add(t *testing.T) {
	got := Vec2{1, 2}.Add(Vec2{3, 4})
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	got := Vec2{3, 4}.Length()
	if got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name             string
		edge0, edge1, x  float32
		want             float32
	}{
		{"below", 0, 1, -1, 0},
		{"above", 0, 1, 2, 1},
		{"midpoint", 0, 1, 0.5, 0.5},
		{"lower edge", 0.25, 0.6, 0.25, 0},
		{"upper edge", 0, 0.25, 0.25, 1},
		{"reversed at zero", 0.35, 0, 0, 1},
		{"reversed past edge", 0.35, 0, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smoothstep(tt.edge0, tt.edge1, tt.x); got != tt.want {
				t.Errorf("Smoothstep(%v, %v, %v) = %v, want %v", tt.edge0, tt.edge1, tt.x, got, tt.want)
			}
		})
	}
}

func TestMixEndpointsExact(t *testing.T) {
	a := Vec3{0.168627, 0.156863, 0.133333}
	b := Vec3{0.058824, 0.054902, 0.078431}
	if got := MixVec3(a, b, 0); got != a {
		t.Errorf("MixVec3(a, b, 0) = %v, want %v", got, a)
	}
	if got := MixVec3(a, b, 1); got != b {
		t.Errorf("MixVec3(a, b, 1) = %v, want %v", got, b)
	}
}

func TestFract(t *testing.T) {
	if got := Fract(2.75); got != 0.75 {
		t.Errorf("Fract(2.75) = %v, want 0.75", got)
	}
	if got := Fract(-0.25); got != 0.75 {
		t.Errorf("Fract(-0.25) = %v, want 0.75", got)
	}
}
