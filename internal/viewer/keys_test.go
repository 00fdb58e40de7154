package viewer

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nightyard/internal/settings"
)

func TestPresetKeysAreRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, n := range settings.PresetNames() {
		names[n] = true
	}
	for key, name := range presetKeys {
		if !names[name] {
			t.Errorf("key %d maps to unknown preset %q", key, name)
		}
	}

	if name, ok := presetForKey(sdl.SCANCODE_4); !ok || name != settings.PresetHorror {
		t.Errorf("presetForKey(4) = %q, %v", name, ok)
	}
	if _, ok := presetForKey(sdl.SCANCODE_Q); ok {
		t.Error("Q should not select a preset")
	}
}

func TestFogStep(t *testing.T) {
	tests := []struct {
		name    string
		d       float32
		thicker bool
		want    float32
	}{
		{"thicker", 0.02, true, 0.022},
		{"thinner", 0.02, false, 0.018},
		{"floor", 0.001, false, 0},
		{"ceiling", 0.0995, true, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fogStep(tt.d, tt.thicker)
			if diff := got - tt.want; diff > 1e-6 || diff < -1e-6 {
				t.Errorf("fogStep(%v, %v) = %v, want %v", tt.d, tt.thicker, got, tt.want)
			}
		})
	}
}

func TestSnapshotScale(t *testing.T) {
	tests := []struct {
		name         string
		w, h, want   int
		maxSize, out int
	}{
		{"fits", 1280, 720, 2, 8192, 2},
		{"clamped", 2560, 1440, 4, 8192, 3},
		{"none", 1280, 720, 1, 8192, 1},
		{"zero", 1280, 720, 0, 8192, 1},
		{"too large", 9000, 100, 2, 8192, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := snapshotScale(tt.w, tt.h, tt.want, tt.maxSize); got != tt.out {
				t.Errorf("snapshotScale() = %d, want %d", got, tt.out)
			}
		})
	}
}
