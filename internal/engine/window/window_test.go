package window

import "testing"

func TestPixelRatio(t *testing.T) {
	tests := []struct {
		name              string
		drawable, logical int
		want              float32
	}{
		{"standard", 1280, 1280, 1},
		{"retina", 2560, 1280, 2},
		{"fractional", 1920, 1280, 1.5},
		{"zero logical", 1280, 0, 1},
		{"zero drawable", 0, 1280, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PixelRatio(tt.drawable, tt.logical); got != tt.want {
				t.Errorf("PixelRatio(%d, %d) = %v, want %v", tt.drawable, tt.logical, got, tt.want)
			}
		})
	}
}
