package settings

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/Faultbox/nightyard/pkg/math"
)

// ParseColor converts a "#rrggbb" (or "#rgb") string into 0..1 RGB.
// The channels are taken as-is, without sRGB linearization, matching how
// the sky program consumes colour uniforms.
func ParseColor(s string) (math.Vec3, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return math.Vec3{}, fmt.Errorf("%w %q", ErrInvalidColor, s)
	}
	return math.Vec3{X: float32(c.R), Y: float32(c.G), Z: float32(c.B)}, nil
}

// HexColor formats an RGB triple as a lowercase "#rrggbb" string.
// Channels outside 0..1 are clamped.
func HexColor(v math.Vec3) string {
	c := colorful.Color{R: float64(v.X), G: float64(v.Y), B: float64(v.Z)}
	return c.Clamped().Hex()
}
