package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// Horror is the optional post-grade applied over the composed sky colour.
type Horror struct {
	Enabled          bool
	Desaturation     float32 // 0 keeps colour, 1 is full luminance grey
	GreenTint        float32 // blend toward a sickly green multiplier
	Contrast         float32 // stretch around mid-grey, -0.5..0.5 in practice
	Vignette         float32 // edge darkening strength
	BreatheAmplitude float32 // brightness pulse depth
	BreatheSpeed     float32 // pulse rate, 0..1
}

var greenBias = math.Vec3{X: 0.94, Y: 1.03, Z: 0.96}

// Luma returns the Rec. 709 luminance of c.
func Luma(c math.Vec3) float32 {
	return c.Dot(math.Vec3{X: 0.2126, Y: 0.7152, Z: 0.0722})
}

// Breath returns the brightness modulation at time t, before altitude weighting.
func (h Horror) Breath(t float32) float32 {
	return h.BreatheAmplitude * math32.Sin(t*(1+h.BreatheSpeed*5))
}

// Grade applies the horror grade to col. uv is the fragment position in
// normalized screen space (0..1 on both axes); the vignette is computed from it
// rather than from the view direction.
func (h Horror) Grade(col math.Vec3, altitude, t float32, uv math.Vec2) math.Vec3 {
	col = col.Scale(1 + h.Breath(t)*(1-altitude))

	col = math.MixVec3(col, math.Splat(Luma(col)), h.Desaturation)

	col = col.Mul(math.MixVec3(math.Splat(1), greenBias, h.GreenTint))

	half := math.Splat(0.5)
	col = col.Sub(half).Scale(1 + h.Contrast).Add(half)

	d := uv.Distance(math.Vec2{X: 0.5, Y: 0.5})
	vig := math.Smoothstep(0.40, 0.80, d)
	return col.Scale(1 - h.Vignette*vig)
}

func clampHorror(h Horror) Horror {
	h.Desaturation = math.Saturate(h.Desaturation)
	h.GreenTint = math.Saturate(h.GreenTint)
	h.Contrast = math32.Max(h.Contrast, -1)
	h.Vignette = math.Saturate(h.Vignette)
	h.BreatheAmplitude = math32.Max(h.BreatheAmplitude, 0)
	h.BreatheSpeed = math32.Max(h.BreatheSpeed, 0)
	return h
}
