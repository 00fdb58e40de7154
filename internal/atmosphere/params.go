package atmosphere

import "github.com/Faultbox/nightyard/pkg/math"

// Scene constants shared with the world and camera.
const (
	// SkydomeRadius is the radius of the celestial sphere. Both the sky dome
	// and the star field live on it and follow the camera.
	SkydomeRadius = 1000
	// DefaultStarCount is the size of a freshly generated star field.
	DefaultStarCount = 3000
)

// StarField configures the star field as a whole.
type StarField struct {
	Enabled     bool
	Count       int
	Brightness  float32
	SizeMin     float32
	SizeMax     float32
	HorizonFade float32
	AntiAlias   bool
	Tint        math.Vec3
}

// Params is a complete, plain-data atmosphere configuration. Presets are
// Params values; Atmosphere.Apply installs one in a single call.
type Params struct {
	Gradient  Gradient
	Pollution Pollution
	Dither    float32
	Fog       Fog
	Horror    Horror
	Stars     StarField
}

func hex(r, g, b uint8) math.Vec3 {
	return math.Vec3{X: float32(r) / 255, Y: float32(g) / 255, Z: float32(b) / 255}
}

// DefaultParams returns the tuned night-sky defaults.
func DefaultParams() Params {
	return Params{
		Gradient: Gradient{
			Horizon:     hex(0x2b, 0x28, 0x22),
			MidLow:      hex(0x0f, 0x0e, 0x14),
			MidHigh:     hex(0x08, 0x0a, 0x10),
			Zenith:      hex(0x04, 0x06, 0x08),
			MidLowStop:  0.25,
			MidHighStop: 0.6,
		},
		Pollution: Pollution{
			Color: hex(0x3d, 0x2f, 0x28),
			Near:  Source{AzimuthDeg: -45, Intensity: 0.15, SpreadDeg: 70, MaxHeight: 0.35},
			Far:   Source{AzimuthDeg: 135, Intensity: 0.06, SpreadDeg: 60, MaxHeight: 0.15},
		},
		Dither: 0.008,
		Fog: Fog{
			Color:      hex(0x14, 0x16, 0x18),
			Density:    0.02,
			MaxOpacity: 0.95,
		},
		Horror: Horror{
			Enabled:          false,
			Desaturation:     0.25,
			GreenTint:        0.12,
			Contrast:         0.12,
			Vignette:         0.35,
			BreatheAmplitude: 0,
			BreatheSpeed:     0.15,
		},
		Stars: StarField{
			Enabled:     true,
			Count:       DefaultStarCount,
			Brightness:  1,
			SizeMin:     0.8,
			SizeMax:     5,
			HorizonFade: 0.3,
			AntiAlias:   true,
			Tint:        hex(0xf5, 0xff, 0xf9),
		},
	}
}
