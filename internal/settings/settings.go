// Package settings holds the flat, serializable live state of the night
// scene: every tunable the viewer exposes, keyed exactly as exported preset
// files are keyed. The state is plain data; scene.ApplyState pushes it into
// the atmosphere and the world.
package settings

import "errors"

var (
	// ErrUnknownPreset is returned by Preset for a name that is not registered.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrInvalidColor is returned when a colour string is not a #rrggbb hex value.
	ErrInvalidColor = errors.New("invalid color")
	// ErrInvalidFogType is returned for a fog type other than exp2 or linear.
	ErrInvalidFogType = errors.New("invalid fog type")
)

// Fog types understood by the world fog.
const (
	FogExp2   = "exp2"
	FogLinear = "linear"
)

// State is the complete tunable state. Colours are "#rrggbb" strings so that
// exported files stay human-editable and match the files written by earlier
// tools; unknown keys in imported files are ignored.
type State struct {
	Exposure float32 `json:"exposure" yaml:"exposure"`

	MoonIntensity    float32 `json:"moonIntensity" yaml:"moonIntensity"`
	MoonX            float32 `json:"moonX" yaml:"moonX"`
	MoonY            float32 `json:"moonY" yaml:"moonY"`
	MoonZ            float32 `json:"moonZ" yaml:"moonZ"`
	HemiIntensity    float32 `json:"hemiIntensity" yaml:"hemiIntensity"`
	AmbientIntensity float32 `json:"ambientIntensity" yaml:"ambientIntensity"`
	GroundTiling     int     `json:"groundTiling" yaml:"groundTiling"`

	FogDensity float32 `json:"fogDensity" yaml:"fogDensity"`
	FogType    string  `json:"fogType" yaml:"fogType"`
	FogColor   string  `json:"fogColor" yaml:"fogColor"`
	FogMax     float32 `json:"fogMax" yaml:"fogMax"`

	SkyHorizonColor string  `json:"skyHorizonColor" yaml:"skyHorizonColor"`
	SkyMidLowColor  string  `json:"skyMidLowColor" yaml:"skyMidLowColor"`
	SkyMidHighColor string  `json:"skyMidHighColor" yaml:"skyMidHighColor"`
	SkyZenithColor  string  `json:"skyZenithColor" yaml:"skyZenithColor"`
	SkyMidLowStop   float32 `json:"skyMidLowStop" yaml:"skyMidLowStop"`
	SkyMidHighStop  float32 `json:"skyMidHighStop" yaml:"skyMidHighStop"`
	SkyDitherAmount float32 `json:"skyDitherAmount" yaml:"skyDitherAmount"`

	Village1Azimuth   float32 `json:"village1Azimuth" yaml:"village1Azimuth"`
	Village1Intensity float32 `json:"village1Intensity" yaml:"village1Intensity"`
	Village1Spread    float32 `json:"village1Spread" yaml:"village1Spread"`
	Village1Height    float32 `json:"village1Height" yaml:"village1Height"`
	Village2Azimuth   float32 `json:"village2Azimuth" yaml:"village2Azimuth"`
	Village2Intensity float32 `json:"village2Intensity" yaml:"village2Intensity"`
	Village2Spread    float32 `json:"village2Spread" yaml:"village2Spread"`
	Village2Height    float32 `json:"village2Height" yaml:"village2Height"`
	PollutionColor    string  `json:"pollutionColor" yaml:"pollutionColor"`

	StarEnabled     bool    `json:"starEnabled" yaml:"starEnabled"`
	StarCount       int     `json:"starCount" yaml:"starCount"`
	StarBrightness  float32 `json:"starBrightness" yaml:"starBrightness"`
	StarSizeMin     float32 `json:"starSizeMin" yaml:"starSizeMin"`
	StarSizeMax     float32 `json:"starSizeMax" yaml:"starSizeMax"`
	StarHorizonFade float32 `json:"starHorizonFade" yaml:"starHorizonFade"`
	StarAntiAlias   bool    `json:"starAntiAlias" yaml:"starAntiAlias"`
	StarTint        string  `json:"starTint" yaml:"starTint"`

	HorrorEnabled      bool    `json:"horrorEnabled" yaml:"horrorEnabled"`
	HorrorDesat        float32 `json:"horrorDesat" yaml:"horrorDesat"`
	HorrorGreenTint    float32 `json:"horrorGreenTint" yaml:"horrorGreenTint"`
	HorrorContrast     float32 `json:"horrorContrast" yaml:"horrorContrast"`
	HorrorVignette     float32 `json:"horrorVignette" yaml:"horrorVignette"`
	HorrorBreatheAmp   float32 `json:"horrorBreatheAmp" yaml:"horrorBreatheAmp"`
	HorrorBreatheSpeed float32 `json:"horrorBreatheSpeed" yaml:"horrorBreatheSpeed"`

	MouseSensitivity float32 `json:"mouseSensitivity" yaml:"mouseSensitivity"`
	WalkSpeed        float32 `json:"walkSpeed" yaml:"walkSpeed"`
}

// Defaults returns the tuned night defaults.
func Defaults() State {
	return State{
		Exposure: 1.0,

		MoonIntensity:    0.8,
		MoonX:            12,
		MoonY:            30,
		MoonZ:            16,
		HemiIntensity:    0.25,
		AmbientIntensity: 0.05,
		GroundTiling:     64,

		FogDensity: 0.02,
		FogType:    FogExp2,
		FogColor:   "#141618",
		FogMax:     0.95,

		SkyHorizonColor: "#2b2822",
		SkyMidLowColor:  "#0f0e14",
		SkyMidHighColor: "#080a10",
		SkyZenithColor:  "#040608",
		SkyMidLowStop:   0.25,
		SkyMidHighStop:  0.6,
		SkyDitherAmount: 0.008,

		Village1Azimuth:   -45,
		Village1Intensity: 0.15,
		Village1Spread:    70,
		Village1Height:    0.35,
		Village2Azimuth:   135,
		Village2Intensity: 0.06,
		Village2Spread:    60,
		Village2Height:    0.15,
		PollutionColor:    "#3d2f28",

		StarEnabled:     true,
		StarCount:       3000,
		StarBrightness:  1.0,
		StarSizeMin:     0.8,
		StarSizeMax:     5.0,
		StarHorizonFade: 0.3,
		StarAntiAlias:   true,
		StarTint:        "#f5fff9",

		HorrorEnabled:      false,
		HorrorDesat:        0.25,
		HorrorGreenTint:    0.12,
		HorrorContrast:     0.12,
		HorrorVignette:     0.35,
		HorrorBreatheAmp:   0.0,
		HorrorBreatheSpeed: 0.15,

		MouseSensitivity: 0.002,
		WalkSpeed:        3.5,
	}
}
