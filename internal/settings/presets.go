package settings

import (
	"fmt"
	"sort"
)

// Preset names.
const (
	PresetDefaults  = "resetToDefaults"
	PresetUserTuned = "userTuned"
	PresetBright    = "brightTest"
	PresetHorror    = "horrorAtmosphere"
)

// presetFunc derives a preset state from the current one.
type presetFunc func(current State) State

var presets = map[string]presetFunc{
	PresetDefaults:  func(State) State { return Defaults() },
	PresetUserTuned: func(State) State { return Defaults() },
	PresetBright:    brightTest,
	PresetHorror:    horrorAtmosphere,
}

// Preset returns the named preset. Most presets start from the defaults;
// horrorAtmosphere layers its values over current instead.
func Preset(name string, current State) (State, error) {
	fn, ok := presets[name]
	if !ok {
		return current, fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return fn(current), nil
}

// PresetNames returns every preset name in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// brightTest lifts exposure, lights and stars for checking the scene in daylight.
func brightTest(State) State {
	s := Defaults()
	s.Exposure = 1.5
	s.MoonIntensity = 1.2
	s.HemiIntensity = 0.35
	s.AmbientIntensity = 0.08
	s.FogDensity = 0.02
	s.StarBrightness = 1.2
	return s
}

// horrorAtmosphere is the desaturated green-grey look with the grade enabled.
func horrorAtmosphere(current State) State {
	s := current

	s.SkyHorizonColor = "#2a241f"
	s.SkyMidLowColor = "#171a16"
	s.SkyMidHighColor = "#0b1110"
	s.SkyZenithColor = "#060b0a"
	s.SkyMidLowStop = 0.26
	s.SkyMidHighStop = 0.62

	s.FogColor = "#0f1512"
	s.FogDensity = 0.035
	s.FogMax = 0.93

	s.Exposure = 0.9
	s.MoonIntensity = 0.6
	s.HemiIntensity = 0.2
	s.AmbientIntensity = 0.04

	s.PollutionColor = "#3a2e26"
	s.Village1Intensity = 0.12
	s.Village1Spread = 80
	s.Village1Height = 0.3
	s.Village2Intensity = 0.05
	s.Village2Spread = 65
	s.Village2Height = 0.12

	s.StarBrightness = 0.65
	s.StarSizeMin = 0.9
	s.StarSizeMax = 4.5
	s.StarHorizonFade = 0.28
	s.StarTint = "#e6fff0"

	s.HorrorEnabled = true
	s.HorrorDesat = 0.28
	s.HorrorGreenTint = 0.14
	s.HorrorContrast = 0.12
	s.HorrorVignette = 0.3
	s.HorrorBreatheAmp = 0
	s.HorrorBreatheSpeed = 0.15
	return s
}
