package tuning

import "github.com/Faultbox/nightyard/internal/settings"

type state = settings.State

func floatParam(group, key string, lo, hi, step float32, field func(*state) *float32) *Binding {
	return &Binding{Key: key, Group: group, Kind: Float, Min: lo, Max: hi, Step: step, float: field}
}

func intParam(group, key string, lo, hi, step float32, field func(*state) *int) *Binding {
	return &Binding{Key: key, Group: group, Kind: Int, Min: lo, Max: hi, Step: step, num: field}
}

func boolParam(group, key string, field func(*state) *bool) *Binding {
	return &Binding{Key: key, Group: group, Kind: Bool, flag: field}
}

func colorParam(group, key string, field func(*state) *string) *Binding {
	return &Binding{Key: key, Group: group, Kind: Color, text: field}
}

// bindings lists every parameter with the slider ranges of the tuning panel.
func bindings() []*Binding {
	const (
		sky       = "Sky Gradient"
		stars     = "Stars"
		pollution = "Light Pollution"
		horror    = "Horror"
		render    = "Rendering"
		lights    = "Lights"
		ground    = "Ground"
		fog       = "Fog"
		player    = "Player"
	)
	return []*Binding{
		colorParam(sky, "skyHorizonColor", func(s *state) *string { return &s.SkyHorizonColor }),
		colorParam(sky, "skyMidLowColor", func(s *state) *string { return &s.SkyMidLowColor }),
		colorParam(sky, "skyMidHighColor", func(s *state) *string { return &s.SkyMidHighColor }),
		colorParam(sky, "skyZenithColor", func(s *state) *string { return &s.SkyZenithColor }),
		floatParam(sky, "skyMidLowStop", 0, 0.5, 0.01, func(s *state) *float32 { return &s.SkyMidLowStop }),
		floatParam(sky, "skyMidHighStop", 0.5, 1, 0.01, func(s *state) *float32 { return &s.SkyMidHighStop }),
		floatParam(sky, "skyDitherAmount", 0, 0.01, 0.0001, func(s *state) *float32 { return &s.SkyDitherAmount }),

		boolParam(stars, "starEnabled", func(s *state) *bool { return &s.StarEnabled }),
		intParam(stars, "starCount", 1000, 10000, 100, func(s *state) *int { return &s.StarCount }),
		floatParam(stars, "starBrightness", 0, 3, 0.01, func(s *state) *float32 { return &s.StarBrightness }),
		floatParam(stars, "starSizeMin", 0.5, 5, 0.1, func(s *state) *float32 { return &s.StarSizeMin }),
		floatParam(stars, "starSizeMax", 2, 15, 0.1, func(s *state) *float32 { return &s.StarSizeMax }),
		floatParam(stars, "starHorizonFade", 0, 0.5, 0.01, func(s *state) *float32 { return &s.StarHorizonFade }),
		boolParam(stars, "starAntiAlias", func(s *state) *bool { return &s.StarAntiAlias }),
		colorParam(stars, "starTint", func(s *state) *string { return &s.StarTint }),

		floatParam(pollution, "village1Azimuth", -180, 180, 1, func(s *state) *float32 { return &s.Village1Azimuth }),
		floatParam(pollution, "village1Intensity", 0, 0.5, 0.01, func(s *state) *float32 { return &s.Village1Intensity }),
		floatParam(pollution, "village1Spread", 30, 120, 1, func(s *state) *float32 { return &s.Village1Spread }),
		floatParam(pollution, "village1Height", 0, 0.5, 0.01, func(s *state) *float32 { return &s.Village1Height }),
		floatParam(pollution, "village2Azimuth", -180, 180, 1, func(s *state) *float32 { return &s.Village2Azimuth }),
		floatParam(pollution, "village2Intensity", 0, 0.2, 0.01, func(s *state) *float32 { return &s.Village2Intensity }),
		floatParam(pollution, "village2Spread", 30, 120, 1, func(s *state) *float32 { return &s.Village2Spread }),
		floatParam(pollution, "village2Height", 0, 0.5, 0.01, func(s *state) *float32 { return &s.Village2Height }),
		colorParam(pollution, "pollutionColor", func(s *state) *string { return &s.PollutionColor }),

		boolParam(horror, "horrorEnabled", func(s *state) *bool { return &s.HorrorEnabled }),
		floatParam(horror, "horrorDesat", 0, 1, 0.01, func(s *state) *float32 { return &s.HorrorDesat }),
		floatParam(horror, "horrorGreenTint", 0, 0.5, 0.01, func(s *state) *float32 { return &s.HorrorGreenTint }),
		floatParam(horror, "horrorContrast", -0.5, 0.5, 0.01, func(s *state) *float32 { return &s.HorrorContrast }),
		floatParam(horror, "horrorVignette", 0, 0.6, 0.01, func(s *state) *float32 { return &s.HorrorVignette }),
		floatParam(horror, "horrorBreatheAmp", 0, 0.02, 0.001, func(s *state) *float32 { return &s.HorrorBreatheAmp }),
		floatParam(horror, "horrorBreatheSpeed", 0, 1, 0.01, func(s *state) *float32 { return &s.HorrorBreatheSpeed }),

		floatParam(render, "exposure", 0.3, 3, 0.01, func(s *state) *float32 { return &s.Exposure }),

		floatParam(lights, "moonIntensity", 0, 2, 0.01, func(s *state) *float32 { return &s.MoonIntensity }),
		floatParam(lights, "moonX", -50, 50, 0.5, func(s *state) *float32 { return &s.MoonX }),
		floatParam(lights, "moonY", 10, 50, 0.5, func(s *state) *float32 { return &s.MoonY }),
		floatParam(lights, "moonZ", -50, 50, 0.5, func(s *state) *float32 { return &s.MoonZ }),
		floatParam(lights, "hemiIntensity", 0, 1, 0.01, func(s *state) *float32 { return &s.HemiIntensity }),
		floatParam(lights, "ambientIntensity", 0, 0.3, 0.001, func(s *state) *float32 { return &s.AmbientIntensity }),

		intParam(ground, "groundTiling", 16, 128, 1, func(s *state) *int { return &s.GroundTiling }),

		{
			Key: "fogType", Group: fog, Kind: Choice,
			Choices: []string{settings.FogLinear, settings.FogExp2},
			text:    func(s *state) *string { return &s.FogType },
		},
		floatParam(fog, "fogDensity", 0.01, 0.05, 0.002, func(s *state) *float32 { return &s.FogDensity }),
		colorParam(fog, "fogColor", func(s *state) *string { return &s.FogColor }),
		floatParam(fog, "fogMax", 0.5, 1, 0.01, func(s *state) *float32 { return &s.FogMax }),

		floatParam(player, "mouseSensitivity", 0.0005, 0.005, 0.0001, func(s *state) *float32 { return &s.MouseSensitivity }),
		floatParam(player, "walkSpeed", 1, 6, 0.1, func(s *state) *float32 { return &s.WalkSpeed }),
	}
}
