package settings

import (
	"fmt"

	"github.com/Faultbox/nightyard/internal/atmosphere"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Validate reports the first value that cannot be applied: a malformed
// colour or an unknown fog type. Numeric ranges are not checked here; the
// atmosphere clamps them on the way in.
func (s State) Validate() error {
	for _, c := range s.colors() {
		if _, err := ParseColor(*c.value); err != nil {
			return fmt.Errorf("%s: %w", c.key, err)
		}
	}
	if s.FogType != FogExp2 && s.FogType != FogLinear {
		return fmt.Errorf("fogType: %w %q", ErrInvalidFogType, s.FogType)
	}
	return nil
}

type colorField struct {
	key   string
	value *string
}

func (s *State) colors() []colorField {
	return []colorField{
		{"fogColor", &s.FogColor},
		{"skyHorizonColor", &s.SkyHorizonColor},
		{"skyMidLowColor", &s.SkyMidLowColor},
		{"skyMidHighColor", &s.SkyMidHighColor},
		{"skyZenithColor", &s.SkyZenithColor},
		{"pollutionColor", &s.PollutionColor},
		{"starTint", &s.StarTint},
	}
}

// AtmosphereParams converts the state into atmosphere parameters.
func (s State) AtmosphereParams() (atmosphere.Params, error) {
	var cerr error
	color := func(key, hex string) math.Vec3 {
		v, err := ParseColor(hex)
		if err != nil && cerr == nil {
			cerr = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	p := atmosphere.Params{
		Gradient: atmosphere.Gradient{
			Horizon:     color("skyHorizonColor", s.SkyHorizonColor),
			MidLow:      color("skyMidLowColor", s.SkyMidLowColor),
			MidHigh:     color("skyMidHighColor", s.SkyMidHighColor),
			Zenith:      color("skyZenithColor", s.SkyZenithColor),
			MidLowStop:  s.SkyMidLowStop,
			MidHighStop: s.SkyMidHighStop,
		},
		Pollution: atmosphere.Pollution{
			Color: color("pollutionColor", s.PollutionColor),
			Near: atmosphere.Source{
				AzimuthDeg: s.Village1Azimuth,
				Intensity:  s.Village1Intensity,
				SpreadDeg:  s.Village1Spread,
				MaxHeight:  s.Village1Height,
			},
			Far: atmosphere.Source{
				AzimuthDeg: s.Village2Azimuth,
				Intensity:  s.Village2Intensity,
				SpreadDeg:  s.Village2Spread,
				MaxHeight:  s.Village2Height,
			},
		},
		Dither: s.SkyDitherAmount,
		Fog: atmosphere.Fog{
			Color:      color("fogColor", s.FogColor),
			Density:    s.FogDensity,
			MaxOpacity: s.FogMax,
		},
		Horror: atmosphere.Horror{
			Enabled:          s.HorrorEnabled,
			Desaturation:     s.HorrorDesat,
			GreenTint:        s.HorrorGreenTint,
			Contrast:         s.HorrorContrast,
			Vignette:         s.HorrorVignette,
			BreatheAmplitude: s.HorrorBreatheAmp,
			BreatheSpeed:     s.HorrorBreatheSpeed,
		},
		Stars: atmosphere.StarField{
			Enabled:     s.StarEnabled,
			Count:       s.StarCount,
			Brightness:  s.StarBrightness,
			SizeMin:     s.StarSizeMin,
			SizeMax:     s.StarSizeMax,
			HorizonFade: s.StarHorizonFade,
			AntiAlias:   s.StarAntiAlias,
			Tint:        color("starTint", s.StarTint),
		},
	}
	if cerr != nil {
		return atmosphere.Params{}, cerr
	}
	return p, nil
}

// Normalized returns s with every numeric atmosphere key replaced by the
// value p actually holds. Pass the parameters read back from the atmosphere
// after Apply, so exports match what is drawn.
func (s State) Normalized(p atmosphere.Params) State {
	s.SkyMidLowStop = p.Gradient.MidLowStop
	s.SkyMidHighStop = p.Gradient.MidHighStop
	s.SkyDitherAmount = p.Dither

	s.Village1Azimuth = p.Pollution.Near.AzimuthDeg
	s.Village1Intensity = p.Pollution.Near.Intensity
	s.Village1Spread = p.Pollution.Near.SpreadDeg
	s.Village1Height = p.Pollution.Near.MaxHeight
	s.Village2Azimuth = p.Pollution.Far.AzimuthDeg
	s.Village2Intensity = p.Pollution.Far.Intensity
	s.Village2Spread = p.Pollution.Far.SpreadDeg
	s.Village2Height = p.Pollution.Far.MaxHeight

	s.FogDensity = p.Fog.Density
	s.FogMax = p.Fog.MaxOpacity

	s.HorrorDesat = p.Horror.Desaturation
	s.HorrorGreenTint = p.Horror.GreenTint
	s.HorrorContrast = p.Horror.Contrast
	s.HorrorVignette = p.Horror.Vignette
	s.HorrorBreatheAmp = p.Horror.BreatheAmplitude
	s.HorrorBreatheSpeed = p.Horror.BreatheSpeed

	s.StarCount = p.Stars.Count
	s.StarBrightness = p.Stars.Brightness
	s.StarSizeMin = p.Stars.SizeMin
	s.StarSizeMax = p.Stars.SizeMax
	s.StarHorizonFade = p.Stars.HorizonFade
	return s
}
