package atmosphere

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/pkg/math"
)

// SourceID selects one of the two light-pollution sources.
type SourceID int

const (
	SourceNear SourceID = iota
	SourceFar
)

// Every setter writes straight into the live snapshot; there is no commit
// step. Out-of-range values are clamped here so the shading functions can
// stay total.

// SetGradient replaces all four stop colours and both transition altitudes.
func (a *Atmosphere) SetGradient(g Gradient) {
	g.MidLowStop, g.MidHighStop = clampStops(g.MidLowStop, g.MidHighStop)
	a.sky.Gradient = g
}

// SetHorizonColor sets the gradient colour at altitude 0.
func (a *Atmosphere) SetHorizonColor(c math.Vec3) { a.sky.Gradient.Horizon = c }

// SetMidLowColor sets the gradient colour at the first transition.
func (a *Atmosphere) SetMidLowColor(c math.Vec3) { a.sky.Gradient.MidLow = c }

// SetMidHighColor sets the gradient colour at the second transition.
func (a *Atmosphere) SetMidHighColor(c math.Vec3) { a.sky.Gradient.MidHigh = c }

// SetZenithColor sets the gradient colour at altitude 1.
func (a *Atmosphere) SetZenithColor(c math.Vec3) { a.sky.Gradient.Zenith = c }

// SetGradientStops sets both transition altitudes, keeping midLow < midHigh.
func (a *Atmosphere) SetGradientStops(midLow, midHigh float32) {
	a.sky.Gradient.MidLowStop, a.sky.Gradient.MidHighStop = clampStops(midLow, midHigh)
}

// SetDitherAmount sets the anti-banding noise amplitude.
func (a *Atmosphere) SetDitherAmount(v float32) { a.sky.Dither = math32.Max(v, 0) }

// SetPollutionColor sets the glow colour shared by both sources.
func (a *Atmosphere) SetPollutionColor(c math.Vec3) { a.sky.Pollution.Color = c }

// SetSource replaces one light-pollution source.
func (a *Atmosphere) SetSource(id SourceID, s Source) {
	s = clampSource(s)
	if id == SourceFar {
		a.sky.Pollution.Far = s
	} else {
		a.sky.Pollution.Near = s
	}
	a.sky.refreshSources()
}

// Source returns the current parameters of one source.
func (a *Atmosphere) Source(id SourceID) Source {
	if id == SourceFar {
		return a.sky.Pollution.Far
	}
	return a.sky.Pollution.Near
}

// SetSourceAzimuth points a source at a compass bearing in degrees.
func (a *Atmosphere) SetSourceAzimuth(id SourceID, deg float32) {
	s := a.Source(id)
	s.AzimuthDeg = deg
	a.SetSource(id, s)
}

// SetSourceIntensity sets a source's peak glow.
func (a *Atmosphere) SetSourceIntensity(id SourceID, v float32) {
	s := a.Source(id)
	s.Intensity = v
	a.SetSource(id, s)
}

// SetSourceSpread sets a source's angular spread in degrees.
func (a *Atmosphere) SetSourceSpread(id SourceID, deg float32) {
	s := a.Source(id)
	s.SpreadDeg = deg
	a.SetSource(id, s)
}

// SetSourceHeight sets the altitude at which a source's glow vanishes.
func (a *Atmosphere) SetSourceHeight(id SourceID, v float32) {
	s := a.Source(id)
	s.MaxHeight = v
	a.SetSource(id, s)
}

// SetFog mirrors the scene fog into both the sky and the star snapshot.
func (a *Atmosphere) SetFog(f Fog) {
	f = ClampFog(f)
	a.sky.Fog = f
	a.star.FogDensity = f.Density
}

// SetFogDensity updates the density read by the sky blend and the star
// extinction in one step.
func (a *Atmosphere) SetFogDensity(d float32) {
	f := a.sky.Fog
	f.Density = d
	a.SetFog(f)
}

// SetFogColor sets the colour the sky blends toward near the horizon.
func (a *Atmosphere) SetFogColor(c math.Vec3) { a.sky.Fog.Color = c }

// SetFogMax caps the sky fog blend at the horizon.
func (a *Atmosphere) SetFogMax(v float32) { a.sky.Fog.MaxOpacity = math.Saturate(v) }

// SetHorror replaces the whole horror grade.
func (a *Atmosphere) SetHorror(h Horror) { a.sky.Horror = clampHorror(h) }

// SetHorrorEnabled toggles the horror grade.
func (a *Atmosphere) SetHorrorEnabled(on bool) { a.sky.Horror.Enabled = on }

// SetStarsEnabled shows or hides the star field.
func (a *Atmosphere) SetStarsEnabled(on bool) { a.starsEnabled = on }

// SetStarBrightness sets the global star brightness multiplier.
func (a *Atmosphere) SetStarBrightness(v float32) { a.star.Brightness = math32.Max(v, 0) }

// SetStarSizeMin sets the point size of the smallest stars.
func (a *Atmosphere) SetStarSizeMin(v float32) { a.star.SizeMin = math32.Max(v, 0) }

// SetStarSizeMax sets the point size of the largest stars.
func (a *Atmosphere) SetStarSizeMax(v float32) { a.star.SizeMax = math32.Max(v, 0) }

// SetStarHorizonFade sets the altitude band over which stars fade in.
func (a *Atmosphere) SetStarHorizonFade(v float32) { a.star.HorizonFade = math.Saturate(v) }

// SetStarAntiAlias switches between soft and hard star discs.
func (a *Atmosphere) SetStarAntiAlias(on bool) { a.star.AntiAlias = on }

// SetStarTint sets the star colour.
func (a *Atmosphere) SetStarTint(c math.Vec3) { a.star.Tint = c }
