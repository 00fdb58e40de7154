// Package atmosphere implements the night sky: a procedural sky dome with
// dual light-pollution glow, horizon fog and an optional horror grade, plus a
// point-sprite star field that fades with the same fog.
//
// The shading model is evaluated on the CPU by the raster substrate and on
// the GPU by the programs in the shaders subpackage; both read the same
// uniform snapshots owned by Atmosphere.
package atmosphere

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/pkg/math"
)

// CameraProvider supplies the camera position each frame. Rotation is never
// read: the sky follows the camera by translation only.
type CameraProvider interface {
	Position() math.Vec3
}

// Viewport describes the drawing buffer.
type Viewport struct {
	Width      int     // device pixels
	Height     int     // device pixels
	PixelRatio float32 // device pixels per logical pixel
}

// Option customizes an Atmosphere.
type Option func(*Atmosphere)

// WithRand sets the random source used for star generation.
func WithRand(rng *rand.Rand) Option {
	return func(a *Atmosphere) { a.rng = rng }
}

// WithRadius overrides the celestial sphere radius.
func WithRadius(r float32) Option {
	return func(a *Atmosphere) { a.radius = r }
}

// Atmosphere owns the sky and star uniform snapshots and the star samples,
// and keeps both celestial layers centred on the camera.
//
// It is not safe for concurrent mutation; setters and Update are meant to be
// called from the frame loop, before the frame is drawn.
type Atmosphere struct {
	camera CameraProvider
	rng    *rand.Rand
	radius float32
	log    *zap.Logger

	sky          SkyUniforms
	star         StarUniforms
	starsEnabled bool

	stars      []Star
	generation uint64

	skyOrigin  math.Vec3
	starOrigin math.Vec3
}

// New creates the atmosphere for a camera and viewport, installs p and
// generates the initial star field.
func New(camera CameraProvider, vp Viewport, p Params, opts ...Option) *Atmosphere {
	a := &Atmosphere{
		camera: camera,
		radius: SkydomeRadius,
		log:    logger.Named("atmosphere"),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	a.OnResize(vp)
	a.Apply(p)
	a.syncOrigins()

	a.log.Info("atmosphere created",
		zap.Int("stars", len(a.stars)),
		zap.Float32("radius", a.radius),
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
	)
	return a
}

// Update advances the breathing clock and recentres the sky dome and star
// field on the camera. Call once per frame.
func (a *Atmosphere) Update(elapsed float32) {
	a.sky.Time = elapsed
	a.syncOrigins()
}

func (a *Atmosphere) syncOrigins() {
	if a.camera == nil {
		return
	}
	pos := a.camera.Position()
	a.skyOrigin = pos
	a.starOrigin = pos
}

// OnResize propagates a new drawing-buffer size and pixel ratio to both the
// vignette and the star size floor.
func (a *Atmosphere) OnResize(vp Viewport) {
	a.sky.Resolution = math.Vec2{X: float32(vp.Width), Y: float32(vp.Height)}
	a.star.PixelRatio = vp.PixelRatio
	a.star = clampStars(a.star)
}

// RegenerateStars discards the star field and scatters count new stars.
func (a *Atmosphere) RegenerateStars(count int) {
	if count < 0 {
		count = 0
	}
	a.stars = GenerateStars(a.rng, count, a.radius)
	a.generation++
	a.log.Debug("star field regenerated",
		zap.Int("count", count),
		zap.Uint64("generation", a.generation),
	)
}

// StarCount returns the number of stars in the current field.
func (a *Atmosphere) StarCount() int { return len(a.stars) }

// StarAt returns star i of the current field.
func (a *Atmosphere) StarAt(i int) Star { return a.stars[i] }

// Stars returns a copy of the current star field.
func (a *Atmosphere) Stars() []Star {
	out := make([]Star, len(a.stars))
	copy(out, a.stars)
	return out
}

// StarGeneration increments every time the star field is replaced, so GPU
// backends know when to re-upload point buffers.
func (a *Atmosphere) StarGeneration() uint64 { return a.generation }

// StarsEnabled reports whether the star field is drawn at all.
func (a *Atmosphere) StarsEnabled() bool { return a.starsEnabled }

// Radius returns the celestial sphere radius.
func (a *Atmosphere) Radius() float32 { return a.radius }

// SkyUniforms returns a copy of the sky snapshot.
func (a *Atmosphere) SkyUniforms() SkyUniforms { return a.sky }

// StarUniforms returns a copy of the star snapshot.
func (a *Atmosphere) StarUniforms() StarUniforms { return a.star }

// SkyOrigin returns the current sky dome centre (the camera position at the
// last Update).
func (a *Atmosphere) SkyOrigin() math.Vec3 { return a.skyOrigin }

// StarOrigin returns the current star field centre.
func (a *Atmosphere) StarOrigin() math.Vec3 { return a.starOrigin }

// ShadeSky evaluates the sky for a world-space direction with the live snapshot.
func (a *Atmosphere) ShadeSky(dir math.Vec3, fragCoord math.Vec2) math.Vec3 {
	return a.sky.Shade(dir, fragCoord)
}

// Params returns the parameters currently installed, after clamping.
func (a *Atmosphere) Params() Params {
	return Params{
		Gradient:  a.sky.Gradient,
		Pollution: a.sky.Pollution,
		Dither:    a.sky.Dither,
		Fog:       a.sky.Fog,
		Horror:    a.sky.Horror,
		Stars: StarField{
			Enabled:     a.starsEnabled,
			Count:       len(a.stars),
			Brightness:  a.star.Brightness,
			SizeMin:     a.star.SizeMin,
			SizeMax:     a.star.SizeMax,
			HorizonFade: a.star.HorizonFade,
			AntiAlias:   a.star.AntiAlias,
			Tint:        a.star.Tint,
		},
	}
}

// Apply installs a whole parameter set. Fog reaches the sky and the stars in
// the same call, and the star field is regenerated only when the count changes.
func (a *Atmosphere) Apply(p Params) {
	a.SetGradient(p.Gradient)
	a.SetPollutionColor(p.Pollution.Color)
	a.SetSource(SourceNear, p.Pollution.Near)
	a.SetSource(SourceFar, p.Pollution.Far)
	a.SetDitherAmount(p.Dither)
	a.SetFog(p.Fog)
	a.SetHorror(p.Horror)

	a.SetStarsEnabled(p.Stars.Enabled)
	a.SetStarBrightness(p.Stars.Brightness)
	a.SetStarSizeMin(p.Stars.SizeMin)
	a.SetStarSizeMax(p.Stars.SizeMax)
	a.SetStarHorizonFade(p.Stars.HorizonFade)
	a.SetStarAntiAlias(p.Stars.AntiAlias)
	a.SetStarTint(p.Stars.Tint)

	if p.Stars.Count != len(a.stars) {
		a.RegenerateStars(p.Stars.Count)
	}
}
