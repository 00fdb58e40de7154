// Package scene assembles the night scene: a first-person camera, the world
// that owns the fog, and the atmosphere that mirrors it. It is the only place
// that mutates more than one of them, so fog stays consistent between the
// ground, the sky and the stars.
package scene

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/atmosphere"
	"github.com/Faultbox/nightyard/internal/config"
	"github.com/Faultbox/nightyard/internal/engine/camera"
	"github.com/Faultbox/nightyard/internal/engine/raster"
	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/world"
	"github.com/Faultbox/nightyard/pkg/math"
)

// Scene is the camera, the world and the atmosphere driven together.
type Scene struct {
	Camera     *camera.FirstPersonCamera
	World      *world.World
	Atmosphere *atmosphere.Atmosphere

	state    settings.State
	viewport atmosphere.Viewport
	log      *zap.Logger
}

// New builds a scene from the application config and an initial settings
// state. opts are passed to the atmosphere (a fixed random source for
// reproducible star fields, for example).
func New(cfg *config.Config, state settings.State, opts ...atmosphere.Option) (*Scene, error) {
	params, err := state.AtmosphereParams()
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}
	fog, err := worldFog(state)
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}

	cam := camera.NewFirstPersonCamera()
	cam.Eye = math.Vec3{X: 0, Y: cfg.Camera.Height, Z: cfg.Camera.StartZ}
	cam.Yaw = math.Radians(cfg.Camera.Yaw)
	cam.Pitch = math.Radians(cfg.Camera.Pitch)
	if cfg.Graphics.FOV > 0 {
		cam.FOV = cfg.Graphics.FOV
	}
	cam.WalkSpeed = state.WalkSpeed
	cam.MouseSensitivity = state.MouseSensitivity

	vp := atmosphere.Viewport{
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		PixelRatio: cfg.Graphics.PixelRatio,
	}

	params.Fog = atmosphere.ClampFog(params.Fog)
	fog.Density, fog.SkyMax = params.Fog.Density, params.Fog.MaxOpacity

	s := &Scene{
		Camera:     cam,
		World:      world.New(fog),
		Atmosphere: atmosphere.New(cam, vp, params, opts...),
		viewport:   vp,
		log:        logger.Named("scene"),
	}
	s.applyLighting(state)
	s.state = s.normalize(state)
	s.log.Info("scene created",
		zap.Int("width", vp.Width),
		zap.Int("height", vp.Height),
		zap.String("fogType", state.FogType),
		zap.Int("stars", s.Atmosphere.StarCount()),
	)
	return s, nil
}

// worldFog converts the fog keys of a state into world fog.
func worldFog(s settings.State) (world.Fog, error) {
	color, err := settings.ParseColor(s.FogColor)
	if err != nil {
		return world.Fog{}, fmt.Errorf("fogColor: %w", err)
	}
	fog := world.NewFog(color, s.FogDensity, s.FogMax)
	switch s.FogType {
	case settings.FogExp2:
		fog.Type = world.FogExp2
	case settings.FogLinear:
		fog.Type = world.FogLinear
	default:
		return world.Fog{}, fmt.Errorf("fogType: %w %q", settings.ErrInvalidFogType, s.FogType)
	}
	return fog, nil
}

// ApplyState installs a whole settings state. Nothing changes if any value
// in it is invalid; otherwise the world fog and lights, the atmosphere and
// the camera are all updated in this call. State then returns the values as
// clamped, not as given.
func (s *Scene) ApplyState(state settings.State) error {
	params, err := state.AtmosphereParams()
	if err != nil {
		return err
	}
	fog, err := worldFog(state)
	if err != nil {
		return err
	}

	// The world owns the fog, so it gets the clamped values first and the
	// atmosphere receives the same ones.
	params.Fog = atmosphere.ClampFog(params.Fog)
	fog.Density, fog.SkyMax = params.Fog.Density, params.Fog.MaxOpacity
	s.World.Fog = fog
	s.Atmosphere.Apply(params)
	s.applyLighting(state)
	s.Camera.WalkSpeed = state.WalkSpeed
	s.Camera.MouseSensitivity = state.MouseSensitivity
	s.state = s.normalize(state)

	s.log.Debug("state applied",
		zap.Float32("exposure", state.Exposure),
		zap.Float32("fogDensity", state.FogDensity),
		zap.Bool("horror", state.HorrorEnabled),
	)
	return nil
}

// applyLighting pushes the light and ground keys into the world.
func (s *Scene) applyLighting(state settings.State) {
	s.World.SetLighting(
		math.Vec3{X: state.MoonX, Y: state.MoonY, Z: state.MoonZ},
		state.MoonIntensity,
		state.HemiIntensity,
		state.AmbientIntensity,
		float32(state.GroundTiling),
	)
}

// normalize replaces the numeric values of state with what the atmosphere
// and the world kept after clamping.
func (s *Scene) normalize(state settings.State) settings.State {
	state = state.Normalized(s.Atmosphere.Params())
	state.MoonIntensity = s.World.Lights.Moon.Intensity
	state.HemiIntensity = s.World.Lights.Hemi.Intensity
	state.AmbientIntensity = s.World.Lights.Ambient
	state.GroundTiling = int(s.World.Ground.Tiling)
	return state
}

// ApplyPreset applies a named preset on top of the current state.
func (s *Scene) ApplyPreset(name string) error {
	next, err := settings.Preset(name, s.state)
	if err != nil {
		return err
	}
	if err := s.ApplyState(next); err != nil {
		return fmt.Errorf("preset %s: %w", name, err)
	}
	s.log.Info("preset applied", zap.String("preset", name))
	return nil
}

// SetFog changes the scene fog. The world is updated first as the owner, and
// the sky and stars receive the same values before SetFog returns.
func (s *Scene) SetFog(color math.Vec3, density, maxOpacity float32) {
	f := atmosphere.ClampFog(atmosphere.Fog{
		Color:      color,
		Density:    density,
		MaxOpacity: maxOpacity,
	})

	s.World.Fog.Color = f.Color
	s.World.Fog.Density = f.Density
	s.World.Fog.SkyMax = f.MaxOpacity
	s.Atmosphere.SetFog(f)

	s.state.FogColor = settings.HexColor(f.Color)
	s.state.FogDensity = f.Density
	s.state.FogMax = f.MaxOpacity
}

// SetHorrorEnabled toggles the horror grade.
func (s *Scene) SetHorrorEnabled(on bool) {
	s.Atmosphere.SetHorrorEnabled(on)
	s.state.HorrorEnabled = on
}

// Update advances time and recentres the celestial layers on the camera.
// elapsed is seconds since the scene started.
func (s *Scene) Update(elapsed float32) {
	s.Atmosphere.Update(elapsed)
}

// Resize propagates a new drawing-buffer size and pixel ratio.
func (s *Scene) Resize(width, height int, pixelRatio float32) {
	s.viewport = atmosphere.Viewport{Width: width, Height: height, PixelRatio: pixelRatio}
	s.Atmosphere.OnResize(s.viewport)
	s.log.Debug("resized",
		zap.Int("width", width),
		zap.Int("height", height),
		zap.Float32("pixelRatio", pixelRatio),
	)
}

// Viewport returns the current drawing buffer.
func (s *Scene) Viewport() atmosphere.Viewport {
	return s.viewport
}

// Aspect returns width over height of the drawing buffer.
func (s *Scene) Aspect() float32 {
	if s.viewport.Height == 0 {
		return 1
	}
	return float32(s.viewport.Width) / float32(s.viewport.Height)
}

// State returns a copy of the live settings state.
func (s *Scene) State() settings.State {
	return s.state
}

// Exposure returns the output multiplier of the current state.
func (s *Scene) Exposure() float32 {
	return s.state.Exposure
}

// Frame returns the layers the raster substrate draws for the current state:
// the sky backdrop, the ground, and the stars when enabled.
func (s *Scene) Frame() raster.Frame {
	f := raster.Frame{
		Camera:   s.Camera,
		Backdrop: s.Atmosphere.SkyProgram(),
		Surfaces: []raster.Surface{s.World},
		Exposure: s.state.Exposure,
	}
	if s.Atmosphere.StarsEnabled() {
		f.Points = append(f.Points, s.Atmosphere.StarProgram())
	}
	return f
}
