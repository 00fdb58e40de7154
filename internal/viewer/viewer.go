// Package viewer runs the interactive night scene: an SDL2 window, the GL
// sky and ground passes, first-person controls and preset hotkeys.
package viewer

import (
	"fmt"
	"image"
	"os"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/config"
	"github.com/Faultbox/nightyard/internal/engine/capture"
	"github.com/Faultbox/nightyard/internal/engine/framebuffer"
	"github.com/Faultbox/nightyard/internal/engine/glsky"
	"github.com/Faultbox/nightyard/internal/engine/input"
	"github.com/Faultbox/nightyard/internal/engine/renderer"
	"github.com/Faultbox/nightyard/internal/engine/window"
	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/internal/scene"
	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/tuning"
)

// Viewer is the interactive application.
type Viewer struct {
	cfg     *config.Config
	running bool
	log     *zap.Logger

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	sky      *glsky.Renderer
	ground   *glsky.GroundRenderer
	capture  *capture.Writer

	scene    *scene.Scene
	registry *tuning.Registry

	start       time.Time
	mouseCaught bool
}

// New opens the window and builds the scene from cfg.
func New(cfg *config.Config) (*Viewer, error) {
	v := &Viewer{
		cfg:      cfg,
		log:      logger.Named("viewer"),
		registry: tuning.NewRegistry(),
		capture:  capture.New(cfg.Render.OutputDir, cfg.Render.Prefix),
	}

	state, err := scene.InitialState(cfg, v.registry)
	if err != nil {
		return nil, fmt.Errorf("initial state: %w", err)
	}

	// Create window (this also creates OpenGL context)
	v.window, err = window.New(window.Config{
		Title:      "Nightyard",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	dw, dh := v.window.DrawableSize()
	sceneCfg := *cfg
	sceneCfg.Graphics.Width = dw
	sceneCfg.Graphics.Height = dh
	sceneCfg.Graphics.PixelRatio = v.window.PixelRatio()

	// Create renderer (AFTER window, since OpenGL context must exist)
	v.renderer, err = renderer.New(renderer.Config{Width: dw, Height: dh})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	v.scene, err = scene.New(&sceneCfg, state)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.sky, err = glsky.New(v.scene.Atmosphere)
	if err != nil {
		v.Close()
		return nil, err
	}
	v.ground, err = glsky.NewGroundRenderer(v.scene.World)
	if err != nil {
		v.Close()
		return nil, err
	}

	v.input = input.New()

	v.log.Info("viewer initialized",
		zap.Int("drawableWidth", dw),
		zap.Int("drawableHeight", dh),
		zap.Float32("pixelRatio", sceneCfg.Graphics.PixelRatio),
	)
	return v, nil
}

// Run starts the frame loop and returns when the window is closed.
func (v *Viewer) Run() error {
	v.running = true
	v.start = time.Now()

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if v.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	v.log.Info("starting frame loop")

	for v.running {
		now := time.Now()
		dt := float32(now.Sub(lastTime).Seconds())
		lastTime = now

		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		v.update(dt)
		v.render()

		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dtMs", dt*1000))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if spent := time.Since(now); spent < frameBudget {
				time.Sleep(frameBudget - spent)
			}
		}
	}

	return nil
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			v.resize()
		case input.EventMouseDown:
			if !v.mouseCaught {
				v.setMouseCaught(true)
			}
		case input.EventKeyDown:
			if event.Repeat {
				continue
			}
			v.handleKey(event.Key)
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	if name, ok := presetForKey(key); ok {
		if err := v.scene.ApplyPreset(name); err != nil {
			v.log.Warn("preset failed", zap.String("preset", name), zap.Error(err))
		}
		return
	}

	switch key {
	case sdl.SCANCODE_ESCAPE:
		if v.mouseCaught {
			v.setMouseCaught(false)
		} else {
			v.running = false
		}
	case sdl.SCANCODE_H:
		on := !v.scene.State().HorrorEnabled
		v.scene.SetHorrorEnabled(on)
		v.log.Info("horror grade", zap.Bool("enabled", on))
	case sdl.SCANCODE_LEFTBRACKET, sdl.SCANCODE_RIGHTBRACKET:
		v.stepFog(key == sdl.SCANCODE_RIGHTBRACKET)
	case sdl.SCANCODE_R:
		s := v.scene.State()
		v.scene.Atmosphere.RegenerateStars(s.StarCount)
	case sdl.SCANCODE_E:
		v.export()
	case sdl.SCANCODE_P:
		v.screenshot()
	}
}

// stepFog nudges the fog density through the scene so the ground, sky and
// stars change together.
func (v *Viewer) stepFog(thicker bool) {
	fog := v.scene.World.Fog
	density := fogStep(fog.Density, thicker)
	v.scene.SetFog(fog.Color, density, fog.SkyMax)
	v.log.Info("fog density", zap.Float32("density", v.scene.World.Fog.Density))
}

func (v *Viewer) export() {
	data, err := v.scene.State().ExportJSON()
	if err != nil {
		v.log.Error("export failed", zap.Error(err))
		return
	}
	name := settings.ExportFilename(time.Now())
	if err := os.WriteFile(name, data, 0644); err != nil {
		v.log.Error("export failed", zap.Error(err))
		return
	}
	v.log.Info("settings exported", zap.String("path", name))
}

// screenshot renders the current view offscreen at render.supersample times
// the window size and writes it, scaled back down, as a PNG.
func (v *Viewer) screenshot() {
	w, h := v.renderer.Size()
	var maxSize int32
	gl.GetIntegerv(gl.MAX_RENDERBUFFER_SIZE, &maxSize)
	ss := snapshotScale(w, h, v.cfg.Render.Supersample, int(maxSize))

	fb, err := framebuffer.New(int32(w*ss), int32(h*ss))
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	defer fb.Destroy()

	// Star sizes and dithering follow the capture resolution.
	v.scene.Resize(w*ss, h*ss, v.window.PixelRatio()*float32(ss))
	restore := fb.BindWithViewport()
	v.render()
	restore()
	v.scene.Resize(w, h, v.window.PixelRatio())

	img, err := fb.ReadImage()
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	var out image.Image = img
	if ss > 1 {
		out = capture.Downscale(img, w, h)
	}
	path, err := v.capture.WriteSnapshot(out)
	if err != nil {
		v.log.Error("screenshot failed", zap.Error(err))
		return
	}
	v.log.Info("screenshot saved", zap.String("path", path), zap.Int("supersample", ss))
}

func (v *Viewer) setMouseCaught(on bool) {
	v.mouseCaught = on
	v.window.SetRelativeMouse(on)
}

func (v *Viewer) resize() {
	w, h := v.window.DrawableSize()
	v.renderer.Resize(w, h)
	v.scene.Resize(w, h, v.window.PixelRatio())
}

func (v *Viewer) update(dt float32) {
	cam := v.scene.Camera
	if v.mouseCaught {
		dx, dy := v.input.MouseDelta()
		cam.HandleLook(float32(dx), float32(dy))
	}
	forward := v.input.Axis(sdl.SCANCODE_W, sdl.SCANCODE_S)
	right := v.input.Axis(sdl.SCANCODE_D, sdl.SCANCODE_A)
	cam.HandleMovement(forward, right, dt)

	v.scene.Update(float32(time.Since(v.start).Seconds()))
	v.sky.SyncStars()
}

func (v *Viewer) render() {
	exposure := v.scene.Exposure()
	v.sky.SetExposure(exposure)
	v.ground.SetExposure(exposure)
	v.renderer.SetClearColor(v.scene.World.Fog.Color)

	cam := v.scene.Camera
	view := cam.ViewMatrix()
	proj := cam.ProjectionMatrix(v.renderer.Aspect())

	v.renderer.Begin()
	v.sky.DrawSky(view, proj)
	v.ground.Draw(proj.Mul(view), cam.Position())
	v.sky.DrawStars(view, proj)
	v.renderer.End()
}

// Close releases GL resources and the window.
func (v *Viewer) Close() {
	v.log.Info("closing viewer")

	if v.ground != nil {
		v.ground.Close()
	}
	if v.sky != nil {
		v.sky.Close()
	}
	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}
