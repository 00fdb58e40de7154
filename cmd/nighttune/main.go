// nighttune is a live tuning panel for the night atmosphere: a slider for
// every parameter, preset and file menus, and a CPU-rendered preview.
package main

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/AllenDang/cimgui-go/backend"
	"github.com/AllenDang/cimgui-go/backend/sdlbackend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/sqweek/dialog"
	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/config"
	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/internal/scene"
	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/tuning"
)

func main() {
	runtime.LockOSThread()

	config.ParseFlags()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	app, err := NewApp(cfg)
	if err != nil {
		logger.Error("failed to create tuner", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}

// App is the tuning panel state.
type App struct {
	backend backend.Backend[sdlbackend.SDLWindowFlags]
	log     *zap.Logger

	registry *tuning.Registry
	state    settings.State
	scene    *scene.Scene
	preview  *preview

	// File dialogs run off the main thread and hand results back here.
	mu            sync.Mutex
	pendingImport string
	pendingExport string

	status     string
	statusTime time.Time
}

// NewApp builds the scene and opens the panel window.
func NewApp(cfg *config.Config) (*App, error) {
	app := &App{
		log:      logger.Named("tuner"),
		registry: tuning.NewRegistry(),
	}

	state, err := scene.InitialState(cfg, app.registry)
	if err != nil {
		return nil, err
	}
	app.state = state

	previewCfg := *cfg
	previewCfg.Graphics.Width = previewWidth
	previewCfg.Graphics.Height = previewHeight
	previewCfg.Graphics.PixelRatio = 1
	app.scene, err = scene.New(&previewCfg, state)
	if err != nil {
		return nil, err
	}
	app.state = app.scene.State()

	// Every slider edit goes through the registry and lands here.
	app.registry.OnChange(func(key string, s *settings.State) {
		if err := app.scene.ApplyState(*s); err != nil {
			app.setStatus(fmt.Sprintf("%s rejected: %v", key, err))
			app.state = app.scene.State()
			return
		}
		// Show what the scene kept, not what was typed.
		app.state = app.scene.State()
		app.preview.invalidate()
	})

	app.backend, err = backend.CreateBackend(sdlbackend.NewSDLBackend())
	if err != nil {
		return nil, fmt.Errorf("failed to create backend: %w", err)
	}
	app.backend.SetBgColor(imgui.NewVec4(0.06, 0.07, 0.08, 1.0))
	app.backend.CreateWindow("Nightyard Tuner", 1280, 800)

	app.preview = newPreview(app.scene, cfg.Render.Workers)
	return app, nil
}

// Close releases the preview renderer.
func (app *App) Close() {
	if app.preview != nil {
		app.preview.Close()
	}
}

// Run starts the UI loop.
func (app *App) Run() {
	app.backend.Run(app.render)
}

func (app *App) setStatus(msg string) {
	app.status = msg
	app.statusTime = time.Now()
	app.log.Info(msg)
}

// applyState replaces the whole state, as presets and imports do.
func (app *App) applyState(s settings.State, what string) {
	if err := app.scene.ApplyState(s); err != nil {
		app.setStatus(fmt.Sprintf("%s failed: %v", what, err))
		return
	}
	app.state = app.scene.State()
	app.preview.invalidate()
	app.setStatus(what + " applied")
}

func (app *App) applyPreset(name string) {
	s, err := settings.Preset(name, app.state)
	if err != nil {
		app.setStatus(err.Error())
		return
	}
	app.applyState(s, "preset "+name)
}

func (app *App) importDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("Settings", "json", "yaml", "yml").
			Filter("All Files", "*").
			Title("Import Settings").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
			}
			return
		}
		app.mu.Lock()
		app.pendingImport = filename
		app.mu.Unlock()
	}()
}

func (app *App) exportDialog() {
	go func() {
		filename, err := dialog.File().
			Filter("JSON", "json").
			Filter("YAML", "yaml", "yml").
			Title("Export Settings").
			Save()
		if err != nil {
			if err != dialog.ErrCancelled {
				fmt.Fprintf(os.Stderr, "File dialog error: %v\n", err)
			}
			return
		}
		app.mu.Lock()
		app.pendingExport = filename
		app.mu.Unlock()
	}()
}

// processPending handles dialog results on the main thread.
func (app *App) processPending() {
	app.mu.Lock()
	imp, exp := app.pendingImport, app.pendingExport
	app.pendingImport, app.pendingExport = "", ""
	app.mu.Unlock()

	if imp != "" {
		s, err := settings.LoadFile(imp, app.state)
		if err != nil {
			app.setStatus(fmt.Sprintf("import failed: %v", err))
		} else {
			app.applyState(s, "import")
		}
	}
	if exp != "" {
		app.export(exp)
	}
}

func (app *App) export(path string) {
	if err := app.state.SaveFile(path); err != nil {
		app.setStatus(fmt.Sprintf("export failed: %v", err))
		return
	}
	app.setStatus("exported " + path)
}

func (app *App) render() {
	app.processPending()

	if imgui.BeginMainMenuBar() {
		if imgui.BeginMenu("File") {
			if imgui.MenuItemBool("Import...") {
				app.importDialog()
			}
			if imgui.MenuItemBool("Export...") {
				app.exportDialog()
			}
			if imgui.MenuItemBool("Quick Export") {
				app.export(settings.ExportFilename(time.Now()))
			}
			imgui.Separator()
			if imgui.MenuItemBool("Exit") {
				os.Exit(0)
			}
			imgui.EndMenu()
		}
		if imgui.BeginMenu("Presets") {
			for _, name := range settings.PresetNames() {
				if imgui.MenuItemBool(name) {
					app.applyPreset(name)
				}
			}
			imgui.EndMenu()
		}
		imgui.EndMainMenuBar()
	}

	viewport := imgui.MainViewport()
	workPos := viewport.WorkPos()
	workSize := viewport.WorkSize()

	panelWidth := float32(420)
	statusBarHeight := float32(30)
	contentHeight := workSize.Y - statusBarHeight
	flags := imgui.WindowFlagsNoMove | imgui.WindowFlagsNoResize | imgui.WindowFlagsNoCollapse

	imgui.SetNextWindowPos(workPos)
	imgui.SetNextWindowSize(imgui.NewVec2(panelWidth, contentHeight))
	if imgui.BeginV("Parameters", nil, flags) {
		app.renderParameters()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X+panelWidth, workPos.Y))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X-panelWidth, contentHeight))
	if imgui.BeginV("Preview", nil, flags) {
		app.preview.render()
	}
	imgui.End()

	imgui.SetNextWindowPos(imgui.NewVec2(workPos.X, workPos.Y+contentHeight))
	imgui.SetNextWindowSize(imgui.NewVec2(workSize.X, statusBarHeight))
	statusFlags := flags | imgui.WindowFlagsNoTitleBar | imgui.WindowFlagsNoScrollbar
	if imgui.BeginV("##StatusBar", nil, statusFlags) {
		app.renderStatusBar()
	}
	imgui.End()
}

func (app *App) renderStatusBar() {
	s := app.scene.Atmosphere
	imgui.Text(fmt.Sprintf("Stars: %d", s.StarCount()))
	imgui.SameLine()
	imgui.TextDisabled("|")
	imgui.SameLine()
	imgui.Text(fmt.Sprintf("Fog: %s %.3f", app.state.FogType, app.state.FogDensity))
	if app.status != "" && time.Since(app.statusTime) < 4*time.Second {
		imgui.SameLine()
		imgui.TextDisabled("|")
		imgui.SameLine()
		imgui.Text(app.status)
	}
}
