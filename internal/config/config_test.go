package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Graphics.Width != 1280 {
		t.Errorf("expected width 1280, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 720 {
		t.Errorf("expected height 720, got %d", cfg.Graphics.Height)
	}
	if cfg.Graphics.PixelRatio != 1 {
		t.Errorf("expected pixel ratio 1, got %f", cfg.Graphics.PixelRatio)
	}
	if cfg.Graphics.FOV != 75 {
		t.Errorf("expected fov 75, got %f", cfg.Graphics.FOV)
	}
	if !cfg.Graphics.VSync {
		t.Error("expected vsync to be true by default")
	}

	if cfg.Camera.Height != 1.7 || cfg.Camera.StartZ != 15 {
		t.Errorf("expected camera at height 1.7 z 15, got %+v", cfg.Camera)
	}

	if cfg.Render.Frames != 1 {
		t.Errorf("expected 1 frame, got %d", cfg.Render.Frames)
	}
	if cfg.Render.OutputDir != "renders" {
		t.Errorf("expected output dir 'renders', got %s", cfg.Render.OutputDir)
	}
	if cfg.Render.Supersample != 1 {
		t.Errorf("expected supersample 1, got %d", cfg.Render.Supersample)
	}

	if cfg.Scene.Preset != "" || len(cfg.Scene.Overrides) != 0 {
		t.Errorf("expected empty scene config, got %+v", cfg.Scene)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1920
  height: 1080
  pixel_ratio: 2
  fullscreen: true
  vsync: false
  fov: 60

camera:
  height: 2.0
  yaw: 45
  pitch: 10

render:
  frames: 24
  frame_interval: 0.25
  output_dir: "out"
  prefix: "dusk"
  workers: 6

scene:
  preset: "horrorAtmosphere"
  settings_file: "mine.json"
  overrides:
    - "starCount=5000"
    - "fogType=linear"

logging:
  level: "debug"
  log_file: "nightyard.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 || cfg.Graphics.Height != 1080 {
		t.Errorf("expected 1920x1080, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if cfg.Graphics.PixelRatio != 2 {
		t.Errorf("expected pixel ratio 2, got %f", cfg.Graphics.PixelRatio)
	}
	if !cfg.Graphics.Fullscreen || cfg.Graphics.VSync {
		t.Error("expected fullscreen on and vsync off")
	}
	if cfg.Camera.Yaw != 45 || cfg.Camera.Pitch != 10 {
		t.Errorf("expected yaw 45 pitch 10, got %+v", cfg.Camera)
	}
	if cfg.Camera.StartZ != 15 {
		t.Errorf("expected start_z to keep default 15, got %f", cfg.Camera.StartZ)
	}
	if cfg.Render.Frames != 24 || cfg.Render.Prefix != "dusk" || cfg.Render.Workers != 6 {
		t.Errorf("unexpected render config %+v", cfg.Render)
	}
	if cfg.Scene.Preset != "horrorAtmosphere" || cfg.Scene.SettingsFile != "mine.json" {
		t.Errorf("unexpected scene config %+v", cfg.Scene)
	}
	if len(cfg.Scene.Overrides) != 2 || cfg.Scene.Overrides[1] != "fogType=linear" {
		t.Errorf("unexpected overrides %v", cfg.Scene.Overrides)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.LogFile != "nightyard.log" {
		t.Errorf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
graphics:
  width: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()
	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
	if filepath.Base(DefaultPath()) != "config.yaml" {
		t.Errorf("unexpected default path %s", DefaultPath())
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configPath, []byte("graphics:\n  width: 800\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find config.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*testing.T, *Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "fullscreen flag",
			setup: func() { *flagFullscreen = true },
			verify: func(t *testing.T, cfg *Config) {
				if !cfg.Graphics.Fullscreen {
					t.Error("expected fullscreen to be true with fullscreen flag")
				}
			},
			teardown: func() { *flagFullscreen = false },
		},
		{
			name: "size and pixel ratio flags",
			setup: func() {
				*flagWidth = 2560
				*flagHeight = 1440
				*flagPixelRatio = 1.5
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Graphics.Width != 2560 || cfg.Graphics.Height != 1440 {
					t.Errorf("expected 2560x1440, got %dx%d", cfg.Graphics.Width, cfg.Graphics.Height)
				}
				if cfg.Graphics.PixelRatio != 1.5 {
					t.Errorf("expected pixel ratio 1.5, got %f", cfg.Graphics.PixelRatio)
				}
			},
			teardown: func() {
				*flagWidth = 0
				*flagHeight = 0
				*flagPixelRatio = 0
			},
		},
		{
			name: "scene flags",
			setup: func() {
				*flagPreset = "brightTest"
				*flagSettings = "night.yaml"
				flagSet = stringList{"fogDensity=0.03", "starCount=100"}
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Scene.Preset != "brightTest" || cfg.Scene.SettingsFile != "night.yaml" {
					t.Errorf("unexpected scene config %+v", cfg.Scene)
				}
				if len(cfg.Scene.Overrides) != 2 || cfg.Scene.Overrides[0] != "fogDensity=0.03" {
					t.Errorf("unexpected overrides %v", cfg.Scene.Overrides)
				}
			},
			teardown: func() {
				*flagPreset = ""
				*flagSettings = ""
				flagSet = nil
			},
		},
		{
			name: "render flags",
			setup: func() {
				*flagOut = "frames"
				*flagFrames = 10
				*flagWorkers = 3
			},
			verify: func(t *testing.T, cfg *Config) {
				if cfg.Render.OutputDir != "frames" || cfg.Render.Frames != 10 || cfg.Render.Workers != 3 {
					t.Errorf("unexpected render config %+v", cfg.Render)
				}
			},
			teardown: func() {
				*flagOut = ""
				*flagFrames = 0
				*flagWorkers = 0
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(t, cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
graphics:
  width: 1600
  height: 900
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	*flagConfig = configPath
	*flagWidth = 1920
	defer func() {
		*flagConfig = ""
		*flagWidth = 0
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Graphics.Width != 1920 {
		t.Errorf("expected width 1920 from flag, got %d", cfg.Graphics.Width)
	}
	if cfg.Graphics.Height != 900 {
		t.Errorf("expected height 900 from file, got %d", cfg.Graphics.Height)
	}
}

func TestNormalize(t *testing.T) {
	cfg := Default()
	cfg.Graphics.Width = -5
	cfg.Graphics.PixelRatio = 0
	cfg.Graphics.FOV = 200
	cfg.Render.Frames = 0
	cfg.Render.TileSize = -1
	cfg.Render.Supersample = 9

	cfg.normalize()

	if cfg.Graphics.Width != 1280 || cfg.Graphics.PixelRatio != 1 || cfg.Graphics.FOV != 75 {
		t.Errorf("graphics not normalized: %+v", cfg.Graphics)
	}
	if cfg.Render.Frames != 1 || cfg.Render.TileSize != 32 || cfg.Render.Supersample != 4 {
		t.Errorf("render not normalized: %+v", cfg.Render)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Scene.Preset = "userTuned"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("reloading saved config: %v", err)
	}
	if loaded.Scene.Preset != "userTuned" || loaded.Graphics.Width != 1280 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
