// Package config handles application configuration loading and management.
package config

// Config holds all application settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Render   RenderConfig   `yaml:"render"`
	Scene    SceneConfig    `yaml:"scene"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int     `yaml:"width"`       // drawing buffer, device pixels
	Height     int     `yaml:"height"`      // drawing buffer, device pixels
	PixelRatio float32 `yaml:"pixel_ratio"` // device pixels per logical pixel
	Fullscreen bool    `yaml:"fullscreen"`
	VSync      bool    `yaml:"vsync"`
	FPSLimit   int     `yaml:"fps_limit"`
	FOV        float32 `yaml:"fov"` // vertical, degrees
}

// CameraConfig holds the starting viewpoint.
type CameraConfig struct {
	Height float32 `yaml:"height"` // eye height above ground
	StartZ float32 `yaml:"start_z"`
	Yaw    float32 `yaml:"yaw"`   // degrees, 0 faces north
	Pitch  float32 `yaml:"pitch"` // degrees, positive looks up
}

// RenderConfig holds offline render settings.
type RenderConfig struct {
	Frames        int     `yaml:"frames"`
	FrameInterval float32 `yaml:"frame_interval"` // seconds between frames
	OutputDir     string  `yaml:"output_dir"`
	Prefix        string  `yaml:"prefix"`
	Workers       int     `yaml:"workers"` // 0 means one per CPU
	TileSize      int     `yaml:"tile_size"`
	Supersample   int     `yaml:"supersample"` // render at N times the size, then downscale
}

// SceneConfig selects the initial atmosphere state.
type SceneConfig struct {
	Preset       string   `yaml:"preset"`        // applied first, if set
	SettingsFile string   `yaml:"settings_file"` // JSON or YAML overlay
	Overrides    []string `yaml:"overrides"`     // key=value, applied last
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			PixelRatio: 1,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,
			FOV:        75,
		},
		Camera: CameraConfig{
			Height: 1.7,
			StartZ: 15,
		},
		Render: RenderConfig{
			Frames:        1,
			FrameInterval: 0.5,
			OutputDir:     "renders",
			Prefix:        "night",
			Workers:       0,
			TileSize:      32,
			Supersample:   1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
