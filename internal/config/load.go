package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"gopkg.in/yaml.v3"
)

// Load loads configuration with priority: defaults < file < flags.
func Load() (*Config, error) {
	// Start with defaults
	cfg := Default()

	// Try to load from file (explicit path takes priority)
	configPath := ConfigPath()
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config from %s: %w", configPath, err)
		}
	}

	// Apply CLI flags (highest priority)
	applyFlags(cfg)
	cfg.normalize()

	return cfg, nil
}

// normalize replaces values that cannot drive a renderer with defaults.
func (c *Config) normalize() {
	def := Default()
	if c.Graphics.Width <= 0 {
		c.Graphics.Width = def.Graphics.Width
	}
	if c.Graphics.Height <= 0 {
		c.Graphics.Height = def.Graphics.Height
	}
	if c.Graphics.PixelRatio <= 0 {
		c.Graphics.PixelRatio = 1
	}
	if c.Graphics.FOV <= 0 || c.Graphics.FOV >= 180 {
		c.Graphics.FOV = def.Graphics.FOV
	}
	if c.Render.Frames < 1 {
		c.Render.Frames = 1
	}
	if c.Render.FrameInterval < 0 {
		c.Render.FrameInterval = 0
	}
	if c.Render.TileSize <= 0 {
		c.Render.TileSize = def.Render.TileSize
	}
	if c.Render.Supersample < 1 {
		c.Render.Supersample = 1
	} else if c.Render.Supersample > 4 {
		c.Render.Supersample = 4
	}
}

// findConfigFile looks for config in standard locations.
func findConfigFile() string {
	candidates := []string{
		"./config.yaml",
		filepath.Join(ConfigDir(), "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// ConfigDir returns the OS-appropriate config directory.
func ConfigDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "Nightyard")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "Nightyard")
	default: // Linux and others
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "nightyard")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "nightyard")
	}
}

// loadFromFile loads config from a YAML file, merging with existing values.
func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing yaml: %w", err)
	}
	return nil
}
