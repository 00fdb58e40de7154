package config

import (
	"flag"
	"strings"
)

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Drawing buffer width in pixels")
	flagHeight     = flag.Int("height", 0, "Drawing buffer height in pixels")
	flagPixelRatio = flag.Float64("pixel-ratio", 0, "Device pixels per logical pixel")
	flagPreset     = flag.String("preset", "", "Atmosphere preset to start from")
	flagSettings   = flag.String("settings", "", "Settings file (JSON or YAML) to apply")
	flagOut        = flag.String("out", "", "Output directory for rendered frames")
	flagFrames     = flag.Int("frames", 0, "Number of frames to render")
	flagWorkers    = flag.Int("workers", 0, "Render worker count")
	flagSS         = flag.Int("supersample", 0, "Render at N times the size and downscale (1-4)")
	flagSet        stringList
)

func init() {
	flag.Var(&flagSet, "set", "Override a parameter, key=value (repeatable)")
}

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ParseArgs parses flags from args instead of os.Args, for subcommands.
func ParseArgs(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the non-flag arguments left after parsing.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagPixelRatio > 0 {
		cfg.Graphics.PixelRatio = float32(*flagPixelRatio)
	}
	if *flagPreset != "" {
		cfg.Scene.Preset = *flagPreset
	}
	if *flagSettings != "" {
		cfg.Scene.SettingsFile = *flagSettings
	}
	if *flagOut != "" {
		cfg.Render.OutputDir = *flagOut
	}
	if *flagFrames > 0 {
		cfg.Render.Frames = *flagFrames
	}
	if *flagWorkers > 0 {
		cfg.Render.Workers = *flagWorkers
	}
	if *flagSS > 0 {
		cfg.Render.Supersample = *flagSS
	}
	if len(flagSet) > 0 {
		cfg.Scene.Overrides = append(cfg.Scene.Overrides, flagSet...)
	}
}
