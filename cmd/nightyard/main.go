// nightyard renders the night scene offline and manages atmosphere settings.
package main

import (
	"fmt"
	"image"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/nightyard/internal/config"
	"github.com/Faultbox/nightyard/internal/engine/capture"
	"github.com/Faultbox/nightyard/internal/engine/raster"
	"github.com/Faultbox/nightyard/internal/logger"
	"github.com/Faultbox/nightyard/internal/scene"
	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/tuning"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "render":
		err = cmdRender(args)
	case "export":
		err = cmdExport(args)
	case "presets":
		cmdPresets()
	case "params":
		err = cmdParams(args)
	case "init-config":
		err = cmdInitConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`nightyard - night sky renderer and settings tool

Usage:
  nightyard <command> [options]

Commands:
  render [flags]                 Render frames to PNG
  export [flags] [file]          Write the resolved settings (JSON or YAML)
  presets                        List preset names
  params [flags]                 List tunable parameters and their values
  init-config [file]             Write a default config file

Common flags:
  -config <file>                 Config file (YAML)
  -preset <name>                 Preset to start from
  -settings <file>               Settings overlay (JSON or YAML)
  -set key=value                 Parameter override, repeatable
  -width, -height, -pixel-ratio  Drawing buffer
  -frames, -out, -workers        Render output
  -supersample <n>               Render n times larger, then downscale

Examples:
  nightyard render -preset horrorAtmosphere -frames 8 -out renders
  nightyard render -set fogDensity=0.04 -set starCount=5000 -supersample 2
  nightyard export -preset brightTest bright.yaml
  nightyard params -preset horrorAtmosphere`)
}

// setup parses flags, loads config and starts logging.
func setup(args []string) (*config.Config, error) {
	if err := config.ParseArgs(args); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, nil
}

func cmdRender(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}

	state, err := scene.InitialState(cfg, tuning.NewRegistry())
	if err != nil {
		return err
	}
	sc, err := scene.New(cfg, state)
	if err != nil {
		return err
	}

	// Supersampling renders a larger buffer and scales it down on write.
	ss := cfg.Render.Supersample
	width, height := cfg.Graphics.Width, cfg.Graphics.Height
	if ss > 1 {
		sc.Resize(width*ss, height*ss, cfg.Graphics.PixelRatio*float32(ss))
	}

	r := raster.New(raster.Options{
		Width:    width * ss,
		Height:   height * ss,
		Workers:  cfg.Render.Workers,
		TileSize: cfg.Render.TileSize,
	})
	defer r.Close()

	writer := capture.New(cfg.Render.OutputDir, cfg.Render.Prefix)
	for i := 0; i < cfg.Render.Frames; i++ {
		sc.Update(float32(i) * cfg.Render.FrameInterval)

		var img image.Image = r.Render(sc.Frame())
		if ss > 1 {
			img = capture.Downscale(img, width, height)
		}
		path, err := writer.WriteFrame(img, i)
		if err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
		logger.Info("frame written", zap.Int("frame", i), zap.String("path", path))
		fmt.Println(path)
	}
	return nil
}

func cmdExport(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	state, err := scene.InitialState(cfg, tuning.NewRegistry())
	if err != nil {
		return err
	}

	rest := config.Args()
	if len(rest) == 0 {
		data, err := state.ExportJSON()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	if err := state.SaveFile(rest[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Settings written to %s\n", rest[0])
	return nil
}

func cmdPresets() {
	for _, name := range settings.PresetNames() {
		fmt.Println(name)
	}
}

func cmdParams(args []string) error {
	cfg, err := setup(args)
	if err != nil {
		return err
	}
	reg := tuning.NewRegistry()
	state, err := scene.InitialState(cfg, reg)
	if err != nil {
		return err
	}

	group := ""
	for _, b := range reg.Bindings() {
		if b.Group != group {
			group = b.Group
			fmt.Printf("\n[%s]\n", group)
		}
		fmt.Printf("  %-20s %-7s %-10s %s\n", b.Key, b.Kind, b.Format(&state), describeRange(b))
	}
	return nil
}

func describeRange(b *tuning.Binding) string {
	switch b.Kind {
	case tuning.Float, tuning.Int:
		return fmt.Sprintf("%g..%g step %g", b.Min, b.Max, b.Step)
	case tuning.Choice:
		return strings.Join(b.Choices, "|")
	}
	return ""
}

func cmdInitConfig(args []string) error {
	path := config.DefaultPath()
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := config.Default().SaveTo(path); err != nil {
		return err
	}
	fmt.Printf("Config written to %s\n", path)
	return nil
}
