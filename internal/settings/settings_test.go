package settings

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chewxy/math32"

	"github.com/Faultbox/nightyard/internal/atmosphere"
	"github.com/Faultbox/nightyard/pkg/math"
)

func approxVec(a, b math.Vec3) bool {
	const eps = 1e-6
	return math32.Abs(a.X-b.X) < eps && math32.Abs(a.Y-b.Y) < eps && math32.Abs(a.Z-b.Z) < eps
}

func TestDefaultsMatchAtmosphere(t *testing.T) {
	p, err := Defaults().AtmosphereParams()
	if err != nil {
		t.Fatalf("AtmosphereParams() error = %v", err)
	}
	want := atmosphere.DefaultParams()

	if !approxVec(p.Gradient.Horizon, want.Gradient.Horizon) {
		t.Errorf("horizon = %v, want %v", p.Gradient.Horizon, want.Gradient.Horizon)
	}
	if !approxVec(p.Pollution.Color, want.Pollution.Color) {
		t.Errorf("pollution = %v, want %v", p.Pollution.Color, want.Pollution.Color)
	}
	if !approxVec(p.Stars.Tint, want.Stars.Tint) {
		t.Errorf("star tint = %v, want %v", p.Stars.Tint, want.Stars.Tint)
	}
	if p.Pollution.Near != want.Pollution.Near || p.Pollution.Far != want.Pollution.Far {
		t.Errorf("sources = %+v, want %+v", p.Pollution, want.Pollution)
	}
	if p.Stars.Count != want.Stars.Count || p.Stars.Enabled != want.Stars.Enabled {
		t.Errorf("stars = %+v, want %+v", p.Stars, want.Stars)
	}
	if p.Horror != want.Horror {
		t.Errorf("horror = %+v, want %+v", p.Horror, want.Horror)
	}
	if p.Fog.Density != want.Fog.Density || p.Fog.MaxOpacity != want.Fog.MaxOpacity {
		t.Errorf("fog = %+v, want %+v", p.Fog, want.Fog)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    math.Vec3
		wantErr bool
	}{
		{"#000000", math.Vec3{}, false},
		{"#ffffff", math.Vec3{X: 1, Y: 1, Z: 1}, false},
		{"#FF0000", math.Vec3{X: 1}, false},
		{"#f00", math.Vec3{X: 1}, false},
		{"#3D2F28", math.Vec3{X: 61.0 / 255, Y: 47.0 / 255, Z: 40.0 / 255}, false},
		{"red", math.Vec3{}, true},
		{"", math.Vec3{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidColor) {
					t.Errorf("ParseColor(%q) error = %v, want ErrInvalidColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) error = %v", tt.in, err)
			}
			if !approxVec(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHexColorRoundTrip(t *testing.T) {
	for _, hex := range []string{"#2b2822", "#0f0e14", "#f5fff9", "#000000"} {
		v, err := ParseColor(hex)
		if err != nil {
			t.Fatalf("ParseColor(%q) error = %v", hex, err)
		}
		if got := HexColor(v); got != hex {
			t.Errorf("HexColor(ParseColor(%q)) = %q", hex, got)
		}
	}
	if got := HexColor(math.Vec3{X: 2, Y: -1, Z: 0.5}); got != "#ff0080" {
		t.Errorf("HexColor clamps = %q, want #ff0080", got)
	}
}

func TestPresetNames(t *testing.T) {
	got := strings.Join(PresetNames(), ",")
	want := "brightTest,horrorAtmosphere,resetToDefaults,userTuned"
	if got != want {
		t.Errorf("PresetNames() = %s, want %s", got, want)
	}
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("daylight", Defaults())
	if !errors.Is(err, ErrUnknownPreset) {
		t.Errorf("Preset(daylight) error = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetBrightStartsFromDefaults(t *testing.T) {
	current := Defaults()
	current.SkyZenithColor = "#ff00ff"

	s, err := Preset(PresetBright, current)
	if err != nil {
		t.Fatal(err)
	}
	if s.Exposure != 1.5 || s.StarBrightness != 1.2 {
		t.Errorf("bright = exposure %v, stars %v", s.Exposure, s.StarBrightness)
	}
	if s.MoonIntensity != 1.2 || s.HemiIntensity != 0.35 || s.AmbientIntensity != 0.08 {
		t.Errorf("bright lights = moon %v, hemi %v, ambient %v",
			s.MoonIntensity, s.HemiIntensity, s.AmbientIntensity)
	}
	if s.SkyZenithColor != Defaults().SkyZenithColor {
		t.Errorf("bright kept current zenith %q", s.SkyZenithColor)
	}
}

func TestPresetHorrorLayersOverCurrent(t *testing.T) {
	current := Defaults()
	current.StarCount = 1234
	current.Village1Azimuth = 10

	s, err := Preset(PresetHorror, current)
	if err != nil {
		t.Fatal(err)
	}
	if !s.HorrorEnabled {
		t.Error("horror preset should enable the grade")
	}
	if s.FogDensity != 0.035 || s.SkyMidHighStop != 0.62 {
		t.Errorf("horror fog %v, stop %v", s.FogDensity, s.SkyMidHighStop)
	}
	if s.MoonIntensity != 0.6 || s.HemiIntensity != 0.2 || s.AmbientIntensity != 0.04 {
		t.Errorf("horror lights = moon %v, hemi %v, ambient %v",
			s.MoonIntensity, s.HemiIntensity, s.AmbientIntensity)
	}
	if s.GroundTiling != current.GroundTiling || s.MoonX != current.MoonX {
		t.Errorf("horror should keep ground tiling and moon position")
	}
	if s.StarCount != 1234 || s.Village1Azimuth != 10 {
		t.Errorf("horror should keep untouched current values, got count %d azimuth %v",
			s.StarCount, s.Village1Azimuth)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("horror preset invalid: %v", err)
	}
}

func TestPresetResetAndUserTuned(t *testing.T) {
	current := Defaults()
	current.HorrorEnabled = true
	for _, name := range []string{PresetDefaults, PresetUserTuned} {
		s, err := Preset(name, current)
		if err != nil {
			t.Fatal(err)
		}
		if s != Defaults() {
			t.Errorf("%s = %+v, want defaults", name, s)
		}
	}
}

func TestExportImportJSON(t *testing.T) {
	s := Defaults()
	s.StarCount = 4200
	s.FogType = FogLinear
	s.HorrorEnabled = true

	data, err := s.ExportJSON()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"village1Azimuth": -45`) {
		t.Errorf("export missing camelCase keys:\n%s", data)
	}

	got, err := ImportJSON(data, Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if got != s {
		t.Errorf("ImportJSON(ExportJSON) = %+v, want %+v", got, s)
	}
}

func TestImportJSONPartialAndForeignKeys(t *testing.T) {
	data := []byte(`{"fogDensity": 0.04, "moonIntensity": 1.2, "hdri": "satara_night"}`)
	got, err := ImportJSON(data, Defaults())
	if err != nil {
		t.Fatal(err)
	}
	want := Defaults()
	want.FogDensity = 0.04
	want.MoonIntensity = 1.2
	if got != want {
		t.Errorf("partial import = %+v, want %+v", got, want)
	}
}

func TestImportJSONErrors(t *testing.T) {
	base := Defaults()
	tests := []struct {
		name string
		data string
		is   error
	}{
		{"bad colour", `{"fogColor": "fog"}`, ErrInvalidColor},
		{"bad fog type", `{"fogType": "volumetric"}`, ErrInvalidFogType},
		{"syntax", `{"fogDensity": }`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ImportJSON([]byte(tt.data), base)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.is != nil && !errors.Is(err, tt.is) {
				t.Errorf("error = %v, want %v", err, tt.is)
			}
			if got != base {
				t.Error("failed import must return base unchanged")
			}
		})
	}
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	s, _ := Preset(PresetHorror, Defaults())

	for _, name := range []string{"preset.json", "nested/preset.yaml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := s.SaveFile(path); err != nil {
				t.Fatalf("SaveFile() error = %v", err)
			}
			got, err := LoadFile(path, Defaults())
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if got != s {
				t.Errorf("LoadFile = %+v, want %+v", got, s)
			}
		})
	}
}

func TestLoadFileYAMLOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.yml")
	content := "starCount: 800\nhorrorEnabled: true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path, Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if got.StarCount != 800 || !got.HorrorEnabled || got.FogDensity != 0.02 {
		t.Errorf("overlay = %+v", got)
	}
}

func TestLoadFileWithBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "night.json")
	content := append([]byte{0xEF, 0xBB, 0xBF}, `{"fogDensity": 0.03}`...)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path, Defaults())
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if got.FogDensity != 0.03 {
		t.Errorf("FogDensity = %v, want 0.03", got.FogDensity)
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "none.json"), Defaults())
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want ErrNotExist", err)
	}
}

func TestExportFilename(t *testing.T) {
	ts := time.UnixMilli(1700000000123)
	if got := ExportFilename(ts); got != "nightyard-preset-1700000000123.json" {
		t.Errorf("ExportFilename = %s", got)
	}
}

func TestAtmosphereParamsInvalidColor(t *testing.T) {
	s := Defaults()
	s.StarTint = "#zzzzzz"
	_, err := s.AtmosphereParams()
	if !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("error = %v, want ErrInvalidColor", err)
	}
	if !strings.Contains(err.Error(), "starTint") {
		t.Errorf("error %q should name the key", err)
	}
}

func TestImportJSONLightingKeys(t *testing.T) {
	data := []byte(`{"moonX": -20, "moonY": 45, "moonZ": 5, "hemiIntensity": 0.4,
		"ambientIntensity": 0.1, "groundTiling": 96}`)
	got, err := ImportJSON(data, Defaults())
	if err != nil {
		t.Fatal(err)
	}
	if got.MoonX != -20 || got.MoonY != 45 || got.MoonZ != 5 {
		t.Errorf("moon = %v, %v, %v", got.MoonX, got.MoonY, got.MoonZ)
	}
	if got.HemiIntensity != 0.4 || got.AmbientIntensity != 0.1 || got.GroundTiling != 96 {
		t.Errorf("lights = %+v", got)
	}
}

func TestNormalized(t *testing.T) {
	s := Defaults()
	s.SkyMidLowStop = 0.7
	s.SkyMidHighStop = 0.3
	s.FogDensity = -0.03
	s.FogMax = 1.5
	s.StarCount = -5

	p, err := s.AtmosphereParams()
	if err != nil {
		t.Fatal(err)
	}
	p.Gradient.MidLowStop, p.Gradient.MidHighStop = 0.4, 0.5
	p.Fog = atmosphere.ClampFog(p.Fog)
	p.Stars.Count = 0

	got := s.Normalized(p)
	if got.SkyMidLowStop != 0.4 || got.SkyMidHighStop != 0.5 {
		t.Errorf("stops = %v, %v", got.SkyMidLowStop, got.SkyMidHighStop)
	}
	if got.FogDensity != 0 || got.FogMax != 1 {
		t.Errorf("fog = %v, %v", got.FogDensity, got.FogMax)
	}
	if got.StarCount != 0 {
		t.Errorf("StarCount = %d", got.StarCount)
	}
	if got.SkyZenithColor != s.SkyZenithColor || got.MoonIntensity != s.MoonIntensity {
		t.Error("Normalized changed keys outside the atmosphere")
	}
}
