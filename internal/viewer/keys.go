package viewer

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/nightyard/internal/settings"
)

// presetKeys maps the number row to presets.
var presetKeys = map[sdl.Scancode]string{
	sdl.SCANCODE_1: settings.PresetDefaults,
	sdl.SCANCODE_2: settings.PresetUserTuned,
	sdl.SCANCODE_3: settings.PresetBright,
	sdl.SCANCODE_4: settings.PresetHorror,
}

func presetForKey(key sdl.Scancode) (string, bool) {
	name, ok := presetKeys[key]
	return name, ok
}

// Fog density hotkey step and ceiling.
const (
	fogStepSize = 0.002
	fogMaxStep  = 0.1
)

// fogStep returns the next fog density one hotkey press away from d.
func fogStep(d float32, thicker bool) float32 {
	if thicker {
		d += fogStepSize
	} else {
		d -= fogStepSize
	}
	switch {
	case d < 0:
		return 0
	case d > fogMaxStep:
		return fogMaxStep
	}
	return d
}

// snapshotScale returns the largest supersample factor up to want for which
// a w x h capture still fits in a maxSize render target.
func snapshotScale(w, h, want, maxSize int) int {
	if want < 1 {
		want = 1
	}
	for s := want; s > 1; s-- {
		if w*s <= maxSize && h*s <= maxSize {
			return s
		}
	}
	return 1
}
