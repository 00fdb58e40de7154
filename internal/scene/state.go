package scene

import (
	"fmt"

	"github.com/Faultbox/nightyard/internal/config"
	"github.com/Faultbox/nightyard/internal/settings"
	"github.com/Faultbox/nightyard/internal/tuning"
)

// InitialState resolves the starting settings from the scene config: the
// defaults, then the preset, then the settings file, then key=value
// overrides through the parameter registry.
func InitialState(cfg *config.Config, reg *tuning.Registry) (settings.State, error) {
	state := settings.Defaults()

	if name := cfg.Scene.Preset; name != "" {
		next, err := settings.Preset(name, state)
		if err != nil {
			return state, err
		}
		state = next
	}

	if path := cfg.Scene.SettingsFile; path != "" {
		next, err := settings.LoadFile(path, state)
		if err != nil {
			return state, fmt.Errorf("settings file: %w", err)
		}
		state = next
	}

	if len(cfg.Scene.Overrides) > 0 {
		if err := reg.Apply(&state, cfg.Scene.Overrides); err != nil {
			return state, fmt.Errorf("override: %w", err)
		}
	}

	if err := state.Validate(); err != nil {
		return state, err
	}
	return state, nil
}
