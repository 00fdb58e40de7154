package settings

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/nightyard/pkg/encoding"
)

// ExportJSON returns the state as indented JSON.
func (s State) ExportJSON() ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling settings: %w", err)
	}
	return append(data, '\n'), nil
}

// ImportJSON decodes data over base. Keys absent from data keep their base
// value, so partial files act as overlays.
func ImportJSON(data []byte, base State) (State, error) {
	s := base
	if err := json.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// ImportYAML is ImportJSON for YAML documents.
func ImportYAML(data []byte, base State) (State, error) {
	s := base
	if err := yaml.Unmarshal(data, &s); err != nil {
		return base, fmt.Errorf("parsing settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

func isYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// LoadFile reads a settings file over base. The format is picked by
// extension: .yaml and .yml are YAML, anything else is JSON.
func LoadFile(path string, base State) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("reading settings: %w", err)
	}
	// Editors on Windows like to save with a BOM, sometimes as UTF-16.
	if data, err = encoding.ToUTF8(data); err != nil {
		return base, fmt.Errorf("reading settings: %w", err)
	}
	if isYAML(path) {
		return ImportYAML(data, base)
	}
	return ImportJSON(data, base)
}

// SaveFile writes the state to path, creating parent directories.
func (s State) SaveFile(path string) error {
	var (
		data []byte
		err  error
	)
	if isYAML(path) {
		data, err = yaml.Marshal(s)
		if err != nil {
			err = fmt.Errorf("marshaling settings: %w", err)
		}
	} else {
		data, err = s.ExportJSON()
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating settings directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}

// ExportFilename returns the default export file name for time t.
func ExportFilename(t time.Time) string {
	return fmt.Sprintf("nightyard-preset-%d.json", t.UnixMilli())
}
