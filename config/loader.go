package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is tried when no explicit config file is given.
const DefaultPath = "configs/tilescene.yaml"

// File is the on-disk shape of an override file. Sections left out keep
// their defaults.
type File struct {
	Scene  *Config       `yaml:"scene"`
	Hero   *HeroConfig   `yaml:"hero"`
	Patrol *PatrolConfig `yaml:"patrol"`
	HUD    *HUDConfig    `yaml:"hud"`
	Debug  *DebugConfig  `yaml:"debug"`
}

// Load applies YAML overrides on top of the current globals.
// Search order: customPath -> ./configs/tilescene.yaml -> built-in defaults.
// A missing default file is not an error; a missing custom file is.
func Load(customPath string) error {
	path := customPath
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if customPath == "" && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := Apply(data); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Apply decodes a YAML document into the globals. Fields absent from the
// document keep their current values.
func Apply(data []byte) error {
	f := File{
		Scene:  C,
		Hero:   &Hero,
		Patrol: &Patrol,
		HUD:    &HUD,
		Debug:  &Debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return err
	}
	return Validate()
}

// Validate rejects values the scene cannot run with.
func Validate() error {
	switch {
	case C.Width <= 0 || C.Height <= 0:
		return fmt.Errorf("scene size must be positive, got %dx%d", C.Width, C.Height)
	case C.TileSize <= 0:
		return fmt.Errorf("tile size must be positive, got %d", C.TileSize)
	case C.TPS <= 0:
		return fmt.Errorf("tps must be positive, got %d", C.TPS)
	case Hero.Health <= 0:
		return fmt.Errorf("hero health must be positive, got %d", Hero.Health)
	}
	return nil
}
