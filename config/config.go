package config

import "image/color"

// Config holds general scene configuration
type Config struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TileSize int `yaml:"tileSize"` // grid unit for "row|col" tile keys
	TPS      int `yaml:"tps"`
}

// HeroConfig contains hero-related configuration values
type HeroConfig struct {
	Speed        float64 `yaml:"speed"` // pixels per tick
	Health       int     `yaml:"health"`
	InvulnFrames int     `yaml:"invulnFrames"`

	// Dimensions
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Body hit-box offsets, relative to the sprite origin
	HitBoxInsetX float64 `yaml:"hitBoxInsetX"`
	HitBoxInsetY float64 `yaml:"hitBoxInsetY"`

	Color color.RGBA `yaml:"-"`
}

// PatrolConfig contains defaults for dynamic damage sources
type PatrolConfig struct {
	Distance float64 `yaml:"distance"` // pixels between patrol ends
	Duration float32 `yaml:"duration"` // seconds per leg
	Damage   int     `yaml:"damage"`
	Size     float64 `yaml:"size"`

	Color color.RGBA `yaml:"-"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin    float64    `yaml:"margin"`
	FontSize  float64    `yaml:"fontSize"`
	TextColor color.RGBA `yaml:"-"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowHitBoxes bool `yaml:"showHitBoxes"`
	LogClamps    bool `yaml:"logClamps"`

	HitBoxColor color.RGBA `yaml:"-"`
}

// Global configuration instances
var C *Config
var Hero HeroConfig
var Patrol PatrolConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red     = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Magenta = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Slate   = color.RGBA{R: 90, G: 100, B: 120, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:    500,
		Height:   500,
		TileSize: 16,
		TPS:      60,
	}

	Hero = HeroConfig{
		Speed:        2.0,
		Health:       100,
		InvulnFrames: 45,

		Width:  16,
		Height: 16,

		HitBoxInsetX: 2,
		HitBoxInsetY: 2,

		Color: Orange,
	}

	Patrol = PatrolConfig{
		Distance: 64,
		Duration: 1.5,
		Damage:   10,
		Size:     12,
		Color:    Red,
	}

	HUD = HUDConfig{
		Margin:    8,
		FontSize:  10,
		TextColor: White,
	}

	Debug = DebugConfig{
		ShowHitBoxes: false,
		LogClamps:    false,
		HitBoxColor:  Magenta,
	}
}
