// Package config loads road tool settings from defaults, a YAML file and
// command-line flags.
package config

import (
	"fmt"

	"github.com/Faultbox/roadspline/internal/engine/road"
)

// Config holds all settings.
type Config struct {
	Road    RoadConfig    `yaml:"road"`
	Viewer  ViewerConfig  `yaml:"viewer"`
	Logging LoggingConfig `yaml:"logging"`
}

// RoadConfig holds ribbon generation settings.
type RoadConfig struct {
	Width      float32 `yaml:"width"`      // distance from centre to each edge
	UVScaling  float32 `yaml:"uv_scaling"` // V coordinate per unit of length
	Smoothness float32 `yaml:"smoothness"` // larger means fewer segments
}

// ViewerConfig holds window settings for the viewer.
type ViewerConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	s := road.DefaultSettings()
	return &Config{
		Road: RoadConfig{
			Width:      s.Width,
			UVScaling:  s.UVScaling,
			Smoothness: s.Smoothness,
		},
		Viewer: ViewerConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Settings converts the road section for the road package.
func (r RoadConfig) Settings() road.Settings {
	return road.Settings{
		Width:      r.Width,
		UVScaling:  r.UVScaling,
		Smoothness: r.Smoothness,
	}
}

// Validate checks values that would otherwise fail later.
func (c *Config) Validate() error {
	if err := c.Road.Settings().Validate(); err != nil {
		return fmt.Errorf("road: %w", err)
	}
	if c.Viewer.Width <= 0 || c.Viewer.Height <= 0 {
		return fmt.Errorf("viewer: size %dx%d must be positive", c.Viewer.Width, c.Viewer.Height)
	}
	return nil
}
