package config

import "flag"

// Flags are the command-line overrides. A zero value leaves the setting alone.
type Flags struct {
	Config     string
	Debug      bool
	RoadWidth  float64
	UVScale    float64
	Smoothness float64
	Windowed   bool
	Fullscreen bool
}

// Register binds the flags to fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	fs.StringVar(&f.Config, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")
	fs.Float64Var(&f.RoadWidth, "road-width", 0, "Distance from the centre line to each edge")
	fs.Float64Var(&f.UVScale, "uv-scale", 0, "V texture coordinate per unit of length")
	fs.Float64Var(&f.Smoothness, "smoothness", 0, "Curve length per segment; larger is coarser")
	fs.BoolVar(&f.Windowed, "windowed", false, "Run the viewer in a window")
	fs.BoolVar(&f.Fullscreen, "fullscreen", false, "Run the viewer fullscreen")
}

// apply applies flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if f.RoadWidth > 0 {
		cfg.Road.Width = float32(f.RoadWidth)
	}
	if f.UVScale > 0 {
		cfg.Road.UVScaling = float32(f.UVScale)
	}
	if f.Smoothness > 0 {
		cfg.Road.Smoothness = float32(f.Smoothness)
	}
	if f.Windowed {
		cfg.Viewer.Fullscreen = false
	}
	if f.Fullscreen {
		cfg.Viewer.Fullscreen = true
	}
}
