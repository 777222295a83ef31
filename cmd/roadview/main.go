// Package main is the entry point for the interactive road viewer.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/roadspline/internal/config"
	"github.com/Faultbox/roadspline/internal/editor"
	"github.com/Faultbox/roadspline/internal/logger"
	"github.com/Faultbox/roadspline/internal/viewer"
	"github.com/Faultbox/roadspline/pkg/math"
)

func main() {
	var flags config.Flags
	flags.Register(flag.CommandLine)
	texturePath := flag.String("texture", "", "Image to map onto the road (png, jpeg, bmp, tiff, webp)")
	shotDir := flag.String("screenshots", "screenshots", "Directory for F12 screenshots")
	originFlag := flag.String("origin", "0,0,0", "World position of the path origin")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: roadview [options] [x,y,z ...]\n\nControl points are given in path order, relative to -origin.\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(&flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Road Viewer ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	session, err := newSession(cfg, *originFlag, flag.Args())
	if err != nil {
		logger.Error("failed to create road", zap.Error(err))
		os.Exit(1)
	}

	app, err := viewer.New(viewer.Config{
		Title:         "Road Viewer",
		Width:         cfg.Viewer.Width,
		Height:        cfg.Viewer.Height,
		Fullscreen:    cfg.Viewer.Fullscreen,
		VSync:         cfg.Viewer.VSync,
		TexturePath:   *texturePath,
		ScreenshotDir: *shotDir,
	}, session)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}

// newSession builds the road from the command line. Without points it
// starts with a single straight edge.
func newSession(cfg *config.Config, originArg string, args []string) (*editor.Session, error) {
	origin, err := math.ParseVec3(originArg)
	if err != nil {
		return nil, err
	}
	points, err := math.ParseVec3s(args)
	if err != nil {
		return nil, err
	}
	if len(points) == 0 {
		points = []math.Vec3{{}, {Z: editor.DefaultAppendDistance}}
	}
	return editor.FromPoints(cfg.Road.Settings(), origin, points, logger.Log)
}
