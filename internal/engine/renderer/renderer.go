// Package renderer owns the OpenGL state for the road viewer.
package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roadspline/internal/engine/camera"
	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/scene"
	"github.com/Faultbox/roadspline/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width  int
	Height int
}

// Renderer initializes GL and draws the road scene.
type Renderer struct {
	config Config
	log    *zap.Logger

	Scene *scene.Scene
}

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	sceneCfg := scene.DefaultConfig()
	sceneCfg.Width = int32(cfg.Width)
	sceneCfg.Height = int32(cfg.Height)

	var err error
	r.Scene, err = scene.New(sceneCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	return r, nil
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	if r.Scene != nil {
		r.Scene.Destroy()
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	r.Scene.Resize(int32(width), int32(height))
	r.log.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Draw renders one frame from cam.
func (r *Renderer) Draw(cam *camera.OrbitCamera) {
	r.Scene.Render(cam)
}

// Screenshot saves the last rendered frame and returns the file path.
func (r *Renderer) Screenshot(sc *debug.ScreenshotCapture) (string, error) {
	pixels, w, h := r.Scene.CaptureImage()
	path, err := sc.CaptureFromPixels(pixels, w, h)
	if err != nil {
		return "", err
	}
	r.log.Info("screenshot saved", zap.String("path", path))
	return path, nil
}
