// Package scene draws an editable road: the ribbon, its guide curves and
// a ground grid.
package scene

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roadspline/internal/engine/camera"
	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/lighting"
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// Config contains scene configuration options.
type Config struct {
	Width       int32
	Height      int32
	GridSpacing float32
	GridExtent  float32
}

// DefaultConfig returns a default scene configuration.
func DefaultConfig() Config {
	return Config{
		Width:       1280,
		Height:      720,
		GridSpacing: 5,
		GridExtent:  100,
	}
}

// Scene holds the GPU state for one road.
type Scene struct {
	config Config

	ribbon *RibbonRenderer
	guides *LineRenderer
	grid   *LineRenderer
	bounds *LineRenderer

	// Origin is the world position of the road's local frame.
	Origin math.Vec3

	Sun        lighting.Sun
	ClearColor [3]float32

	ShowGuides bool
	ShowGrid   bool
	ShowBounds bool
	Wireframe  bool
}

// New creates the scene renderers. The GL context must exist.
func New(cfg Config) (*Scene, error) {
	s := &Scene{
		config:     cfg,
		Sun:        lighting.DefaultSun(),
		ClearColor: [3]float32{0.12, 0.13, 0.15},
		ShowGuides: true,
		ShowGrid:   true,
	}

	var err error
	if s.ribbon, err = NewRibbonRenderer(); err != nil {
		return nil, err
	}
	for _, lr := range []**LineRenderer{&s.guides, &s.grid, &s.bounds} {
		if *lr, err = NewLineRenderer(); err != nil {
			s.Destroy()
			return nil, fmt.Errorf("creating line renderer: %w", err)
		}
	}

	s.grid.Upload(debug.GroundGrid(math.Vec3{}, cfg.GridExtent, cfg.GridSpacing, 0))
	return s, nil
}

// Ribbon returns the road mesh renderer.
func (s *Scene) Ribbon() *RibbonRenderer {
	return s.ribbon
}

// SetMesh uploads a rebuilt road mesh and refreshes its bounds overlay.
func (s *Scene) SetMesh(mesh *road.MeshData) {
	s.ribbon.Upload(mesh)
	if mesh == nil || len(mesh.Vertices) == 0 {
		s.bounds.Upload(nil)
		return
	}
	lo, hi := mesh.Bounds()
	s.bounds.Upload(debug.BBoxWireframe(lo, hi, debug.DefaultBBoxPadding))
}

// SetGuides uploads the curve, handle and axis overlay.
func (s *Scene) SetGuides(vertices []debug.LineVertex) {
	s.guides.Upload(vertices)
}

// CenterGrid moves the ground grid under a world position.
func (s *Scene) CenterGrid(center math.Vec3) {
	s.grid.Upload(debug.GroundGrid(center, s.config.GridExtent, s.config.GridSpacing, s.Origin.Y))
}

// Aspect returns the viewport aspect ratio.
func (s *Scene) Aspect() float32 {
	if s.config.Height == 0 {
		return 1
	}
	return float32(s.config.Width) / float32(s.config.Height)
}

// Render draws the scene from cam into the current framebuffer.
func (s *Scene) Render(cam *camera.OrbitCamera) {
	viewProj := cam.ViewProjection(s.Aspect())
	model := math.Translate(s.Origin)

	gl.Viewport(0, 0, s.config.Width, s.config.Height)
	gl.ClearColor(s.ClearColor[0], s.ClearColor[1], s.ClearColor[2], 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)

	if s.ShowGrid {
		s.grid.Render(viewProj, math.Identity())
	}

	s.ribbon.Render(viewProj, model, s.Sun, s.Wireframe)

	if s.ShowBounds {
		s.bounds.Render(viewProj, model)
	}

	// Guides stay visible through the road surface.
	if s.ShowGuides {
		gl.Disable(gl.DEPTH_TEST)
		s.guides.Render(viewProj, model)
		gl.Enable(gl.DEPTH_TEST)
	}
}

// Resize updates the scene dimensions.
func (s *Scene) Resize(width, height int32) {
	s.config.Width = width
	s.config.Height = height
}

// CaptureImage reads back the default framebuffer as RGBA rows, bottom row
// first.
func (s *Scene) CaptureImage() ([]byte, int, int) {
	w, h := int(s.config.Width), int(s.config.Height)
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Destroy releases all resources.
func (s *Scene) Destroy() {
	if s.ribbon != nil {
		s.ribbon.Destroy()
	}
	for _, lr := range []*LineRenderer{s.guides, s.grid, s.bounds} {
		if lr != nil {
			lr.Destroy()
		}
	}
}
