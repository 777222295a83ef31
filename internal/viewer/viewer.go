// Package viewer runs the interactive road window: it feeds keyboard and
// mouse edits into an editor session and redraws the ribbon after each one.
package viewer

import (
	"fmt"
	"time"

	"github.com/sqweek/dialog"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/roadspline/internal/editor"
	"github.com/Faultbox/roadspline/internal/engine/camera"
	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/input"
	"github.com/Faultbox/roadspline/internal/engine/picking"
	"github.com/Faultbox/roadspline/internal/engine/renderer"
	"github.com/Faultbox/roadspline/internal/engine/texture"
	"github.com/Faultbox/roadspline/internal/engine/window"
	"github.com/Faultbox/roadspline/internal/logger"
)

// Config holds viewer configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool

	// TexturePath overrides the generated lane texture.
	TexturePath   string
	ScreenshotDir string
	GuideSteps    int
}

// App is the viewer instance.
type App struct {
	config  Config
	log     *zap.Logger
	running bool

	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	camera   *camera.OrbitCamera
	shots    *debug.ScreenshotCapture

	session *editor.Session

	// the texture dialog delivers its choice back to the main thread
	pendingTexture chan string
}

// New opens the window and uploads the session's road.
func New(cfg Config, session *editor.Session) (*App, error) {
	if cfg.GuideSteps < 1 {
		cfg.GuideSteps = debug.DefaultGuideSteps
	}

	a := &App{
		config:  cfg,
		log:     logger.Named("viewer"),
		session: session,
		input:   input.New(),
		camera:  camera.NewOrbitCamera(),
		shots:   debug.NewScreenshotCapture(cfg.ScreenshotDir, "road"),

		pendingTexture: make(chan string, 1),
	}

	a.log.Info("initializing viewer",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height),
	)

	// Create window (this also creates OpenGL context)
	var err error
	a.window, err = window.New(window.Config{
		Title:      cfg.Title,
		Width:      cfg.Width,
		Height:     cfg.Height,
		Fullscreen: cfg.Fullscreen,
		VSync:      cfg.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create renderer (AFTER window, since OpenGL context must exist)
	w, h := a.window.GetDrawableSize()
	a.renderer, err = renderer.New(renderer.Config{Width: w, Height: h})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := a.loadTexture(); err != nil {
		a.log.Warn("using generated texture", zap.Error(err))
		a.renderer.Scene.Ribbon().SetTexture(texture.Lanes(texture.DefaultLaneStyle()))
	}

	a.renderer.Scene.Origin = session.Path().Origin()
	a.upload()
	a.fitCamera()
	return a, nil
}

func (a *App) loadTexture() error {
	if a.config.TexturePath == "" {
		a.renderer.Scene.Ribbon().SetTexture(texture.Lanes(texture.DefaultLaneStyle()))
		return nil
	}
	img, err := texture.Load(a.config.TexturePath)
	if err != nil {
		return err
	}
	a.renderer.Scene.Ribbon().SetTexture(img)
	return nil
}

// Run starts the main loop.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	a.log.Info("starting viewer loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if a.input.Update() {
			a.running = false
			break
		}
		for _, event := range a.input.Events() {
			a.handle(event)
		}
		a.pan(float32(dt))
		a.processDialogs()

		// 2. Push edits to the GPU
		if a.session.TakeChanged() {
			a.upload()
		}

		// 3. Render
		a.renderer.Draw(a.camera)

		// 4. Present (swap buffers)
		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			a.log.Debug("fps", zap.Int("count", frameCount), zap.String("dt", fmt.Sprintf("%.2fms", dt*1000)))
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (a *App) Close() {
	a.log.Info("closing viewer")

	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}

func (a *App) handle(event input.Event) {
	switch event.Type {
	case input.EventWindowResize:
		w, h := a.window.GetDrawableSize()
		a.renderer.Resize(w, h)

	case input.EventKeyDown:
		a.handleKey(event)

	case input.EventMouseDown:
		if event.Button == sdl.BUTTON_LEFT {
			a.click(event)
		}

	case input.EventMouseMove:
		if a.input.IsButtonHeld(sdl.BUTTON_RIGHT) {
			a.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
		}

	case input.EventMouseWheel:
		a.camera.HandleZoom(float32(event.DeltaY))
	}
}

func (a *App) handleKey(event input.Event) {
	scene := a.renderer.Scene

	switch {
	case event.Key == sdl.SCANCODE_ESCAPE:
		a.running = false
	case event.Key == sdl.SCANCODE_T && event.Ctrl:
		a.textureDialog()
	case event.Key == sdl.SCANCODE_F:
		a.fitCamera()
	case event.Key == sdl.SCANCODE_G:
		scene.ShowGuides = !scene.ShowGuides
	case event.Key == sdl.SCANCODE_H:
		scene.ShowGrid = !scene.ShowGrid
	case event.Key == sdl.SCANCODE_B:
		scene.ShowBounds = !scene.ShowBounds
	case event.Key == sdl.SCANCODE_X:
		scene.Wireframe = !scene.Wireframe
	case event.Key == sdl.SCANCODE_F11:
		if err := a.window.ToggleFullscreen(); err != nil {
			a.log.Warn("fullscreen toggle failed", zap.Error(err))
		}
	case event.Key == sdl.SCANCODE_F12:
		if _, err := a.renderer.Screenshot(a.shots); err != nil {
			a.log.Error("screenshot failed", zap.Error(err))
		}
	default:
		action := actionFor(event.Key, event.Shift)
		if action == editor.ActionNone {
			return
		}
		if err := a.session.Apply(action); err != nil {
			a.log.Warn("edit rejected", zap.Stringer("action", action), zap.Error(err))
		}
	}
}

// click edits at the cursor: on the road it inserts a point into the edge
// under the cursor, on the ground with shift it appends, otherwise it
// selects the nearest point.
func (a *App) click(event input.Event) {
	w, h := a.window.GetSize()
	ray := picking.ScreenToRay(float32(event.MouseX), float32(event.MouseY), float32(w), float32(h),
		a.camera.ViewProjection(a.renderer.Scene.Aspect()).Inverse())

	path := a.session.Path()
	if event.Ctrl {
		if hit, ok := picking.PickMesh(ray, a.session.Mesh(), path.Origin()); ok {
			if _, err := a.session.InsertOnEdge(hit.From, hit.To, hit.Point); err != nil {
				a.log.Warn("insert rejected", zap.Error(err))
			}
			return
		}
	}

	ground, ok := ray.IntersectPlaneY(path.Origin().Y)
	if !ok {
		return
	}
	if event.Shift {
		a.session.AppendAt(ground)
		return
	}
	a.session.SelectNearest(ground)
}

// pan moves the camera with WASD while held.
func (a *App) pan(dt float32) {
	var fwd, right float32
	if a.input.IsKeyHeld(sdl.SCANCODE_W) {
		fwd++
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_S) {
		fwd--
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_D) {
		right++
	}
	if a.input.IsKeyHeld(sdl.SCANCODE_A) {
		right--
	}
	if fwd != 0 || right != 0 {
		a.camera.HandleMovement(fwd*dt*60, right*dt*60, 0)
	}
}

func (a *App) upload() {
	scene := a.renderer.Scene
	scene.Origin = a.session.Path().Origin()
	scene.SetMesh(a.session.Mesh())
	scene.SetGuides(a.session.Guides(a.config.GuideSteps))

	path := a.session.Path()
	a.window.SetTitle(fmt.Sprintf("%s - %d points, %d triangles",
		a.config.Title, path.Len(), a.session.Mesh().TriangleCount()))
}

func (a *App) fitCamera() {
	mesh := a.session.Mesh()
	origin := a.session.Path().Origin()
	if mesh == nil || len(mesh.Vertices) == 0 {
		a.camera.FitToBounds(origin, origin)
		return
	}
	lo, hi := mesh.Bounds()
	a.camera.FitToBounds(lo.Add(origin), hi.Add(origin))
	a.renderer.Scene.CenterGrid(a.camera.Center)
}

// textureDialog shows a native file dialog to pick the road texture.
func (a *App) textureDialog() {
	// the dialog blocks, and GL calls must stay on the main thread
	go func() {
		filename, err := dialog.File().
			Filter("Images", "png", "jpg", "jpeg", "bmp", "tif", "tiff", "webp").
			Filter("All Files", "*").
			Title("Open Road Texture").
			Load()
		if err != nil {
			if err != dialog.ErrCancelled {
				a.log.Error("file dialog failed", zap.Error(err))
			}
			return
		}
		select {
		case a.pendingTexture <- filename:
		default:
		}
	}()
}

// processDialogs applies dialog results on the main thread.
func (a *App) processDialogs() {
	select {
	case path := <-a.pendingTexture:
		a.config.TexturePath = path
		if err := a.loadTexture(); err != nil {
			a.log.Error("texture load failed", zap.String("path", path), zap.Error(err))
			return
		}
		a.log.Info("texture loaded", zap.String("path", path))
	default:
	}
}
