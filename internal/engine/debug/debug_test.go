package debug

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

var approx = cmpopts.EquateApprox(0, 1e-4)

func straightRoad(t *testing.T) *road.Path {
	t.Helper()
	p, err := road.New(road.DefaultSettings())
	if err != nil {
		t.Fatalf("road.New() error = %v", err)
	}
	p.AddControlPoint(math.Vec3{X: 10})
	return p
}

func TestFlatten(t *testing.T) {
	got := Flatten([]LineVertex{{1, 2, 3, 0.1, 0.2, 0.3}, {4, 5, 6, 1, 1, 1}})
	want := []float32{1, 2, 3, 0.1, 0.2, 0.3, 4, 5, 6, 1, 1, 1}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestGroundGrid(t *testing.T) {
	v := GroundGrid(math.Vec3{}, 10, 5, 0)
	// 5 lines each way, 2 vertices per line
	if len(v) != 20 {
		t.Fatalf("len = %d, want 20", len(v))
	}
	for _, p := range v {
		if p.Y != 0 || p.X < -10 || p.X > 10 || p.Z < -10 || p.Z > 10 {
			t.Errorf("vertex %+v outside the grid", p)
		}
	}

	if v := GroundGrid(math.Vec3{}, 10, 0, 0); v != nil {
		t.Errorf("zero spacing should yield nil, got %d vertices", len(v))
	}
	if v := GroundGrid(math.Vec3{}, 0, 1, 0); v != nil {
		t.Errorf("zero extent should yield nil, got %d vertices", len(v))
	}
}

func TestBBoxWireframe(t *testing.T) {
	v := BBoxWireframe(math.Vec3{X: 1, Y: 1, Z: 1}, math.Vec3{X: -1, Y: -1, Z: -1}, 0.5)
	if len(v) != BBoxWireframeVertexCount {
		t.Fatalf("len = %d, want %d", len(v), BBoxWireframeVertexCount)
	}

	lo := math.Vec3{X: v[0].X, Y: v[0].Y, Z: v[0].Z}
	hi := lo
	for _, p := range v {
		pos := math.Vec3{X: p.X, Y: p.Y, Z: p.Z}
		lo, hi = lo.Min(pos), hi.Max(pos)
	}
	if d := cmp.Diff(math.Vec3{X: -1.5, Y: -1.5, Z: -1.5}, lo, approx); d != "" {
		t.Errorf("min corner: %s", d)
	}
	if d := cmp.Diff(math.Vec3{X: 1.5, Y: 1.5, Z: 1.5}, hi, approx); d != "" {
		t.Errorf("max corner: %s", d)
	}
}

func TestCurveLines(t *testing.T) {
	p := straightRoad(t)
	segs := p.Segments()

	v := CurveLines(segs, 5)
	if len(v) != 10 {
		t.Fatalf("len = %d, want 10", len(v))
	}
	first, last := v[0], v[len(v)-1]
	if d := cmp.Diff(LineVertex{0, 0, 0, CurveColor[0], CurveColor[1], CurveColor[2]}, first, approx); d != "" {
		t.Errorf("first vertex: %s", d)
	}
	if d := cmp.Diff(LineVertex{10, 0, 0, CurveColor[0], CurveColor[1], CurveColor[2]}, last, approx); d != "" {
		t.Errorf("last vertex: %s", d)
	}

	// Consecutive lines share their joint.
	for i := 1; i+1 < len(v); i += 2 {
		if v[i] != v[i+1] {
			t.Errorf("line %d does not start where the previous ended", i/2+1)
		}
	}

	if got := len(CurveLines(segs, 0)); got != 2 {
		t.Errorf("steps 0 should draw one line, got %d vertices", got)
	}
}

func TestHandleLines(t *testing.T) {
	p := straightRoad(t)
	v := HandleLines(p.Points())
	if len(v) != 4 {
		t.Fatalf("len = %d, want 4", len(v))
	}
	// Handles reach a third of the way along the chord.
	if d := cmp.Diff(float32(10.0/3), v[1].X, approx); d != "" {
		t.Errorf("head handle: %s", d)
	}
	if d := cmp.Diff(float32(20.0/3), v[3].X, approx); d != "" {
		t.Errorf("tail handle: %s", d)
	}
}

func TestAxisLinesSelection(t *testing.T) {
	p := straightRoad(t)
	v := AxisLines(p.Points(), p.Tail())
	if len(v) != 8 {
		t.Fatalf("len = %d, want 8", len(v))
	}

	head := Color{v[0].R, v[0].G, v[0].B}
	tail := Color{v[4].R, v[4].G, v[4].B}
	if head != ForwardColor {
		t.Errorf("head forward color = %v, want %v", head, ForwardColor)
	}
	if tail != SelectedColor {
		t.Errorf("selected color = %v, want %v", tail, SelectedColor)
	}

	// Facing +X, the forward gizmo points along X.
	if d := cmp.Diff(float32(AxisLength), v[1].X, approx); d != "" {
		t.Errorf("forward gizmo: %s", d)
	}
}

func TestGuides(t *testing.T) {
	p := straightRoad(t)
	got := len(Guides(p, 4, road.NoPoint))
	want := 4*2 + 4 + 8
	if got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
}

func nearColor(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 4 && d(a.G, b.G) <= 4 && d(a.B, b.B) <= 4
}

func TestPreview(t *testing.T) {
	p := straightRoad(t)
	opts := DefaultPreviewOptions()
	img := Preview(p.BuildMesh(), p.Points(), opts)

	if img.Bounds().Dx() != opts.Width || img.Bounds().Dy() != opts.Height {
		t.Fatalf("size = %v", img.Bounds())
	}

	bg := opts.Background.(color.RGBA)
	fill := opts.Fill.(color.RGBA)
	marker := opts.Marker.(color.RGBA)

	if got := img.RGBAAt(0, 0); !nearColor(got, bg) {
		t.Errorf("corner = %v, want background %v", got, bg)
	}
	// The road runs through the middle of the image.
	if got := img.RGBAAt(opts.Width/2+3, opts.Height/2+5); !nearColor(got, fill) {
		t.Errorf("centre = %v, want fill %v", got, fill)
	}
	// The head point sits at the left margin.
	if got := img.RGBAAt(opts.Margin, opts.Height/2); !nearColor(got, marker) {
		t.Errorf("head marker = %v, want %v", got, marker)
	}
	// Well above the road is still background.
	if got := img.RGBAAt(opts.Width/2, opts.Margin+4); !nearColor(got, bg) {
		t.Errorf("above road = %v, want background %v", got, bg)
	}
}

func TestPreviewEmpty(t *testing.T) {
	opts := DefaultPreviewOptions()
	img := Preview(nil, nil, opts)
	bg := opts.Background.(color.RGBA)
	if got := img.RGBAAt(opts.Width/2, opts.Height/2); got != bg {
		t.Errorf("empty preview = %v, want %v", got, bg)
	}
}

func TestScreenshotCapture(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	sc := NewScreenshotCapture(dir, "road")
	sc.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }

	// Bottom row red, top row blue, as read back from GL.
	pixels := []byte{
		255, 0, 0, 255, 255, 0, 0, 255,
		0, 0, 255, 255, 0, 0, 255, 255,
	}
	path, err := sc.CaptureFromPixels(pixels, 2, 2)
	if err != nil {
		t.Fatalf("CaptureFromPixels() error = %v", err)
	}
	if want := filepath.Join(dir, "road_2024-03-01_12-30-00.png"); path != want {
		t.Errorf("path = %s, want %s", path, want)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	rgba, ok := img.(*image.RGBA)
	if !ok {
		rgba = image.NewRGBA(img.Bounds())
		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				rgba.Set(x, y, img.At(x, y))
			}
		}
	}
	if got := rgba.RGBAAt(0, 0); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("top-left = %v, want blue", got)
	}
	if got := rgba.RGBAAt(0, 1); got != (color.RGBA{255, 0, 0, 255}) {
		t.Errorf("bottom-left = %v, want red", got)
	}
}

func TestScreenshotSizeMismatch(t *testing.T) {
	sc := NewScreenshotCapture(t.TempDir(), "x")
	if _, err := sc.CaptureFromPixels(make([]byte, 3), 1, 1); err == nil {
		t.Error("expected error for short pixel buffer")
	}
}
