package debug

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/pkg/math"
)

// PreviewOptions controls the top-down preview raster.
type PreviewOptions struct {
	Width, Height int
	Margin        int // pixels kept clear on every side
	MarkerSize    int // side of the square drawn at each control point, 0 for none

	Background color.Color
	Fill       color.Color
	Marker     color.Color
}

// DefaultPreviewOptions returns a 512x512 preview with point markers.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		Width:      512,
		Height:     512,
		Margin:     16,
		MarkerSize: 6,
		Background: color.RGBA{0x20, 0x22, 0x26, 0xff},
		Fill:       color.RGBA{0x8a, 0x8d, 0x91, 0xff},
		Marker:     color.RGBA{0xff, 0xd9, 0x33, 0xff},
	}
}

// projector maps the XZ plane to image space, +X right and +Z up.
type projector struct {
	scale      float32
	originX    float32
	originZ    float32
	offX, offY float32
	height     float32
}

func newProjector(lo, hi math.Vec3, opts PreviewOptions) projector {
	w := float32(opts.Width - 2*opts.Margin)
	h := float32(opts.Height - 2*opts.Margin)
	spanX := max(hi.X-lo.X, 1e-3)
	spanZ := max(hi.Z-lo.Z, 1e-3)
	scale := min(w/spanX, h/spanZ)

	// Centre the drawing inside the margins.
	return projector{
		scale:   scale,
		originX: lo.X,
		originZ: lo.Z,
		offX:    float32(opts.Margin) + (w-spanX*scale)/2,
		offY:    float32(opts.Margin) + (h-spanZ*scale)/2,
		height:  float32(opts.Height),
	}
}

func (p projector) project(v math.Vec3) (x, y float32) {
	x = p.offX + (v.X-p.originX)*p.scale
	y = p.height - (p.offY + (v.Z-p.originZ)*p.scale)
	return x, y
}

// Preview rasterizes the mesh seen from above and marks each control point.
// Positions are taken in the path's local frame.
func Preview(mesh *road.MeshData, points []road.ControlPoint, opts PreviewOptions) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	lo, hi, ok := previewBounds(mesh, points)
	if !ok {
		return img
	}
	proj := newProjector(lo, hi, opts)

	if mesh != nil && len(mesh.Triangles) > 0 {
		z := vector.NewRasterizer(opts.Width, opts.Height)
		for i := 0; i+2 < len(mesh.Triangles); i += 3 {
			ax, ay := proj.project(mesh.Vertices[mesh.Triangles[i]])
			bx, by := proj.project(mesh.Vertices[mesh.Triangles[i+1]])
			cx, cy := proj.project(mesh.Vertices[mesh.Triangles[i+2]])

			// Overlapping triangles of opposite winding would cancel out.
			if (bx-ax)*(cy-ay)-(by-ay)*(cx-ax) < 0 {
				bx, by, cx, cy = cx, cy, bx, by
			}
			z.MoveTo(ax, ay)
			z.LineTo(bx, by)
			z.LineTo(cx, cy)
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Fill), image.Point{})
	}

	if opts.MarkerSize > 0 && len(points) > 0 {
		z := vector.NewRasterizer(opts.Width, opts.Height)
		half := float32(opts.MarkerSize) / 2
		for _, cp := range points {
			x, y := proj.project(cp.Position)
			z.MoveTo(x-half, y-half)
			z.LineTo(x+half, y-half)
			z.LineTo(x+half, y+half)
			z.LineTo(x-half, y+half)
			z.ClosePath()
		}
		z.Draw(img, img.Bounds(), image.NewUniform(opts.Marker), image.Point{})
	}

	return img
}

func previewBounds(mesh *road.MeshData, points []road.ControlPoint) (lo, hi math.Vec3, ok bool) {
	if mesh != nil && len(mesh.Vertices) > 0 {
		lo, hi = mesh.Bounds()
		ok = true
	}
	for _, cp := range points {
		if !ok {
			lo, hi, ok = cp.Position, cp.Position, true
			continue
		}
		lo = lo.Min(cp.Position)
		hi = hi.Max(cp.Position)
	}
	return lo, hi, ok
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}
