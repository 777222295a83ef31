// Package texture loads and generates road surface textures.
package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	// Decoders for road textures.
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Load decodes an image file in any registered format.
// The result is flipped vertically so V grows up the texture as in GL.
func Load(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%s: empty %s image", path, format)
	}
	return FlipVertical(ImageToRGBA(img)), nil
}

// ImageToRGBA converts any image.Image to *image.RGBA with its origin at 0,0.
func ImageToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical returns a copy of img with its rows reversed.
func FlipVertical(img *image.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	rowSize := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		src := (b.Dy() - 1 - y) * img.Stride
		dst := y * out.Stride
		copy(out.Pix[dst:dst+rowSize], img.Pix[src:src+rowSize])
	}
	return out
}

// LaneStyle describes the procedural road texture.
type LaneStyle struct {
	Size       int // texture side in pixels
	Asphalt    color.RGBA
	Edge       color.RGBA
	Centre     color.RGBA
	EdgeWidth  float32 // fraction of the width per edge line
	DashLength float32 // fraction of the height covered by the centre dash
}

// DefaultLaneStyle returns grey asphalt with white edges and a yellow dash.
func DefaultLaneStyle() LaneStyle {
	return LaneStyle{
		Size:       128,
		Asphalt:    color.RGBA{0x4a, 0x4c, 0x50, 0xff},
		Edge:       color.RGBA{0xee, 0xee, 0xee, 0xff},
		Centre:     color.RGBA{0xf2, 0xc2, 0x1b, 0xff},
		EdgeWidth:  0.05,
		DashLength: 0.5,
	}
}

// Lanes draws a road texture: U runs across the road, V along it, and the
// centre dash repeats once per texture height.
func Lanes(style LaneStyle) *image.RGBA {
	n := max(style.Size, 8)
	img := image.NewRGBA(image.Rect(0, 0, n, n))

	edge := max(1, int(style.EdgeWidth*float32(n)))
	dash := int(style.DashLength * float32(n))
	half := max(1, edge/2)
	mid := n / 2

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := style.Asphalt
			switch {
			case x < edge || x >= n-edge:
				c = style.Edge
			case y < dash && x >= mid-half && x < mid+half:
				c = style.Centre
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
