package scene

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roadspline/internal/engine/lighting"
	"github.com/Faultbox/roadspline/internal/engine/road"
	"github.com/Faultbox/roadspline/internal/engine/scene/shaders"
	"github.com/Faultbox/roadspline/internal/engine/shader"
	"github.com/Faultbox/roadspline/pkg/math"
)

// RibbonRenderer draws a road mesh.
type RibbonRenderer struct {
	program *shader.Program

	vao uint32
	vbo uint32
	ebo uint32

	indexCount int32
	texture    uint32

	// Color is used when no texture is set.
	Color [3]float32
}

// NewRibbonRenderer compiles the ribbon shader. The GL context must exist.
func NewRibbonRenderer() (*RibbonRenderer, error) {
	program, err := shader.New(shaders.RibbonVertexShader, shaders.RibbonFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("ribbon shader: %w", err)
	}

	rr := &RibbonRenderer{
		program: program,
		Color:   [3]float32{0.55, 0.56, 0.58},
	}

	gl.GenVertexArrays(1, &rr.vao)
	gl.BindVertexArray(rr.vao)

	gl.GenBuffers(1, &rr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, rr.vbo)

	stride := int32(road.FloatsPerVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)
	// UV
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)
	gl.EnableVertexAttribArray(2)

	gl.GenBuffers(1, &rr.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rr.ebo)

	gl.BindVertexArray(0)
	return rr, nil
}

// Upload replaces the GPU copy of the mesh. A nil or empty mesh draws nothing.
func (rr *RibbonRenderer) Upload(mesh *road.MeshData) {
	if mesh == nil || len(mesh.Triangles) == 0 {
		rr.indexCount = 0
		return
	}

	vertices := mesh.Interleaved()

	gl.BindVertexArray(rr.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, rr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, rr.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Triangles)*4, unsafe.Pointer(&mesh.Triangles[0]), gl.DYNAMIC_DRAW)
	gl.BindVertexArray(0)

	rr.indexCount = int32(len(mesh.Triangles))
}

// SetTexture uploads img as the road surface, replacing any previous one.
// A nil image falls back to Color.
func (rr *RibbonRenderer) SetTexture(img *image.RGBA) {
	if rr.texture != 0 {
		gl.DeleteTextures(1, &rr.texture)
		rr.texture = 0
	}
	if img == nil || len(img.Pix) == 0 {
		return
	}

	gl.GenTextures(1, &rr.texture)
	gl.BindTexture(gl.TEXTURE_2D, rr.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Bounds().Dx()), int32(img.Bounds().Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, unsafe.Pointer(&img.Pix[0]))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Render draws the ribbon at model under the given sun.
func (rr *RibbonRenderer) Render(viewProj, model math.Mat4, sun lighting.Sun, wireframe bool) {
	if rr.indexCount == 0 {
		return
	}

	p := rr.program
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetMat4("uModel", model)
	p.SetVec3("uLightDir", sun.Direction())
	p.SetColor("uAmbient", sun.Ambient)
	p.SetColor("uDiffuse", sun.Diffuse)
	p.SetColor("uColor", rr.Color)
	p.SetBool("uUseTexture", rr.texture != 0)

	if rr.texture != 0 {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, rr.texture)
		p.SetInt("uTexture", 0)
	}

	if wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	gl.BindVertexArray(rr.vao)
	gl.DrawElements(gl.TRIANGLES, rr.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (rr *RibbonRenderer) Destroy() {
	rr.SetTexture(nil)
	if rr.vao != 0 {
		gl.DeleteVertexArrays(1, &rr.vao)
		rr.vao = 0
	}
	if rr.vbo != 0 {
		gl.DeleteBuffers(1, &rr.vbo)
		rr.vbo = 0
	}
	if rr.ebo != 0 {
		gl.DeleteBuffers(1, &rr.ebo)
		rr.ebo = 0
	}
	rr.program.Delete()
}
