package scene

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/roadspline/internal/engine/debug"
	"github.com/Faultbox/roadspline/internal/engine/scene/shaders"
	"github.com/Faultbox/roadspline/internal/engine/shader"
	"github.com/Faultbox/roadspline/pkg/math"
)

// LineRenderer draws one batch of coloured GL_LINES.
type LineRenderer struct {
	program     *shader.Program
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewLineRenderer creates an empty batch. The GL context must exist.
func NewLineRenderer() (*LineRenderer, error) {
	program, err := shader.New(shaders.LineVertexShader, shaders.LineFragmentShader)
	if err != nil {
		return nil, fmt.Errorf("line shader: %w", err)
	}

	lr := &LineRenderer{program: program}

	gl.GenVertexArrays(1, &lr.vao)
	gl.BindVertexArray(lr.vao)

	gl.GenBuffers(1, &lr.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)

	stride := int32(debug.FloatsPerLineVertex * 4)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	// Color
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return lr, nil
}

// Upload replaces the batch.
func (lr *LineRenderer) Upload(vertices []debug.LineVertex) {
	lr.vertexCount = int32(len(vertices))
	if len(vertices) == 0 {
		return
	}

	data := debug.Flatten(vertices)
	gl.BindBuffer(gl.ARRAY_BUFFER, lr.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Render draws the batch at model.
func (lr *LineRenderer) Render(viewProj, model math.Mat4) {
	if lr.vertexCount == 0 {
		return
	}

	lr.program.Use()
	lr.program.SetMat4("uViewProj", viewProj)
	lr.program.SetMat4("uModel", model)

	gl.BindVertexArray(lr.vao)
	gl.DrawArrays(gl.LINES, 0, lr.vertexCount)
	gl.BindVertexArray(0)
}

// Destroy releases all resources.
func (lr *LineRenderer) Destroy() {
	if lr.vao != 0 {
		gl.DeleteVertexArrays(1, &lr.vao)
		lr.vao = 0
	}
	if lr.vbo != 0 {
		gl.DeleteBuffers(1, &lr.vbo)
		lr.vbo = 0
	}
	lr.program.Delete()
}
