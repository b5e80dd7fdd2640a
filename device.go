package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"indexbuffer/math3d"
	"indexbuffer/scene"
)

// glDevice draws an indexed triangle strip with per-frame and per-model
// matrices uploaded as uniforms.
type glDevice struct {
	window *glfw.Window

	program       uint32
	vao, vbo, ebo uint32

	viewUniform       int32
	projectionUniform int32
	worldUniform      int32
}

func newGLDevice(window *glfw.Window, vertices []scene.Vertex, indices []uint32) (*glDevice, error) {
	d := &glDevice{window: window}

	program, err := newProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return nil, err
	}
	d.program = program

	d.viewUniform = gl.GetUniformLocation(program, gl.Str("view\x00"))
	d.projectionUniform = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	d.worldUniform = gl.GetUniformLocation(program, gl.Str("world\x00"))

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	data := scene.VertexData(vertices)
	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)

	gl.GenBuffers(1, &d.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// input layout
	layout := []struct {
		name   string
		size   int32
		offset int
	}{
		{"Position", 3, scene.PositionOffset},
		{"Colour", 4, scene.ColourOffset},
	}
	for _, attr := range layout {
		loc := gl.GetAttribLocation(program, gl.Str(attr.name+"\x00"))
		if loc < 0 {
			d.Release()
			return nil, fmt.Errorf("error creating input layout: no attribute %q", attr.name)
		}
		gl.EnableVertexAttribArray(uint32(loc))
		gl.VertexAttribPointerWithOffset(uint32(loc), attr.size, gl.FLOAT, false, scene.VertexStride, uintptr(attr.offset))
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	// both sides of every triangle are visible
	gl.Disable(gl.CULL_FACE)
	gl.ClearColor(0.0, 0.125, 0.3, 1.0)

	return d, nil
}

func (d *glDevice) BeginFrame() {
	w, h := d.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.UseProgram(d.program)
	gl.BindVertexArray(d.vao)
}

func (d *glDevice) SetPerFrame(c scene.PerFrameConstants) {
	uploadMatrix(d.viewUniform, c.View)
	uploadMatrix(d.projectionUniform, c.Projection)
}

func (d *glDevice) SetPerModel(c scene.PerModelConstants) {
	uploadMatrix(d.worldUniform, c.World)
}

func (d *glDevice) DrawIndexed(count int) {
	gl.DrawElements(gl.TRIANGLE_STRIP, int32(count), gl.UNSIGNED_INT, nil)
}

func (d *glDevice) Present() {
	d.window.SwapBuffers()
}

// Release deletes every GL object the device created. Safe to call on a
// partially constructed device.
func (d *glDevice) Release() {
	if d.ebo != 0 {
		gl.DeleteBuffers(1, &d.ebo)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.program != 0 {
		gl.DeleteProgram(d.program)
	}
	*d = glDevice{window: d.window}
}

func uploadMatrix(location int32, m math3d.Matrix4x4) {
	mat := m.Mat4()
	gl.UniformMatrix4fv(location, 1, false, &mat[0])
}
