// Package scene holds the state of the rotating cube between frames and
// drives a Device once per frame.
package scene

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"indexbuffer/math3d"
)

const (
	FieldOfView       = math.Pi / 3
	NearClip          = 0.1
	FarClip           = 100
	FPSUpdateInterval = 0.5 // seconds
)

var (
	// CameraPosition places the camera in front of the cube, looking down +Z.
	CameraPosition = math3d.V3(0, 0, -5)

	// RotationSpeed is in radians per second.
	RotationSpeed = mgl32.DegToRad(120)
)

// Scene is the frame context owned by the render loop.
type Scene struct {
	Title string

	// Cube is the world matrix of the cube, rebuilt every Update.
	Cube     math3d.Matrix4x4
	PerFrame PerFrameConstants
	PerModel PerModelConstants

	RotationX, RotationY float32

	aspect float32
	timer  FrameTimer
}

// New returns a scene for a viewport of the given size.
func New(title string, width, height int) *Scene {
	s := &Scene{
		Title: title,
		timer: FrameTimer{Interval: FPSUpdateInterval},
	}
	s.Cube.MakeIdentity()
	s.Resize(width, height)
	return s
}

// Resize updates the aspect ratio used for the projection.
func (s *Scene) Resize(width, height int) {
	if height <= 0 {
		height = 1
	}
	s.aspect = float32(width) / float32(height)
}

// Update advances the scene by frameTime seconds.
func (s *Scene) Update(frameTime float32, win Window) {
	s.PerFrame.View = math3d.InverseAffine(math3d.MatrixTranslation(CameraPosition))
	s.PerFrame.Projection = math3d.MatrixPerspectiveFovLH(FieldOfView, s.aspect, NearClip, FarClip)

	step := RotationSpeed * frameTime
	if win.KeyHeld(KeyW) {
		s.RotationX += step
	}
	if win.KeyHeld(KeyS) {
		s.RotationX -= step
	}
	if win.KeyHeld(KeyA) {
		s.RotationY += step
	}
	if win.KeyHeld(KeyD) {
		s.RotationY -= step
	}
	s.Cube = math3d.MatrixRotationX(s.RotationX).Mul(math3d.MatrixRotationY(s.RotationY))

	if avg, ok := s.timer.Tick(frameTime); ok {
		win.SetTitle(FrameTitle(s.Title, avg))
	}
}

// Render draws the current frame on dev.
func (s *Scene) Render(dev Device) {
	dev.BeginFrame()
	dev.SetPerFrame(s.PerFrame)

	s.PerModel.World = s.Cube
	dev.SetPerModel(s.PerModel)
	dev.DrawIndexed(len(CubeIndices))

	dev.Present()
}

// FrameTitle formats the window title with the average frame time in
// milliseconds and the FPS rounded to the nearest integer.
func FrameTitle(title string, avgFrameTime float32) string {
	fps := int(1/avgFrameTime + 0.5)
	return fmt.Sprintf("%s - Frame Time: %.2fms, FPS: %d", title, avgFrameTime*1000, fps)
}
