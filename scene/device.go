package scene

import "indexbuffer/math3d"

// PerFrameConstants are the camera matrices sent to the GPU once per frame.
type PerFrameConstants struct {
	View       math3d.Matrix4x4
	Projection math3d.Matrix4x4
}

// PerModelConstants position a single model and may be sent several times
// per frame.
type PerModelConstants struct {
	World math3d.Matrix4x4
}

// Device uploads constants and draws the cube geometry it was created with.
type Device interface {
	// BeginFrame clears the render targets.
	BeginFrame()
	SetPerFrame(c PerFrameConstants)
	SetPerModel(c PerModelConstants)
	// DrawIndexed draws count indices of the bound triangle strip.
	DrawIndexed(count int)
	Present()
}

type Key int

const (
	KeyW Key = iota
	KeyS
	KeyA
	KeyD
)

// Window is the part of the platform window the scene update needs.
type Window interface {
	KeyHeld(k Key) bool
	SetTitle(title string)
}
