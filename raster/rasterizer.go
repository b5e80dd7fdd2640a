// Package raster is a software wireframe renderer used for headless frames.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"indexbuffer/math3d"
	"indexbuffer/scene"
)

// DrawLine draws a line on the image from p0 to p1 using a DDA walk.
// Pixels outside the image are skipped.
func DrawLine(img *image.RGBA, p0, p1 image.Point, col color.RGBA) {
	dx := float64(p1.X - p0.X)
	dy := float64(p1.Y - p0.Y)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		if p0.In(img.Rect) {
			img.SetRGBA(p0.X, p0.Y, col)
		}
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(p0.X)
	y := float64(p0.Y)

	for i := 0; i <= int(steps); i++ {
		p := image.Pt(int(math.Round(x)), int(math.Round(y)))
		if p.In(img.Rect) {
			img.SetRGBA(p.X, p.Y, col)
		}
		x += xInc
		y += yInc
	}
}

// Device renders the triangle-strip edges of a mesh into an RGBA image.
type Device struct {
	Background color.RGBA

	img      *image.RGBA
	vertices []scene.Vertex
	indices  []uint32
	frame    scene.PerFrameConstants
	model    scene.PerModelConstants
	frames   int
}

func NewDevice(width, height int, vertices []scene.Vertex, indices []uint32) *Device {
	return &Device{
		Background: color.RGBA{0, 32, 77, 255},
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		vertices:   vertices,
		indices:    indices,
	}
}

// Image returns the image of the last presented frame.
func (d *Device) Image() *image.RGBA { return d.img }

// Frames returns the number of presented frames.
func (d *Device) Frames() int { return d.frames }

func (d *Device) BeginFrame() {
	draw.Draw(d.img, d.img.Rect, &image.Uniform{C: d.Background}, image.Point{}, draw.Src)
}

func (d *Device) SetPerFrame(c scene.PerFrameConstants) { d.frame = c }

func (d *Device) SetPerModel(c scene.PerModelConstants) { d.model = c }

func (d *Device) DrawIndexed(count int) {
	if count > len(d.indices) {
		count = len(d.indices)
	}
	wvp := d.model.World.Mul(d.frame.View).Mul(d.frame.Projection)

	for _, tri := range scene.StripTriangles(d.indices[:count]) {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			p0, ok0 := d.project(wvp, d.vertices[a].Position)
			p1, ok1 := d.project(wvp, d.vertices[b].Position)
			if !ok0 || !ok1 {
				continue
			}
			DrawLine(d.img, p0, p1, rgba(d.vertices[a].Colour))
		}
	}
}

func (d *Device) Present() { d.frames++ }

// project maps a model-space point to pixel coordinates. Points behind the
// near plane are rejected.
func (d *Device) project(wvp math3d.Matrix4x4, v math3d.Vector3) (image.Point, bool) {
	c, w := wvp.TransformCoord(v)
	if w <= 0 || c.Z < 0 {
		return image.Point{}, false
	}
	size := d.img.Rect.Size()
	x := (c.X/w*0.5 + 0.5) * float32(size.X)
	y := (0.5 - c.Y/w*0.5) * float32(size.Y)
	return image.Pt(int(x), int(y)), true
}

func rgba(c scene.Colour) color.RGBA {
	ch := func(f float32) uint8 {
		return uint8(math.Round(float64(min(max(f, 0), 1)) * 255))
	}
	// mesh alpha is unused by the shaders; edges are drawn opaque
	return color.RGBA{ch(c.R), ch(c.G), ch(c.B), 255}
}

// WritePNG encodes img to path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %v: %v", path, err)
	}
	return f.Close()
}
