package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"indexbuffer/raster"
	"indexbuffer/scene"
)

const title = "Index Buffers"

var (
	width    = flag.Int("width", 800, "viewport width")
	height   = flag.Int("height", 600, "viewport height")
	vsync    = flag.Bool("vsync", false, "wait for vertical sync")
	snapshot = flag.String("snapshot", "", "render headless to this PNG file and exit")
	frames   = flag.Int("frames", 60, "frames to simulate before a -snapshot")
)

func main() {
	flag.Parse()

	if *snapshot != "" {
		if err := renderSnapshot(*snapshot, *frames); err != nil {
			log.Fatalln("snapshot:", err)
		}
		return
	}

	runtime.LockOSThread()

	if err := glfw.Init(); err != nil {
		log.Fatalln("failed to initialize glfw:", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(*width, *height, title, nil, nil)
	if err != nil {
		log.Fatalln("failed to create window:", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		log.Fatalln("failed to initialize gl:", err)
	}

	version := gl.GoStr(gl.GetString(gl.VERSION))
	fmt.Println("OpenGL version", version)

	if *vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	dev, err := newGLDevice(window, scene.CubeVertices, scene.CubeIndices)
	if err != nil {
		log.Fatalln("failed to create device:", err)
	}
	defer dev.Release()

	s := scene.New(title, *width, *height)
	win := glfwWindow{window}

	lastFrameTime := glfw.GetTime()
	for !window.ShouldClose() {
		currentTime := glfw.GetTime()
		frameTime := float32(currentTime - lastFrameTime)
		lastFrameTime = currentTime

		s.Update(frameTime, win)
		s.Render(dev)

		glfw.PollEvents()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}
	}
}

// renderSnapshot runs the scene for n fixed 60Hz frames with W and A held,
// then writes the last frame from the software rasterizer.
func renderSnapshot(path string, n int) error {
	s := scene.New(title, *width, *height)
	dev := raster.NewDevice(*width, *height, scene.CubeVertices, scene.CubeIndices)
	win := scriptedWindow{held: map[scene.Key]bool{scene.KeyW: true, scene.KeyA: true}}

	for i := 0; i < n; i++ {
		s.Update(1.0/60, win)
		s.Render(dev)
	}
	if err := raster.WritePNG(path, dev.Image()); err != nil {
		return err
	}
	log.Printf("wrote %s after %d frames (rotation %.2f, %.2f rad)", path, dev.Frames(), s.RotationX, s.RotationY)
	return nil
}

// glfwWindow adapts a glfw window to scene.Window.
type glfwWindow struct {
	*glfw.Window
}

var glfwKeys = map[scene.Key]glfw.Key{
	scene.KeyW: glfw.KeyW,
	scene.KeyS: glfw.KeyS,
	scene.KeyA: glfw.KeyA,
	scene.KeyD: glfw.KeyD,
}

func (w glfwWindow) KeyHeld(k scene.Key) bool {
	key, ok := glfwKeys[k]
	return ok && w.GetKey(key) == glfw.Press
}

type scriptedWindow struct {
	held map[scene.Key]bool
}

func (w scriptedWindow) KeyHeld(k scene.Key) bool { return w.held[k] }

func (w scriptedWindow) SetTitle(title string) { log.Println(title) }
