// Example demonstrates a minimal window with a panel, a splitter and a
// button, driven through the core UI directly (no scene/editor
// scaffolding).
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	uic "github.com/biv-engine/ui"
	"github.com/biv-engine/ui/backend/opengl"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "ui example"

	glyphSlotSize = 32
	glyphGridX    = 16
	glyphGridY    = 16
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, glyphSlotSize, glyphGridX, glyphGridY)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	inputAdapter := opengl.NewGLFWInputAdapter(window)

	cache := uic.NewGlyphCache(glyphSlotSize, glyphGridX, glyphGridY)
	shaper := &uic.BuiltinShaper{AdvancePx: 8 * 64, LineHeight: 16}
	theme := uic.DefaultTheme()

	vertexArena := make([]byte, 1<<20)
	instance := uic.New(renderer, nil, vertexArena, 1<<16, cache, shaper, theme)
	instance.Context().Painter.GlyphAtlasTexture = renderer.GlyphAtlasTexture()

	font := uic.Font{Handle: 1, SizePx: 16, Metrics: uic.FontMetrics{Ascender: 12, Descender: -4, LineHeight: 16}}

	clickCount := 0
	splitterX := float32(300)
	dockTree := uic.NewDockTree()

	for !window.ShouldClose() {
		glfw.PollEvents()
		input := inputAdapter.Update()

		w, h := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		displaySize := uic.Vec2{X: float32(w), Y: float32(h)}
		ctx := instance.Begin(input, displaySize)

		root := uic.NewRect(0, 0, displaySize.X, displaySize.Y)
		splitterX = ctx.SplitterX("main-splitter", root, splitterX, 120, displaySize.X-120)

		sidebar := uic.NewRect(root.Pos.X, root.Pos.Y, splitterX, root.Size.Y)
		panel := ctx.BeginPanel(sidebar, uic.SplitVertical)
		ctx.Painter.DrawColorRect(sidebar, ctx.CurrentClipRect(), ctx.Theme.PanelBgColor)
		ctx.LabelSplit(panel, font, "Example Panel")
		if ctx.ButtonSplit(panel, fmt.Sprintf("Click me (%d)", clickCount), font, 28) {
			clickCount++
		}
		ctx.EndPanel()

		content := uic.NewRect(splitterX, root.Pos.Y, root.Size.X-splitterX, root.Size.Y)
		ctx.BeginDocking(dockTree, content)
		if active, rect := ctx.TabView(dockTree, "Viewport", font); active {
			ctx.Painter.DrawColorRect(rect, ctx.CurrentClipRect(), uic.RGBA(40, 40, 44, 255))
		}
		if active, rect := ctx.TabView(dockTree, "Properties", font); active {
			ctx.Painter.DrawColorRect(rect, ctx.CurrentClipRect(), uic.RGBA(44, 40, 40, 255))
		}
		ctx.EndDocking(dockTree)

		if err := instance.End(); err != nil {
			return fmt.Errorf("ui render: %w", err)
		}
		input.Advance()

		window.SwapBuffers()
	}

	return nil
}
