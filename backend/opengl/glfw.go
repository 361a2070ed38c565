package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	ui "github.com/biv-engine/ui"
)

// GLFWInputAdapter builds a ui.Input snapshot from a GLFW window each
// frame. This is the window-system polling spec.md explicitly places
// outside the core's scope (§1) — the core only ever sees the finished
// Input struct.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *ui.Input
}

// NewGLFWInputAdapter wires GLFW callbacks into a fresh Input snapshot.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	a := &GLFWInputAdapter{
		window: window,
		input:  ui.NewInput(),
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetCharCallback(a.charCallback)
	window.SetMouseButtonCallback(a.mouseButtonCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetCursorPosCallback(a.cursorPosCallback)

	return a
}

// Update refreshes polled (non-callback) state and returns the snapshot
// ready for Context.NewFrame. Call Advance on the returned Input
// yourself after the frame's widgets have read it (neither UI.Begin nor
// UI.End calls it).
func (a *GLFWInputAdapter) Update() *ui.Input {
	x, y := a.window.GetCursorPos()
	a.input.MouseX, a.input.MouseY = float32(x), float32(y)

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press
	a.input.ModAlt = a.window.GetKey(glfw.KeyLeftAlt) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightAlt) == glfw.Press

	return a.input
}

// Input returns the adapter's live snapshot.
func (a *GLFWInputAdapter) Input() *ui.Input { return a.input }

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToUIKey(key)
	if k == ui.KeyNone {
		return
	}
	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.KeysPressed[k] = true
	case glfw.Release:
		delete(a.input.KeysPressed, k)
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.input.CharacterEvents = append(a.input.CharacterEvents, char)
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToUI(button)
	if b < 0 {
		return
	}
	a.input.MouseButtonsPressed[b] = action == glfw.Press
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.MouseWheel = &ui.Vec2{X: float32(xoff), Y: float32(yoff)}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.MouseX, a.input.MouseY = float32(xpos), float32(ypos)
}

func glfwKeyToUIKey(key glfw.Key) ui.Key {
	switch key {
	case glfw.KeyTab:
		return ui.KeyTab
	case glfw.KeyLeft:
		return ui.KeyLeft
	case glfw.KeyRight:
		return ui.KeyRight
	case glfw.KeyUp:
		return ui.KeyUp
	case glfw.KeyDown:
		return ui.KeyDown
	case glfw.KeyPageUp:
		return ui.KeyPageUp
	case glfw.KeyPageDown:
		return ui.KeyPageDown
	case glfw.KeyHome:
		return ui.KeyHome
	case glfw.KeyEnd:
		return ui.KeyEnd
	case glfw.KeyInsert:
		return ui.KeyInsert
	case glfw.KeyDelete:
		return ui.KeyDelete
	case glfw.KeyBackspace:
		return ui.KeyBackspace
	case glfw.KeySpace:
		return ui.KeySpace
	case glfw.KeyEnter:
		return ui.KeyEnter
	case glfw.KeyEscape:
		return ui.KeyEscape
	case glfw.KeyA:
		return ui.KeyA
	case glfw.KeyC:
		return ui.KeyC
	case glfw.KeyS:
		return ui.KeyS
	case glfw.KeyV:
		return ui.KeyV
	case glfw.KeyX:
		return ui.KeyX
	case glfw.KeyY:
		return ui.KeyY
	case glfw.KeyZ:
		return ui.KeyZ
	default:
		return ui.KeyNone
	}
}

func glfwMouseButtonToUI(button glfw.MouseButton) ui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return ui.MouseLeft
	case glfw.MouseButtonRight:
		return ui.MouseRight
	case glfw.MouseButtonMiddle:
		return ui.MouseMiddle
	default:
		return -1
	}
}
