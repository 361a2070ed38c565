package ui

// MouseButton indexes the fixed 5-button mouse state array spec.md §6
// describes (left/right/middle plus two extra side buttons).
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
	MouseButton4
	MouseButton5
	mouseButtonCount
)

// Key is a virtual key code. Values are small and stable within one
// process; the application's window-system backend maps its own key
// codes onto these before handing the Input snapshot to the core.
type Key int

const (
	KeyNone Key = iota
	KeyTab
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
	KeyDelete
	KeyBackspace
	KeySpace
	KeyEnter
	KeyEscape
	KeyA
	KeyC
	KeyS
	KeyV
	KeyX
	KeyY
	KeyZ
	keyCount
)

// Input is the per-frame input snapshot the host application builds
// and hands to Context.NewFrame. The core never polls a window system
// directly (out of scope per spec.md §1); it only reads this struct.
type Input struct {
	MouseX, MouseY float32

	// MouseButtonsPressed is this frame's raw down/up state, index by
	// MouseButton. MouseButtonsPressedLastFrame is the same snapshot from
	// the previous frame, carried so edge detection (just-pressed,
	// just-released) doesn't need an internal shadow copy.
	MouseButtonsPressed          [5]bool
	MouseButtonsPressedLastFrame [5]bool

	// MouseWheel is nil when no wheel event occurred this frame.
	MouseWheel *Vec2

	// CharacterEvents holds Unicode text input (IME/composition excluded,
	// per spec.md's non-goals) typed this frame.
	CharacterEvents []rune

	// KeysPressed maps every key currently held down to true. Absent or
	// false means up. A map (rather than a fixed array) matches the
	// external-interface shape spec.md §6 describes for keyboard state.
	KeysPressed map[Key]bool

	ModCtrl  bool
	ModShift bool
	ModAlt   bool
}

// NewInput returns an empty snapshot ready to be populated by a backend.
func NewInput() *Input {
	return &Input{
		KeysPressed: make(map[Key]bool, keyCount),
	}
}

// Advance copies the current button state into the "last frame" slots
// and clears single-frame events. Call this once per frame, after the
// frame's widgets have read the snapshot (after UI.End or
// Context.EndFrame) and before writing the next frame's button/key/char
// state, so button-edge detection has something to compare against.
func (in *Input) Advance() {
	in.MouseButtonsPressedLastFrame = in.MouseButtonsPressed
	in.MouseWheel = nil
	in.CharacterEvents = in.CharacterEvents[:0]
}

func (in *Input) MouseDown(b MouseButton) bool {
	return in.MouseButtonsPressed[b]
}

func (in *Input) MouseJustPressed(b MouseButton) bool {
	return in.MouseButtonsPressed[b] && !in.MouseButtonsPressedLastFrame[b]
}

func (in *Input) MouseJustReleased(b MouseButton) bool {
	return !in.MouseButtonsPressed[b] && in.MouseButtonsPressedLastFrame[b]
}

func (in *Input) KeyDown(k Key) bool {
	return in.KeysPressed[k]
}
