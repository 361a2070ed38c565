package ui

// UIMaxDepth bounds the nested clip-rect stack (checked in PushClipRect).
// Panics in debug builds if exceeded; see assertf.
const UIMaxDepth = 128

// Context carries one frame's worth of UI state: identity, focus and
// activation, the clip-rect stack, and a layout cursor. It is reused
// frame to frame — NewFrame resets the per-frame parts (including the
// id generation counter gen) and leaves persistent state (focusedID,
// activeID, stateStore) alone.
type Context struct {
	Painter *Painter
	Theme   Theme
	Input   *Input
	Debug   bool // when true, assertf panics instead of logging

	stateStore StateStore

	idStack []ID
	gen     uint64

	DisplaySize Vec2
	FrameCount  uint64

	focusedID ID // has keyboard focus, persists across frames
	activeID  ID // currently being interacted with (e.g. mouse held down)
	hoveredID ID // under the cursor this frame

	// activeDragOffset is the cursor-to-widget-origin offset captured the
	// instant a widget became active, so drag-style widgets (splitters,
	// scrollbar thumbs, dock tab reordering) can compute a stable delta
	// without re-deriving it every frame.
	activeDragOffset Vec2

	cursor Vec2

	clipStack []uint32 // indices returned by Painter.RegisterClipRect

	scrollStack []*ScrollableState

	focusPath *FocusPath
}

// NewContext builds a Context bound to one Painter and theme. The
// Painter is reused across frames; call Painter.Reset yourself each
// frame before Context.NewFrame if you're managing the arena directly.
func NewContext(painter *Painter, theme Theme) *Context {
	return &Context{
		Painter:    painter,
		Theme:      theme,
		stateStore: make(MapStateStore),
		idStack:    make([]ID, 0, 32),
		clipStack:  make([]uint32, 0, 16),
		focusPath:  NewFocusPath(),
	}
}

// SetStateStore overrides the widget state store (default is an
// in-memory map). Scroll areas keep their ScrollableState here; dock
// layout is persisted separately through DockTree.Save and Load.
func (ctx *Context) SetStateStore(store StateStore) {
	ctx.stateStore = store
}

// NewFrame prepares the context for a new frame: advances the global
// FrameStore generation, clears per-frame stacks, and records the input
// snapshot and display size widgets will read this frame.
func (ctx *Context) NewFrame(input *Input, displaySize Vec2) {
	NextFrame()
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.gen = 0
	ctx.idStack = ctx.idStack[:0]
	ctx.clipStack = ctx.clipStack[:0]
	ctx.scrollStack = ctx.scrollStack[:0]
	ctx.cursor = Vec2{}
	ctx.hoveredID = 0
}

// EndFrame clears per-frame activation bookkeeping that must not leak
// into the next frame's hover test, and drops an active widget whose
// mouse button was released anywhere this frame (belt-and-braces: the
// normal release path in ButtonBehavior already does this for widgets
// still drawn, but a widget that stopped being drawn mid-drag must not
// stay latched active forever).
func (ctx *Context) EndFrame() {
	if ctx.activeID != 0 && ctx.Input != nil && !ctx.Input.MouseDown(MouseLeft) {
		ctx.activeID = 0
	}
	assertf(ctx.Debug, len(ctx.clipStack) == 0, "clip stack not balanced at end of frame: depth %d", len(ctx.clipStack))
	assertf(ctx.Debug, len(ctx.scrollStack) == 0, "scroll stack not balanced at end of frame: depth %d", len(ctx.scrollStack))
}

func (ctx *Context) isHovered(id ID, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	return rect.Contains(Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY})
}

// IsHovered reports whether rect contains the mouse cursor this frame.
// It does not consult id; the parameter exists so call sites read the
// same way as the other widget-identity-aware predicates.
func (ctx *Context) IsHovered(id ID, rect Rect) bool {
	return ctx.isHovered(id, rect)
}

// IsFocused reports whether id currently holds keyboard focus.
func (ctx *Context) IsFocused(id ID) bool { return ctx.focusedID == id }

// SetFocused gives id keyboard focus.
func (ctx *Context) SetFocused(id ID) { ctx.focusedID = id }

// ClearFocus removes keyboard focus from whatever currently holds it.
func (ctx *Context) ClearFocus() { ctx.focusedID = 0 }

// ActiveID returns the id currently capturing mouse interaction, or 0.
func (ctx *Context) ActiveID() ID { return ctx.activeID }

// HoveredID returns the id the hit-testing pass most recently marked
// hovered, or 0. Populated by ButtonBehavior and friends as widgets
// call them in draw order, so it reflects whichever widget claimed
// hover last — callers that need topmost-wins stacking should draw
// front-to-back.
func (ctx *Context) HoveredID() ID { return ctx.hoveredID }

// ButtonBehavior runs the three-step hover/activate/click state machine
// every pointer-driven widget (button, splitter, scrollbar thumb, tab)
// is built on:
//
//  1. hover: rect contains the mouse and no other widget is active.
//  2. activate: on mouse-down while hovered and nothing else is active,
//     this id becomes active and captures the mouse.
//  3. click: while active, releasing the mouse over rect fires a click;
//     releasing anywhere clears active.
//
// Returns (clicked, hovering, active) so callers can render the
// appropriate bg/hover/pressed color without re-deriving state.
func (ctx *Context) ButtonBehavior(id ID, rect Rect) (clicked, hovering, active bool) {
	if ctx.Input == nil {
		return false, false, false
	}

	hovering = ctx.isHovered(id, rect) && (ctx.activeID == 0 || ctx.activeID == id)
	if hovering {
		ctx.hoveredID = id
	}

	if ctx.activeID == id {
		active = true
		if ctx.Input.MouseJustReleased(MouseLeft) {
			if hovering {
				clicked = true
			}
			ctx.activeID = 0
			active = false
		}
		return clicked, hovering, active
	}

	if hovering && ctx.activeID == 0 && ctx.Input.MouseJustPressed(MouseLeft) {
		ctx.activeID = id
		ctx.activeDragOffset = Vec2{X: ctx.Input.MouseX - rect.Pos.X, Y: ctx.Input.MouseY - rect.Pos.Y}
		ctx.SetFocused(id)
		active = true
	}

	return clicked, hovering, active
}

// ActiveDragOffset returns the cursor-to-rect-origin offset captured
// the instant the currently active widget was activated. Only
// meaningful while ActiveID() is non-zero.
func (ctx *Context) ActiveDragOffset() Vec2 { return ctx.activeDragOffset }

// SetCursorPos stores a layout cursor position for the caller. No
// widget in this package reads it; NewFrame resets it to the origin.
func (ctx *Context) SetCursorPos(pos Vec2) { ctx.cursor = pos }

// CursorPos returns the position last stored by SetCursorPos.
func (ctx *Context) CursorPos() Vec2 { return ctx.cursor }
