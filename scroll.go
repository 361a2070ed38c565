package ui

import "math"

// MaxScrollSize is the sentinel content size spec.md §4.8 uses for an
// axis that should never clamp scrolling (effectively unbounded).
var MaxScrollSize = Vec2{X: 65536, Y: 65536}

// roundPx snaps an offset to the nearest integer pixel so scrolled
// content doesn't jitter sub-pixel from frame to frame.
func roundPx(v float32) float32 {
	return float32(math.Round(float64(v)))
}

// BeginScrollArea opens a clipped, scrollable region of viewportRect.
// Callers draw content starting at the returned origin (already offset
// by the current scroll position) and must call EndScrollArea with the
// total content size once they're done, so the scrollbar thumb and
// clamp range can be computed for next frame. state is the
// frame-persistent ScrollableState the context keeps for this area in
// its StateStore, keyed by the id derived from label.
func (ctx *Context) BeginScrollArea(label string, viewportRect Rect) (origin Vec2, state *ScrollableState) {
	id := ctx.GetID(label)
	state = GetState[*ScrollableState](ctx, id, nil)
	if state == nil {
		state = &ScrollableState{}
		SetState(ctx, id, state)
	}

	maxScroll := Vec2{
		X: maxf(0, state.ContentSize.X-viewportRect.Size.X),
		Y: maxf(0, state.ContentSize.Y-viewportRect.Size.Y),
	}
	state.Offset.X = clampf(state.Offset.X, 0, maxScroll.X)
	state.Offset.Y = clampf(state.Offset.Y, 0, maxScroll.Y)

	if ctx.Input != nil && ctx.isHovered(id, viewportRect) && ctx.Input.MouseWheel != nil {
		em := ctx.Theme.FontSize
		state.Offset.Y = clampf(state.Offset.Y+ctx.Input.MouseWheel.Y*em, 0, maxScroll.Y)
		state.Offset.X = clampf(state.Offset.X+ctx.Input.MouseWheel.X*em, 0, maxScroll.X)
	}

	state.Offset.X = roundPx(state.Offset.X)
	state.Offset.Y = roundPx(state.Offset.Y)

	contentRect, _ := splitScrollbarStrip(viewportRect, ctx.Theme.FontSize)
	ctx.PushClipRect(contentRect)
	ctx.scrollStack = append(ctx.scrollStack, state)

	origin = Vec2{
		X: contentRect.Pos.X - state.Offset.X,
		Y: contentRect.Pos.Y - state.Offset.Y,
	}
	return origin, state
}

// splitScrollbarStrip carves a vertical scrollbar strip of width em off
// the right edge of rect, per spec.md §4.8 step 2. Returns the remaining
// content rect and the strip rect, in that order.
func splitScrollbarStrip(rect Rect, em float32) (content, strip Rect) {
	rs := NewRectSplit(rect, SplitHorizontal)
	content = rs.Split(rect.Size.X - em)
	strip = rs.Remaining()
	return content, strip
}

// EndScrollArea closes the scroll area opened by BeginScrollArea,
// records contentSize (the full extent of what was drawn, used to size
// next frame's scrollbar and clamp range), and draws a vertical
// scrollbar thumb when the content overflows the viewport.
func (ctx *Context) EndScrollArea(label string, viewportRect Rect, contentSize Vec2) {
	n := len(ctx.scrollStack)
	if n == 0 {
		return
	}
	state := ctx.scrollStack[n-1]
	ctx.scrollStack = ctx.scrollStack[:n-1]
	state.ContentSize = contentSize
	ctx.PopClipRect()

	if contentSize.Y <= viewportRect.Size.Y {
		return
	}

	_, trackRect := splitScrollbarStrip(viewportRect, ctx.Theme.FontSize)
	thumbH := maxf(24, viewportRect.Size.Y*viewportRect.Size.Y/contentSize.Y)
	maxScrollY := contentSize.Y - viewportRect.Size.Y
	thumbY := trackRect.Pos.Y
	if maxScrollY > 0 {
		thumbY += (trackRect.Size.Y - thumbH) * (state.Offset.Y / maxScrollY)
	}
	thumbRect := Rect{Pos: Vec2{X: trackRect.Pos.X, Y: thumbY}, Size: Vec2{X: trackRect.Size.X, Y: thumbH}}

	thumbID := ctx.GetID(label + "#thumb")
	_, hovering, active := ctx.ButtonBehavior(thumbID, thumbRect)

	if active && ctx.Input != nil {
		dragOffset := ctx.Input.MouseY - ctx.ActiveDragOffset().Y - trackRect.Pos.Y
		ratio := clampf(dragOffset/(trackRect.Size.Y-thumbH), 0, 1)
		state.Offset.Y = roundPx(ratio * maxScrollY)
		state.ThumbDragging = true
	} else {
		state.ThumbDragging = false
	}

	col := ctx.Theme.SplitterColor
	if hovering || active {
		col = ctx.Theme.SplitterHoverColor
	}
	ctx.Painter.DrawColorRect(thumbRect, InvalidClipIndex, col)
}
