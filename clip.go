package ui

// PushClipRect registers rect with the Painter and pushes its clip
// index onto the context's clip stack; subsequent draws use
// CurrentClipRect until PopClipRect. Returns the pushed index so a
// caller that wants it directly (e.g. to hand to a primitive draw call
// issued outside the usual widget helpers) doesn't have to call
// CurrentClipRect right back.
func (ctx *Context) PushClipRect(rect Rect) uint32 {
	assertf(ctx.Debug, len(ctx.clipStack) < UIMaxDepth, "clip stack depth exceeds %d", UIMaxDepth)
	idx := ctx.Painter.RegisterClipRect(rect)
	ctx.clipStack = append(ctx.clipStack, idx)
	return idx
}

// PopClipRect removes the most recently pushed clip rect.
func (ctx *Context) PopClipRect() {
	n := len(ctx.clipStack)
	if n == 0 {
		return
	}
	ctx.clipStack = ctx.clipStack[:n-1]
}

// CurrentClipRect returns the clip index widgets should draw with:
// the top of the stack, or InvalidClipIndex (no clipping) if the stack
// is empty. spec.md §4.5 treats an empty stack as "draw unclipped"
// rather than an error.
func (ctx *Context) CurrentClipRect() uint32 {
	n := len(ctx.clipStack)
	if n == 0 {
		return InvalidClipIndex
	}
	return ctx.clipStack[n-1]
}
