package ui

// SplitterX is a vertical drag handle that divides a horizontal space
// in two: drag left/right to resize. size is the current width of the
// left pane; SplitterX returns the (possibly updated) width after
// accounting for this frame's drag. thickness follows the theme's
// splitter sizing, widening under hover/drag for easier grabbing.
func (ctx *Context) SplitterX(label string, containerRect Rect, size float32, minSize, maxSize float32) float32 {
	thickness := ctx.Theme.SplitterThickness
	handleRect := Rect{
		Pos:  Vec2{X: containerRect.Pos.X + size - thickness*0.5, Y: containerRect.Pos.Y},
		Size: Vec2{X: thickness, Y: containerRect.Size.Y},
	}
	// Widen the hit region so the handle is easy to grab without widening
	// the drawn line, mirroring how the theme differentiates hover vs rest.
	hitRect := handleRect.Outset(Vec2{X: ctx.Theme.SplitterHoverThickness, Y: 0})

	_, hovering, active := ctx.InvisibleButton(label, hitRect)

	if active && ctx.Input != nil {
		size = ctx.Input.MouseX - containerRect.Pos.X
	}
	size = clampf(size, minSize, maxSize)

	col := ctx.Theme.SplitterColor
	drawThickness := thickness
	if hovering || active {
		col = ctx.Theme.SplitterHoverColor
		drawThickness = ctx.Theme.SplitterHoverThickness
	}
	handleRect.Size.X = drawThickness
	handleRect.Pos.X = containerRect.Pos.X + size - drawThickness*0.5
	ctx.Painter.DrawColorRect(handleRect, ctx.CurrentClipRect(), col)

	return size
}

// SplitterY is SplitterX's horizontal-drag-handle twin, dividing a
// vertical space into a top pane of height size and a bottom remainder.
func (ctx *Context) SplitterY(label string, containerRect Rect, size float32, minSize, maxSize float32) float32 {
	thickness := ctx.Theme.SplitterThickness
	handleRect := Rect{
		Pos:  Vec2{X: containerRect.Pos.X, Y: containerRect.Pos.Y + size - thickness*0.5},
		Size: Vec2{X: containerRect.Size.X, Y: thickness},
	}
	hitRect := handleRect.Outset(Vec2{X: 0, Y: ctx.Theme.SplitterHoverThickness})

	_, hovering, active := ctx.InvisibleButton(label, hitRect)

	if active && ctx.Input != nil {
		size = ctx.Input.MouseY - containerRect.Pos.Y
	}
	size = clampf(size, minSize, maxSize)

	col := ctx.Theme.SplitterColor
	drawThickness := thickness
	if hovering || active {
		col = ctx.Theme.SplitterHoverColor
		drawThickness = ctx.Theme.SplitterHoverThickness
	}
	handleRect.Size.Y = drawThickness
	handleRect.Pos.Y = containerRect.Pos.Y + size - drawThickness*0.5
	ctx.Painter.DrawColorRect(handleRect, ctx.CurrentClipRect(), col)

	return size
}
