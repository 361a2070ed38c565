package ui

// LabelInRect draws text at rect's top-left, clipped to the context's
// current clip rect. It does not consume layout space itself — callers
// that want label-then-advance use LabelSplit.
func (ctx *Context) LabelInRect(font Font, text string, rect Rect, color uint32) {
	ctx.Painter.DrawLabel(rect, ctx.CurrentClipRect(), font, text)
	_ = color // color comes from the font/theme today; kept for API symmetry with DrawColorRect callers
}

// LabelSplit carves a line-height row off rs and draws text into it,
// returning the carved row so callers can react to its bounds (hover,
// click-to-select rows, etc).
func (ctx *Context) LabelSplit(rs *RectSplit, font Font, text string) Rect {
	row := rs.Split(float32(font.Metrics.LineHeight))
	ctx.LabelInRect(font, text, row, ctx.Theme.ButtonLabelColor)
	return row
}

// Button draws a clickable rect with hover/pressed background states
// and a centered label, and reports whether it was clicked this frame.
func (ctx *Context) Button(label string, font Font, rect Rect) bool {
	id := ctx.GetID(label)
	clicked, hovering, active := ctx.ButtonBehavior(id, rect)

	bg := ctx.Theme.ButtonBgColor
	switch {
	case active:
		bg = ctx.Theme.ButtonPressedBgColor
	case hovering:
		bg = ctx.Theme.ButtonHoverBgColor
	}
	ctx.Painter.DrawColorRect(rect, ctx.CurrentClipRect(), bg)

	labelSize := ctx.Painter.MeasureLabel(font, label)
	textRect := rect.Center(labelSize)
	ctx.Painter.DrawLabel(textRect, ctx.CurrentClipRect(), font, label)

	return clicked
}

// ButtonSplit carves a row off rs of the given height and draws a
// Button into it.
func (ctx *Context) ButtonSplit(rs *RectSplit, label string, font Font, height float32) bool {
	row := rs.Split(height)
	return ctx.Button(label, font, row)
}

// InvisibleButton runs the hover/activate/click state machine over rect
// without drawing anything — the building block widgets_splitter.go
// uses for drag-handle hit regions that have their own bespoke
// rendering. scroll.go calls ButtonBehavior directly for its thumb.
func (ctx *Context) InvisibleButton(label string, rect Rect) (clicked, hovering, active bool) {
	id := ctx.GetID(label)
	return ctx.ButtonBehavior(id, rect)
}
