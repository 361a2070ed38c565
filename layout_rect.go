package ui

// BeginPanel pushes rect as both the clip rect and the layout cursor
// for a region of the screen, returning a RectSplit the caller carves
// up with Split/Remaining calls (spec.md §4.6). Pair with EndPanel.
func (ctx *Context) BeginPanel(rect Rect, axis SplitAxis) *RectSplit {
	ctx.PushClipRect(rect)
	rs := NewRectSplit(rect, axis)
	return &rs
}

// EndPanel pops the clip rect BeginPanel pushed.
func (ctx *Context) EndPanel() {
	ctx.PopClipRect()
}

// Row carves a fixed-height horizontal strip off the top of rs and
// returns it, advancing rs in place — the common "next widget's row"
// pattern atop RectSplit for a SplitVertical (top-to-bottom) layout.
func Row(rs *RectSplit, height float32) Rect {
	return rs.Split(height)
}

// Column carves a fixed-width vertical strip off the left of rs —
// the SplitHorizontal (left-to-right) analogue of Row.
func Column(rs *RectSplit, width float32) Rect {
	return rs.Split(width)
}
