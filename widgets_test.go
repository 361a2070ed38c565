package ui

import "testing"

func TestButtonReportsClickOnPressThenRelease(t *testing.T) {
	ctx := newTestContext()
	rect := NewRect(0, 0, 60, 20)
	font := testFont()

	input := NewInput()
	input.MouseX, input.MouseY = 10, 10
	input.MouseButtonsPressed[MouseLeft] = true
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	if ctx.Button("OK", font, rect) {
		t.Error("press frame should not itself report a click")
	}

	input.Advance()
	input.MouseButtonsPressed[MouseLeft] = false
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	if !ctx.Button("OK", font, rect) {
		t.Error("releasing over the button after pressing it should report a click")
	}
}

func TestButtonNoClickWithoutInput(t *testing.T) {
	ctx := newTestContext()
	ctx.NewFrame(NewInput(), Vec2{X: 800, Y: 600})
	if ctx.Button("OK", testFont(), NewRect(0, 0, 60, 20)) {
		t.Error("a frame with no press should never report a click")
	}
}

func TestLabelSplitAdvancesCursorByLineHeight(t *testing.T) {
	ctx := newTestContext()
	ctx.NewFrame(NewInput(), Vec2{X: 800, Y: 600})
	font := testFont()

	rs := NewRectSplit(NewRect(0, 0, 200, 200), SplitVertical)
	row := ctx.LabelSplit(&rs, font, "hello")

	if row.Size.Y != float32(font.Metrics.LineHeight) {
		t.Errorf("label row height = %v, want %v", row.Size.Y, font.Metrics.LineHeight)
	}
	if row.Pos.Y != 0 {
		t.Errorf("first split row should start at y=0, got %v", row.Pos.Y)
	}
}

func TestSplitterXDragUpdatesSizeWithinBounds(t *testing.T) {
	ctx := newTestContext()
	container := NewRect(0, 0, 400, 300)

	input := NewInput()
	input.MouseX, input.MouseY = 99, 50 // over the handle at size=100
	input.MouseButtonsPressed[MouseLeft] = true
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	size := ctx.SplitterX("splitter", container, 100, 50, 350)
	if size != 99 {
		t.Errorf("press frame should already track MouseX, got %v want 99", size)
	}

	input.MouseX = 180
	input.Advance()
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	size = ctx.SplitterX("splitter", container, size, 50, 350)
	if size != 180 {
		t.Errorf("dragging the active splitter should track MouseX, got %v want 180", size)
	}
}

func TestSplitterXClampsToMinMax(t *testing.T) {
	ctx := newTestContext()
	container := NewRect(0, 0, 400, 300)

	input := NewInput()
	input.MouseX, input.MouseY = 99, 50
	input.MouseButtonsPressed[MouseLeft] = true
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	size := ctx.SplitterX("splitter", container, 100, 50, 350)

	input.MouseX = 10 // below minSize
	input.Advance()
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	size = ctx.SplitterX("splitter", container, size, 50, 350)
	if size != 50 {
		t.Errorf("size below minSize should clamp to 50, got %v", size)
	}
}
