package ui

import "testing"

func TestRectSplitTop(t *testing.T) {
	r := NewRect(0, 0, 100, 200)
	top := r.SplitTop(50)

	if top.Pos.Y != 0 || top.Size.Y != 50 || top.Size.X != 100 {
		t.Errorf("SplitTop returned %+v, want {0,0} {100,50}", top)
	}
	if r.Pos.Y != 50 || r.Size.Y != 150 {
		t.Errorf("remainder is %+v, want Pos.Y=50 Size.Y=150", r)
	}
}

func TestRectSplitTopOversized(t *testing.T) {
	r := NewRect(0, 0, 100, 40)
	out := r.SplitTop(100)

	if out.Size.Y != 40 {
		t.Errorf("oversized split should clamp to full height, got %v", out.Size.Y)
	}
	if r.Size.Y != 0 {
		t.Errorf("remainder should be empty, got %+v", r)
	}
}

func TestRectSplitLeftRight(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	left := r.SplitLeft(30)
	if left.Size.X != 30 || r.Size.X != 70 || r.Pos.X != 30 {
		t.Errorf("SplitLeft: got left=%+v remainder=%+v", left, r)
	}

	r2 := NewRect(0, 0, 100, 100)
	right := r2.SplitRight(30)
	if right.Pos.X != 70 || right.Size.X != 30 || r2.Size.X != 70 {
		t.Errorf("SplitRight: got right=%+v remainder=%+v", right, r2)
	}
}

func TestRectSplitCursor(t *testing.T) {
	rs := NewRectSplit(NewRect(0, 0, 200, 300), SplitVertical)

	row1 := rs.Split(20)
	row2 := rs.Split(30)
	rest := rs.Remaining()

	if row1.Pos.Y != 0 || row2.Pos.Y != 20 || rest.Pos.Y != 50 {
		t.Errorf("carving cursor advanced incorrectly: row1=%+v row2=%+v rest=%+v", row1, row2, rest)
	}
	if rest.Size.Y != 250 {
		t.Errorf("remaining height = %v, want 250", rest.Size.Y)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 50, 50)
	if !r.Contains(Vec2{X: 10, Y: 10}) {
		t.Error("top-left corner should be contained")
	}
	if r.Contains(Vec2{X: 60, Y: 10}) {
		t.Error("right edge should be exclusive")
	}
	if r.Contains(Vec2{X: 5, Y: 5}) {
		t.Error("point outside rect should not be contained")
	}
}

func TestRectInsetOutset(t *testing.T) {
	r := NewRect(0, 0, 100, 100)
	inset := r.Inset(Vec2{X: 10, Y: 10})
	if inset.Pos.X != 10 || inset.Size.X != 80 {
		t.Errorf("Inset = %+v, want pos.X=10 size.X=80", inset)
	}

	back := inset.Outset(Vec2{X: 10, Y: 10})
	if back != r {
		t.Errorf("Outset should undo Inset: got %+v, want %+v", back, r)
	}
}

func TestRGBARoundTrip(t *testing.T) {
	c := RGBA(10, 20, 30, 255)
	r, g, b, a := UnpackRGBA(c)
	if r != 10 || g != 20 || b != 30 || a != 255 {
		t.Errorf("UnpackRGBA(RGBA(10,20,30,255)) = (%d,%d,%d,%d)", r, g, b, a)
	}
}
