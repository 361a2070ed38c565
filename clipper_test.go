package ui

import "testing"

func TestListClipperVisibleRange(t *testing.T) {
	c := NewListClipper(100, 20, 100, 40)

	if c.StartIdx != 2 {
		t.Errorf("StartIdx = %d, want 2 (scrollY 40 / itemHeight 20)", c.StartIdx)
	}
	// visibleHeight/itemHeight + 2 slack = 5+2 = 7 items from StartIdx.
	if c.EndIdx != 9 {
		t.Errorf("EndIdx = %d, want 9", c.EndIdx)
	}
}

func TestListClipperClampsToTotalItems(t *testing.T) {
	c := NewListClipper(5, 20, 1000, 0)
	if c.EndIdx != 5 {
		t.Errorf("EndIdx = %d, want clamped to TotalItems 5", c.EndIdx)
	}
}

func TestListClipperZeroItemsOrHeight(t *testing.T) {
	c := NewListClipper(0, 20, 100, 0)
	if c.StartIdx != 0 || c.EndIdx != 0 {
		t.Errorf("empty list should report an empty range, got [%d, %d)", c.StartIdx, c.EndIdx)
	}

	c = NewListClipper(10, 0, 100, 0)
	if c.StartIdx != 0 || c.EndIdx != 0 {
		t.Errorf("zero item height should report an empty range, got [%d, %d)", c.StartIdx, c.EndIdx)
	}
}

func TestListClipperShouldRender(t *testing.T) {
	c := NewListClipper(10, 20, 40, 0)
	if !c.ShouldRender(0) {
		t.Error("index 0 should be visible at scrollY=0")
	}
	if c.ShouldRender(9) {
		t.Error("index 9 should be outside the visible range")
	}
}

func TestDockTabStripVirtualizesOffscreenTabs(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()
	rect := NewRect(0, 0, 300, 200) // fits 2 full tabs at dockTabWidth=120, plus slack

	names := []string{"A", "B", "C", "D", "E"}
	runDockFrame(t, ctx, dt, rect, names)

	root := dt.pool.Get(dt.root)
	if len(root.Tabs) != len(names) {
		t.Fatalf("all registered tabs should still exist in the leaf, got %v", root.Tabs)
	}

	clipper := NewListClipper(len(root.Tabs), dockTabWidth, rect.Size.X, 0)
	if clipper.ShouldRender(4) {
		t.Error("the 5th tab should be past the visible strip width and not render")
	}
	if !clipper.ShouldRender(0) {
		t.Error("the first tab should always be visible")
	}
}
