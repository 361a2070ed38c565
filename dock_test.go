package ui

import (
	"bytes"
	"testing"
)

func testFont() Font {
	return Font{Handle: 1, SizePx: 16, Metrics: FontMetrics{Ascender: 12, Descender: -4, LineHeight: 16}}
}

func runDockFrame(t *testing.T, ctx *Context, dt *DockTree, rect Rect, tabs []string) {
	t.Helper()
	ctx.NewFrame(NewInput(), Vec2{X: 800, Y: 600})
	ctx.BeginDocking(dt, rect)
	for _, name := range tabs {
		ctx.TabView(dt, name, testFont())
	}
	ctx.EndDocking(dt)
}

func TestDockTreeFirstTabGoesToRoot(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()

	runDockFrame(t, ctx, dt, NewRect(0, 0, 400, 300), []string{"Viewport"})

	if _, ok := dt.tabHome["Viewport"]; !ok {
		t.Fatal("first tab seen should be registered")
	}
	if dt.tabHome["Viewport"] != dt.root {
		t.Error("the first tab should live in the root leaf")
	}
}

func TestDockTreeUnseenTabIsGarbageCollected(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()

	runDockFrame(t, ctx, dt, NewRect(0, 0, 400, 300), []string{"Viewport", "Properties"})
	runDockFrame(t, ctx, dt, NewRect(0, 0, 400, 300), []string{"Viewport"}) // Properties dropped

	if _, ok := dt.tabHome["Properties"]; ok {
		t.Error("a tab not passed to TabView should be garbage-collected by EndDocking")
	}
	root := dt.pool.Get(dt.root)
	for _, name := range root.Tabs {
		if name == "Properties" {
			t.Error("garbage-collected tab name should be removed from its leaf's Tabs slice")
		}
	}
}

func TestDockTreeActiveTabOnlyOneAtATime(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()

	ctx.NewFrame(NewInput(), Vec2{X: 800, Y: 600})
	rect := NewRect(0, 0, 400, 300)
	ctx.BeginDocking(dt, rect)
	activeA, _ := ctx.TabView(dt, "A", testFont())
	activeB, _ := ctx.TabView(dt, "B", testFont())
	ctx.EndDocking(dt)

	if !activeA {
		t.Error("the first tab registered in a leaf should start active")
	}
	if activeB {
		t.Error("only one tab per leaf should report active at a time")
	}
}

func TestDockTreeSaveLoadRoundTrip(t *testing.T) {
	dt := NewDockTree()
	ctx := newTestContext()
	runDockFrame(t, ctx, dt, NewRect(0, 0, 400, 300), []string{"Viewport", "Properties"})

	var buf bytes.Buffer
	if err := dt.Save(&buf); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := LoadDockTree(&buf)
	if err != nil {
		t.Fatalf("LoadDockTree returned error: %v", err)
	}

	root := loaded.pool.Get(loaded.root)
	if root == nil {
		t.Fatal("loaded tree has no root leaf")
	}
	if len(root.Tabs) != 2 || root.Tabs[0] != "Viewport" || root.Tabs[1] != "Properties" {
		t.Errorf("loaded root tabs = %v, want [Viewport Properties]", root.Tabs)
	}
	if loaded.tabHome["Viewport"] != loaded.root {
		t.Error("loaded tabHome should point Viewport at the loaded root")
	}
}

func TestDockTreeSaveLoadPreservesSplits(t *testing.T) {
	dt := NewDockTree()
	newLeaf := dt.pool.Alloc()
	*dt.pool.Get(newLeaf) = DockNode{Kind: DockLeaf, Tabs: []string{"Console"}}
	root := dt.pool.Get(dt.root)
	keepLeaf := dt.pool.Alloc()
	*dt.pool.Get(keepLeaf) = *root
	*root = DockNode{
		Kind:       DockSplitVertical,
		Children:   [2]NodeHandle{newLeaf, keepLeaf},
		SplitRatio: 0.3,
	}
	dt.tabHome["Console"] = newLeaf

	var buf bytes.Buffer
	if err := dt.Save(&buf); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := LoadDockTree(&buf)
	if err != nil {
		t.Fatalf("LoadDockTree returned error: %v", err)
	}

	loadedRoot := loaded.pool.Get(loaded.root)
	if loadedRoot.Kind != DockSplitVertical {
		t.Fatalf("loaded root kind = %v, want DockSplitVertical", loadedRoot.Kind)
	}
	if loadedRoot.SplitRatio != 0.3 {
		t.Errorf("loaded SplitRatio = %v, want 0.3", loadedRoot.SplitRatio)
	}

	child0 := loaded.pool.Get(loadedRoot.Children[0])
	if child0 == nil || len(child0.Tabs) != 1 || child0.Tabs[0] != "Console" {
		t.Errorf("loaded first child = %+v, want a leaf holding [Console]", child0)
	}
}

func TestDockSplitDragResizesAndClampsRatio(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()

	leftLeaf := dt.pool.Alloc()
	*dt.pool.Get(leftLeaf) = DockNode{Kind: DockLeaf, Tabs: []string{"Left"}}
	rightLeaf := dt.pool.Alloc()
	*dt.pool.Get(rightLeaf) = DockNode{Kind: DockLeaf, Tabs: []string{"Right"}}
	*dt.pool.Get(dt.root) = DockNode{
		Kind:       DockSplitHorizontal,
		Children:   [2]NodeHandle{leftLeaf, rightLeaf},
		SplitRatio: 0.5,
	}

	rect := NewRect(0, 0, 400, 300)

	// Frame 1: press on the gutter at its current position (ratio 0.5 of
	// a 400-wide rect puts it at x=200).
	input := NewInput()
	input.MouseX, input.MouseY = 200, 150
	input.MouseButtonsPressed[MouseLeft] = true
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	ctx.BeginDocking(dt, rect)
	ctx.EndDocking(dt)

	// Frame 2: drag far past the left edge.
	input.MouseX = -1000
	input.Advance()
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	ctx.BeginDocking(dt, rect)
	ctx.EndDocking(dt)

	root := dt.pool.Get(dt.root)
	if root.SplitRatio != dockSplitRatioMin {
		t.Errorf("SplitRatio dragged past the left edge should clamp to %v, got %v", dockSplitRatioMin, root.SplitRatio)
	}
}

func TestDockTreeClickingTabMakesItActive(t *testing.T) {
	ctx := newTestContext()
	dt := NewDockTree()
	rect := NewRect(0, 0, 400, 300)

	// Tab "B"'s header sits at x in [120, 240); click inside it.
	input := NewInput()
	input.MouseX, input.MouseY = 150, 10
	input.MouseButtonsPressed[MouseLeft] = true
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	ctx.BeginDocking(dt, rect)
	ctx.TabView(dt, "A", testFont())
	ctx.TabView(dt, "B", testFont())
	ctx.EndDocking(dt)

	input.Advance()
	input.MouseButtonsPressed[MouseLeft] = false
	ctx.NewFrame(input, Vec2{X: 800, Y: 600})
	ctx.BeginDocking(dt, rect)
	ctx.TabView(dt, "A", testFont())
	ctx.TabView(dt, "B", testFont())
	ctx.EndDocking(dt)

	if ctx.focusPath.Depth() != 0 {
		t.Fatalf("focus path should be empty between frames, depth = %d", ctx.focusPath.Depth())
	}
	root := dt.pool.Get(dt.root)
	if root.ActiveTab != indexOf(root.Tabs, "B") {
		t.Errorf("clicking B's header should make it the active tab, ActiveTab = %d", root.ActiveTab)
	}
}

func TestClassifyQuadrant(t *testing.T) {
	rect := NewRect(0, 0, 100, 100)

	cases := []struct {
		point Vec2
		want  DockQuadrant
	}{
		{Vec2{X: 50, Y: 50}, DockQuadrantCenter},
		{Vec2{X: 5, Y: 50}, DockQuadrantLeft},
		{Vec2{X: 95, Y: 50}, DockQuadrantRight},
		{Vec2{X: 50, Y: 5}, DockQuadrantTop},
		{Vec2{X: 50, Y: 95}, DockQuadrantBottom},
	}

	for _, c := range cases {
		if got := classifyQuadrant(rect, c.point); got != c.want {
			t.Errorf("classifyQuadrant(%+v) = %v, want %v", c.point, got, c.want)
		}
	}
}
