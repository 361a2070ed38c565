package ui

import (
	"encoding/gob"
	"io"
	"strconv"
)

// DockNodeKind distinguishes a tabbed leaf from an internal split.
type DockNodeKind int

const (
	DockLeaf DockNodeKind = iota
	DockSplitHorizontal      // children side by side, SplitRatio is the left child's share
	DockSplitVertical        // children stacked, SplitRatio is the top child's share
)

// DockQuadrant is where a dragged tab was released relative to a target
// leaf, per spec.md §4.9's drag-and-drop overlay.
type DockQuadrant int

const (
	DockQuadrantNone DockQuadrant = iota
	DockQuadrantCenter
	DockQuadrantLeft
	DockQuadrantRight
	DockQuadrantTop
	DockQuadrantBottom
)

// DockNode is one node of the docking tree: either a tabbed leaf or a
// two-way split. Rect is recomputed every frame by layoutDockNode and
// is not persisted.
type DockNode struct {
	Kind DockNodeKind

	Tabs      []string
	ActiveTab int

	Children   [2]NodeHandle
	SplitRatio float32

	Rect Rect
}

const dockTabHeaderHeight = 24
const dockTabWidth = 120

// dockSplitRatioMin/Max bound a split's SplitRatio during a user drag so
// neither child pane can be dragged down to zero size.
const (
	dockSplitRatioMin = 0.05
	dockSplitRatioMax = 0.95
)

// DockTree owns the node pool and per-frame tab bookkeeping. Tabs are
// identified by name; TabView creates one in the root leaf the first
// time it's seen and reuses it (at whatever leaf it currently lives in)
// thereafter, so callers never hold onto a NodeHandle themselves.
type DockTree struct {
	pool *Pool[DockNode]
	root NodeHandle

	tabHome map[string]NodeHandle
	seen    map[string]bool

	dragging     string
	dragOverNode NodeHandle
	dragQuadrant DockQuadrant

	focusDepth int // depth of this tree's container node in ctx.focusPath, set by BeginDocking
}

// NewDockTree builds a tree with a single empty root leaf.
func NewDockTree() *DockTree {
	pool := NewPool[DockNode]()
	root := pool.Alloc()
	*pool.Get(root) = DockNode{Kind: DockLeaf, SplitRatio: 0.5}
	return &DockTree{
		pool:    pool,
		root:    root,
		tabHome: make(map[string]NodeHandle),
		seen:    make(map[string]bool),
	}
}

// BeginDocking lays out the tree into rect, pushes it as the clip rect
// for everything TabView draws this frame, and opens a container scope
// in the context's focus path so TabView can record which tab is
// focused within this tree.
func (ctx *Context) BeginDocking(dt *DockTree, rect Rect) {
	ctx.PushClipRect(rect)
	ctx.layoutDockNode(dt, dt.root, rect)

	id := ctx.GetID("dock-tree")
	ctx.focusPath.Push(FocusNode{ID: id, Name: "dock", Type: FocusTypeContainer, ChildIdx: -1, Rect: rect})
	dt.focusDepth = ctx.focusPath.Depth() - 1
}

// EndDocking pops the clip rect and the focus-path scope BeginDocking
// opened, and garbage-collects tabs that weren't passed to TabView this
// frame (their host window closed, or the caller simply stopped listing
// them).
func (ctx *Context) EndDocking(dt *DockTree) {
	ctx.PopClipRect()
	ctx.focusPath.Pop()
	for name, home := range dt.tabHome {
		if dt.seen[name] {
			continue
		}
		if node := dt.pool.Get(home); node != nil {
			node.Tabs = removeString(node.Tabs, name)
			if node.ActiveTab >= len(node.Tabs) {
				node.ActiveTab = len(node.Tabs) - 1
			}
		}
		delete(dt.tabHome, name)
	}
	dt.seen = make(map[string]bool, len(dt.seen))
}

func removeString(s []string, v string) []string {
	out := s[:0]
	for _, x := range s {
		if x != v {
			out = append(out, x)
		}
	}
	return out
}

// layoutDockNode recursively assigns Rect to every node in the tree. Split
// nodes draw a draggable gutter (SplitterX/SplitterY) over the boundary
// between their two children and recurse into them with the dragged
// ratio, per spec.md §4.9.
func (ctx *Context) layoutDockNode(dt *DockTree, h NodeHandle, rect Rect) {
	node := dt.pool.Get(h)
	if node == nil {
		return
	}
	node.Rect = rect

	switch node.Kind {
	case DockSplitHorizontal:
		label := "dock-split:" + strconv.Itoa(int(h))
		leftSize := ctx.SplitterX(label, rect, rect.Size.X*node.SplitRatio,
			rect.Size.X*dockSplitRatioMin, rect.Size.X*dockSplitRatioMax)
		node.SplitRatio = clampf(leftSize/rect.Size.X, dockSplitRatioMin, dockSplitRatioMax)

		rs := NewRectSplit(rect, SplitHorizontal)
		left := rs.Split(rect.Size.X * node.SplitRatio)
		ctx.layoutDockNode(dt, node.Children[0], left)
		ctx.layoutDockNode(dt, node.Children[1], rs.Remaining())
	case DockSplitVertical:
		label := "dock-split:" + strconv.Itoa(int(h))
		topSize := ctx.SplitterY(label, rect, rect.Size.Y*node.SplitRatio,
			rect.Size.Y*dockSplitRatioMin, rect.Size.Y*dockSplitRatioMax)
		node.SplitRatio = clampf(topSize/rect.Size.Y, dockSplitRatioMin, dockSplitRatioMax)

		rs := NewRectSplit(rect, SplitVertical)
		top := rs.Split(rect.Size.Y * node.SplitRatio)
		ctx.layoutDockNode(dt, node.Children[0], top)
		ctx.layoutDockNode(dt, node.Children[1], rs.Remaining())
	}
}

// TabView registers a tab, draws its header button (and label, in
// font) in the tab strip of whichever leaf currently owns it, and
// returns the content rect below the strip plus whether this tab is
// the one currently active in its leaf (callers should only draw
// content when active is true).
func (ctx *Context) TabView(dt *DockTree, name string, font Font) (active bool, content Rect) {
	dt.seen[name] = true

	home, ok := dt.tabHome[name]
	if !ok {
		home = dt.root
		dt.tabHome[name] = home
		leaf := dt.pool.Get(home)
		leaf.Tabs = append(leaf.Tabs, name)
	}

	leaf := dt.pool.Get(home)
	if leaf == nil {
		return false, Rect{}
	}

	tabIndex := indexOf(leaf.Tabs, name)
	isActive := tabIndex == leaf.ActiveTab

	// Leaves with more tabs than fit their header strip only draw and
	// hit-test the visible range, the same virtualization a long list or
	// table would need.
	clipper := NewListClipper(len(leaf.Tabs), dockTabWidth, leaf.Rect.Size.X, 0)
	id := ctx.GetID("dock-tab:" + name)

	if clipper.ShouldRender(tabIndex) {
		headerRect := dt.tabHeaderRect(home, tabIndex)
		clicked, hovering, activeDrag := ctx.ButtonBehavior(id, headerRect)

		bg := ctx.Theme.ButtonBgColor
		if isActive {
			bg = ctx.Theme.ButtonPressedBgColor
		} else if hovering {
			bg = ctx.Theme.ButtonHoverBgColor
		}
		ctx.Painter.DrawColorRect(headerRect, ctx.CurrentClipRect(), bg)
		labelSize := ctx.Painter.MeasureLabel(font, name)
		ctx.Painter.DrawLabel(headerRect.Center(labelSize), ctx.CurrentClipRect(), font, name)

		if clicked {
			leaf.ActiveTab = tabIndex
			ctx.SetFocused(id)
			ctx.focusPath.SetChildIdx(dt.focusDepth, tabIndex)
		}
		// A press that stays on its own header is a click; the drag only
		// starts once the mouse leaves the header while still held.
		if activeDrag && ctx.Input != nil {
			mouse := Vec2{X: ctx.Input.MouseX, Y: ctx.Input.MouseY}
			if dt.dragging == name || !headerRect.Contains(mouse) {
				dt.dragging = name
				dt.dragOverNode, dt.dragQuadrant = dt.hitTestQuadrant(mouse)
			}
		}
	}
	if dt.dragging == name && ctx.Input != nil && ctx.Input.MouseJustReleased(MouseLeft) {
		dt.completeDrag(name)
	}

	rs := NewRectSplit(leaf.Rect, SplitVertical)
	rs.Split(dockTabHeaderHeight)
	content = rs.Remaining()

	if dt.dragging == name && dt.dragOverNode != 0 {
		ctx.drawDockOverlay(dt)
	}

	return isActive, content
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

func (dt *DockTree) tabHeaderRect(leafHandle NodeHandle, tabIndex int) Rect {
	leaf := dt.pool.Get(leafHandle)
	return Rect{
		Pos:  Vec2{X: leaf.Rect.Pos.X + float32(tabIndex)*dockTabWidth, Y: leaf.Rect.Pos.Y},
		Size: Vec2{X: dockTabWidth, Y: dockTabHeaderHeight},
	}
}

// hitTestQuadrant walks every leaf looking for one whose rect contains
// mouse, and classifies which fifth of that rect the point falls in.
func (dt *DockTree) hitTestQuadrant(mouse Vec2) (NodeHandle, DockQuadrant) {
	var found NodeHandle
	var quadrant DockQuadrant
	var walk func(h NodeHandle)
	walk = func(h NodeHandle) {
		node := dt.pool.Get(h)
		if node == nil {
			return
		}
		if node.Kind != DockLeaf {
			walk(node.Children[0])
			walk(node.Children[1])
			return
		}
		if !node.Rect.Contains(mouse) {
			return
		}
		found = h
		quadrant = classifyQuadrant(node.Rect, mouse)
	}
	walk(dt.root)
	return found, quadrant
}

func classifyQuadrant(rect Rect, p Vec2) DockQuadrant {
	rx := (p.X - rect.Pos.X) / rect.Size.X
	ry := (p.Y - rect.Pos.Y) / rect.Size.Y
	const edge = 0.25
	switch {
	case rx < edge:
		return DockQuadrantLeft
	case rx > 1-edge:
		return DockQuadrantRight
	case ry < edge:
		return DockQuadrantTop
	case ry > 1-edge:
		return DockQuadrantBottom
	default:
		return DockQuadrantCenter
	}
}

func (ctx *Context) drawDockOverlay(dt *DockTree) {
	node := dt.pool.Get(dt.dragOverNode)
	if node == nil {
		return
	}
	overlay := node.Rect
	switch dt.dragQuadrant {
	case DockQuadrantLeft:
		overlay.Size.X *= 0.5
	case DockQuadrantRight:
		overlay.Pos.X += overlay.Size.X * 0.5
		overlay.Size.X *= 0.5
	case DockQuadrantTop:
		overlay.Size.Y *= 0.5
	case DockQuadrantBottom:
		overlay.Pos.Y += overlay.Size.Y * 0.5
		overlay.Size.Y *= 0.5
	}
	ctx.Painter.DrawColorRect(overlay, InvalidClipIndex, RGBA(80, 180, 255, 90))
}

// completeDrag re-parents name into dt.dragOverNode according to the
// quadrant the drop landed in, splitting the target leaf if needed.
func (dt *DockTree) completeDrag(name string) {
	defer func() { dt.dragging = ""; dt.dragOverNode = 0; dt.dragQuadrant = DockQuadrantNone }()

	target := dt.dragOverNode
	if target == 0 || dt.dragQuadrant == DockQuadrantNone {
		return
	}

	oldHome := dt.tabHome[name]
	if oldHome == target && dt.dragQuadrant == DockQuadrantCenter {
		return
	}
	if oldLeaf := dt.pool.Get(oldHome); oldLeaf != nil {
		oldLeaf.Tabs = removeString(oldLeaf.Tabs, name)
		if oldLeaf.ActiveTab >= len(oldLeaf.Tabs) {
			oldLeaf.ActiveTab = len(oldLeaf.Tabs) - 1
		}
	}

	targetLeaf := dt.pool.Get(target)
	if targetLeaf == nil {
		return
	}

	if dt.dragQuadrant == DockQuadrantCenter {
		targetLeaf.Tabs = append(targetLeaf.Tabs, name)
		targetLeaf.ActiveTab = len(targetLeaf.Tabs) - 1
		dt.tabHome[name] = target
		return
	}

	// Split target in two: a fresh leaf for the dropped tab, the
	// original tabs stay in a sibling leaf, target itself becomes the
	// split node.
	newLeafHandle := dt.pool.Alloc()
	*dt.pool.Get(newLeafHandle) = DockNode{Kind: DockLeaf, Tabs: []string{name}}

	keepHandle := dt.pool.Alloc()
	// Alloc may have grown the pool's slot slice; re-fetch target.
	targetLeaf = dt.pool.Get(target)
	*dt.pool.Get(keepHandle) = *targetLeaf

	kind := DockSplitHorizontal
	if dt.dragQuadrant == DockQuadrantTop || dt.dragQuadrant == DockQuadrantBottom {
		kind = DockSplitVertical
	}
	first, second := newLeafHandle, keepHandle
	if dt.dragQuadrant == DockQuadrantRight || dt.dragQuadrant == DockQuadrantBottom {
		first, second = keepHandle, newLeafHandle
	}

	*targetLeaf = DockNode{
		Kind:       kind,
		Children:   [2]NodeHandle{first, second},
		SplitRatio: 0.5,
	}

	dt.tabHome[name] = newLeafHandle
	for _, t := range dt.pool.Get(keepHandle).Tabs {
		dt.tabHome[t] = keepHandle
	}
}

// dockNodeSnapshot is the gob-serializable mirror of DockNode, using
// plain ints instead of NodeHandle so a saved layout doesn't depend on
// the pool's live allocation order.
type dockNodeSnapshot struct {
	Kind       DockNodeKind
	Tabs       []string
	ActiveTab  int
	Children   [2]int
	SplitRatio float32
}

type dockTreeSnapshot struct {
	Nodes []dockNodeSnapshot
	Root  int
}

// Save encodes the tree's topology (splits, ratios, tab assignment and
// order) to w for persistence across process restarts, per spec.md §6.
// Layout rects are not persisted; they're recomputed from the next
// BeginDocking call.
func (dt *DockTree) Save(w io.Writer) error {
	snap := dockTreeSnapshot{Root: int(dt.root)}
	remap := map[NodeHandle]int{0: -1}

	var walk func(h NodeHandle) int
	walk = func(h NodeHandle) int {
		if idx, ok := remap[h]; ok {
			return idx
		}
		node := dt.pool.Get(h)
		idx := len(snap.Nodes)
		snap.Nodes = append(snap.Nodes, dockNodeSnapshot{}) // reserve slot
		remap[h] = idx

		var children [2]int
		if node.Kind != DockLeaf {
			children[0] = walk(node.Children[0])
			children[1] = walk(node.Children[1])
		}
		snap.Nodes[idx] = dockNodeSnapshot{
			Kind:       node.Kind,
			Tabs:       append([]string(nil), node.Tabs...),
			ActiveTab:  node.ActiveTab,
			Children:   children,
			SplitRatio: node.SplitRatio,
		}
		return idx
	}
	snap.Root = walk(dt.root)

	return gob.NewEncoder(w).Encode(snap)
}

// LoadDockTree rebuilds a DockTree from a stream produced by Save.
func LoadDockTree(r io.Reader) (*DockTree, error) {
	var snap dockTreeSnapshot
	if err := gob.NewDecoder(r).Decode(&snap); err != nil {
		return nil, err
	}

	pool := NewPool[DockNode]()
	handles := make([]NodeHandle, len(snap.Nodes))
	for i := range snap.Nodes {
		handles[i] = pool.Alloc()
	}

	dt := &DockTree{
		pool:    pool,
		tabHome: make(map[string]NodeHandle),
		seen:    make(map[string]bool),
	}

	for i, ns := range snap.Nodes {
		node := pool.Get(handles[i])
		node.Kind = ns.Kind
		node.Tabs = ns.Tabs
		node.ActiveTab = ns.ActiveTab
		node.SplitRatio = ns.SplitRatio
		if ns.Kind != DockLeaf {
			node.Children = [2]NodeHandle{handleFor(handles, ns.Children[0]), handleFor(handles, ns.Children[1])}
		}
		for _, t := range ns.Tabs {
			dt.tabHome[t] = handles[i]
		}
	}
	dt.root = handleFor(handles, snap.Root)

	return dt, nil
}

func handleFor(handles []NodeHandle, idx int) NodeHandle {
	if idx < 0 || idx >= len(handles) {
		return 0
	}
	return handles[idx]
}
