// Package ui provides an immediate-mode 2D UI rendering and layout engine
// embedded inside a larger editor. It exposes a typed primitive Painter, a
// bounded glyph atlas cache, and a widget runtime built on Rect/RectSplit
// layout, modeled after Dear ImGui-style immediate-mode toolkits.
package ui

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Rect is an axis-aligned rectangle: top-left position plus size.
type Rect struct {
	Pos  Vec2
	Size Vec2
}

// NewRect builds a Rect from raw components.
func NewRect(x, y, w, h float32) Rect {
	return Rect{Pos: Vec2{X: x, Y: y}, Size: Vec2{X: w, Y: h}}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Pos.X && p.X < r.Pos.X+r.Size.X &&
		p.Y >= r.Pos.Y && p.Y < r.Pos.Y+r.Size.Y
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Pos.X < other.Pos.X+other.Size.X && r.Pos.X+r.Size.X > other.Pos.X &&
		r.Pos.Y < other.Pos.Y+other.Size.Y && r.Pos.Y+r.Size.Y > other.Pos.Y
}

// Center returns a rect of the given size, centered inside r.
func (r Rect) Center(size Vec2) Rect {
	return Rect{
		Pos: Vec2{
			X: r.Pos.X + (r.Size.X-size.X)*0.5,
			Y: r.Pos.Y + (r.Size.Y-size.Y)*0.5,
		},
		Size: size,
	}
}

// Inset shrinks the rect on all sides by amount.
func (r Rect) Inset(amount Vec2) Rect {
	return Rect{
		Pos:  Vec2{X: r.Pos.X + amount.X, Y: r.Pos.Y + amount.Y},
		Size: Vec2{X: maxf(r.Size.X-2*amount.X, 0), Y: maxf(r.Size.Y-2*amount.Y, 0)},
	}
}

// Outset grows the rect on all sides by amount. Dual of Inset.
func (r Rect) Outset(amount Vec2) Rect {
	return r.Inset(Vec2{X: -amount.X, Y: -amount.Y})
}

// SplitTop carves a height-h slice off the top and mutates r to the
// remainder. If h exceeds the rect's height, the returned rect is the
// full rect and the remainder becomes empty.
func (r *Rect) SplitTop(h float32) Rect {
	if h >= r.Size.Y {
		out := *r
		r.Pos.Y += r.Size.Y
		r.Size.Y = 0
		return out
	}
	out := Rect{Pos: r.Pos, Size: Vec2{X: r.Size.X, Y: h}}
	r.Pos.Y += h
	r.Size.Y -= h
	return out
}

// SplitBottom carves a height-h slice off the bottom and mutates r to the
// remainder.
func (r *Rect) SplitBottom(h float32) Rect {
	if h >= r.Size.Y {
		out := *r
		r.Size.Y = 0
		return out
	}
	out := Rect{Pos: Vec2{X: r.Pos.X, Y: r.Pos.Y + r.Size.Y - h}, Size: Vec2{X: r.Size.X, Y: h}}
	r.Size.Y -= h
	return out
}

// SplitLeft carves a width-w slice off the left and mutates r to the
// remainder.
func (r *Rect) SplitLeft(w float32) Rect {
	if w >= r.Size.X {
		out := *r
		r.Pos.X += r.Size.X
		r.Size.X = 0
		return out
	}
	out := Rect{Pos: r.Pos, Size: Vec2{X: w, Y: r.Size.Y}}
	r.Pos.X += w
	r.Size.X -= w
	return out
}

// SplitRight carves a width-w slice off the right and mutates r to the
// remainder.
func (r *Rect) SplitRight(w float32) Rect {
	if w >= r.Size.X {
		out := *r
		r.Size.X = 0
		return out
	}
	out := Rect{Pos: Vec2{X: r.Pos.X + r.Size.X - w, Y: r.Pos.Y}, Size: Vec2{X: w, Y: r.Size.Y}}
	r.Size.X -= w
	return out
}

// SplitAxis selects the split direction for RectSplit.
type SplitAxis int

const (
	SplitVertical   SplitAxis = iota // carve rows top-to-bottom
	SplitHorizontal                  // carve columns left-to-right
)

// RectSplit is a cursor that serially carves slices from a rect along one
// axis. Each Split call advances the cursor and returns the carved slice.
type RectSplit struct {
	Rect      Rect
	Direction SplitAxis
}

// NewRectSplit starts a carving cursor over rect along direction.
func NewRectSplit(rect Rect, direction SplitAxis) RectSplit {
	return RectSplit{Rect: rect, Direction: direction}
}

// Split returns the next slice of the given size (height if Vertical,
// width if Horizontal) and advances the cursor.
func (s *RectSplit) Split(size float32) Rect {
	if s.Direction == SplitHorizontal {
		return s.Rect.SplitLeft(size)
	}
	return s.Rect.SplitTop(size)
}

// Remaining returns the unconsumed portion of the split.
func (s *RectSplit) Remaining() Rect {
	return s.Rect
}

// Color constants (RGBA packed as 0xAABBGGRR, matching the shader's
// expected byte order).
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorYellow      uint32 = 0xFF00FFFF
	ColorCyan        uint32 = 0xFFFFFF00
	ColorMagenta     uint32 = 0xFFFF00FF
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorLightGray   uint32 = 0xFFC0C0C0
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed AABBGGRR color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255),
		uint8(clampf(g, 0, 1)*255),
		uint8(clampf(b, 0, 1)*255),
		uint8(clampf(a, 0, 1)*255),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// alpha extracts just the alpha byte, used by the Painter to skip
// fully-transparent draws.
func alpha(c uint32) uint8 {
	return uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
