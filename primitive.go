package ui

import "unsafe"

// PrimitiveType tags which typed region of the arena a primitive index
// refers to.
type PrimitiveType uint32

const (
	PrimitiveColor PrimitiveType = iota
	PrimitiveTextured
	PrimitiveSdfRoundRect
	PrimitiveSdfCircle
	PrimitiveClip
)

// InvalidClipIndex marks an unclipped primitive.
const InvalidClipIndex uint32 = 0xFFFFFFFF

// Corner enumerates the four corners emitted per primitive, matching the
// shader's decode order.
type Corner uint32

const (
	CornerTopLeft Corner = iota
	CornerBottomLeft
	CornerBottomRight
	CornerTopRight
)

// PrimitiveIndex packs (type, index, corner) into one 32-bit index, per
// the shader contract: corner occupies bits 0-1, type bits 2-7 (up to 64
// distinct types), and the primitive index the remaining 24 bits.
type PrimitiveIndex uint32

// PackIndex builds a PrimitiveIndex from its three fields.
func PackIndex(typ PrimitiveType, index uint32, corner Corner) PrimitiveIndex {
	return PrimitiveIndex((index << 8) | (uint32(typ) << 2) | uint32(corner))
}

// Corner extracts the corner field.
func (p PrimitiveIndex) Corner() Corner { return Corner(p & 0x3) }

// Type extracts the primitive-type field.
func (p PrimitiveIndex) Type() PrimitiveType { return PrimitiveType((p >> 2) & 0x3F) }

// Index extracts the primitive-index field.
func (p PrimitiveIndex) Index() uint32 { return uint32(p) >> 8 }

// ColorRect is the vertex record for a solid-fill rectangle.
type ColorRect struct {
	Rect       Rect
	Color      uint32
	ClipRect   uint32
	_          [8]byte // pad to a multiple of 8 so mixed-type alignment waste stays small
}

// TexturedRect is the vertex record for an image or glyph quad.
type TexturedRect struct {
	Rect     Rect
	UV       Rect
	Texture  uint32
	ClipRect uint32
}

// SdfRect is the vertex record shared by SDF round-rects and circles.
type SdfRect struct {
	Rect             Rect
	Color            uint32
	ClipRect         uint32
	BorderColor      uint32
	BorderThickness  uint32
}

// rectCorners are the two triangles (0-1-2, 2-3-0) every rectangle
// primitive emits, in the order the original painter emits them.
var rectCorners = [6]Corner{CornerTopLeft, CornerBottomLeft, CornerBottomRight, CornerBottomRight, CornerTopRight, CornerTopLeft}

// arena is an untyped byte buffer addressed by typed, size-aligned
// regions. Each push<T> call aligns the write cursor up to sizeof(T),
// writes T, and derives index = offset / sizeof(T), matching the
// original painter_draw_* alignment dance exactly.
type arena struct {
	bytes  []byte
	offset int
}

func (a *arena) reset() {
	a.offset = 0
}

// pushColorRect writes a ColorRect at an aligned offset and returns its
// index. Returns false if the arena has no room (capacity exhaustion is a
// caller precondition violation per spec; Painter logs and drops).
func pushColorRect(a *arena, v ColorRect) (uint32, bool) {
	const size = int(unsafe.Sizeof(ColorRect{}))
	off := alignUp(a.offset, size)
	if off+size > len(a.bytes) {
		return 0, false
	}
	*(*ColorRect)(unsafe.Pointer(&a.bytes[off])) = v
	a.offset = off + size
	return uint32(off / size), true
}

func pushTexturedRect(a *arena, v TexturedRect) (uint32, bool) {
	const size = int(unsafe.Sizeof(TexturedRect{}))
	off := alignUp(a.offset, size)
	if off+size > len(a.bytes) {
		return 0, false
	}
	*(*TexturedRect)(unsafe.Pointer(&a.bytes[off])) = v
	a.offset = off + size
	return uint32(off / size), true
}

func pushSdfRect(a *arena, v SdfRect) (uint32, bool) {
	const size = int(unsafe.Sizeof(SdfRect{}))
	off := alignUp(a.offset, size)
	if off+size > len(a.bytes) {
		return 0, false
	}
	*(*SdfRect)(unsafe.Pointer(&a.bytes[off])) = v
	a.offset = off + size
	return uint32(off / size), true
}

func alignUp(offset, size int) int {
	misalignment := offset % size
	if misalignment == 0 {
		return offset
	}
	return offset + (size - misalignment)
}
