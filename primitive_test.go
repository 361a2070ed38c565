package ui

import "testing"

func TestPackIndexRoundTrip(t *testing.T) {
	cases := []struct {
		typ    PrimitiveType
		index  uint32
		corner Corner
	}{
		{PrimitiveColor, 0, CornerTopLeft},
		{PrimitiveTextured, 12345, CornerBottomRight},
		{PrimitiveSdfRoundRect, 1, CornerTopRight},
		{PrimitiveClip, 0xFFFFFF, CornerBottomLeft},
	}

	for _, c := range cases {
		packed := PackIndex(c.typ, c.index, c.corner)
		if got := packed.Type(); got != c.typ {
			t.Errorf("PackIndex(%v,%v,%v).Type() = %v", c.typ, c.index, c.corner, got)
		}
		if got := packed.Index(); got != c.index {
			t.Errorf("PackIndex(%v,%v,%v).Index() = %v", c.typ, c.index, c.corner, got)
		}
		if got := packed.Corner(); got != c.corner {
			t.Errorf("PackIndex(%v,%v,%v).Corner() = %v", c.typ, c.index, c.corner, got)
		}
	}
}

func TestArenaAlignment(t *testing.T) {
	a := &arena{bytes: make([]byte, 4096)}

	i0, ok := pushColorRect(a, ColorRect{Color: ColorRed})
	if !ok || i0 != 0 {
		t.Fatalf("first push: idx=%d ok=%v", i0, ok)
	}

	i1, ok := pushColorRect(a, ColorRect{Color: ColorBlue})
	if !ok || i1 != 1 {
		t.Fatalf("second push should land at index 1, got %d", i1)
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := &arena{bytes: make([]byte, 4)}
	_, ok := pushColorRect(a, ColorRect{})
	if ok {
		t.Error("push into an undersized arena should fail")
	}
}

func TestPainterEmitsSixIndicesPerRect(t *testing.T) {
	cache := NewGlyphCache(16, 2, 2)
	p := NewPainter(make([]byte, 4096), 64, cache, &BuiltinShaper{})

	p.DrawColorRect(NewRect(0, 0, 10, 10), InvalidClipIndex, ColorWhite)

	if p.IndexCount() != 6 {
		t.Fatalf("IndexCount() = %d, want 6", p.IndexCount())
	}
	for i, want := range rectCorners {
		if p.Indices()[i].Corner() != want {
			t.Errorf("index %d corner = %v, want %v", i, p.Indices()[i].Corner(), want)
		}
	}
}

func TestPainterSkipsTransparentColorRect(t *testing.T) {
	cache := NewGlyphCache(16, 2, 2)
	p := NewPainter(make([]byte, 4096), 64, cache, &BuiltinShaper{})

	p.DrawColorRect(NewRect(0, 0, 10, 10), InvalidClipIndex, ColorTransparent)

	if p.IndexCount() != 0 {
		t.Errorf("transparent DrawColorRect should emit nothing, IndexCount() = %d", p.IndexCount())
	}
}

func TestPainterResetRewindsArenas(t *testing.T) {
	cache := NewGlyphCache(16, 2, 2)
	p := NewPainter(make([]byte, 4096), 64, cache, &BuiltinShaper{})

	p.DrawColorRect(NewRect(0, 0, 10, 10), InvalidClipIndex, ColorWhite)
	p.Reset()

	if p.IndexCount() != 0 || p.VertexBytesOffset() != 0 {
		t.Errorf("Reset did not rewind: indexCount=%d vertexOffset=%d", p.IndexCount(), p.VertexBytesOffset())
	}
}
