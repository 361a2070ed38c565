package ui

import "testing"

func newTestPainter(shaper Shaper) (*Painter, *GlyphCache) {
	cache := NewGlyphCache(8, 4, 4)
	vertexBytes := make([]byte, 1<<16)
	return NewPainter(vertexBytes, 256, cache, shaper), cache
}

func TestMeasureLabelSumsAdvances(t *testing.T) {
	shaper := &BuiltinShaper{AdvancePx: 8 << 6, LineHeight: 16}
	p, _ := newTestPainter(shaper)
	font := Font{Handle: 1, SizePx: 16, Metrics: FontMetrics{Ascender: 12, LineHeight: 16}}

	size := p.MeasureLabel(font, "abc")
	if size.X != 24 {
		t.Errorf("MeasureLabel width = %v, want 24 (3 runes * 8px advance)", size.X)
	}
	if size.Y != 16 {
		t.Errorf("MeasureLabel height = %v, want font line height 16", size.Y)
	}
}

func TestMeasureLabelEmptyString(t *testing.T) {
	shaper := &BuiltinShaper{AdvancePx: 8 << 6, LineHeight: 16}
	p, _ := newTestPainter(shaper)
	font := Font{Handle: 1, SizePx: 16, Metrics: FontMetrics{LineHeight: 16}}

	size := p.MeasureLabel(font, "")
	if size.X != 0 {
		t.Errorf("MeasureLabel(\"\") width = %v, want 0", size.X)
	}
}

func TestDrawLabelNewlineDrawsNoGlyph(t *testing.T) {
	shaper := &BuiltinShaper{AdvancePx: 8 << 6, LineHeight: 16}
	p, cache := newTestPainter(shaper)
	font := Font{Handle: 1, SizePx: 16, Metrics: FontMetrics{Ascender: 12, LineHeight: 16}}

	// Make every glyph resident so DrawLabel actually emits primitives.
	for _, r := range "ab\ncd" {
		if r == '\n' {
			continue
		}
		key := GlyphKey{Font: font.Handle, ID: GlyphID(r)}
		cache.Request(key)
		cache.MarkUploaded(key, Vec2{}, Vec2{X: 8, Y: 8})
	}

	before := p.IndexCount()
	p.DrawLabel(NewRect(0, 0, 200, 200), InvalidClipIndex, font, "ab\ncd")
	after := p.IndexCount()

	// Four visible glyphs (a, b, c, d); the newline itself draws nothing.
	if after-before != 4*6 {
		t.Errorf("DrawLabel emitted %d indices, want %d (4 glyphs * 6 indices)", after-before, 4*6)
	}
}

func TestDrawLabelSkipsNonResidentGlyphs(t *testing.T) {
	shaper := &BuiltinShaper{AdvancePx: 8 << 6, LineHeight: 16}
	p, _ := newTestPainter(shaper)
	font := Font{Handle: 1, SizePx: 16, Metrics: FontMetrics{Ascender: 12, LineHeight: 16}}

	before := p.IndexCount()
	p.DrawLabel(NewRect(0, 0, 200, 200), InvalidClipIndex, font, "xyz")
	after := p.IndexCount()

	if after != before {
		t.Errorf("DrawLabel with no resident glyphs should emit nothing, got %d new indices", after-before)
	}
}

func TestBuiltinShaperEmitsNewlineGlyph(t *testing.T) {
	shaper := &BuiltinShaper{AdvancePx: 8 << 6, LineHeight: 16}
	glyphs := shaper.Shape(nil, 16, "a\nb")

	if len(glyphs) != 3 {
		t.Fatalf("expected 3 glyphs (a, newline, b), got %d", len(glyphs))
	}
	if glyphs[1].Cluster != 1 {
		t.Errorf("newline glyph cluster = %d, want 1 (its byte offset)", glyphs[1].Cluster)
	}
	if glyphs[1].XAdvance != 0 {
		t.Errorf("newline glyph should have zero advance, got %d", glyphs[1].XAdvance)
	}
	if !isClusterNewline("a\nb", glyphs[1].Cluster) {
		t.Error("isClusterNewline should identify the newline glyph's cluster")
	}
}
