package ui

// FontHandle is an opaque host-owned font identifier. Fonts themselves are
// never interpreted by the core; they are passed through to the Shaper and
// FontBackend.
type FontHandle uint64

// FontMetrics carries the line-layout numbers Painter needs without
// touching the font engine.
type FontMetrics struct {
	Ascender   int32
	Descender  int32
	LineHeight int32
}

// GlyphBitmap is the 8-bit coverage bitmap returned by a FontBackend, in
// the HarfBuzz/FreeType convention: Pitch may exceed Width (row padding).
type GlyphBitmap struct {
	Width, Rows int32
	Pitch       int32
	Buffer      []byte
	BearingX    int32
	BearingY    int32
	Advance     int32
}

// FontBackend is the callback-shaped font rasterizer the core depends on
// without owning. Two methods: LoadGlyph rasterizes one glyph on demand
// and Metrics reports a font's vertical metrics.
type FontBackend interface {
	LoadGlyph(font FontHandle, glyph GlyphID) (GlyphBitmap, error)
	Metrics(font FontHandle) FontMetrics
}
