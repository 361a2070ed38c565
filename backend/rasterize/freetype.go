// Package rasterize provides a FontBackend implementation over
// github.com/golang/freetype/truetype: it rasterizes a single glyph
// index into the 8-bit coverage bitmap ui.GlyphBitmap describes, on
// demand, exactly the shape ui.FontBackend.LoadGlyph needs.
package rasterize

import (
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/golang/freetype/raster"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	ui "github.com/biv-engine/ui"
)

// loadedFont pairs a parsed outline font with the pixel size it was
// registered at; FontHandle carries both since the core treats fonts
// as opaque.
type loadedFont struct {
	font   *truetype.Font
	sizePx float32
	hint   font.Hinting
}

// FreetypeBackend rasterizes glyphs lazily and caches nothing beyond
// the parsed font outlines themselves — GlyphCache upstream already
// owns the bitmap cache, so every LoadGlyph call here does real work.
type FreetypeBackend struct {
	mu    sync.RWMutex
	fonts map[ui.FontHandle]*loadedFont
	next  ui.FontHandle
}

// NewFreetypeBackend returns an empty backend; call RegisterFont to
// load TTF/OTF data before use.
func NewFreetypeBackend() *FreetypeBackend {
	return &FreetypeBackend{fonts: make(map[ui.FontHandle]*loadedFont)}
}

// RegisterFont parses a TTF/OTF file and returns the handle callers
// pass to ui.Font.Handle and ui.Painter draw calls.
func (b *FreetypeBackend) RegisterFont(path string, sizePx float32) (ui.FontHandle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("rasterize: read font: %w", err)
	}
	return b.RegisterFontBytes(data, sizePx)
}

// RegisterFontBytes is RegisterFont for already-loaded font data.
func (b *FreetypeBackend) RegisterFontBytes(data []byte, sizePx float32) (ui.FontHandle, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return 0, fmt.Errorf("rasterize: parse font: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	handle := b.next
	b.fonts[handle] = &loadedFont{font: f, sizePx: sizePx, hint: font.HintingFull}
	return handle, nil
}

// Metrics implements ui.FontBackend.
func (b *FreetypeBackend) Metrics(handle ui.FontHandle) ui.FontMetrics {
	b.mu.RLock()
	lf, ok := b.fonts[handle]
	b.mu.RUnlock()
	if !ok {
		return ui.FontMetrics{}
	}

	scale := fixed.Int26_6(lf.sizePx * 64)
	m := lf.font.Metrics(scale, lf.hint)
	return ui.FontMetrics{
		Ascender:   int32(m.Ascent.Ceil()),
		Descender:  int32(-m.Descent.Ceil()),
		LineHeight: int32(m.Height.Ceil()),
	}
}

// LoadGlyph implements ui.FontBackend: it loads the glyph's outline by
// index (not rune — the shaper already resolved cmap lookups) at the
// registered font's scale, rasterizes it with freetype's scanline
// rasterizer into a single-channel coverage mask, and returns it as a
// GlyphBitmap.
func (b *FreetypeBackend) LoadGlyph(handle ui.FontHandle, glyph ui.GlyphID) (ui.GlyphBitmap, error) {
	b.mu.RLock()
	lf, ok := b.fonts[handle]
	b.mu.RUnlock()
	if !ok {
		return ui.GlyphBitmap{}, fmt.Errorf("rasterize: unknown font handle %d", handle)
	}

	scale := fixed.Int26_6(lf.sizePx * 64)

	var gb truetype.GlyphBuf
	if err := gb.Load(lf.font, scale, truetype.Index(glyph), lf.hint); err != nil {
		return ui.GlyphBitmap{}, fmt.Errorf("rasterize: load glyph %d: %w", glyph, err)
	}

	bounds := gb.Bounds
	width := (bounds.Max.X - bounds.Min.X).Ceil()
	height := (bounds.Max.Y - bounds.Min.Y).Ceil()
	advance := int32(gb.AdvanceWidth)

	if width <= 0 || height <= 0 {
		return ui.GlyphBitmap{Advance: advance}, nil
	}

	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	r := raster.NewRasterizer(width, height)
	r.UseNonZeroWinding = true

	origin := raster.Point{X: -bounds.Min.X, Y: -bounds.Min.Y}
	start := 0
	for _, end := range gb.Ends {
		drawContour(r, gb.Points[start:end], origin)
		start = end
	}
	r.Rasterize(raster.NewAlphaSrcPainter(mask))

	return ui.GlyphBitmap{
		Width:    int32(width),
		Rows:     int32(height),
		Pitch:    int32(mask.Stride),
		Buffer:   mask.Pix,
		BearingX: int32(bounds.Min.X.Floor()),
		BearingY: int32(-bounds.Min.Y.Floor()),
		Advance:  advance,
	}, nil
}

// drawContour feeds one closed contour's on/off-curve points into the
// rasterizer, mirroring golang/freetype's own truetype.Face glyph
// rendering path: quadratic off-curve points are rendered as Bezier
// curves, on-curve points as straight lines.
func drawContour(r *raster.Rasterizer, points []truetype.Point, origin raster.Point) {
	n := len(points)
	if n == 0 {
		return
	}

	toRasterPoint := func(p truetype.Point) raster.Point {
		return raster.Point{X: origin.X + p.X, Y: origin.Y + p.Y}
	}
	midpoint := func(a, b raster.Point) raster.Point {
		return raster.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	}
	onCurve := func(i int) bool {
		return points[i].Flags&0x01 != 0
	}

	start := 0
	var startPoint raster.Point
	switch {
	case onCurve(0):
		startPoint = toRasterPoint(points[0])
	case onCurve(n - 1):
		start = n - 1
		startPoint = toRasterPoint(points[n-1])
	default:
		startPoint = midpoint(toRasterPoint(points[0]), toRasterPoint(points[n-1]))
	}
	r.Start(startPoint)

	for i := 1; i <= n; i++ {
		p := points[(start+i)%n]
		q := toRasterPoint(p)
		if onCurve((start+i)%n) {
			r.Add1(q)
			continue
		}

		next := points[(start+i+1)%n]
		var qEnd raster.Point
		if onCurve((start + i + 1) % n) {
			qEnd = toRasterPoint(next)
			i++
		} else {
			qEnd = midpoint(q, toRasterPoint(next))
		}
		r.Add2(q, qEnd)
	}
}
