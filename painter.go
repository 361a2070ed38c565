package ui

import "log/slog"

// Font bundles everything Painter needs to shape and draw text: the host
// font handle, its raw bytes (for the shaper), and its line metrics.
type Font struct {
	Handle  FontHandle
	Source  []byte
	SizePx  float32
	Metrics FontMetrics
}

// Painter is a retained-per-frame vertex/index buffer builder. It owns no
// memory beyond the two caller-provided arenas; Reset rewinds both without
// reallocating.
type Painter struct {
	vertices arena
	indices  []PrimitiveIndex

	indexCount int

	GlyphAtlasTexture uint32 // bindless index, set by the backend after atlas upload

	cache  *GlyphCache
	shaper Shaper

	log *slog.Logger
}

// NewPainter wraps caller-provided arenas. vertexBytes and maxIndices size
// the hard capacity for one frame; exceeding either is a precondition
// violation the Painter logs and silently drops (see spec.md §7).
func NewPainter(vertexBytes []byte, maxIndices int, cache *GlyphCache, shaper Shaper) *Painter {
	return &Painter{
		vertices: arena{bytes: vertexBytes},
		indices:  make([]PrimitiveIndex, 0, maxIndices),
		cache:    cache,
		shaper:   shaper,
		log:      log,
	}
}

// Reset zeros both offsets. Must be called once per frame before any draw
// call (arena monotonicity invariant, spec.md §8 property 1).
func (p *Painter) Reset() {
	p.vertices.reset()
	p.indices = p.indices[:0]
	p.indexCount = 0
}

// VertexBytesOffset is the current write cursor into the vertex arena.
func (p *Painter) VertexBytesOffset() int { return p.vertices.offset }

// IndexCount is the number of indices emitted so far this frame.
func (p *Painter) IndexCount() int { return len(p.indices) }

// Indices exposes the emitted index buffer for upload.
func (p *Painter) Indices() []PrimitiveIndex { return p.indices }

// VertexBytes exposes the written prefix of the vertex arena for upload.
func (p *Painter) VertexBytes() []byte { return p.vertices.bytes[:p.vertices.offset] }

func (p *Painter) emitRect(typ PrimitiveType, index uint32) {
	if len(p.indices)+len(rectCorners) > cap(p.indices) {
		p.full()
		return
	}
	for _, c := range rectCorners {
		p.indices = append(p.indices, PackIndex(typ, index, c))
	}
}

func (p *Painter) full() {
	p.log.Warn("ui: primitive arena exhausted, dropping draw call")
}

// DrawColorRect appends one Color primitive and six indices. No-op if
// alpha(color) == 0.
func (p *Painter) DrawColorRect(rect Rect, clipIdx uint32, color uint32) {
	if alpha(color) == 0 {
		return
	}
	idx, ok := pushColorRect(&p.vertices, ColorRect{Rect: rect, Color: color, ClipRect: clipIdx})
	if !ok {
		p.full()
		return
	}
	p.emitRect(PrimitiveColor, idx)
}

// DrawTexturedRect appends one Textured primitive and six indices.
func (p *Painter) DrawTexturedRect(rect Rect, clipIdx uint32, uv Rect, textureIdx uint32) {
	idx, ok := pushTexturedRect(&p.vertices, TexturedRect{Rect: rect, UV: uv, Texture: textureIdx, ClipRect: clipIdx})
	if !ok {
		p.full()
		return
	}
	p.emitRect(PrimitiveTextured, idx)
}

// DrawColorRoundRect appends one SdfRoundRect primitive; skipped if both
// the fill and border are fully transparent.
func (p *Painter) DrawColorRoundRect(rect Rect, clipIdx uint32, color, borderColor, borderThickness uint32) {
	if alpha(color) == 0 && alpha(borderColor) == 0 {
		return
	}
	idx, ok := pushSdfRect(&p.vertices, SdfRect{Rect: rect, Color: color, ClipRect: clipIdx, BorderColor: borderColor, BorderThickness: borderThickness})
	if !ok {
		p.full()
		return
	}
	p.emitRect(PrimitiveSdfRoundRect, idx)
}

// DrawColorCircle is DrawColorRoundRect's twin with the SdfCircle type tag.
func (p *Painter) DrawColorCircle(rect Rect, clipIdx uint32, color, borderColor, borderThickness uint32) {
	if alpha(color) == 0 && alpha(borderColor) == 0 {
		return
	}
	idx, ok := pushSdfRect(&p.vertices, SdfRect{Rect: rect, Color: color, ClipRect: clipIdx, BorderColor: borderColor, BorderThickness: borderThickness})
	if !ok {
		p.full()
		return
	}
	p.emitRect(PrimitiveSdfCircle, idx)
}

// RegisterClipRect emits a degenerate Color primitive whose six indices
// are retagged Clip type and returns its primitive index, per spec.md
// §4.5. The shader treats Clip-typed indices as scissor-defining only.
func (p *Painter) RegisterClipRect(rect Rect) uint32 {
	idx, ok := pushColorRect(&p.vertices, ColorRect{Rect: rect})
	if !ok {
		p.full()
		return InvalidClipIndex
	}
	p.emitRect(PrimitiveClip, idx)
	return idx
}

// MeasureLabel shapes text and returns (sum of x_advance, line_height).
// Must not modify Painter state beyond the shaper's own scratch buffer.
func (p *Painter) MeasureLabel(font Font, text string) Vec2 {
	glyphs := p.shaper.Shape(font.Source, font.SizePx, text)
	var cursorX int32
	for _, g := range glyphs {
		cursorX += g.XAdvance >> 6
	}
	return Vec2{X: float32(cursorX), Y: float32(font.Metrics.LineHeight)}
}

// DrawLabel shapes text and draws each resident glyph as a Textured
// primitive. Glyphs without a resident slot are silently elided (no
// crash, per spec.md §4.2's degradation contract). Newlines reset cursor
// x and advance cursor y by line_height.
func (p *Painter) DrawLabel(rect Rect, clipIdx uint32, font Font, text string) {
	glyphs := p.shaper.Shape(font.Source, font.SizePx, text)
	atlasSize := p.cache.AtlasSize()

	cursorX := rect.Pos.X
	cursorY := rect.Pos.Y + float32(font.Metrics.Ascender)

	for _, g := range glyphs {
		if isClusterNewline(text, g.Cluster) {
			cursorX = rect.Pos.X
			cursorY += float32(font.Metrics.LineHeight)
			continue
		}

		slot, resident := p.cache.Request(GlyphKey{Font: font.Handle, ID: g.GID})
		if resident && slot.BitmapSize.X > 0 && slot.BitmapSize.Y > 0 {
			origin := Vec2{
				X: cursorX + slot.BitmapTopLeft.X,
				Y: cursorY - slot.BitmapTopLeft.Y,
			}
			drawRect := Rect{Pos: origin, Size: slot.BitmapSize}
			tilePx := Vec2{X: float32(slot.TileX) * float32(p.cache.SlotSize()), Y: float32(slot.TileY) * float32(p.cache.SlotSize())}
			uv := Rect{
				Pos:  Vec2{X: tilePx.X / atlasSize.X, Y: tilePx.Y / atlasSize.Y},
				Size: Vec2{X: slot.BitmapSize.X / atlasSize.X, Y: slot.BitmapSize.Y / atlasSize.Y},
			}
			p.DrawTexturedRect(drawRect, clipIdx, uv, p.GlyphAtlasTexture)
		}

		cursorX += float32(g.XAdvance >> 6)
		cursorY += float32(g.YAdvance >> 6)
	}
}

func isClusterNewline(text string, cluster uint32) bool {
	i := int(cluster)
	if i < 0 || i >= len(text) {
		return false
	}
	return text[i] == '\n'
}
