package ui

// Renderer is the interface the backend package implements: it takes the
// Painter's written-this-frame vertex bytes, index buffer and bindless
// glyph atlas texture and issues the single indexed draw call spec.md §6
// describes. The core depends only on this interface — Vulkan/OpenGL
// specifics live in backend/.
type Renderer interface {
	Render(p *Painter) error
	UploadGlyphTile(tileX, tileY int32, bitmap GlyphBitmap)
	Resize(width, height int)
}

// UI ties a Painter, Context and Renderer together into the familiar
// Begin/End frame loop.
type UI struct {
	renderer Renderer
	fonts    FontBackend
	painter  *Painter
	ctx      *Context
}

// New builds a UI instance over a caller-sized vertex arena and index
// capacity. cache and shaper back text rendering; pass a BuiltinShaper
// and a small GlyphCache for headless/test use. fonts rasterizes glyphs
// on cache miss; it may be nil if shaper never reports cache misses
// (e.g. a headless test double).
func New(renderer Renderer, fonts FontBackend, vertexBytes []byte, maxIndices int, cache *GlyphCache, shaper Shaper, theme Theme) *UI {
	painter := NewPainter(vertexBytes, maxIndices, cache, shaper)
	return &UI{
		renderer: renderer,
		fonts:    fonts,
		painter:  painter,
		ctx:      NewContext(painter, theme),
	}
}

// Begin starts a new frame: rewinds the Painter's arenas and resets the
// Context's per-frame stacks, returning the Context widgets draw
// against.
func (u *UI) Begin(input *Input, displaySize Vec2) *Context {
	u.painter.Reset()
	u.ctx.NewFrame(input, displaySize)
	return u.ctx
}

// End closes the frame: rasterizes and uploads any glyphs the Painter
// requested but found absent from the atlas this frame, then hands the
// finished Painter to the renderer for the single indexed draw call.
func (u *UI) End() error {
	u.ctx.EndFrame()

	for _, key := range u.painter.cache.PendingUploads() {
		if u.fonts == nil {
			continue
		}
		bitmap, err := u.fonts.LoadGlyph(key.Font, key.ID)
		if err != nil {
			log.Warn("ui: glyph rasterization failed", "font", key.Font, "glyph", key.ID, "err", err)
			continue
		}
		slot, ok := u.painter.cache.Peek(key)
		if !ok {
			continue
		}
		u.renderer.UploadGlyphTile(slot.TileX, slot.TileY, bitmap)
		u.painter.cache.MarkUploaded(key,
			Vec2{X: float32(bitmap.BearingX), Y: float32(bitmap.BearingY)},
			Vec2{X: float32(bitmap.Width), Y: float32(bitmap.Rows)})
	}

	return u.renderer.Render(u.painter)
}

// Context returns the active frame's Context. Valid only between Begin
// and End.
func (u *UI) Context() *Context { return u.ctx }

// Resize forwards a display-size change to the renderer.
func (u *UI) Resize(width, height int) { u.renderer.Resize(width, height) }
