package ui

import (
	"bytes"
	"sync"

	gotextfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is one positioned glyph out of Shape, advances in 26.6
// fixed point per spec.md §4.3.
type ShapedGlyph struct {
	GID      GlyphID
	XAdvance int32 // 26.6 fixed point
	YAdvance int32 // 26.6 fixed point
	Cluster  uint32
}

// Shaper wraps an external shaping engine. Direction is fixed LTR, script
// fixed Latin, language fixed "en" — see spec.md's non-goals (no bidi, no
// RTL). The shaper's internal buffer is cleared before each Shape call.
type Shaper interface {
	Shape(fontSrc []byte, sizePx float32, text string) []ShapedGlyph
}

// GoTextShaper shapes using github.com/go-text/typesetting's HarfBuzz
// implementation, grounded on gogpu-gg's text/shaper_gotext.go usage of
// the same library.
type GoTextShaper struct {
	shaperPool sync.Pool
	mu         sync.RWMutex
	fontCache  map[string]*gotextfont.Font
}

// NewGoTextShaper builds a shaper backed by go-text/typesetting.
func NewGoTextShaper() *GoTextShaper {
	return &GoTextShaper{
		shaperPool: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
		fontCache: make(map[string]*gotextfont.Font),
	}
}

func (s *GoTextShaper) fontFor(fontSrc []byte) (*gotextfont.Font, error) {
	key := string(fontSrc)
	s.mu.RLock()
	if f, ok := s.fontCache[key]; ok {
		s.mu.RUnlock()
		return f, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if f, ok := s.fontCache[key]; ok {
		return f, nil
	}
	face, err := gotextfont.ParseTTF(bytes.NewReader(fontSrc))
	if err != nil {
		return nil, err
	}
	s.fontCache[key] = face.Font
	return face.Font, nil
}

// Shape implements Shaper. Returns nil on a font parse error; the caller
// (Painter) treats that as "no glyphs", matching the core's no-error-
// propagation contract (§7).
func (s *GoTextShaper) Shape(fontSrc []byte, sizePx float32, text string) []ShapedGlyph {
	if text == "" || len(fontSrc) == 0 {
		return nil
	}
	f, err := s.fontFor(fontSrc)
	if err != nil {
		return nil
	}
	face := gotextfont.NewFace(f)
	runes := []rune(text)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: 0, // di.DirectionLTR — fixed per non-goals (no RTL/bidi)
		Face:      face,
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    language.Latin,
		Language:  language.NewLanguage("en"),
	}

	hb := s.shaperPool.Get().(*shaping.HarfbuzzShaper)
	output := hb.Shape(input)
	s.shaperPool.Put(hb)

	out := make([]ShapedGlyph, len(output.Glyphs))
	for i, g := range output.Glyphs {
		out[i] = ShapedGlyph{
			GID:      GlyphID(g.GlyphID),
			XAdvance: int32(g.XAdvance),
			YAdvance: int32(g.YAdvance),
			Cluster:  g.TextIndex(),
		}
	}
	return out
}

// BuiltinShaper is a dependency-free monospace fallback for headless
// tests and environments without a real font engine, mirroring the split
// between gogpu-gg's shaper_builtin.go and shaper_gotext.go.
type BuiltinShaper struct {
	AdvancePx  int32 // 26.6 fixed point advance per rune
	LineHeight int32
}

// Shape assigns each rune its Unicode code point as a "glyph id" and a
// fixed advance — enough to exercise layout and cursor math without a
// real font.
func (b *BuiltinShaper) Shape(fontSrc []byte, sizePx float32, text string) []ShapedGlyph {
	if text == "" {
		return nil
	}
	out := make([]ShapedGlyph, 0, len(text))
	for i, r := range text {
		if r == '\n' {
			out = append(out, ShapedGlyph{GID: GlyphID(r), Cluster: uint32(i)})
			continue
		}
		out = append(out, ShapedGlyph{
			GID:      GlyphID(r),
			XAdvance: b.AdvancePx,
			Cluster:  uint32(i),
		})
	}
	return out
}
