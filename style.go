package ui

// Theme is the one flat styling struct the core carries, per spec.md's
// non-goal "styling/theming beyond a small flat theme struct" — no
// palettes, no variants, no derived dark/light styles. Field set and
// naming follow original_source/biv/src/ui.h's UiTheme directly.
type Theme struct {
	ButtonBgColor         uint32
	ButtonHoverBgColor    uint32
	ButtonPressedBgColor  uint32
	ButtonLabelColor      uint32

	PanelBgColor   uint32
	PanelBorderColor uint32

	InputThickness         float32
	SplitterThickness      float32
	SplitterHoverThickness float32
	SplitterColor          uint32
	SplitterHoverColor     uint32

	FocusRingColor uint32

	// FontSize is "em" in spec.md's glossary: the current font's size.
	FontSize float32
}

// DefaultTheme mirrors original_source/biv/src/ui.h's UiTheme defaults
// (colors in 0xAABBGGRR).
func DefaultTheme() Theme {
	return Theme{
		ButtonBgColor:          0xB2FFFF,
		ButtonHoverBgColor:     0x06000000,
		ButtonPressedBgColor:   0x09000000,
		ButtonLabelColor:       0xFF000000,
		PanelBgColor:           RGBA(32, 32, 36, 235),
		PanelBorderColor:       RGBA(80, 80, 90, 255),
		InputThickness:         10.0,
		SplitterThickness:      2.0,
		SplitterHoverThickness: 4.0,
		SplitterColor:          0xFFE5E5E5,
		SplitterHoverColor:     0xFFD1D1D1,
		FocusRingColor:         RGBA(0, 220, 220, 255),
		FontSize:               14,
	}
}
