package app

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// DiscoTheme is the fixed application theme.
type DiscoTheme struct{}

var _ fyne.Theme = (*DiscoTheme)(nil)

// LetterboxColor fills the bars around the canvas.
var LetterboxColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}

func (t *DiscoTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0xC2, G: 0x18, B: 0x5B, A: 0xFF} // Magenta accent
	case theme.ColorNameBackground:
		return LetterboxColor
	default:
		return theme.DefaultTheme().Color(name, theme.VariantDark)
	}
}

func (t *DiscoTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *DiscoTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *DiscoTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
