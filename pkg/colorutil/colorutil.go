// Package colorutil provides the tile palette and blending helpers.
package colorutil

import (
	"image/color"
)

// Named colors used by the grid.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red         = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green       = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	Blue        = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Magenta     = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Yellow      = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Transparent = color.RGBA{}
)

// HighlightAlpha is the alpha of the dark overlay drawn on the hovered tile.
const HighlightAlpha = 90

// Highlight is the overlay color for the hovered tile.
var Highlight = color.NRGBA{R: 0, G: 0, B: 0, A: HighlightAlpha}

// Palette is the fixed sequence tiles cycle through.
var Palette = []color.RGBA{White, Red, Green, Blue, Magenta, Yellow}

// PaletteSize returns len(Palette).
func PaletteSize() int {
	return len(Palette)
}

// PaletteColor returns the palette entry for index, wrapping out-of-range values.
func PaletteColor(index int) color.RGBA {
	n := len(Palette)
	index %= n
	if index < 0 {
		index += n
	}
	return Palette[index]
}

// Next returns the palette index following index.
func Next(index int) int {
	return (index + 1) % len(Palette)
}

// Over composites src over an opaque dst (Porter-Duff source-over).
func Over(dst color.RGBA, src color.Color) color.RGBA {
	sr, sg, sb, sa := src.RGBA()
	if sa == 0 {
		return dst
	}
	inv := 0xffff - sa
	blend := func(d uint8, s uint32) uint8 {
		return uint8((uint32(d)*0x101*inv/0xffff + s) >> 8)
	}
	a := uint32(dst.A)*0x101*inv/0xffff + sa
	return color.RGBA{
		R: blend(dst.R, sr),
		G: blend(dst.G, sg),
		B: blend(dst.B, sb),
		A: uint8(a >> 8),
	}
}
