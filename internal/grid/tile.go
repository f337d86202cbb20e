// Package grid provides the tile grid model: tiles, layout builders,
// point queries and the pointer interaction state machine.
package grid

import (
	"fmt"
	"image"
	"image/color"

	"disco-grid/pkg/colorutil"
)

// Tile is a single grid cell.
type Tile struct {
	Bounds image.Rectangle // Canvas pixels, Max exclusive

	colorIndex  int
	highlighted bool
	coord       image.Point
	hasCoord    bool
	dirty       bool
}

func newTile(bounds image.Rectangle) Tile {
	// New tiles have never been drawn.
	return Tile{Bounds: bounds, dirty: true}
}

// ColorIndex returns the current palette index.
func (t *Tile) ColorIndex() int {
	return t.colorIndex
}

// Color returns the current palette color.
func (t *Tile) Color() color.RGBA {
	return colorutil.PaletteColor(t.colorIndex)
}

// Highlighted reports whether the pointer is over the tile.
func (t *Tile) Highlighted() bool {
	return t.highlighted
}

// Coord returns the tile's grid label, if it has one.
func (t *Tile) Coord() (image.Point, bool) {
	return t.coord, t.hasCoord
}

// Contains reports whether p is inside the tile bounds.
func (t *Tile) Contains(p image.Point) bool {
	return p.In(t.Bounds)
}

// Advance moves the tile to the next palette color.
func (t *Tile) Advance() {
	t.colorIndex = colorutil.Next(t.colorIndex)
	t.dirty = true
}

// SetHighlight sets the highlight flag, marking the tile dirty on change.
// It returns true if the flag changed.
func (t *Tile) SetHighlight(on bool) bool {
	if t.highlighted == on {
		return false
	}
	t.highlighted = on
	t.dirty = true
	return true
}

// Dirty reports whether the tile changed since it was last taken,
// without clearing the flag.
func (t *Tile) Dirty() bool {
	return t.dirty
}

// TakeDirty returns the dirty flag and clears it.
func (t *Tile) TakeDirty() bool {
	d := t.dirty
	t.dirty = false
	return d
}

func (t *Tile) String() string {
	if t.hasCoord {
		return fmt.Sprintf("tile(%d, %d) %v", t.coord.X, t.coord.Y, t.Bounds)
	}
	return fmt.Sprintf("tile %v", t.Bounds)
}
