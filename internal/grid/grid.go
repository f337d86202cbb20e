package grid

import (
	"errors"
	"fmt"
	"image"

	"disco-grid/pkg/geometry"
)

// ErrInvalidConfiguration is returned when grid or canvas dimensions
// cannot produce a grid.
var ErrInvalidConfiguration = errors.New("invalid grid configuration")

// Shape selects which cells of the rectangular partition are kept.
type Shape int

const (
	ShapeRect   Shape = iota // Every cell
	ShapeCircle              // Cells inside the inscribed circle
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// ParseShape parses "rect" or "circle".
func ParseShape(s string) (Shape, error) {
	switch s {
	case "rect", "rectangle", "":
		return ShapeRect, nil
	case "circle", "circular":
		return ShapeCircle, nil
	}
	return ShapeRect, fmt.Errorf("unknown shape %q: %w", s, ErrInvalidConfiguration)
}

// Dimensions is the number of columns and rows.
type Dimensions struct {
	Cols int
	Rows int
}

// Grid owns an ordered set of tiles laid over a canvas.
type Grid struct {
	tiles  []Tile
	shape  Shape
	dims   Dimensions
	cell   image.Point
	canvas image.Rectangle

	// index maps column*rows+row to a position in tiles, or -1.
	index []int
}

// NewRectangular builds a grid covering the whole canvas.
func NewRectangular(canvas image.Point, dims Dimensions) (*Grid, error) {
	return Build(canvas, dims, ShapeRect)
}

// NewCircular builds a grid of the cells inside the circle inscribed in the canvas.
func NewCircular(canvas image.Point, dims Dimensions) (*Grid, error) {
	return Build(canvas, dims, ShapeCircle)
}

// Build partitions the canvas into dims.Cols x dims.Rows equal cells.
// Remainder pixels on the right and bottom edges are not covered.
func Build(canvas image.Point, dims Dimensions, shape Shape) (*Grid, error) {
	if dims.Cols <= 0 || dims.Rows <= 0 {
		return nil, fmt.Errorf("grid %dx%d: %w", dims.Cols, dims.Rows, ErrInvalidConfiguration)
	}
	if canvas.X <= 0 || canvas.Y <= 0 {
		return nil, fmt.Errorf("canvas %dx%d: %w", canvas.X, canvas.Y, ErrInvalidConfiguration)
	}
	cell := image.Pt(canvas.X/dims.Cols, canvas.Y/dims.Rows)
	if cell.X == 0 || cell.Y == 0 {
		return nil, fmt.Errorf("grid %dx%d leaves no pixels per cell on %dx%d canvas: %w",
			dims.Cols, dims.Rows, canvas.X, canvas.Y, ErrInvalidConfiguration)
	}

	g := &Grid{
		shape:  shape,
		dims:   dims,
		cell:   cell,
		canvas: image.Rectangle{Max: canvas},
		index:  make([]int, dims.Cols*dims.Rows),
	}

	circle := geometry.InscribedCircle(g.canvas)
	for i := 0; i < dims.Cols; i++ {
		for j := 0; j < dims.Rows; j++ {
			slot := i*dims.Rows + j
			g.index[slot] = -1

			bounds := image.Rect(i*cell.X, j*cell.Y, (i+1)*cell.X, (j+1)*cell.Y)
			if shape == ShapeCircle && !circle.ContainsRect(bounds) {
				continue
			}

			t := newTile(bounds)
			if shape == ShapeCircle {
				t.coord = image.Pt(i, dims.Rows-1-j)
				t.hasCoord = true
			}
			g.index[slot] = len(g.tiles)
			g.tiles = append(g.tiles, t)
		}
	}
	return g, nil
}

// Shape returns the layout shape.
func (g *Grid) Shape() Shape {
	return g.shape
}

// Dimensions returns the column and row counts.
func (g *Grid) Dimensions() Dimensions {
	return g.dims
}

// CellSize returns the size of one cell in canvas pixels.
func (g *Grid) CellSize() image.Point {
	return g.cell
}

// Canvas returns the canvas rectangle the grid was built for.
func (g *Grid) Canvas() image.Rectangle {
	return g.canvas
}

// Len returns the number of tiles.
func (g *Grid) Len() int {
	return len(g.tiles)
}

// Tile returns the i-th tile in build order.
func (g *Grid) Tile(i int) *Tile {
	return &g.tiles[i]
}

// Tiles returns the tiles in build order. Callers must not append to it.
func (g *Grid) Tiles() []Tile {
	return g.tiles
}

// Cell returns the tile at column col and row row (unflipped), or nil if
// the cell is outside the grid or was dropped by the shape.
func (g *Grid) Cell(col, row int) *Tile {
	if col < 0 || row < 0 || col >= g.dims.Cols || row >= g.dims.Rows {
		return nil
	}
	idx := g.index[col*g.dims.Rows+row]
	if idx < 0 {
		return nil
	}
	return &g.tiles[idx]
}

// TileAt returns the tile containing p, or nil.
func (g *Grid) TileAt(p image.Point) *Tile {
	if p.X < 0 || p.Y < 0 {
		return nil
	}
	t := g.Cell(p.X/g.cell.X, p.Y/g.cell.Y)
	if t == nil || !t.Contains(p) {
		return nil
	}
	return t
}

// Highlighted returns the highlighted tile, or nil.
func (g *Grid) Highlighted() *Tile {
	for i := range g.tiles {
		if g.tiles[i].highlighted {
			return &g.tiles[i]
		}
	}
	return nil
}
