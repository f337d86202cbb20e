package app

import (
	"fmt"
	"image"

	"disco-grid/internal/grid"
)

// Config holds the startup settings for a grid session.
type Config struct {
	Cols         int
	Rows         int
	CanvasWidth  int
	CanvasHeight int
	Shape        grid.Shape
	Drag         grid.DragMode
	Labels       bool
	Verbose      bool
}

// DefaultConfig returns the small rectangular grid.
func DefaultConfig() Config {
	return Config{
		Cols:         10,
		Rows:         10,
		CanvasWidth:  450,
		CanvasHeight: 450,
		Shape:        grid.ShapeRect,
		Drag:         grid.DragOff,
	}
}

// Preset returns a named configuration.
//
//	small: 10x10 rectangle over 450x450, click to advance
//	large: 50x50 circle over 1000x1000, drag painting with labels
func Preset(name string) (Config, error) {
	switch name {
	case "", "small":
		return DefaultConfig(), nil
	case "large":
		return Config{
			Cols:         50,
			Rows:         50,
			CanvasWidth:  1000,
			CanvasHeight: 1000,
			Shape:        grid.ShapeCircle,
			Drag:         grid.DragPaint,
			Labels:       true,
		}, nil
	}
	return Config{}, fmt.Errorf("unknown preset %q: %w", name, grid.ErrInvalidConfiguration)
}

// CanvasSize returns the canvas dimensions.
func (c Config) CanvasSize() image.Point {
	return image.Pt(c.CanvasWidth, c.CanvasHeight)
}

// Dimensions returns the grid dimensions.
func (c Config) Dimensions() grid.Dimensions {
	return grid.Dimensions{Cols: c.Cols, Rows: c.Rows}
}

// Validate checks that the configuration can build a grid.
func (c Config) Validate() error {
	if c.Cols <= 0 || c.Rows <= 0 {
		return fmt.Errorf("grid dimensions %dx%d must be positive: %w", c.Cols, c.Rows, grid.ErrInvalidConfiguration)
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive: %w", c.CanvasWidth, c.CanvasHeight, grid.ErrInvalidConfiguration)
	}
	if c.CanvasWidth < c.Cols || c.CanvasHeight < c.Rows {
		return fmt.Errorf("canvas %dx%d is smaller than grid %dx%d: %w",
			c.CanvasWidth, c.CanvasHeight, c.Cols, c.Rows, grid.ErrInvalidConfiguration)
	}
	if c.Shape != grid.ShapeRect && c.Shape != grid.ShapeCircle {
		return fmt.Errorf("shape %d: %w", c.Shape, grid.ErrInvalidConfiguration)
	}
	return nil
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d %s grid over %dx%d", c.Cols, c.Rows, c.Shape, c.CanvasWidth, c.CanvasHeight)
}
